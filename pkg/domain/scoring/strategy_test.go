package scoring

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStrategyWeightsSumTo100(t *testing.T) {
	for _, s := range AllStrategies() {
		if total := s.Weights().Total(); total != 100 {
			t.Errorf("strategy %s weights sum to %d, want 100", s, total)
		}
	}
}

func TestStrategyWeightTables(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     Weights
	}{
		{StrategySmartBalance, Weights{Urgency: 30, Importance: 35, Effort: 15, Dependency: 20}},
		{StrategyFastestWins, Weights{Urgency: 15, Importance: 20, Effort: 50, Dependency: 15}},
		{StrategyHighImpact, Weights{Urgency: 20, Importance: 50, Effort: 10, Dependency: 20}},
		{StrategyDeadlineDriven, Weights{Urgency: 55, Importance: 20, Effort: 10, Dependency: 15}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			if got := tt.strategy.Weights(); got != tt.want {
				t.Errorf("Weights() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"smart_balance", StrategySmartBalance, false},
		{"fastest_wins", StrategyFastestWins, false},
		{"high_impact", StrategyHighImpact, false},
		{"deadline_driven", StrategyDeadlineDriven, false},
		{"balanced", "", true},
		{"SMART_BALANCE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrInvalidStrategy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"valid custom split", Weights{Urgency: 40, Importance: 30, Effort: 15, Dependency: 15}, false},
		{"sum too low", Weights{Urgency: 30, Importance: 30, Effort: 15, Dependency: 15}, true},
		{"sum too high", Weights{Urgency: 40, Importance: 40, Effort: 15, Dependency: 15}, true},
		{"negative weight", Weights{Urgency: -10, Importance: 60, Effort: 25, Dependency: 25}, true},
		{"all in one factor", Weights{Urgency: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("Validate() error = %v, want ErrInvalidWeights", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestStrategyJSON(t *testing.T) {
	var s Strategy
	if err := json.Unmarshal([]byte(`"high_impact"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != StrategyHighImpact {
		t.Errorf("unmarshal = %v, want high_impact", s)
	}

	if err := json.Unmarshal([]byte(`""`), &s); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if s != DefaultStrategy() {
		t.Errorf("empty string should decode to the default strategy, got %v", s)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &s); err == nil {
		t.Errorf("unknown strategy should fail to decode")
	}
}
