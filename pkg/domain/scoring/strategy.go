// Package scoring implements the weighted multi-factor priority scoring
// engine: per-factor scores, strategy weight profiles, and the final
// aggregated analysis.
package scoring

import (
	"encoding/json"
	"fmt"
)

// Strategy is a named weight profile controlling how much each factor
// contributes to the final priority score.
type Strategy string

const (
	// StrategySmartBalance weighs all four factors evenly-ish.
	StrategySmartBalance Strategy = "smart_balance"
	// StrategyFastestWins favors low-effort quick wins.
	StrategyFastestWins Strategy = "fastest_wins"
	// StrategyHighImpact favors the importance rating above all.
	StrategyHighImpact Strategy = "high_impact"
	// StrategyDeadlineDriven favors due-date urgency.
	StrategyDeadlineDriven Strategy = "deadline_driven"
)

// Weights holds the percentage contribution of each factor. A valid set
// sums to exactly 100.
type Weights struct {
	Urgency    int `json:"urgency" yaml:"urgency"`
	Importance int `json:"importance" yaml:"importance"`
	Effort     int `json:"effort" yaml:"effort"`
	Dependency int `json:"dependency" yaml:"dependency"`
}

// Total returns the sum of the four weights.
func (w Weights) Total() int {
	return w.Urgency + w.Importance + w.Effort + w.Dependency
}

// Validate checks that the weights form a complete profile.
func (w Weights) Validate() error {
	if w.Urgency < 0 || w.Importance < 0 || w.Effort < 0 || w.Dependency < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidWeights)
	}
	if w.Total() != 100 {
		return fmt.Errorf("%w: weights sum to %d, want 100", ErrInvalidWeights, w.Total())
	}
	return nil
}

var strategyWeights = map[Strategy]Weights{
	StrategySmartBalance:   {Urgency: 30, Importance: 35, Effort: 15, Dependency: 20},
	StrategyFastestWins:    {Urgency: 15, Importance: 20, Effort: 50, Dependency: 15},
	StrategyHighImpact:     {Urgency: 20, Importance: 50, Effort: 10, Dependency: 20},
	StrategyDeadlineDriven: {Urgency: 55, Importance: 20, Effort: 10, Dependency: 15},
}

var strategyDescriptions = map[Strategy]string{
	StrategySmartBalance:   "Balanced weighting across all four factors",
	StrategyFastestWins:    "Prioritize low-effort quick wins",
	StrategyHighImpact:     "Prioritize importance over everything",
	StrategyDeadlineDriven: "Prioritize based on due date urgency",
}

// AllStrategies returns all valid strategies in stable order.
func AllStrategies() []Strategy {
	return []Strategy{
		StrategySmartBalance,
		StrategyFastestWins,
		StrategyHighImpact,
		StrategyDeadlineDriven,
	}
}

// DefaultStrategy returns the strategy used when a caller names none.
func DefaultStrategy() Strategy {
	return StrategySmartBalance
}

// IsValid returns true if the strategy is one of the known profiles.
func (s Strategy) IsValid() bool {
	_, ok := strategyWeights[s]
	return ok
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// Weights returns the weight profile for the strategy.
func (s Strategy) Weights() Weights {
	return strategyWeights[s]
}

// Description returns a one-line description of the strategy.
func (s Strategy) Description() string {
	return strategyDescriptions[s]
}

// ParseStrategy parses a strategy name. Unknown names are a hard error.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStrategy, name)
	}
	return s, nil
}

// MarshalJSON implements json.Marshaler.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler. An empty string decodes to
// the default strategy.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*s = DefaultStrategy()
		return nil
	}
	parsed, err := ParseStrategy(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
