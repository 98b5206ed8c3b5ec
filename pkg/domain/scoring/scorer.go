package scoring

import (
	"math"
	"sort"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/dependency"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// cycleWarning is attached to every task that sits on a detected cycle.
const cycleWarning = "circular dependency detected"

// ScoredTask is a task plus its computed priority.
type ScoredTask struct {
	task.Task
	PriorityScore float64       `json:"priority_score"`
	PriorityLevel PriorityLevel `json:"priority_level"`
	Breakdown     Breakdown     `json:"scoring_breakdown"`
	Warnings      []string      `json:"warnings"`
}

// Distribution counts tasks per priority level.
type Distribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Analysis is the full result of scoring one request.
type Analysis struct {
	Tasks                []ScoredTask `json:"tasks"`
	TotalCount           int          `json:"total_count"`
	Strategy             Strategy     `json:"strategy"`
	Weights              Weights      `json:"weights"`
	CircularDependencies [][]string   `json:"circular_dependencies"`
	AnalysisDate         task.DueDate `json:"analysis_date"`
	Distribution         Distribution `json:"priority_distribution"`
}

// Scorer evaluates tasks against one strategy and one reference date.
// It holds no state across requests; build a fresh one per call.
type Scorer struct {
	strategy Strategy
	weights  Weights
	today    task.DueDate
}

// NewScorer creates a scorer for the given strategy. The reference date
// is passed in explicitly so scoring stays deterministic.
func NewScorer(strategy Strategy, today task.DueDate) *Scorer {
	return &Scorer{
		strategy: strategy,
		weights:  strategy.Weights(),
		today:    today,
	}
}

// WithWeights overrides the strategy's weight table with a custom
// profile. The caller is responsible for validating it first.
func (s *Scorer) WithWeights(w Weights) *Scorer {
	s.weights = w
	return s
}

// Weights returns the weight profile in effect.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// ScoreTask computes the weighted priority of a single task. The graph
// supplies the task's blocks count; extra warnings (validation, cycle
// membership) are carried onto the result.
func (s *Scorer) ScoreTask(t task.Task, warnings []string, graph *dependency.Graph) ScoredTask {
	urgency, urgencyWhy := ScoreUrgency(t.DueDate, s.today)
	importance, importanceWhy := ScoreImportance(t.Importance)
	effort, effortWhy := ScoreEffort(t.EstimatedHours)
	depScore, depWhy := ScoreDependency(graph.BlocksCount(t.ID))

	total := weighted(urgency, s.weights.Urgency) +
		weighted(importance, s.weights.Importance) +
		weighted(effort, s.weights.Effort) +
		weighted(depScore, s.weights.Dependency)
	if total < 0 {
		total = 0
	}
	total = round2(total)

	if warnings == nil {
		warnings = []string{}
	}

	return ScoredTask{
		Task:          t,
		PriorityScore: total,
		PriorityLevel: LevelForScore(total),
		Breakdown: Breakdown{
			Urgency:    factorScore(urgency, s.weights.Urgency, urgencyWhy),
			Importance: factorScore(importance, s.weights.Importance, importanceWhy),
			Effort:     factorScore(effort, s.weights.Effort, effortWhy),
			Dependency: factorScore(depScore, s.weights.Dependency, depWhy),
		},
		Warnings: warnings,
	}
}

// Analyze scores a validated task list: it builds the dependency graph,
// detects cycles, scores every task, and sorts the result by priority
// descending (stable, so ties keep input order).
func (s *Scorer) Analyze(validated []task.Validated) *Analysis {
	tasks := make([]task.Task, len(validated))
	for i, v := range validated {
		tasks[i] = v.Task
	}

	graph := dependency.NewGraph(tasks)
	cycles := graph.FindCycles()
	onCycle := dependency.CycleMembers(cycles)

	scored := make([]ScoredTask, 0, len(validated))
	var dist Distribution
	for _, v := range validated {
		warnings := append([]string{}, v.Warnings...)
		if onCycle[v.Task.ID] {
			warnings = append(warnings, cycleWarning)
		}
		st := s.ScoreTask(v.Task, warnings, graph)
		switch st.PriorityLevel {
		case PriorityHigh:
			dist.High++
		case PriorityMedium:
			dist.Medium++
		case PriorityLow:
			dist.Low++
		}
		scored = append(scored, st)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})

	if cycles == nil {
		cycles = [][]string{}
	}

	return &Analysis{
		Tasks:                scored,
		TotalCount:           len(scored),
		Strategy:             s.strategy,
		Weights:              s.weights,
		CircularDependencies: cycles,
		AnalysisDate:         s.today,
		Distribution:         dist,
	}
}

func weighted(score float64, weight int) float64 {
	return score * float64(weight) / 100
}

func factorScore(score float64, weight int, explanation string) FactorScore {
	return FactorScore{
		Score:         round2(score),
		Weight:        weight,
		WeightedScore: round2(weighted(score, weight)),
		Explanation:   explanation,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
