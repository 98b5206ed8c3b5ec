package scoring

// PriorityLevel buckets a final weighted score.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "HIGH"
	PriorityMedium PriorityLevel = "MEDIUM"
	PriorityLow    PriorityLevel = "LOW"
)

// Bucketing thresholds applied to the final weighted sum.
const (
	HighThreshold   = 70.0
	MediumThreshold = 40.0
)

// LevelForScore buckets a final priority score into HIGH/MEDIUM/LOW.
func LevelForScore(score float64) PriorityLevel {
	switch {
	case score >= HighThreshold:
		return PriorityHigh
	case score >= MediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// String returns the string representation of the level.
func (l PriorityLevel) String() string {
	return string(l)
}
