package homebrew

// Balanced content sits inside this overall-score band
const (
	BalancedMin = 0.3
	BalancedMax = 0.7
)

// BalanceMetrics is the result of scoring one content record. Created
// fresh per scoring call; a revision is a new value, never a mutation.
type BalanceMetrics struct {
	// Each score is in [0.0, 1.0]
	OverallScore     float64
	PowerScore       float64
	UtilityScore     float64
	VersatilityScore float64
	ScalingScore     float64

	PowerTier   PowerTier
	ContentType ContentType

	// Ordered list of human-readable balance concerns
	IdentifiedIssues []string

	// Tag naming the heuristic that produced the scores
	CalculationMethod string
}

// IsBalanced reports whether the overall score is in the balanced band
func (m *BalanceMetrics) IsBalanced() bool {
	return m.OverallScore >= BalancedMin && m.OverallScore <= BalancedMax
}

// Rating buckets the overall score into one of seven bands
func (m *BalanceMetrics) Rating() string {
	switch {
	case m.OverallScore < 0.2:
		return "Severely Underpowered"
	case m.OverallScore < 0.3:
		return "Underpowered"
	case m.OverallScore < 0.4:
		return "Slightly Underpowered"
	case m.OverallScore < 0.6:
		return "Well Balanced"
	case m.OverallScore < 0.7:
		return "Slightly Overpowered"
	case m.OverallScore < 0.8:
		return "Overpowered"
	default:
		return "Severely Overpowered"
	}
}
