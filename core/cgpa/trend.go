package cgpa

// Trend describes how SGPAs evolve between the first and the last semesters.
type Trend string

const (
	TrendInsufficient Trend = "insufficient"
	TrendImproving    Trend = "improving"
	TrendDeclining    Trend = "declining"
	TrendStable       Trend = "stable"
)

const trendMargin = 0.5

var trendMessages = map[Trend]string{
	TrendInsufficient: "Not enough data to analyze trend.",
	TrendImproving:    "Positive trend: your performance is improving! Keep up the good work.",
	TrendDeclining:    "Declining trend: your performance has decreased. Consider reviewing your study strategies.",
	TrendStable:       "Stable performance: your SGPA has remained consistent. Good job maintaining your standards.",
}

// Message returns the human readable analysis.
func (t Trend) Message() string {
	return trendMessages[t]
}

// AnalyzeTrend compares the mean of the first two SGPAs with the mean of the last two.
func AnalyzeTrend(sgpas []float64) Trend {
	n := len(sgpas)
	if n < 2 {
		return TrendInsufficient
	}
	start := (sgpas[0] + sgpas[1]) / 2
	end := (sgpas[n-2] + sgpas[n-1]) / 2

	switch {
	case end > start+trendMargin:
		return TrendImproving
	case end < start-trendMargin:
		return TrendDeclining
	default:
		return TrendStable
	}
}
