package engagement

import "insight-srv/pkg/util"

// SentimentLabel names an average sentiment in [-1, 1].
func SentimentLabel(avg float64) string {
	switch {
	case avg > 0.3:
		return LabelVeryPositive
	case avg > 0.1:
		return LabelPositive
	case avg > -0.1:
		return LabelNeutral
	case avg > -0.3:
		return LabelNegative
	default:
		return LabelVeryNegative
	}
}

// CommunityHealth scores the comment section on [0, 10].
// Positive comments raise it, spam lowers it, and a section without comments scores 5.
func CommunityHealth(m Metrics) float64 {
	if m.TotalComments == 0 {
		return 5
	}
	raw := float64(m.PositiveComments-m.SpamComments)/float64(m.TotalComments)*5 + 5
	return util.Clamp(raw, 0, 10)
}

// Share returns part as a percentage of total, 0 when total is 0.
func Share(part, total int) float64 {
	return util.Ratio(float64(part), float64(total)) * 100
}
