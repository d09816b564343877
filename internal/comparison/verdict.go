package comparison

import (
	"fmt"
	"math"

	"insight-srv/pkg/util"
)

const (
	tieReason  = "Both videos have comparable performance metrics"
	tieSummary = "Very close comparison - both videos perform similarly in views and engagement."
)

// Decide picks the winner of two scored items. A composite difference below
// TieThreshold is a tie.
func Decide(item1, item2 Item) Verdict {
	diff := math.Abs(item1.Score.Composite - item2.Score.Composite)
	if diff < TieThreshold {
		return Verdict{
			Winner:  WinnerTie,
			Reason:  tieReason,
			Summary: tieSummary,
		}
	}

	winner, best := WinnerItem1, item1
	if item2.Score.Composite > item1.Score.Composite {
		winner, best = WinnerItem2, item2
	}

	return Verdict{
		Winner:  winner,
		Reason:  fmt.Sprintf("%q outperforms the other video overall", best.Video.Title),
		Summary: fmt.Sprintf("Video 1: %s views, %.2f%% engagement vs Video 2: %s views, %.2f%% engagement",
			util.FormatNumber(item1.Counters.Views), item1.Metrics.EngagementRate,
			util.FormatNumber(item2.Counters.Views), item2.Metrics.EngagementRate),
	}
}
