package cli

import (
	"fmt"
	"io"

	"insight-srv/internal/comparison"

	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <url1> <url2>",
		Short: "Compare two videos",
		Long:  "Score two videos on views and engagement and pick a winner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.comparisonUC.Compare(cmd.Context(), comparison.CompareInput{
				URL1: args[0],
				URL2: args[1],
			})
			if err != nil {
				return fmt.Errorf("compare failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(w, res)
			}

			printItem(w, "Video 1", res.Item1)
			printItem(w, "Video 2", res.Item2)
			printRule(w)
			fmt.Fprintf(w, "Winner: %s\n", res.Verdict.Winner)
			fmt.Fprintf(w, "%s\n%s\n", res.Verdict.Reason, res.Verdict.Summary)
			return nil
		},
	}
}

func printItem(w io.Writer, label string, it comparison.Item) {
	printRule(w)
	fmt.Fprintf(w, "%s: %s\n", label, it.Video.Title)
	fmt.Fprintf(w, "Views: %s  Likes: %s  Comments: %s\n",
		formatCount(it.Counters.Views), formatCount(it.Counters.Likes), formatCount(it.Counters.Comments))
	fmt.Fprintf(w, "Engagement rate: %.2f%%  Score: %.2f/100\n", it.Metrics.EngagementRate, it.Score.Composite)
	printList(w, "Pros", it.Pros)
	printList(w, "Cons", it.Cons)
}
