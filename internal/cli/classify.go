package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Classify comment text",
		Long:  "Report spam, sentiment and emotion score for each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.classifierUC.ClassifyBatch(args)
			w := cmd.OutOrStdout()

			if a.jsonOutput() {
				return printJSON(w, out)
			}

			for i, r := range out.Results {
				fmt.Fprintf(w, "%d. %s\n", i+1, strings.TrimSpace(args[i]))
				fmt.Fprintf(w, "   sentiment: %s  spam: %t  emotion: %.2f\n", r.Sentiment, r.IsSpam, r.EmotionScore)
			}
			if out.Total > 1 {
				fmt.Fprintf(w, "\n%d texts: %d positive, %d negative, %d neutral, %d spam\n",
					out.Total, out.Positive, out.Negative, out.Neutral, out.Spam)
			}
			return nil
		},
	}
}
