package cli

import (
	"fmt"

	"insight-srv/internal/analytics"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze one video",
		Long:  "Fetch statistics and comments of a video, classify the comments and report engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxComments, _ := cmd.Flags().GetInt("max-comments")

			out, err := a.analyticsUC.AnalyzeVideo(cmd.Context(), analytics.AnalyzeInput{
				URL:         args[0],
				MaxComments: maxComments,
			})
			if err != nil {
				return fmt.Errorf("analyze failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(w, out)
			}

			in := out.Insights
			fmt.Fprintf(w, "%s\n", out.Video.Title)
			fmt.Fprintf(w, "Channel: %s  Duration: %s\n", out.Video.ChannelTitle, in.Duration)
			printRule(w)
			fmt.Fprintf(w, "Views: %s  Likes: %s  Comments: %s\n", in.Views, in.Likes, in.Comments)
			fmt.Fprintf(w, "Engagement rate: %.2f%%\n", out.Metrics.EngagementRate)
			fmt.Fprintf(w, "Sentiment: %s (average %.2f)\n", in.SentimentLabel, out.Metrics.AverageSentiment)
			fmt.Fprintf(w, "Community health: %.1f/10\n", in.CommunityHealth)
			fmt.Fprintf(w, "Analyzed %d comments: %.1f%% positive, %.1f%% negative, %.1f%% spam\n",
				out.Metrics.TotalComments, in.PositiveShare, in.NegativeShare, in.SpamShare)
			return nil
		},
	}
	cmd.Flags().Int("max-comments", 0, "Comments to analyze (0 uses youtube.max_comments)")
	return cmd
}
