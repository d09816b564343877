package cli

import (
	"fmt"
	"io"

	"insight-srv/internal/catalog"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"

	"github.com/spf13/cobra"
)

func newCoursesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Course catalog commands",
		Long:  "Search courses and get recommendations for your interests",
	}
	cmd.AddCommand(newCoursesSearchCmd(a), newCoursesRecommendCmd(a))
	return cmd
}

func newCoursesSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search courses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var q catalog.CourseQuery
			if len(args) == 1 {
				q.Query = args[0]
			}
			q.Category, _ = cmd.Flags().GetString("category")
			q.Difficulty, _ = cmd.Flags().GetString("difficulty")
			q.Price, _ = cmd.Flags().GetString("price")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			q.Paginate = paginator.PaginateQuery{Page: page, Limit: limit}

			out := a.catalogUC.SearchCourses(q)
			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(w, out)
			}

			pg := out.Paginator.ToResponse()
			fmt.Fprintf(w, "\nFound %d courses (page %d of %d):\n\n", pg.Total, pg.CurrentPage, pg.TotalPages)
			printCourses(w, out.Courses)
			return nil
		},
	}
	cmd.Flags().String("category", catalog.FilterAll, "Filter by category")
	cmd.Flags().String("difficulty", catalog.FilterAll, "Beginner, Intermediate or Advanced")
	cmd.Flags().String("price", catalog.FilterAll, "Free, Paid or Freemium")
	cmd.Flags().Int("page", paginator.DefaultPage, "Page number")
	cmd.Flags().Int("limit", paginator.DefaultLimit, "Courses per page")
	return cmd
}

func newCoursesRecommendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend courses for your interests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interests, _ := cmd.Flags().GetStringSlice("interest")

			courses := a.catalogUC.RecommendCourses(interests)
			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(w, courses)
			}

			fmt.Fprintf(w, "\nRecommended %d courses:\n\n", len(courses))
			printCourses(w, courses)
			return nil
		},
	}
	cmd.Flags().StringSlice("interest", nil, "Interest, repeatable or comma separated")
	return cmd
}

func printCourses(w io.Writer, courses []model.Course) {
	for i, c := range courses {
		fmt.Fprintf(w, "%d. %s by %s (%s, %s, %.1f)\n", i+1, c.Title, c.Provider, c.Difficulty, c.Price, c.Rating)
		if c.HasCertificate {
			fmt.Fprintf(w, "   Certificate included\n")
		}
		fmt.Fprintf(w, "   %s\n\n", c.URL)
	}
}
