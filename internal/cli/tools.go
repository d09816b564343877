package cli

import (
	"fmt"
	"io"

	"insight-srv/internal/catalog"
	"insight-srv/internal/model"

	"github.com/spf13/cobra"
)

func newToolsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "AI tool catalog commands",
		Long:  "Search, list and get recommendations from the AI tool catalog",
	}
	cmd.AddCommand(newToolsSearchCmd(a), newToolsPopularCmd(a), newToolsRecommendCmd(a))
	return cmd
}

func newToolsSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search tools",
		Long:  "Search by name, description, tags and use cases, or filter by category or pricing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			pricing, _ := cmd.Flags().GetString("pricing")

			var tools []model.Tool
			switch {
			case len(args) == 1:
				tools = a.catalogUC.SearchTools(args[0])
			case category != "":
				tools = a.catalogUC.ToolsByCategory(category)
			case pricing != "":
				tools = a.catalogUC.ToolsByPricing(pricing)
			default:
				tools = a.catalogUC.SearchTools("")
			}
			return a.printTools(cmd.OutOrStdout(), tools)
		},
	}
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().String("pricing", "", "Filter by pricing (Free, Freemium, Paid)")
	return cmd
}

func newToolsPopularCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "popular",
		Short: "Highest rated tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printTools(cmd.OutOrStdout(), a.catalogUC.PopularTools())
		},
	}
}

func newToolsRecommendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend tools for a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g catalog.Goal
			g.Domain, _ = cmd.Flags().GetString("domain")
			g.Goal, _ = cmd.Flags().GetString("goal")
			g.Experience, _ = cmd.Flags().GetString("experience")
			g.Budget, _ = cmd.Flags().GetString("budget")

			return a.printTools(cmd.OutOrStdout(), a.catalogUC.RecommendTools(g))
		},
	}
	cmd.Flags().String("domain", "", "Field you work in, e.g. design")
	cmd.Flags().String("goal", "", "What you want to achieve")
	cmd.Flags().String("experience", catalog.ExperienceBeginner, "Beginner, Intermediate or Expert")
	cmd.Flags().String("budget", catalog.BudgetFree, "Free, Low, Medium or High")
	return cmd
}

func (a *app) printTools(w io.Writer, tools []model.Tool) error {
	if a.jsonOutput() {
		return printJSON(w, tools)
	}

	fmt.Fprintf(w, "\nFound %d tools:\n\n", len(tools))
	for i, t := range tools {
		fmt.Fprintf(w, "%d. %s (%s, %.1f)\n", i+1, t.Name, t.Pricing, t.Rating)
		fmt.Fprintf(w, "   %s\n", t.Description)
		fmt.Fprintf(w, "   %s\n\n", t.URL)
	}
	return nil
}
