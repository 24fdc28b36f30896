package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// List flags
var (
	listPage      int
	listStatus    string
	listType      string
	listSortBy    string
	listSortOrder string
	listAll       bool
)

// ListCmd lists claims from the API.
var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List claims",
	Long:    `List claims from the API with optional filtering and sorting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		filters := claimsapp.ClaimFilters{
			SortBy:    claimsapp.SortField(listSortBy),
			SortOrder: claimsapp.SortOrder(listSortOrder),
		}
		for _, s := range splitCSV(listStatus) {
			filters.Status = append(filters.Status, claimsapp.ClaimStatus(s))
		}
		for _, t := range splitCSV(listType) {
			filters.Type = append(filters.Type, claimsapp.ClaimType(t))
		}

		app.Dispatch(claimsapp.LoadClaims{Filters: &filters, Page: listPage})
		s, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Loading })
		if err != nil {
			return err
		}

		for listAll && s.HasMore {
			app.Dispatch(claimsapp.LoadMoreClaims{})
			s, err = settle(ctx, app, func(s claimsapp.State) bool { return s.Loading })
			if err != nil {
				return err
			}
		}

		printClaims(s.Claims)
		fmt.Printf("\nPage %d, %d of %d claims loaded\n", s.Page, len(s.Claims), s.Total)
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVar(&listPage, "page", 1, "Page to fetch")
	ListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (comma-separated)")
	ListCmd.Flags().StringVar(&listType, "type", "", "Filter by claim type (comma-separated)")
	ListCmd.Flags().StringVar(&listSortBy, "sort-by", "", "Sort field (dateReported, dateOfIncident, estimatedDamage, status)")
	ListCmd.Flags().StringVar(&listSortOrder, "sort-order", "", "Sort order (asc, desc)")
	ListCmd.Flags().BoolVar(&listAll, "all", false, "Follow pagination until every page is loaded")
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printClaims(list []*claimsapp.Claim) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CLAIM\tSTATUS\tTYPE\tREPORTED\tESTIMATED\tDESCRIPTION")
	for _, c := range list {
		marker := ""
		if c.EmergencyFlag {
			marker = " !"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%.2f\t%s\n",
			c.ClaimNumber, marker, c.Status, c.Type,
			c.DateReported.Format("2006-01-02"),
			c.EstimatedDamageValue(),
			truncate(c.Description, 48))
	}
	w.Flush()
}

// truncate shortens s to max display characters, never splitting a rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
