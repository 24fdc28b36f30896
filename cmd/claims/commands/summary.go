package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// SummaryCmd prints dashboard aggregates over the loaded claims.
var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show claim aggregates",
	Long:  `Load claims and print dashboard aggregates: counts, totals and the approval rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		app.Dispatch(claimsapp.LoadClaims{Refresh: true})
		if _, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Loading }); err != nil {
			return err
		}

		summary := app.Summary()

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "Total claims:\t%d\n", summary.TotalClaims)
		fmt.Fprintf(w, "Pending:\t%d\n", summary.PendingClaims)
		fmt.Fprintf(w, "Active:\t%d\n", summary.ActiveClaims)
		fmt.Fprintf(w, "Emergencies:\t%d\n", summary.EmergencyClaims)
		fmt.Fprintf(w, "Total estimated damage:\t%.2f\n", summary.TotalEstimatedDamage)
		fmt.Fprintf(w, "Total approved amount:\t%.2f\n", summary.TotalApprovedAmount)
		fmt.Fprintf(w, "Average processing time:\t%d days\n", summary.AverageProcessingTime)
		fmt.Fprintf(w, "Approval rate:\t%d%%\n", summary.ApprovalRate)
		w.Flush()

		recent := app.RecentClaims()
		if len(recent) > 0 {
			fmt.Println("\nRecent claims:")
			printClaims(recent)
		}
		return nil
	},
}
