package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

var showJSON bool

// ShowCmd fetches one claim by ID.
var ShowCmd = &cobra.Command{
	Use:   "show <claim-id>",
	Short: "Show one claim",
	Long:  `Fetch a single claim by ID and print its full record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		app.Dispatch(claimsapp.LoadClaimDetails{ClaimID: args[0]})
		s, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Loading })
		if err != nil {
			return err
		}
		if s.ActiveClaim == nil {
			return fmt.Errorf("claim %s not found", args[0])
		}

		if showJSON {
			encoded, err := json.MarshalIndent(s.ActiveClaim, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		}

		printClaimDetail(s.ActiveClaim)
		return nil
	},
}

func init() {
	ShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print the raw record as JSON")
}

func printClaimDetail(c *claimsapp.Claim) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Claim:\t%s (%s)\n", c.ClaimNumber, c.ID)
	fmt.Fprintf(w, "Policy:\t%s\n", c.PolicyNumber)
	fmt.Fprintf(w, "Status:\t%s\n", c.Status)
	fmt.Fprintf(w, "Type:\t%s\n", c.Type)
	fmt.Fprintf(w, "Reported:\t%s\n", c.DateReported.Format("2006-01-02"))
	fmt.Fprintf(w, "Incident:\t%s\n", c.DateOfIncident.Format("2006-01-02"))
	fmt.Fprintf(w, "Location:\t%s, %s %s\n", c.Location.Address, c.Location.City, c.Location.State)
	fmt.Fprintf(w, "Estimated:\t%.2f\n", c.EstimatedDamageValue())
	fmt.Fprintf(w, "Approved:\t%.2f\n", c.ApprovedAmountValue())
	fmt.Fprintf(w, "Deductible:\t%.2f\n", c.Deductible)
	fmt.Fprintf(w, "Emergency:\t%v\n", c.EmergencyFlag)
	if c.AssignedAdjuster != nil {
		fmt.Fprintf(w, "Adjuster:\t%s (%s)\n", c.AssignedAdjuster.Name, c.AssignedAdjuster.Email)
	}
	fmt.Fprintf(w, "Description:\t%s\n", c.Description)
	fmt.Fprintf(w, "Documents:\t%d\n", len(c.Documents))
	fmt.Fprintf(w, "Photos:\t%d\n", len(c.Photos))
	w.Flush()

	if len(c.Timeline) > 0 {
		fmt.Println("\nTimeline:")
		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, ev := range c.Timeline {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", ev.Timestamp.Format("2006-01-02 15:04"), ev.Type, ev.Description)
		}
		tw.Flush()
	}
}
