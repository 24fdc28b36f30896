package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// Draft flags
var (
	draftType         string
	draftDescription  string
	draftIncidentDate string
	draftIncidentTime string
	draftAddress      string
	draftCity         string
	draftState        string
	draftZip          string
)

// DraftCmd is the parent command for claim draft operations.
var DraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the claim draft",
	Long: `Commands for the durable claim draft.

The draft holds a partially filled claim form between sessions. Saving
merges the given fields into the stored draft; untouched fields keep
their previous values.`,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Merge fields into the draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		patch := &claimsapp.ClaimDraft{}
		if draftType != "" {
			t := claimsapp.ClaimType(draftType)
			patch.ClaimType = &t
		}
		if draftDescription != "" {
			patch.Description = &draftDescription
		}
		if draftIncidentDate != "" {
			date, err := time.Parse("2006-01-02", draftIncidentDate)
			if err != nil {
				return fmt.Errorf("invalid --incident-date %q: use YYYY-MM-DD", draftIncidentDate)
			}
			patch.IncidentDate = &date
		}
		if draftIncidentTime != "" {
			patch.IncidentTime = &draftIncidentTime
		}
		if draftAddress != "" || draftCity != "" || draftState != "" || draftZip != "" {
			patch.Location = &claimsapp.Location{
				Address: draftAddress,
				City:    draftCity,
				State:   draftState,
				ZipCode: draftZip,
				Country: "US",
			}
		}

		// Rehydrate first so the merge lands on the stored draft.
		app.Dispatch(claimsapp.LoadDraft{})
		waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		app.WaitFor(waitCtx, func(s claimsapp.State) bool { return s.Draft != nil })
		cancel()

		app.Dispatch(claimsapp.SaveDraft{Draft: patch})

		// Autosave is debounced; wait out the quiet interval before exit.
		time.Sleep(claimsapp.DraftSettleDelay)
		fmt.Println("Draft saved")
		return nil
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.Dispatch(claimsapp.LoadDraft{})
		waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		s, _ := app.WaitFor(waitCtx, func(s claimsapp.State) bool { return s.Draft != nil })
		cancel()

		if s.Draft == nil {
			fmt.Println("No draft saved")
			return nil
		}
		encoded, err := json.MarshalIndent(s.Draft, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the stored draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.Dispatch(claimsapp.ClearDraft{})
		time.Sleep(claimsapp.DraftSettleDelay)
		fmt.Println("Draft cleared")
		return nil
	},
}

func init() {
	draftSaveCmd.Flags().StringVar(&draftType, "type", "", "Claim type")
	draftSaveCmd.Flags().StringVar(&draftDescription, "description", "", "Incident description")
	draftSaveCmd.Flags().StringVar(&draftIncidentDate, "incident-date", "", "Incident date (YYYY-MM-DD)")
	draftSaveCmd.Flags().StringVar(&draftIncidentTime, "incident-time", "", "Incident time (HH:MM)")
	draftSaveCmd.Flags().StringVar(&draftAddress, "address", "", "Incident street address")
	draftSaveCmd.Flags().StringVar(&draftCity, "city", "", "Incident city")
	draftSaveCmd.Flags().StringVar(&draftState, "state", "", "Incident state")
	draftSaveCmd.Flags().StringVar(&draftZip, "zip", "", "Incident ZIP code")

	DraftCmd.AddCommand(draftSaveCmd)
	DraftCmd.AddCommand(draftShowCmd)
	DraftCmd.AddCommand(draftClearCmd)
}
