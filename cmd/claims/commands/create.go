package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// Create flags
var (
	createType         string
	createDescription  string
	createIncidentDate string
	createIncidentTime string
	createAddress      string
	createCity         string
	createState        string
	createZip          string
	createPoliceReport string
	createEmergency    bool
	createInjuries     bool
	createFromDraft    bool
)

// CreateCmd submits a new claim.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new claim",
	Long: `Submit a new claim to the API.

With --from-draft the saved draft is loaded first and flag values are
applied on top of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		form := claimsapp.ClaimInitiationForm{
			ClaimType:          claimsapp.ClaimType(createType),
			Description:        createDescription,
			IncidentTime:       createIncidentTime,
			PoliceReportFiled:  createPoliceReport != "",
			PoliceReportNumber: createPoliceReport,
			EmergencyServices:  createEmergency,
			Injuries:           createInjuries,
			Location: claimsapp.Location{
				Address: createAddress,
				City:    createCity,
				State:   createState,
				ZipCode: createZip,
				Country: "US",
			},
		}

		if createIncidentDate != "" {
			date, err := time.Parse("2006-01-02", createIncidentDate)
			if err != nil {
				return fmt.Errorf("invalid --incident-date %q: use YYYY-MM-DD", createIncidentDate)
			}
			form.IncidentDate = date
		}

		if createFromDraft {
			app.Dispatch(claimsapp.LoadDraft{})
			// The draft rehydrates asynchronously; give it a moment.
			draftCtx, draftCancel := context.WithTimeout(ctx, 2*time.Second)
			app.WaitFor(draftCtx, func(s claimsapp.State) bool { return s.Draft != nil })
			draftCancel()
			applyDraft(&form, app)
		}

		app.Dispatch(claimsapp.CreateClaim{Form: form})
		s, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Submitting })
		if err != nil {
			return err
		}

		if len(s.Claims) == 0 {
			return fmt.Errorf("submission produced no claim")
		}
		fmt.Printf("Claim %s submitted\n", s.Claims[0].ClaimNumber)

		app.Dispatch(claimsapp.ClearDraft{})
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createType, "type", "other", "Claim type")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "Incident description")
	CreateCmd.Flags().StringVar(&createIncidentDate, "incident-date", "", "Incident date (YYYY-MM-DD)")
	CreateCmd.Flags().StringVar(&createIncidentTime, "incident-time", "", "Incident time (HH:MM)")
	CreateCmd.Flags().StringVar(&createAddress, "address", "", "Incident street address")
	CreateCmd.Flags().StringVar(&createCity, "city", "", "Incident city")
	CreateCmd.Flags().StringVar(&createState, "state", "", "Incident state")
	CreateCmd.Flags().StringVar(&createZip, "zip", "", "Incident ZIP code")
	CreateCmd.Flags().StringVar(&createPoliceReport, "police-report", "", "Police report number")
	CreateCmd.Flags().BoolVar(&createEmergency, "emergency-services", false, "Emergency services were involved")
	CreateCmd.Flags().BoolVar(&createInjuries, "injuries", false, "Injuries occurred")
	CreateCmd.Flags().BoolVar(&createFromDraft, "from-draft", false, "Prefill from the saved draft")
}

// applyDraft fills unset form fields from the rehydrated draft. Flags win
// over draft values.
func applyDraft(form *claimsapp.ClaimInitiationForm, app *claimsapp.App) {
	draft := app.State().Draft
	if draft == nil {
		return
	}

	if form.IncidentDate.IsZero() && draft.IncidentDate != nil {
		form.IncidentDate = *draft.IncidentDate
	}
	if form.IncidentTime == "" && draft.IncidentTime != nil {
		form.IncidentTime = *draft.IncidentTime
	}
	if form.Description == "" && draft.Description != nil {
		form.Description = *draft.Description
	}
	if form.ClaimType == "other" && draft.ClaimType != nil {
		form.ClaimType = *draft.ClaimType
	}
	if form.Location.Address == "" && draft.Location != nil {
		form.Location = *draft.Location
	}
	if draft.PoliceReportFiled != nil && !form.PoliceReportFiled {
		form.PoliceReportFiled = *draft.PoliceReportFiled
	}
	if draft.PoliceReportNumber != nil && form.PoliceReportNumber == "" {
		form.PoliceReportNumber = *draft.PoliceReportNumber
	}
	if draft.Injuries != nil && !form.Injuries {
		form.Injuries = *draft.Injuries
	}
	if draft.InjuryDescription != nil {
		form.InjuryDescription = *draft.InjuryDescription
	}
	if draft.OtherDriverInfo != nil {
		form.OtherDriverInfo = draft.OtherDriverInfo
		form.OtherVehiclesInvolved = true
	}
	if draft.WitnessInfo != nil {
		form.WitnessInfo = draft.WitnessInfo
	}
}
