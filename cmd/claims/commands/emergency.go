package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// EmergencyCmd flags a claim as an emergency.
var EmergencyCmd = &cobra.Command{
	Use:   "emergency <claim-id>",
	Short: "Flag a claim as an emergency",
	Long:  `Mark an existing claim as an emergency for prioritized handling.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		app.Dispatch(claimsapp.FlagAsEmergency{ClaimID: args[0]})
		if _, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Loading }); err != nil {
			return err
		}

		fmt.Printf("Claim %s flagged as emergency\n", args[0])
		return nil
	},
}
