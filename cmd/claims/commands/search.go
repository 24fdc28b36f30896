package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// SearchCmd runs a free-text search.
var SearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search claims",
	Long:  `Search claims by free text over claim numbers, descriptions and addresses.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := commandContext()
		defer cancel()

		app.Dispatch(claimsapp.SearchClaims{SearchTerm: args[0]})
		s, err := settle(ctx, app, func(s claimsapp.State) bool { return s.Loading })
		if err != nil {
			return err
		}

		if len(s.Claims) == 0 {
			fmt.Printf("No claims match %q\n", args[0])
			return nil
		}
		printClaims(s.Claims)
		fmt.Printf("\n%d matching claims\n", s.Total)
		return nil
	},
}
