// Package main provides the CLI entry point for claims-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Joud-BaniIssa/claims-go/cmd/claims/commands"
)

var version = "1.2.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "claims",
	Short: "Insurance claims client",
	Long: `Claims is a command-line client for the insurance claims API.

It provides:
  - Listing, filtering and searching claims
  - Claim submission and detail lookup
  - Dashboard aggregates over the loaded claims
  - Emergency flagging
  - Durable claim drafts`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.CreateCmd)
	rootCmd.AddCommand(commands.SearchCmd)
	rootCmd.AddCommand(commands.SummaryCmd)
	rootCmd.AddCommand(commands.EmergencyCmd)
	rootCmd.AddCommand(commands.DraftCmd)
}
