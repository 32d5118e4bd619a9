// Package main is the entry point for the homebrew API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homebrew-api",
	Short: "Homebrew balance API server",
	Long:  `Homebrew API scores D&D 5e homebrew content for balance and checks characters for rule compliance.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
