// Package main implements the outreach_agent CLI for company intelligence
// extraction and outreach drafting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outreach_agent",
	Short: "Company intelligence extraction for job outreach",
	Long:  "Outreach Agent resolves a company website into a structured profile (about, careers, news, and team pages with ranked contacts and job listings) and drafts grounded outreach messages from it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
