// Package main provides the resume_tailor CLI: extract a résumé, parse a
// job posting, and render a tailored résumé document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Tailor a résumé to a job posting",
	Long:  "resume_tailor extracts structured data from a résumé document, parses a job description, rewrites the résumé to match the posting, and renders the result as DOCX or PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
