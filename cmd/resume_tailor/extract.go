package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resume-tailor/internal/extraction"
	"resume-tailor/internal/ingestion"
	"resume-tailor/internal/mapping"
	"resume-tailor/internal/observability"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured data from a résumé document",
	Long: `Converts a résumé document to text and extracts structured JSON from it,
without parsing a job or tailoring. Useful for checking what the model sees
before running the full pipeline.`,
	RunE: runExtractCmd,
}

var (
	extractResume    string
	extractOutput    string
	extractProvider  string
	extractAPIKey    string
	extractTextOnly  bool
	extractShowBoxes bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to résumé document (.pdf, .docx, or .doc)")
	extractCommand.Flags().StringVarP(&extractOutput, "output", "o", "", "Path for the extraction JSON (default: {resume}_extracted_{timestamp}.json)")
	extractCommand.Flags().StringVar(&extractProvider, "provider", "groq", "Model provider: groq or gemini")
	extractCommand.Flags().StringVarP(&extractAPIKey, "api-key", "k", "", "Provider API key (optional, defaults to GROQ_API_KEY / GEMINI_API_KEY)")
	extractCommand.Flags().BoolVar(&extractTextOnly, "text-only", false, "Print the converted plain text and stop before the model call")
	extractCommand.Flags().BoolVarP(&extractShowBoxes, "verbose", "v", false, "Print the extracted résumé summary")

	_ = extractCommand.MarkFlagRequired("resume")
	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	doc, err := ingestion.ExtractFromFile(extractResume)
	if err != nil {
		return failWithHint(err)
	}
	fmt.Printf("Converted %s via %s (%d chars)\n",
		filepath.Base(extractResume), doc.Metadata.Extractor, doc.Metadata.TextLength)

	if extractTextOnly {
		fmt.Println(doc.Text)
		return nil
	}

	apiKey, err := resolveAPIKey(extractProvider, extractAPIKey)
	if err != nil {
		return failWithHint(err)
	}
	client, err := newClient(ctx, extractProvider, apiKey)
	if err != nil {
		return failWithHint(err)
	}
	defer func() { _ = client.Close() }()

	env := extraction.New(client).Extract(ctx, doc.Text)
	if !env.Success {
		return failWithHint(env.Err)
	}

	data, err := json.MarshalIndent(env.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode extraction: %w", err)
	}

	outputPath := extractOutput
	if outputPath == "" {
		base := filepath.Base(extractResume)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputPath = fmt.Sprintf("%s_extracted_%s.json", stem, time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Printf("Extraction written: %s\n", outputPath)

	if extractShowBoxes {
		observability.NewPrinter(os.Stdout).PrintResume(mapping.MapResume(env.Data))
	}
	return nil
}
