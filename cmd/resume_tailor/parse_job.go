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

	"resume-tailor/internal/ingestion"
	"resume-tailor/internal/mapping"
	"resume-tailor/internal/observability"
	"resume-tailor/internal/parsing"
	"resume-tailor/internal/types"
)

var parseJobCommand = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into structured JSON",
	Long: `Reads a job description text file, strips any HTML, and extracts the
structured posting (title, company, skills, responsibilities) as JSON on
stdout, optionally saved as {company}_{title}_{timestamp}.json.`,
	RunE: runParseJobCmd,
}

var (
	parseJobFile      string
	parseJobSave      bool
	parseJobOutputDir string
	parseJobProvider  string
	parseJobAPIKey    string
	parseJobVerbose   bool
)

func init() {
	parseJobCommand.Flags().StringVarP(&parseJobFile, "job", "j", "", "Path to job description text file")
	parseJobCommand.Flags().BoolVar(&parseJobSave, "save", false, "Save the parsed JSON into the output directory")
	parseJobCommand.Flags().StringVar(&parseJobOutputDir, "output-dir", "parsed_jobs", "Directory for saved results (with --save)")
	parseJobCommand.Flags().StringVar(&parseJobProvider, "provider", "groq", "Model provider: groq or gemini")
	parseJobCommand.Flags().StringVarP(&parseJobAPIKey, "api-key", "k", "", "Provider API key (optional, defaults to GROQ_API_KEY / GEMINI_API_KEY)")
	parseJobCommand.Flags().BoolVarP(&parseJobVerbose, "verbose", "v", false, "Print the parsed posting summary")

	_ = parseJobCommand.MarkFlagRequired("job")
	rootCmd.AddCommand(parseJobCommand)
}

func runParseJobCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobText, err := ingestion.ReadJobText(parseJobFile)
	if err != nil {
		return failWithHint(err)
	}

	apiKey, err := resolveAPIKey(parseJobProvider, parseJobAPIKey)
	if err != nil {
		return failWithHint(err)
	}
	client, err := newClient(ctx, parseJobProvider, apiKey)
	if err != nil {
		return failWithHint(err)
	}
	defer func() { _ = client.Close() }()

	env := parsing.New(client).Parse(ctx, jobText)
	if !env.Success {
		return failWithHint(env.Err)
	}
	job := mapping.MapJob(env.Data)

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode job posting: %w", err)
	}
	fmt.Println(string(data))

	if parseJobSave {
		path, err := saveParsedJob(job, data, parseJobOutputDir)
		if err != nil {
			return err
		}
		fmt.Printf("Parsed job written: %s\n", path)
	}

	if parseJobVerbose {
		observability.NewPrinter(os.Stdout).PrintJob(job)
	}
	return nil
}

// saveParsedJob writes the posting as {company}_{title}_{timestamp}.json,
// with both parts reduced to filename-safe characters.
func saveParsedJob(job *types.JobRecord, data []byte, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	title := safeFilename(job.JobTitle, "job")
	company := safeFilename(job.CompanyName, "company")
	name := fmt.Sprintf("%s_%s_%s.json", company, title, time.Now().Format("20060102_150405"))

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// safeFilename keeps letters, digits, spaces, hyphens and underscores.
func safeFilename(s, fallback string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(sb.String())
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
