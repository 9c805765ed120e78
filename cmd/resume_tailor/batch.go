package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-tailor/internal/batch"
	"resume-tailor/internal/pipeline"
	"resume-tailor/internal/rendering"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Tailor every résumé in a directory against every job posting in another",
	Long: `Runs the full pipeline for every résumé/job combination found in the two
directories. Combinations are independent: a failure in one never stops the
rest, and each outcome is reported individually.`,
	RunE: runBatchCmd,
}

var (
	batchCVsDir         string
	batchJobsDir        string
	batchOutputDir      string
	batchFormat         string
	batchProvider       string
	batchAPIKey         string
	batchConcurrency    int
	batchReport         bool
	batchSaveExtraction bool
	batchVerbose        bool
)

// Extensions accepted when scanning the input directories.
var (
	resumeExtensions = []string{".pdf", ".docx", ".doc"}
	jobExtensions    = []string{".txt", ".md"}
)

func init() {
	batchCommand.Flags().StringVar(&batchCVsDir, "cvs-dir", "cvs", "Directory containing résumé documents")
	batchCommand.Flags().StringVar(&batchJobsDir, "jobs-dir", "jobs", "Directory containing job description text files")
	batchCommand.Flags().StringVar(&batchOutputDir, "output-dir", "batch_output", "Directory for tailored documents and the report")
	batchCommand.Flags().StringVarP(&batchFormat, "format", "f", "docx", "Output format: docx or pdf")
	batchCommand.Flags().StringVar(&batchProvider, "provider", "groq", "Model provider: groq or gemini")
	batchCommand.Flags().StringVarP(&batchAPIKey, "api-key", "k", "", "Provider API key (optional, defaults to GROQ_API_KEY / GEMINI_API_KEY)")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 1, "Number of combinations processed in parallel (1-16)")
	batchCommand.Flags().BoolVar(&batchReport, "report", true, "Write a detailed batch_report_{timestamp}.txt into the output directory")
	batchCommand.Flags().BoolVar(&batchSaveExtraction, "save-extraction", false, "Persist raw extraction JSON alongside each output")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print each combination as it finishes")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	format, err := rendering.ParseFormat(batchFormat)
	if err != nil {
		return err
	}
	if batchConcurrency < 1 || batchConcurrency > 16 {
		return fmt.Errorf("--concurrency must be between 1 and 16, got %d", batchConcurrency)
	}

	resumes := batch.FindFiles(batchCVsDir, resumeExtensions)
	jobs := batch.FindFiles(batchJobsDir, jobExtensions)
	if len(resumes) == 0 {
		return fmt.Errorf("no resume files (%v) found in %s", resumeExtensions, batchCVsDir)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no job files (%v) found in %s", jobExtensions, batchJobsDir)
	}

	apiKey, err := resolveAPIKey(batchProvider, batchAPIKey)
	if err != nil {
		return failWithHint(err)
	}
	client, err := newClient(ctx, batchProvider, apiKey)
	if err != nil {
		return failWithHint(err)
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Processing %d resume(s) x %d job(s) = %d combination(s)\n",
		len(resumes), len(jobs), len(resumes)*len(jobs))

	runner := batch.NewRunner(pipeline.New(client))
	report, err := runner.Run(ctx, batch.Options{
		ResumePaths:    resumes,
		JobPaths:       jobs,
		OutputDir:      batchOutputDir,
		Format:         format,
		Concurrency:    batchConcurrency,
		SaveExtraction: batchSaveExtraction,
		OnResult:       printCombination,
	})
	if err != nil {
		return failWithHint(err)
	}

	fmt.Printf("\nDone: %d succeeded, %d failed, %d exception(s) out of %d\n",
		report.Summary.Success, report.Summary.Failed, report.Summary.Exception, report.Summary.Total)

	if batchReport {
		path, err := batch.WriteReport(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write report: %v\n", err)
		} else {
			fmt.Printf("Report written: %s\n", path)
		}
	}

	if report.Summary.Success == 0 {
		return fmt.Errorf("all %d combinations failed", report.Summary.Total)
	}
	return nil
}

// printCombination reports one finished combination. Called from worker
// goroutines; fmt's single-call writes keep lines intact.
func printCombination(result batch.CombinationResult) {
	cv := filepath.Base(result.ResumePath)
	job := filepath.Base(result.JobPath)

	switch result.Outcome {
	case batch.OutcomeSuccess:
		fmt.Printf("  [ok] %s x %s -> %s\n", cv, job, filepath.Base(result.OutputPath))
	case batch.OutcomeFailed:
		fmt.Printf("  [failed] %s x %s: %s (stage: %s)\n", cv, job, result.Error, result.FailedStage)
	default:
		fmt.Printf("  [exception] %s x %s: %s\n", cv, job, result.Error)
	}
	if batchVerbose && result.Outcome == batch.OutcomeSuccess {
		fmt.Printf("        %s -> %s at %s\n", result.CandidateName, result.JobTitle, result.CompanyName)
	}
}
