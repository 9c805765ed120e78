package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-tailor/internal/config"
	"resume-tailor/internal/errs"
	"resume-tailor/internal/observability"
	"resume-tailor/internal/pipeline"
	"resume-tailor/internal/rendering"
)

var tailorCommand = &cobra.Command{
	Use:   "tailor",
	Short: "Run the full tailoring pipeline for one résumé and one job",
	Long: `Runs the pipeline end-to-end: document conversion -> résumé extraction -> job parsing -> tailoring -> rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath     string
	tailorResume         string
	tailorJob            string
	tailorOutput         string
	tailorOutputDir      string
	tailorFormat         string
	tailorProvider       string
	tailorAPIKey         string
	tailorVerbose        bool
	tailorSaveExtraction bool
)

func init() {
	// Config file flag (processed first)
	tailorCommand.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	tailorCommand.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to résumé document (.pdf, .docx, or .doc)")
	tailorCommand.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description text file")
	tailorCommand.Flags().StringVarP(&tailorOutput, "output", "o", "", "Output filename without extension (derived from inputs when empty)")
	tailorCommand.Flags().StringVar(&tailorOutputDir, "output-dir", "", "Directory for output files (default: current directory)")
	tailorCommand.Flags().StringVarP(&tailorFormat, "format", "f", "", "Output format: docx or pdf (default: docx)")
	tailorCommand.Flags().StringVar(&tailorProvider, "provider", "", "Model provider: groq or gemini (default: groq)")
	tailorCommand.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress information")
	tailorCommand.Flags().BoolVar(&tailorSaveExtraction, "save-extraction", false, "Persist the raw extraction JSON next to the output")

	// API key can be passed as a flag, or read from the provider's env var
	tailorCommand.Flags().StringVarP(&tailorAPIKey, "api-key", "k", "", "Provider API key (optional, defaults to GROQ_API_KEY / GEMINI_API_KEY)")

	rootCmd.AddCommand(tailorCommand)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadTailorConfig(cmd, tailorConfigPath)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	format, err := rendering.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cfg.Provider, cfg.APIKey)
	if err != nil {
		return failWithHint(err)
	}

	client, err := newClient(ctx, cfg.Provider, apiKey)
	if err != nil {
		return failWithHint(err)
	}
	defer func() { _ = client.Close() }()

	opts := pipeline.RunOptions{
		ResumePath:     cfg.Resume,
		JobPath:        cfg.Job,
		OutputName:     cfg.Output,
		OutputDir:      cfg.OutputDir,
		Format:         format,
		SaveExtraction: tailorSaveExtraction,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", event.Stage, event.Message)
		}
	}

	result, err := pipeline.New(client).Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline failed at %s: %v\n", result.FailedStage, err)
		return failWithHint(err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(result.Resume)
		printer.PrintJob(result.Job)
		printer.PrintSchemaWarnings(result.Warnings)
		printer.PrintResult(result.Render, result.CandidateName, result.JobTitle, result.CompanyName)
		return nil
	}

	fmt.Printf("Tailored resume written: %s (%.1f KB)\n", result.OutputPath, result.Render.FileSizeKB)
	fmt.Printf("Candidate: %s\n", result.CandidateName)
	fmt.Printf("Target: %s at %s\n", result.JobTitle, result.CompanyName)
	return nil
}

// loadTailorConfig loads the optional config file, applies explicit flag
// overrides, fills defaults, and validates the result.
func loadTailorConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = tailorResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = tailorJob
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = tailorOutput
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = tailorOutputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = tailorFormat
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = tailorProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = tailorAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = tailorVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Format:      "docx",
		Provider:    "groq",
		Concurrency: 1,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// failWithHint appends the taxonomy's remediation hint to an error so the
// one-line CLI summary tells the user what to do next.
func failWithHint(err error) error {
	if hint := errs.Hint(errs.TagOf(err)); hint != "" {
		return fmt.Errorf("%w (hint: %s)", err, hint)
	}
	return err
}
