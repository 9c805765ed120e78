package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteReport saves the detailed batch report as
// batch_report_{timestamp}.txt in the report's output directory and
// returns its path.
func WriteReport(report *Report) (string, error) {
	path := filepath.Join(report.OutputDir,
		fmt.Sprintf("batch_report_%s.txt", report.FinishedAt.Format("20060102_150405")))

	if err := os.WriteFile(path, []byte(FormatReport(report)), 0644); err != nil {
		return "", fmt.Errorf("failed to write batch report %s: %w", path, err)
	}
	return path, nil
}

// FormatReport renders the report as flat human-readable text.
func FormatReport(report *Report) string {
	var sb strings.Builder

	sb.WriteString("BATCH RESUME TAILORING REPORT\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	sb.WriteString(fmt.Sprintf("Run ID: %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.FinishedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Total combinations: %d\n\n", report.Summary.Total))

	sb.WriteString(fmt.Sprintf("Successful: %d\n", report.Summary.Success))
	sb.WriteString(fmt.Sprintf("Failed: %d\n", report.Summary.Failed))
	sb.WriteString(fmt.Sprintf("Exceptions: %d\n\n", report.Summary.Exception))

	sb.WriteString("DETAILED RESULTS:\n")
	sb.WriteString(strings.Repeat("-", 30) + "\n")

	for i, result := range report.Results {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, strings.ToUpper(string(result.Outcome))))
		sb.WriteString(fmt.Sprintf("   CV: %s\n", filepath.Base(result.ResumePath)))
		sb.WriteString(fmt.Sprintf("   Job: %s\n", filepath.Base(result.JobPath)))

		if result.Outcome == OutcomeSuccess {
			sb.WriteString(fmt.Sprintf("   Candidate: %s\n", orUnknown(result.CandidateName)))
			sb.WriteString(fmt.Sprintf("   Position: %s\n", orUnknown(result.JobTitle)))
			sb.WriteString(fmt.Sprintf("   Company: %s\n", orUnknown(result.CompanyName)))
			sb.WriteString(fmt.Sprintf("   Output: %s\n", filepath.Base(result.OutputPath)))
			continue
		}

		if result.FailedStage != "" {
			sb.WriteString(fmt.Sprintf("   Stage: %s\n", result.FailedStage))
		}
		sb.WriteString(fmt.Sprintf("   Error: %s\n", orUnknown(result.Error)))
	}

	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
