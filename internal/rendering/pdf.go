package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/types"
)

// pandocTimeout bounds a single pandoc invocation.
const pandocTimeout = 30 * time.Second

// renderPDF writes the résumé as markdown and converts it with pandoc.
// A missing pandoc binary is ToolchainNotFound, distinct from a conversion
// failure, so the CLI can suggest installing it or falling back to DOCX.
func (r *Renderer) renderPDF(ctx context.Context, resume *types.TailoredResume, path string) (*Result, error) {
	if _, err := exec.LookPath("pandoc"); err != nil {
		return nil, errs.Wrap(errs.TagToolchainNotFound,
			"pandoc not found in PATH (https://pandoc.org/installing.html)", err)
	}

	tempMD := strings.TrimSuffix(path, ".pdf") + "_temp.md"
	if err := os.WriteFile(tempMD, []byte(Markdown(resume)), 0644); err != nil {
		return nil, errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("failed to write markdown file: %s", tempMD), err)
	}
	defer os.Remove(tempMD)

	ctx, cancel := context.WithTimeout(ctx, pandocTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "pandoc", tempMD, "-o", path,
		"--pdf-engine=xelatex",
		"-V", "geometry:margin=1in",
		"-V", "fontsize=11pt",
		"-V", "linestretch=1.1",
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errs.Wrap(errs.TagRemoteTimeout, "pandoc conversion timed out", runErr)
		}
		return nil, errs.Wrap(errs.TagMalformedInput,
			fmt.Sprintf("pandoc conversion failed: %s", strings.TrimSpace(stderr.String())), runErr)
	}

	return fileResult(path, FormatPDF)
}
