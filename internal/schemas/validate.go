// Package schemas validates tailored résumés against a JSON Schema before
// rendering. Violations are advisory: the model occasionally drops optional
// fields, and a partially filled résumé still renders fine.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"resume-tailor/internal/types"
)

//go:embed tailored_resume.json
var tailoredResumeSchema string

// Warning is a single schema violation.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// ValidateTailored checks a tailored résumé against the embedded schema and
// returns the violations. A non-nil error means validation itself could not
// run, not that the résumé is invalid.
func ValidateTailored(resume *types.TailoredResume) ([]Warning, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tailoredResumeSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	warnings := make([]Warning, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		warnings = append(warnings, Warning{Field: field, Message: desc.Description()})
	}
	return warnings, nil
}
