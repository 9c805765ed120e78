// Package errs defines the error taxonomy shared by all pipeline stages.
// Every stage failure is reported as a tagged *Error so the orchestrator
// can surface the failing stage's tag verbatim and the batch runner can
// tell recognized failures apart from unexpected ones.
package errs

import (
	"errors"
	"fmt"
)

// Tag identifies a recognized failure mode.
type Tag string

// Recognized failure tags.
const (
	TagFileNotFound      Tag = "FileNotFound"
	TagUnsupportedFormat Tag = "UnsupportedFormat"
	TagEmptyOrTooShort   Tag = "EmptyOrTooShortText"
	TagRemoteTimeout     Tag = "RemoteTimeout"
	TagRemoteRequest     Tag = "RemoteRequestFailed"
	TagNoJSONFound       Tag = "NoJSONFound"
	TagInvalidJSON       Tag = "InvalidJSON"
	TagMalformedInput    Tag = "MalformedInput"
	TagToolchainNotFound Tag = "ToolchainNotFound"
	TagMissingCredential Tag = "MissingCredential"
)

// Error is a tagged pipeline error.
type Error struct {
	Tag     Tag
	Message string
	Cause   error

	// Raw holds the raw remote response, when one exists. Kept so a
	// failed extraction can still be inspected by the caller.
	Raw string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Tag, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a tagged error.
func New(tag Tag, message string) *Error {
	return &Error{Tag: tag, Message: message}
}

// Newf creates a tagged error with a formatted message.
func Newf(tag Tag, format string, args ...any) *Error {
	return &Error{Tag: tag, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a tagged error wrapping a cause.
func Wrap(tag Tag, message string, cause error) *Error {
	return &Error{Tag: tag, Message: message, Cause: cause}
}

// WithRaw attaches the raw remote response to the error.
func (e *Error) WithRaw(raw string) *Error {
	e.Raw = raw
	return e
}

// TagOf returns the tag of err if it is (or wraps) a tagged error, and ""
// otherwise. An empty tag means the error is outside the recognized
// taxonomy and should be treated as unexpected.
func TagOf(err error) Tag {
	var te *Error
	if errors.As(err, &te) {
		return te.Tag
	}
	return ""
}

// IsTagged reports whether err carries any recognized tag.
func IsTagged(err error) bool {
	return TagOf(err) != ""
}

// Hint returns a one-line remediation hint for a tag, or "" when there is
// nothing actionable to suggest.
func Hint(tag Tag) string {
	switch tag {
	case TagFileNotFound:
		return "verify the file path exists and is readable"
	case TagUnsupportedFormat:
		return "use a PDF, DOCX, or DOC file for the resume and TXT/MD for the job posting"
	case TagEmptyOrTooShort:
		return "the document produced almost no text; check it is not a scanned image"
	case TagRemoteTimeout:
		return "the model endpoint did not answer in time; try again"
	case TagRemoteRequest:
		return "check your network connection and that your credential is valid"
	case TagNoJSONFound, TagInvalidJSON:
		return "the model reply was not usable JSON; re-running usually resolves this"
	case TagToolchainNotFound:
		return "install pandoc (https://pandoc.org/installing.html) or choose --format docx"
	case TagMissingCredential:
		return "set GROQ_API_KEY (or pass --api-key)"
	default:
		return ""
	}
}
