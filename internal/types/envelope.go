package types

import "resume-tailor/internal/errs"

// Envelope is the uniform wrapper returned by every remote-call stage.
// Success implies Data is present and Err is nil; failure implies Err is
// present. Use Ok and Fail so the invariant cannot be violated.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Err     error  `json:"-"`
	Raw     string `json:"raw_response,omitempty"`
}

// Ok wraps a successful stage result with the raw remote response.
func Ok[T any](data *T, raw string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Raw: raw}
}

// Fail wraps a stage failure. The error should carry an errs.Tag; untagged
// errors are treated as unexpected by the batch runner.
func Fail[T any](err error, raw string) Envelope[T] {
	return Envelope[T]{Success: false, Err: err, Raw: raw}
}

// Tag returns the error tag of a failed envelope, or "" for a success.
func (e Envelope[T]) Tag() errs.Tag {
	if e.Success {
		return ""
	}
	return errs.TagOf(e.Err)
}
