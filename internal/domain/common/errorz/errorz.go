package errorz

import "errors"

var (
	TemplateNotFound  = errors.New("template not found")
	UnsupportedFormat = errors.New("unsupported output format")
	ContentEmpty      = errors.New("content is empty")
	ContentTooLong    = errors.New("content exceeds maximum QR capacity")
	NoQRCodeFound     = errors.New("no QR code found in image")
	InvalidConfig     = errors.New("invalid generation config")
	InvalidStyle      = errors.New("invalid style")
)

// Kind classifies an error for the transport boundary.
type Kind string

const (
	KindValidation Kind = "validation"
	KindGeneration Kind = "generation"
	KindAnalysis   Kind = "analysis"
)

// Error is a typed error carrying a machine-readable kind plus contextual
// details about the failed call. The transport layer renders it into whatever
// envelope callers see; the core never formats user-facing prose.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation wraps err as a caller-fault error.
func Validation(message string, err error, details map[string]any) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details, Err: err}
}

// Generation wraps err as an encode-pipeline failure.
func Generation(message string, err error, details map[string]any) *Error {
	return &Error{Kind: KindGeneration, Message: message, Details: details, Err: err}
}

// Analysis wraps err as a decode-pipeline failure.
func Analysis(message string, err error, details map[string]any) *Error {
	return &Error{Kind: KindAnalysis, Message: message, Details: details, Err: err}
}

// KindOf reports the kind of err, or an empty kind for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
