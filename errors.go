package xpsdoc

import (
	"errors"
	"fmt"

	"github.com/tsawler/xpsdoc/archive"
	"github.com/tsawler/xpsdoc/markup"
)

// Kind classifies load failures.
type Kind int

const (
	// KindIO is a failure to open or read the container.
	KindIO Kind = iota + 1
	// KindDecode is a part whose bytes are not valid UTF-8 or UTF-16.
	KindDecode
	// KindContainer is a corrupt container or a referenced part that does
	// not exist.
	KindContainer
	// KindMarkup is a part that is not well-formed XML.
	KindMarkup
	// KindMissingBrush is a brush property element without a brush.
	KindMissingBrush
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindContainer:
		return "container"
	case KindMarkup:
		return "markup"
	case KindMissingBrush:
		return "missing brush"
	default:
		return "unknown"
	}
}

// Error is returned by Open and OpenReader. Part is the package part being
// read when the failure happened and is empty for failures of the container
// itself.
type Error struct {
	Kind Kind
	Part string
	Err  error
}

// Sentinels for errors.Is checks against a Kind:
//
//	if errors.Is(err, xpsdoc.ErrMissingBrush) { ... }
var (
	ErrIO           = &Error{Kind: KindIO}
	ErrDecode       = &Error{Kind: KindDecode}
	ErrContainer    = &Error{Kind: KindContainer}
	ErrMarkup       = &Error{Kind: KindMarkup}
	ErrMissingBrush = &Error{Kind: KindMissingBrush}
)

func (e *Error) Error() string {
	msg := "xpsdoc: " + e.Kind.String()
	if e.Part != "" {
		msg += ": " + e.Part
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// wrapError classifies err and attaches the part it happened in.
func wrapError(part string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: classify(err), Part: part, Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, markup.ErrMissingBrush):
		return KindMissingBrush
	case errors.Is(err, markup.ErrMalformed):
		return KindMarkup
	case errors.Is(err, archive.ErrOddLength),
		errors.Is(err, archive.ErrInvalidUTF8),
		errors.Is(err, archive.ErrInvalidUTF16):
		return KindDecode
	case errors.Is(err, archive.ErrInvalidArchive),
		errors.Is(err, archive.ErrNotFound):
		return KindContainer
	default:
		return KindIO
	}
}

// Warning is a problem that did not stop the load.
type Warning struct {
	Part    string
	Message string
	Err     error
}

func (w Warning) String() string {
	s := w.Message
	if w.Part != "" {
		s = w.Part + ": " + s
	}
	if w.Err != nil {
		s += ": " + w.Err.Error()
	}
	return s
}

// FormatWarnings joins warnings into a single line-per-warning string.
func FormatWarnings(warnings []Warning) string {
	var s string
	for i, w := range warnings {
		if i > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("- %s", w)
	}
	return s
}
