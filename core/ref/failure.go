package ref

import (
	"errors"
	"fmt"

	jerrors "github.com/FocuswithJustin/JuniperCite/core/errors"
)

// FailureKind classifies why a citation could not be parsed.
type FailureKind int

const (
	// UnknownBook: the book text matches no registry entry.
	UnknownBook FailureKind = iota + 1
	// MalformedChapter: the chapter is missing or not a positive integer.
	MalformedChapter
	// MalformedSpan: a verse is not an integer, a span has more than one
	// range separator, or a range is inverted.
	MalformedSpan
	// MalformedCitation: the text does not have the shape of a citation.
	MalformedCitation
)

// Sentinels matched by errors.Is against a *ParseFailure.
var (
	ErrUnknownBook       = errors.New("unknown book")
	ErrMalformedChapter  = errors.New("malformed chapter")
	ErrMalformedSpan     = errors.New("malformed verse span")
	ErrMalformedCitation = errors.New("malformed citation")
)

func (k FailureKind) String() string {
	switch k {
	case UnknownBook:
		return "unknown-book"
	case MalformedChapter:
		return "malformed-chapter"
	case MalformedSpan:
		return "malformed-span"
	case MalformedCitation:
		return "malformed-citation"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k FailureKind) sentinel() error {
	switch k {
	case UnknownBook:
		return ErrUnknownBook
	case MalformedChapter:
		return ErrMalformedChapter
	case MalformedSpan:
		return ErrMalformedSpan
	}
	return ErrMalformedCitation
}

// ParseFailure is returned for a citation that cannot be parsed. Raw keeps
// the citation text as given, for display next to the error.
type ParseFailure struct {
	Raw    string      `json:"raw"`
	Kind   FailureKind `json:"kind"`
	Reason string      `json:"reason"`
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("%s in %q: %s", e.Kind.sentinel(), e.Raw, e.Reason)
}

// Unwrap exposes the kind sentinel and errors.ErrInvalidInput.
func (e *ParseFailure) Unwrap() []error {
	return []error{e.Kind.sentinel(), jerrors.ErrInvalidInput}
}

func fail(raw string, kind FailureKind, format string, args ...any) *ParseFailure {
	return &ParseFailure{Raw: raw, Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
