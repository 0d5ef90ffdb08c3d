// Package ref parses free-text scripture citations such as
// "1 Mos 1:1-4; Joh 1:1-3,14" into structured references.
//
// Parsing is pure: no I/O, no shared mutable state. A Parser may be used
// from many goroutines at once.
package ref

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperCite/core/books"
)

// VerseSpan is one requested range within a chapter. Start and End are
// both zero for a whole-chapter request; otherwise 1 <= Start <= End.
type VerseSpan struct {
	Chapter int `json:"chapter"`
	Start   int `json:"v1,omitempty"`
	End     int `json:"v2,omitempty"`

	// Raw is the sub-text that produced the span, e.g. "1:1-3".
	Raw string `json:"raw,omitempty"`
}

// WholeChapter reports whether the span carries no verse bounds.
func (s VerseSpan) WholeChapter() bool {
	return s.Start == 0 && s.End == 0
}

// String formats the verse part: "" for a whole chapter, "3" or "1-3".
func (s VerseSpan) String() string {
	switch {
	case s.WholeChapter():
		return ""
	case s.Start == s.End:
		return strconv.Itoa(s.Start)
	default:
		return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
	}
}

// Reference is the parsed form of one citation. All spans share one
// chapter and are kept in input order.
type Reference struct {
	Book  *books.Book `json:"book"`
	Raw   string      `json:"raw"`
	Spans []VerseSpan `json:"spans"`
}

// Chapter returns the chapter shared by all spans.
func (r *Reference) Chapter() int {
	if len(r.Spans) == 0 {
		return 0
	}
	return r.Spans[0].Chapter
}

// WholeChapter reports whether any span requests the entire chapter.
func (r *Reference) WholeChapter() bool {
	for _, s := range r.Spans {
		if s.WholeChapter() {
			return true
		}
	}
	return false
}

// Label renders the reference with the book's full name in the given
// language, e.g. "Johannesevangeliet 1:1-3,14".
func (r *Reference) Label(l books.Lang) string {
	var sb strings.Builder
	sb.WriteString(r.Book.Name(l))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(r.Chapter()))

	var verses []string
	for _, s := range r.Spans {
		if v := s.String(); v != "" {
			verses = append(verses, v)
		}
	}
	if len(verses) > 0 && !r.WholeChapter() {
		sb.WriteString(":")
		sb.WriteString(strings.Join(verses, ","))
	}
	return sb.String()
}

// String returns the English label.
func (r *Reference) String() string {
	return r.Label(books.English)
}
