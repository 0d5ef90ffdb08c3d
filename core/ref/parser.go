package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperCite/core/books"
)

// Parser resolves citations against a book registry.
type Parser struct {
	books *books.Registry
}

// NewParser returns a parser over reg. A nil registry selects books.Default().
func NewParser(reg *books.Registry) *Parser {
	if reg == nil {
		reg = books.Default()
	}
	return &Parser{books: reg}
}

var defaultParser = NewParser(nil)

// Parse parses one citation with the default registry.
func Parse(citation string) (*Reference, error) {
	return defaultParser.Parse(citation)
}

// Registry returns the registry the parser resolves books against.
func (p *Parser) Registry() *books.Registry {
	return p.books
}

// Parse parses a single citation of the form
//
//	<book> <chapter>[:<span>(,<span>)*]
//
// and returns a *ParseFailure on error. A single bad span fails the whole
// citation.
func (p *Parser) Parse(citation string) (*Reference, error) {
	raw := strings.TrimSpace(citation)
	if raw == "" {
		return nil, fail(citation, MalformedCitation, "empty citation")
	}

	toks, err := tokenize(raw)
	if err != nil {
		return nil, fail(raw, MalformedCitation, "%v", err)
	}

	h, ferr := splitHead(raw, toks)
	if ferr != nil {
		return nil, ferr
	}

	book, ok := p.books.Lookup(h.book)
	if !ok {
		return nil, fail(raw, UnknownBook, "no book matches %q", h.book)
	}

	chapter, err := strconv.Atoi(h.chapter)
	if err != nil || chapter < 1 {
		return nil, fail(raw, MalformedChapter, "chapter %q is not a positive integer", h.chapter)
	}

	ref := &Reference{Book: book, Raw: raw}
	if !h.hasSpans {
		ref.Spans = []VerseSpan{{Chapter: chapter, Raw: strconv.Itoa(chapter)}}
		return ref, nil
	}

	spans, ferr := parseSpans(raw, chapter, h.spans)
	if ferr != nil {
		return nil, ferr
	}
	ref.Spans = spans
	return ref, nil
}

// head is a citation split into book text, chapter text and span list.
type head struct {
	book     string
	chapter  string
	spans    string
	hasSpans bool
}

// splitHead walks the tokens of a citation. The book is an optional
// leading number (with an optional dot) followed by words; the chapter is
// the first integer after the book that is separated from it by
// whitespace.
func splitHead(raw string, toks []lexer.Token) (head, *ParseFailure) {
	var h head
	i := 0
	for i < len(toks) && toks[i].Type == tokSpace {
		i++
	}
	start := i
	if toks[i].Type == tokInt {
		i++
		if toks[i].Type == tokDot {
			i++
		}
	}

	words := 0
	chapterAt := -1
scan:
	for ; i < len(toks); i++ {
		switch t := toks[i]; t.Type {
		case tokWord:
			words++
		case tokDot, tokSpace:
		case tokInt:
			if words == 0 {
				return h, fail(raw, MalformedCitation, "no book name before %q", t.Value)
			}
			if toks[i-1].Type != tokSpace {
				return h, fail(raw, MalformedCitation, "chapter %q must be separated from the book name", t.Value)
			}
			chapterAt = i
			break scan
		case tokColon:
			if words == 0 {
				return h, fail(raw, MalformedCitation, "no book name")
			}
			return h, fail(raw, MalformedChapter, "missing chapter before ':'")
		case tokEOF:
			if words == 0 {
				return h, fail(raw, MalformedCitation, "no book name")
			}
			return h, fail(raw, MalformedChapter, "missing chapter")
		default:
			return h, fail(raw, MalformedCitation, "unexpected %q", t.Value)
		}
	}
	if chapterAt < 0 {
		return h, fail(raw, MalformedChapter, "missing chapter")
	}

	h.book = strings.TrimSpace(joinValues(toks[start:chapterAt]))
	h.chapter = toks[chapterAt].Value

	j := chapterAt + 1
	switch toks[j].Type {
	case tokWord, tokDot:
		return h, fail(raw, MalformedChapter, "chapter %q is not an integer", h.chapter+toks[j].Value)
	}
	for toks[j].Type == tokSpace {
		j++
	}
	switch toks[j].Type {
	case tokEOF:
		return h, nil
	case tokColon:
		h.hasSpans = true
		h.spans = joinValues(toks[j+1:])
		return h, nil
	}
	return h, fail(raw, MalformedCitation, "unexpected %q after chapter %s", toks[j].Value, h.chapter)
}

func joinValues(toks []lexer.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		if t.EOF() {
			break
		}
		sb.WriteString(t.Value)
	}
	return sb.String()
}

// parseSpans parses the comma-separated verse list after the colon.
// Empty items between commas are skipped.
func parseSpans(raw string, chapter int, list string) ([]VerseSpan, *ParseFailure) {
	var spans []VerseSpan
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if n := countDashes(item); n > 1 {
			return nil, fail(raw, MalformedSpan, "%q has %d range separators", item, n)
		}

		parsed, err := spanParser.ParseString("", item)
		if err != nil {
			return nil, fail(raw, MalformedSpan, "invalid verse %q", item)
		}

		span := VerseSpan{
			Chapter: chapter,
			Start:   parsed.Start,
			End:     parsed.Start,
			Raw:     strconv.Itoa(chapter) + ":" + item,
		}
		if parsed.End != nil {
			span.End = *parsed.End
		}
		if span.Start < 1 {
			return nil, fail(raw, MalformedSpan, "verse %d in %q must be at least 1", span.Start, item)
		}
		if span.End < span.Start {
			return nil, fail(raw, MalformedSpan, "inverted range %q", item)
		}
		spans = append(spans, span)
	}
	if len(spans) == 0 {
		return nil, fail(raw, MalformedSpan, "empty verse list")
	}
	return spans, nil
}
