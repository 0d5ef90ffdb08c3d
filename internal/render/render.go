// Package render formats resolved citations as Markdown callout blocks.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/resolve"
)

// Options control callout output.
type Options struct {
	Callout          string     `json:"callout"`
	ShowVerseNumbers bool       `json:"verse_numbers"`
	LinePerVerse     bool       `json:"line_per_verse"`
	Translation      string     `json:"translation"`
	Lang             books.Lang `json:"lang"`
}

// DefaultOptions returns the stock settings: a foldable bible callout with
// verse numbers in paragraph mode.
func DefaultOptions() Options {
	return Options{
		Callout:          "[!bible]+",
		ShowVerseNumbers: true,
		Translation:      "Bibel 2000",
		Lang:             books.Swedish,
	}
}

type messages struct {
	invalidTitle, invalidHint string
	fetchTitle, fetchMissing  string
	emptyTitle, emptyHint     string
}

var catalog = map[books.Lang]messages{
	books.Swedish: {
		invalidTitle: "Ogiltig referens",
		invalidHint:  `Kontrollera boknamn/förkortning och format (ex: "1 Mos 1:1-4", "Joh 1:1–3,14").`,
		fetchTitle:   "Kunde inte hämta bibeltext",
		fetchMissing: "Sökväg saknas eller filen hittas inte.",
		emptyTitle:   "Inga verser hittades",
		emptyHint:    "Kapitlet finns men versintervallet verkar tomt.",
	},
	books.English: {
		invalidTitle: "Invalid reference",
		invalidHint:  `Check the book name/abbreviation and format (e.g. "Gen 1:1-4", "John 1:1–3,14").`,
		fetchTitle:   "Could not fetch bible text",
		fetchMissing: "Path missing or file not found.",
		emptyTitle:   "No verses found",
		emptyHint:    "The chapter exists but the verse range appears to be empty.",
	},
}

func (o Options) messages() messages {
	if m, ok := catalog[o.Lang]; ok {
		return m
	}
	return catalog[books.Swedish]
}

// Verses formats verse text. Paragraph mode joins the verses and collapses
// runs of whitespace.
func (o Options) Verses(vs []verses.Verse) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		s := v.Text
		if o.ShowVerseNumbers {
			s = "^" + strconv.Itoa(v.Number) + " " + v.Text
		}
		parts[i] = strings.TrimSpace(s)
	}
	if o.LinePerVerse {
		return strings.Join(parts, "\n")
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Heading returns the wiki link that titles a passage callout.
func (o Options) Heading(citation string, p *verses.Passage) string {
	return "[[" + p.Label + "|" + citation + " (" + o.Translation + ")]]"
}

func quote(lines ...string) string {
	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("> ")
		b.WriteString(ln)
	}
	return b.String()
}

// Block renders one result.
func (o Options) Block(r resolve.Result) string {
	m := o.messages()
	if _, ok := r.Failure(); ok {
		return quote("[!error]- "+m.invalidTitle, r.Citation, m.invalidHint)
	}
	if r.Err != nil {
		detail := r.Err.Error()
		if errors.Is(r.Err, errors.ErrNotFound) {
			detail = m.fetchMissing
		}
		return quote("[!error]- "+m.fetchTitle, r.Citation, detail)
	}
	if r.Passage == nil || len(r.Passage.Verses) == 0 {
		return quote("[!warning]- "+m.emptyTitle, r.Citation, m.emptyHint)
	}

	lines := append([]string{o.Callout + " " + o.Heading(r.Citation, r.Passage)},
		strings.Split(o.Verses(r.Passage.Verses), "\n")...)
	return quote(lines...) + "\n"
}

// String renders every result; blocks are separated by a newline.
func (o Options) String(results []resolve.Result) string {
	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = o.Block(r)
	}
	return strings.Join(blocks, "\n")
}

// Write renders results to w.
func (o Options) Write(w io.Writer, results []resolve.Result) error {
	_, err := io.WriteString(w, o.String(results))
	return err
}
