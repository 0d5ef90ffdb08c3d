// Package verses defines the contract between parsed references and the
// backends that hold verse text, and selects the requested verses from a
// fetched chapter.
package verses

import (
	"context"
	"slices"
	"strconv"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/ref"
	"github.com/FocuswithJustin/JuniperCite/core/spans"
)

// Verse is one verse of a chapter.
type Verse struct {
	Number int    `json:"verse"`
	Text   string `json:"text"`
}

// Source is a backend holding verse text.
type Source interface {
	// FetchChapterVerses returns the verses present in a chapter, ordered by
	// number. The result may be sparse.
	FetchChapterVerses(ctx context.Context, book *books.Book, chapter int) ([]Verse, error)

	// ChapterDisplayLabel names the chapter for display and linking,
	// e.g. "Första Moseboken 1".
	ChapterDisplayLabel(book *books.Book, chapter int) string
}

// Select picks the requested verses out of a fetched chapter. A whole
// chapter request returns every verse; otherwise each range contributes
// the present verses within it in ascending order. Missing verse numbers
// are skipped and every verse appears at most once.
func Select(chapter []Verse, m spans.Merged) []Verse {
	if !slices.IsSortedFunc(chapter, byNumber) {
		chapter = slices.Clone(chapter)
		slices.SortStableFunc(chapter, byNumber)
	}
	if m.Whole {
		return slices.Clone(chapter)
	}

	var out []Verse
	for i, v := range chapter {
		if i > 0 && chapter[i-1].Number == v.Number {
			continue
		}
		if m.Contains(v.Number) {
			out = append(out, v)
		}
	}
	return out
}

func byNumber(a, b Verse) int {
	return a.Number - b.Number
}

// Passage is a reference together with the verses selected for it.
type Passage struct {
	Ref    *ref.Reference `json:"ref"`
	Label  string         `json:"label"`
	Verses []Verse        `json:"verses"`
}

// Fetch reads the chapter of r from src and selects the requested verses.
// Errors from src are returned unchanged.
func Fetch(ctx context.Context, src Source, r *ref.Reference) (*Passage, error) {
	chapter, err := src.FetchChapterVerses(ctx, r.Book, r.Chapter())
	if err != nil {
		return nil, err
	}
	return &Passage{
		Ref:    r,
		Label:  src.ChapterDisplayLabel(r.Book, r.Chapter()),
		Verses: Select(chapter, spans.MergeReference(r)),
	}, nil
}

// ChapterLabel is the label used by the bundled sources: the Swedish full
// name followed by the chapter number.
func ChapterLabel(book *books.Book, chapter int) string {
	return book.SwedishName + " " + strconv.Itoa(chapter)
}
