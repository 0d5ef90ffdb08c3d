// Package books holds the immutable catalogue of canonical Bible books and
// the alias lookup that resolves free-text book names against it.
//
// A Registry is built once and shared read-only; all methods are safe for
// concurrent use.
package books

import (
	"fmt"
	"slices"
	"sync"
)

// Lang selects one of the two naming languages carried by every book.
type Lang string

const (
	English Lang = "en"
	Swedish Lang = "sv"
)

// ParseLang maps "en"/"sv" (and the full language names) to a Lang.
func ParseLang(s string) (Lang, error) {
	switch Normalize(s) {
	case "en", "english", "":
		return English, nil
	case "sv", "swedish", "svenska":
		return Swedish, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Book is one canonical book of the registry.
type Book struct {
	EnglishName string `json:"en_full"`
	EnglishAbbr string `json:"en_abbr"`
	SwedishName string `json:"sv_full"`
	SwedishAbbr string `json:"sv_abbr"`

	// Aliases are stored normalized.
	Aliases []string `json:"aliases"`
}

// OSIS returns the OSIS book ID (e.g. "Gen", "1John").
func (b *Book) OSIS() string {
	return b.EnglishAbbr
}

// Key is the stable identity of the book, its English full name.
func (b *Book) Key() string {
	return b.EnglishName
}

// Name returns the full name in the given language.
func (b *Book) Name(l Lang) string {
	if l == Swedish {
		return b.SwedishName
	}
	return b.EnglishName
}

// Abbr returns the abbreviation in the given language.
func (b *Book) Abbr(l Lang) string {
	if l == Swedish {
		return b.SwedishAbbr
	}
	return b.EnglishAbbr
}

func (b *Book) canonical() []string {
	return []string{b.EnglishName, b.EnglishAbbr, b.SwedishName, b.SwedishAbbr}
}

// Registry is an ordered, immutable book catalogue.
type Registry struct {
	books     []Book
	aliases   map[string]int
	canonical map[string]int
}

// NewRegistry builds a registry from entries in canonical order. It fails
// when two books share a normalized alias.
func NewRegistry(entries []Book) (*Registry, error) {
	r := &Registry{
		books:     make([]Book, len(entries)),
		aliases:   make(map[string]int),
		canonical: make(map[string]int),
	}
	for i, e := range entries {
		b := e
		b.Aliases = make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			n := Normalize(a)
			if prev, ok := r.aliases[n]; ok && prev != i {
				return nil, fmt.Errorf("alias %q of %s already belongs to %s", n, e.EnglishName, entries[prev].EnglishName)
			}
			if _, ok := r.aliases[n]; !ok {
				b.Aliases = append(b.Aliases, n)
			}
			r.aliases[n] = i
		}
		for _, c := range b.canonical() {
			k := CompactKey(c)
			if _, ok := r.canonical[k]; !ok {
				r.canonical[k] = i
			}
		}
		r.books[i] = b
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid data.
func MustNewRegistry(entries []Book) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(fmt.Sprintf("books: %v", err))
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(canonicalBooks)
})

// Default returns the shared registry of the 66 Protestant canon books.
func Default() *Registry {
	return defaultRegistry()
}

// Len returns the number of books.
func (r *Registry) Len() int {
	return len(r.books)
}

// Books returns copies of the books in canonical order. Changing them does
// not affect the registry.
func (r *Registry) Books() []Book {
	out := make([]Book, len(r.books))
	for i, b := range r.books {
		b.Aliases = slices.Clone(b.Aliases)
		out[i] = b
	}
	return out
}

// Lookup resolves free text to a book. It tries, in order, the compact key
// against the alias sets, the spaced key against the alias sets and finally
// the four canonical names and abbreviations. The returned book is shared
// by every caller and must be treated as read-only.
func (r *Registry) Lookup(text string) (*Book, bool) {
	compact := CompactKey(text)
	if compact == "" {
		return nil, false
	}
	if i, ok := r.aliases[compact]; ok {
		return &r.books[i], true
	}
	if spaced := SpacedKey(compact); spaced != compact {
		if i, ok := r.aliases[spaced]; ok {
			return &r.books[i], true
		}
	}
	if i, ok := r.canonical[compact]; ok {
		return &r.books[i], true
	}
	return nil, false
}
