// Package osis serves verse text from an OSIS XML document, optionally
// xz-compressed. Both container verses (<verse osisID="John.3.16">text</verse>)
// and milestone verses (<verse sID="..." osisID="..."/>text<verse eID="..."/>)
// are understood. Notes are left out of verse text.
package osis

import (
	"context"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/logging"
)

var verseExpr = xpath.MustCompile(`//*[local-name()='verse'][@osisID or @sID]`)

// Source reads chapters from one OSIS document. The document is parsed on
// first use and kept in memory.
type Source struct {
	path string
	open func() (io.ReadCloser, error)

	once     sync.Once
	chapters map[string][]verses.Verse
	err      error
}

var _ verses.Source = (*Source)(nil)

// Open returns a Source for the file at path. Files ending in ".xz" are
// decompressed.
func Open(path string) (*Source, error) {
	if path == "" {
		return nil, errors.NewValidation("osis-path", "no OSIS document configured")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("OSIS document", path)
		}
		return nil, errors.NewIO("stat", path, err)
	}
	return &Source{
		path: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// NewFromReader returns a Source that parses r on first use.
func NewFromReader(name string, r io.Reader) *Source {
	return &Source{
		path: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

func chapterKey(osisBook string, chapter int) string {
	return osisBook + "." + strconv.Itoa(chapter)
}

func (s *Source) load() {
	f, err := s.open()
	if err != nil {
		s.err = errors.NewIO("open", s.path, err)
		return
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(s.path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			s.err = errors.NewIO("decompress", s.path, err)
			return
		}
		r = xr
	}

	doc, err := xmlquery.Parse(r)
	if err != nil {
		s.err = &errors.ParseError{Format: "OSIS", Path: s.path, Message: "invalid XML", Err: err}
		return
	}
	s.chapters = index(doc)
	logging.Debug("osis document loaded", "path", s.path, "chapters", len(s.chapters))
}

// index groups the verses of doc by "<book>.<chapter>". A verse element
// listing several osisIDs contributes its text to each of them.
func index(doc *xmlquery.Node) map[string][]verses.Verse {
	out := make(map[string][]verses.Verse)
	for _, n := range xmlquery.QuerySelectorAll(doc, verseExpr) {
		if n.SelectAttr("eID") != "" {
			continue
		}
		var text string
		if sid := n.SelectAttr("sID"); sid != "" {
			text = milestoneText(n, sid)
		} else {
			text = subtreeText(n)
		}
		for _, id := range strings.Fields(n.SelectAttr("osisID")) {
			book, chapter, verse, ok := splitID(id)
			if !ok {
				continue
			}
			key := book + "." + chapter
			out[key] = append(out[key], verses.Verse{Number: verse, Text: text})
		}
	}
	for key := range out {
		vs := out[key]
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Number < vs[j].Number })
	}
	return out
}

func splitID(id string) (book, chapter string, verse int, ok bool) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return "", "", 0, false
	}
	v, err := strconv.Atoi(parts[2])
	if err != nil || v < 1 {
		return "", "", 0, false
	}
	return parts[0], parts[1], v, true
}

func isNote(n *xmlquery.Node) bool {
	return n.Type == xmlquery.ElementNode && n.Data == "note"
}

func subtreeText(n *xmlquery.Node) string {
	var b strings.Builder
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode:
				b.WriteString(c.Data)
			case isNote(c):
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return collapse(b.String())
}

// milestoneText gathers text in document order from the start milestone up
// to the element carrying the matching eID.
func milestoneText(start *xmlquery.Node, sid string) string {
	var b strings.Builder
	n := nextNode(start, false)
	for n != nil {
		if n.Type == xmlquery.ElementNode && n.Data == "verse" && n.SelectAttr("eID") == sid {
			break
		}
		if n.Type == xmlquery.TextNode || n.Type == xmlquery.CharDataNode {
			b.WriteString(n.Data)
		}
		n = nextNode(n, isNote(n))
	}
	return collapse(b.String())
}

// nextNode steps to the following node in document order, skipping the
// children of n when skipChildren is set.
func nextNode(n *xmlquery.Node, skipChildren bool) *xmlquery.Node {
	if !skipChildren && n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FetchChapterVerses implements verses.Source. A chapter absent from the
// document yields an empty result.
func (s *Source) FetchChapterVerses(ctx context.Context, book *books.Book, chapter int) ([]verses.Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	return s.chapters[chapterKey(book.OSIS(), chapter)], nil
}

// ChapterDisplayLabel implements verses.Source.
func (s *Source) ChapterDisplayLabel(book *books.Book, chapter int) string {
	return verses.ChapterLabel(book, chapter)
}
