// Package markdown serves verse text from a tree of Markdown chapter files.
//
// Each chapter lives at "<book>/<book> <chapter>.md", where <book> is the
// Swedish full name, and every verse starts with a heading such as
//
//	### Johannesevangeliet 3:16 Så älskade Gud världen ...
//
// The heading may use the Swedish full name or abbreviation at any level.
// Text on the heading line and the lines below it up to the next verse
// heading make up the verse.
package markdown

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/logging"
)

// Source reads chapters from a file system.
type Source struct {
	fsys fs.FS
	root string
}

var _ verses.Source = (*Source)(nil)

// New returns a Source reading from fsys. root is only used in error
// messages.
func New(fsys fs.FS, root string) *Source {
	return &Source{fsys: fsys, root: root}
}

// Open returns a Source rooted at the directory dir.
func Open(dir string) (*Source, error) {
	dir = strings.TrimRight(dir, "/")
	if dir == "" {
		return nil, errors.NewValidation("markdown-root", "no markdown root configured")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("markdown root", dir)
		}
		return nil, errors.NewIO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewValidation("markdown-root", dir+" is not a directory")
	}
	return New(os.DirFS(dir), filepath.Clean(dir)), nil
}

// ChapterPath returns the slash-separated path of a chapter file relative
// to the source root.
func ChapterPath(book *books.Book, chapter int) string {
	name := fmt.Sprintf("%s %d.md", book.SwedishName, chapter)
	return path.Join(book.SwedishName, name)
}

// FetchChapterVerses implements verses.Source. A missing chapter file is a
// not-found error.
func (s *Source) FetchChapterVerses(ctx context.Context, book *books.Book, chapter int) ([]verses.Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := ChapterPath(book, chapter)
	f, err := s.fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFound("chapter file", s.display(p))
		}
		return nil, errors.NewIO("open", s.display(p), err)
	}
	defer f.Close()

	out, err := parseChapter(f, headerPattern(book, chapter))
	if err != nil {
		return nil, errors.NewIO("read", s.display(p), err)
	}
	logging.Debug("markdown chapter fetched", "path", p, "verses", len(out))
	return out, nil
}

// ChapterDisplayLabel implements verses.Source.
func (s *Source) ChapterDisplayLabel(book *books.Book, chapter int) string {
	return verses.ChapterLabel(book, chapter)
}

func (s *Source) display(p string) string {
	if s.root == "" {
		return p
	}
	return s.root + "/" + p
}

func headerPattern(book *books.Book, chapter int) *regexp.Regexp {
	names := regexp.QuoteMeta(book.SwedishName) + "|" + regexp.QuoteMeta(book.SwedishAbbr)
	return regexp.MustCompile(`(?i)^#{1,6}\s+(?:` + names + `)\s+` + strconv.Itoa(chapter) + `:(\d+)\b(.*)$`)
}

// parseChapter collects verse blocks. A verse heading repeated later in the
// file replaces the earlier block.
func parseChapter(r io.Reader, header *regexp.Regexp) ([]verses.Verse, error) {
	blocks := make(map[int]string)
	current := -1
	var buf []string

	flush := func() {
		if current >= 0 {
			blocks[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = buf[:0]
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if m := header.FindStringSubmatch(line); m != nil {
			flush()
			n, err := strconv.Atoi(m[1])
			if err != nil {
				current = -1
				continue
			}
			current = n
			if inline := strings.TrimSpace(m[2]); inline != "" {
				buf = append(buf, inline)
			}
			continue
		}
		if current >= 0 {
			buf = append(buf, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	out := make([]verses.Verse, 0, len(blocks))
	for n, text := range blocks {
		out = append(out, verses.Verse{Number: n, Text: text})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}
