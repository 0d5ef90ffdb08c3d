// Package sqlite serves verse text from a SQLite database with the table
//
//	verse(book TEXT, chapter INTEGER, verse INTEGER, content TEXT)
//
// where book holds the English full name ("Genesis", "1 John").
package sqlite

import (
	"context"
	"database/sql"
	"os"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/errors"
	coresqlite "github.com/FocuswithJustin/JuniperCite/core/sqlite"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/logging"
)

const chapterQuery = `SELECT verse, content FROM verse WHERE book = ? AND chapter = ? ORDER BY verse ASC`

// Source reads chapters from an open database.
type Source struct {
	db   *sql.DB
	path string
}

var _ verses.Source = (*Source)(nil)

// Open opens the database at path read-only.
func Open(path string) (*Source, error) {
	if path == "" {
		return nil, errors.NewValidation("sqlite-path", "no database path configured")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("database", path)
		}
		return nil, errors.NewIO("stat", path, err)
	}
	db, err := coresqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	logging.Debug("sqlite source opened", "path", path, "driver", coresqlite.DriverType())
	return &Source{db: db, path: path}, nil
}

// New wraps an already open database.
func New(db *sql.DB) *Source {
	return &Source{db: db}
}

// Close closes the database.
func (s *Source) Close() error {
	return s.db.Close()
}

// FetchChapterVerses implements verses.Source. A chapter without rows
// yields an empty result, not an error.
func (s *Source) FetchChapterVerses(ctx context.Context, book *books.Book, chapter int) ([]verses.Verse, error) {
	rows, err := s.db.QueryContext(ctx, chapterQuery, book.EnglishName, chapter)
	if err != nil {
		return nil, errors.NewIO("query", s.path, err)
	}
	defer rows.Close()

	var out []verses.Verse
	for rows.Next() {
		var v verses.Verse
		var content sql.NullString
		if err := rows.Scan(&v.Number, &content); err != nil {
			return nil, errors.NewIO("scan", s.path, err)
		}
		v.Text = content.String
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("read", s.path, err)
	}
	logging.Debug("sqlite chapter fetched", "book", book.EnglishName, "chapter", chapter, "verses", len(out))
	return out, nil
}

// ChapterDisplayLabel implements verses.Source.
func (s *Source) ChapterDisplayLabel(book *books.Book, chapter int) string {
	return verses.ChapterLabel(book, chapter)
}
