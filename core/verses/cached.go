package verses

import (
	"context"
	"slices"
	"time"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/cache"
)

type chapterKey struct {
	book    string
	chapter int
}

// Cached wraps a Source and keeps recently fetched chapters in an LRU
// cache. Errors are not cached.
type Cached struct {
	src   Source
	cache cache.Cache[chapterKey, []Verse]
}

// CacheConfig configures a Cached source.
type CacheConfig struct {
	// Size is the number of chapters kept (0 = unlimited).
	Size int

	// TTL drops chapters after they have been cached this long (0 = never).
	TTL time.Duration

	// Now overrides the clock used for TTL expiry.
	Now func() time.Time
}

// NewCached wraps src with a chapter cache.
func NewCached(src Source, cfg CacheConfig) *Cached {
	return &Cached{
		src: src,
		cache: cache.NewLRUCache(cache.Config[chapterKey, []Verse]{
			MaxSize: cfg.Size,
			TTL:     cfg.TTL,
			Now:     cfg.Now,
		}),
	}
}

// FetchChapterVerses implements Source.
func (c *Cached) FetchChapterVerses(ctx context.Context, book *books.Book, chapter int) ([]Verse, error) {
	key := chapterKey{book: book.Key(), chapter: chapter}
	if vs, ok := c.cache.Get(key); ok {
		return slices.Clone(vs), nil
	}
	vs, err := c.src.FetchChapterVerses(ctx, book, chapter)
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, slices.Clone(vs))
	return vs, nil
}

// ChapterDisplayLabel implements Source.
func (c *Cached) ChapterDisplayLabel(book *books.Book, chapter int) string {
	return c.src.ChapterDisplayLabel(book, chapter)
}

// Stats reports cache statistics.
func (c *Cached) Stats() cache.Stats {
	return c.cache.Stats()
}
