// Package resolve turns citation input into passages: it splits the input
// into citations, parses each one, and reads the selected verses from a
// source.
package resolve

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/JuniperCite/core/ref"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/logging"
)

// DefaultConcurrency bounds the number of citations fetched at once.
const DefaultConcurrency = 4

// Result is the outcome for one citation. Err is a *ref.ParseFailure when
// the citation did not parse, or the source error when its chapter could
// not be read.
type Result struct {
	Citation string          `json:"citation"`
	Ref      *ref.Reference  `json:"ref,omitempty"`
	Passage  *verses.Passage `json:"passage,omitempty"`
	Err      error           `json:"-"`
}

// Failure returns the parse failure of r, if any.
func (r Result) Failure() (*ref.ParseFailure, bool) {
	var pf *ref.ParseFailure
	if errors.As(r.Err, &pf) {
		return pf, true
	}
	return nil, false
}

// Empty reports whether r resolved but selected no verses.
func (r Result) Empty() bool {
	return r.Err == nil && r.Passage != nil && len(r.Passage.Verses) == 0
}

// Resolver resolves citation lists against one source.
type Resolver struct {
	parser      *ref.Parser
	src         verses.Source
	name        string
	concurrency int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConcurrency sets how many citations are fetched in parallel.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithSourceName sets the source name used in log records.
func WithSourceName(name string) Option {
	return func(r *Resolver) { r.name = name }
}

// New returns a Resolver. A nil parser selects the default book registry.
func New(p *ref.Parser, src verses.Source, opts ...Option) *Resolver {
	if p == nil {
		p = ref.NewParser(nil)
	}
	r := &Resolver{parser: p, src: src, name: "source", concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parser returns the parser used by r.
func (r *Resolver) Parser() *ref.Parser {
	return r.parser
}

// Source returns the verse source used by r.
func (r *Resolver) Source() verses.Source {
	return r.src
}

// Resolve resolves every citation of input. Results are in input order and
// a failing citation never affects the others. Empty input yields no
// results.
func (r *Resolver) Resolve(ctx context.Context, input string) []Result {
	outcomes := r.parser.ParseList(input)
	results := make([]Result, len(outcomes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, o := range outcomes {
		results[i] = Result{Citation: o.Citation, Ref: o.Ref, Err: o.Err}
		if o.Err != nil {
			var pf *ref.ParseFailure
			if errors.As(o.Err, &pf) {
				logging.CitationFailed(ctx, o.Citation, pf.Kind.String())
			}
			continue
		}
		g.Go(func() error {
			results[i].Passage, results[i].Err = r.fetch(gctx, o.Ref)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Resolver) fetch(ctx context.Context, rf *ref.Reference) (*verses.Passage, error) {
	p, err := verses.Fetch(ctx, r.src, rf)
	if err != nil {
		logging.SourceError(ctx, r.name, rf.Book.Key(), rf.Chapter(), err)
		return nil, err
	}
	return p, nil
}
