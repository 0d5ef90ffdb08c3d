// Package spans merges the verse spans of one chapter into the minimal
// sorted set of non-overlapping ranges that covers them.
package spans

import (
	"slices"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperCite/core/ref"
)

// Range is an inclusive verse range, Start <= End.
type Range struct {
	Start int `json:"v1"`
	End   int `json:"v2"`
}

// Contains reports whether verse v lies in the range.
func (r Range) Contains(v int) bool {
	return v >= r.Start && v <= r.End
}

func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Merged is the result of Merge: either the whole chapter, or ranges
// sorted by Start where no two ranges overlap or touch.
type Merged struct {
	Whole  bool    `json:"whole_chapter"`
	Ranges []Range `json:"ranges,omitempty"`
}

// Contains reports whether verse v is requested.
func (m Merged) Contains(v int) bool {
	if m.Whole {
		return true
	}
	i, found := slices.BinarySearchFunc(m.Ranges, v, func(r Range, v int) int {
		switch {
		case r.End < v:
			return -1
		case r.Start > v:
			return 1
		}
		return 0
	})
	return found && m.Ranges[i].Contains(v)
}

// Spans converts the merged result back to verse spans of chapter, so it
// can be fed to Merge again.
func (m Merged) Spans(chapter int) []ref.VerseSpan {
	if m.Whole {
		return []ref.VerseSpan{{Chapter: chapter}}
	}
	out := make([]ref.VerseSpan, len(m.Ranges))
	for i, r := range m.Ranges {
		out[i] = ref.VerseSpan{Chapter: chapter, Start: r.Start, End: r.End}
	}
	return out
}

func (m Merged) String() string {
	if m.Whole {
		return "whole chapter"
	}
	parts := make([]string, len(m.Ranges))
	for i, r := range m.Ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Merge coalesces spans sharing one chapter. Any whole-chapter span makes
// the result the whole chapter. Otherwise ranges are sorted and any that
// overlap or are adjacent (2-3 and 4-5) are joined, so the output does not
// depend on input order or duplicates.
func Merge(in []ref.VerseSpan) Merged {
	rs := make([]Range, 0, len(in))
	for _, s := range in {
		if s.WholeChapter() {
			return Merged{Whole: true}
		}
		rs = append(rs, Range{Start: s.Start, End: s.End})
	}
	if len(rs) == 0 {
		return Merged{}
	}

	slices.SortFunc(rs, func(a, b Range) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	out := rs[:1]
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		// Start >= 1, so Start-1 cannot overflow where End+1 could.
		if r.Start-1 <= last.End {
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}
	return Merged{Ranges: slices.Clip(out)}
}

// MergeReference merges the spans of a parsed reference.
func MergeReference(r *ref.Reference) Merged {
	return Merge(r.Spans)
}
