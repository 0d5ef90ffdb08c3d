package spans

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/FocuswithJustin/JuniperCite/core/ref"
)

func vs(pairs ...[2]int) []ref.VerseSpan {
	out := make([]ref.VerseSpan, len(pairs))
	for i, p := range pairs {
		out[i] = ref.VerseSpan{Chapter: 1, Start: p[0], End: p[1]}
	}
	return out
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []ref.VerseSpan
		want Merged
	}{
		{"overlap coalesced", vs([2]int{1, 3}, [2]int{2, 5}), Merged{Ranges: []Range{{1, 5}}}},
		{"gap kept", vs([2]int{1, 2}, [2]int{4, 5}), Merged{Ranges: []Range{{1, 2}, {4, 5}}}},
		{"adjacent joined", vs([2]int{1, 2}, [2]int{3, 5}), Merged{Ranges: []Range{{1, 5}}}},
		{"unsorted input", vs([2]int{14, 14}, [2]int{1, 3}), Merged{Ranges: []Range{{1, 3}, {14, 14}}}},
		{"duplicates", vs([2]int{2, 2}, [2]int{2, 2}, [2]int{1, 3}), Merged{Ranges: []Range{{1, 3}}}},
		{"contained", vs([2]int{1, 10}, [2]int{3, 4}), Merged{Ranges: []Range{{1, 10}}}},
		{"single", vs([2]int{7, 7}), Merged{Ranges: []Range{{7, 7}}}},
		{"contained in max range", vs([2]int{5, 10}, [2]int{1, math.MaxInt}), Merged{Ranges: []Range{{1, math.MaxInt}}}},
		{"max range then tail", vs([2]int{1, math.MaxInt}, [2]int{math.MaxInt, math.MaxInt}), Merged{Ranges: []Range{{1, math.MaxInt}}}},
		{"empty", nil, Merged{}},
		{
			"whole chapter subsumes",
			append([]ref.VerseSpan{{Chapter: 1}}, vs([2]int{1, 2})...),
			Merged{Whole: true},
		},
		{
			"whole chapter anywhere",
			append(vs([2]int{1, 2}), ref.VerseSpan{Chapter: 1}),
			Merged{Whole: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	in := vs([2]int{4, 5}, [2]int{1, 2})
	before := slices.Clone(in)
	Merge(in)
	if !reflect.DeepEqual(in, before) {
		t.Errorf("input modified: %+v", in)
	}
}

func TestMergeReference(t *testing.T) {
	r, err := ref.Parse("Joh 1:1-3,2-5,14")
	if err != nil {
		t.Fatal(err)
	}
	got := MergeReference(r)
	if got.String() != "1-5,14" {
		t.Errorf("MergeReference() = %s, want 1-5,14", got)
	}
	huge, err := ref.Parse("Joh 1:5-10,1-9223372036854775807")
	if err != nil {
		t.Fatal(err)
	}
	if got := MergeReference(huge); len(got.Ranges) != 1 || got.Ranges[0] != (Range{1, math.MaxInt}) {
		t.Errorf("MergeReference(huge) = %+v, want a single 1-max range", got)
	}
	whole, _ := ref.Parse("Ps 23")
	if !MergeReference(whole).Whole {
		t.Error("Ps 23 should merge to the whole chapter")
	}
}

func TestMergedContains(t *testing.T) {
	m := Merge(vs([2]int{1, 3}, [2]int{7, 9}))
	for v, want := range map[int]bool{0: false, 1: true, 3: true, 4: false, 7: true, 9: true, 10: false} {
		if got := m.Contains(v); got != want {
			t.Errorf("Contains(%d) = %v, want %v", v, got, want)
		}
	}
	if !(Merged{Whole: true}).Contains(500) {
		t.Error("whole chapter should contain every verse")
	}
}

func genSpans(t *rapid.T) []ref.VerseSpan {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	out := make([]ref.VerseSpan, n)
	for i := range out {
		start := rapid.IntRange(1, 60).Draw(t, "start")
		end := start + rapid.IntRange(0, 10).Draw(t, "len")
		out[i] = ref.VerseSpan{Chapter: 1, Start: start, End: end}
	}
	return out
}

func verseSet(in []ref.VerseSpan) map[int]bool {
	set := make(map[int]bool)
	for _, s := range in {
		for v := s.Start; v <= s.End; v++ {
			set[v] = true
		}
	}
	return set
}

func TestMergeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := genSpans(t)
		got := Merge(in)

		if got.Whole {
			t.Fatalf("partial spans merged to whole chapter: %+v", in)
		}

		// sorted, non-overlapping, non-adjacent
		for i := 1; i < len(got.Ranges); i++ {
			if got.Ranges[i].Start <= got.Ranges[i-1].End+1 {
				t.Fatalf("ranges %v and %v overlap or touch", got.Ranges[i-1], got.Ranges[i])
			}
		}

		// covers exactly the requested verses
		want := verseSet(in)
		covered := verseSet(got.Spans(1))
		if !reflect.DeepEqual(want, covered) {
			t.Fatalf("coverage mismatch: requested %v, merged %v", want, covered)
		}

		// idempotent
		if again := Merge(got.Spans(1)); !reflect.DeepEqual(again, got) {
			t.Fatalf("Merge not idempotent: %+v then %+v", got, again)
		}

		// order-insensitive
		rev := slices.Clone(in)
		slices.Reverse(rev)
		if other := Merge(rev); !reflect.DeepEqual(other, got) {
			t.Fatalf("Merge depends on order: %+v vs %+v", got, other)
		}
	})
}

func TestMergeIdempotentWhole(t *testing.T) {
	m := Merge([]ref.VerseSpan{{Chapter: 3}})
	if again := Merge(m.Spans(3)); !reflect.DeepEqual(again, m) {
		t.Errorf("whole chapter not idempotent: %+v", again)
	}
}
