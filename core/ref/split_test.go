package ref

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"1 Mos 1:1-4; Joh 1:1-3,14", []string{"1 Mos 1:1-4", "Joh 1:1-3,14"}},
		{"  Ps 23  ", []string{"Ps 23"}},
		{";; Ps 23 ;\n; Joh 3:16;", []string{"Ps 23", "Joh 3:16"}},
		{"", nil},
		{" ; ", nil},
	}
	for _, tt := range tests {
		if got := SplitList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseList(t *testing.T) {
	p := NewParser(nil)
	out := p.ParseList("1 Mos 1:1-4; Xyz 2; Ps 23")
	if len(out) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(out))
	}

	if out[0].Err != nil || out[0].Ref.Book.EnglishName != "Genesis" {
		t.Errorf("first outcome = %+v", out[0])
	}
	if out[1].Ref != nil || !errors.Is(out[1].Err, ErrUnknownBook) {
		t.Errorf("second outcome = %+v, want unknown book", out[1])
	}
	if out[1].Citation != "Xyz 2" {
		t.Errorf("second citation = %q", out[1].Citation)
	}
	if out[2].Err != nil || out[2].Ref.Chapter() != 23 {
		t.Errorf("third outcome = %+v", out[2])
	}
}

func TestParserRegistry(t *testing.T) {
	p := NewParser(nil)
	if p.Registry() == nil || p.Registry().Len() != 66 {
		t.Fatal("NewParser(nil) should use the default registry")
	}
}
