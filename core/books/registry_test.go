package books

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Gen", "gen"},
		{"  1.  Mos. ", "1 mos"},
		{"Song   of\tSongs", "song of songs"},
		{"FÖRSTA MOSEBOKEN", "första moseboken"},
		{"fo\u0308rsta", "första"}, // decomposed
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompactAndSpacedKey(t *testing.T) {
	tests := []struct {
		in, compact, spaced string
	}{
		{"1 Mos", "1mos", "1 mos"},
		{"1mos", "1mos", "1 mos"},
		{"1. Mos", "1mos", "1 mos"},
		{"1 Kung", "1kung", "1 kung"},
		{"Joh", "joh", "joh"},
		{"Song of Songs", "song of songs", "song of songs"},
	}
	for _, tt := range tests {
		c := CompactKey(tt.in)
		if c != tt.compact {
			t.Errorf("CompactKey(%q) = %q, want %q", tt.in, c, tt.compact)
		}
		if s := SpacedKey(c); s != tt.spaced {
			t.Errorf("SpacedKey(%q) = %q, want %q", c, s, tt.spaced)
		}
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	tests := []struct {
		input string
		want  string // English name
	}{
		{"1 Mos", "Genesis"},
		{"1mos", "Genesis"},
		{"1. Mos", "Genesis"},
		{"Genesis", "Genesis"},
		{"första moseboken", "Genesis"},
		{"Första Moseboken", "Genesis"},
		{"JOH", "John"},
		{"joh", "John"},
		{"John", "John"},
		{"Johannesevangeliet", "John"},
		{"1 Joh", "1 John"},
		{"1joh", "1 John"},
		{"3 John", "3 John"},
		{"1 Kung", "1 Kings"},
		{"1kung", "1 Kings"},
		{"1 Krön", "1 Chronicles"},
		{"Ps", "Psalms"},
		{"Psalm", "Psalms"},
		{"Höga Visan", "Song of Songs"},
		{"song of solomon", "Song of Songs"},
		{"Upp", "Revelation"},
		{"Apg", "Acts"},
		// abbreviation and spacing variants held in the alias sets
		{"1 Thess", "1 Thessalonians"},
		{"1Thess", "1 Thessalonians"},
		{"2 Samuel", "2 Samuel"},
		{"2Samuel", "2 Samuel"},
		{"Phlm", "Philemon"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, ok := reg.Lookup(tt.input)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.input)
			}
			if b.EnglishName != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.input, b.EnglishName, tt.want)
			}
		})
	}
}

func TestLookupNotFound(t *testing.T) {
	reg := Default()
	for _, in := range []string{"", "   ", "Xyz", "4 Joh", "Genesis Exodus", "..."} {
		if b, ok := reg.Lookup(in); ok {
			t.Errorf("Lookup(%q) = %s, want not found", in, b.EnglishName)
		}
	}
}

func TestLookupSameIdentity(t *testing.T) {
	reg := Default()
	a, _ := reg.Lookup("JOH")
	b, _ := reg.Lookup("joh")
	c, _ := reg.Lookup("John")
	if a == nil || a != b || b != c {
		t.Fatalf("expected identical book pointers, got %p %p %p", a, b, c)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg.Len() != 66 {
		t.Fatalf("Len() = %d, want 66", reg.Len())
	}
	all := reg.Books()
	if all[0].EnglishName != "Genesis" || all[65].EnglishName != "Revelation" {
		t.Errorf("unexpected canon order: first %s, last %s", all[0].EnglishName, all[65].EnglishName)
	}
	if Default() != reg {
		t.Error("Default() should return the same registry")
	}

	seen := make(map[string]string)
	for _, b := range all {
		if b.OSIS() == "" || b.SwedishName == "" || b.SwedishAbbr == "" {
			t.Errorf("%s has empty canonical fields", b.EnglishName)
		}
		for _, a := range b.Aliases {
			if a != Normalize(a) {
				t.Errorf("alias %q of %s is not normalized", a, b.EnglishName)
			}
			if owner, dup := seen[a]; dup {
				t.Errorf("alias %q shared by %s and %s", a, owner, b.EnglishName)
			}
			seen[a] = b.EnglishName
		}
	}
}

func TestLookupCanonicalFallback(t *testing.T) {
	reg, err := NewRegistry([]Book{
		{EnglishName: "1 Kings", EnglishAbbr: "1Kgs", SwedishName: "Första Kungaboken", SwedishAbbr: "1 Kung"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"1 KINGS", "1kings", "1kgs", "1 Kgs", "första kungaboken", "1. Kung", "1kung"} {
		b, ok := reg.Lookup(in)
		if !ok || b.EnglishName != "1 Kings" {
			t.Errorf("Lookup(%q) = %v, %v, want 1 Kings", in, b, ok)
		}
	}
	for _, in := range []string{"Kings", "2 Kings", "kung"} {
		if _, ok := reg.Lookup(in); ok {
			t.Errorf("Lookup(%q) should fail", in)
		}
	}
}

func TestBooksReturnsCopies(t *testing.T) {
	reg := MustNewRegistry([]Book{
		{EnglishName: "Jude", EnglishAbbr: "Jude", SwedishName: "Judasbrevet", SwedishAbbr: "Jud", Aliases: []string{"judas"}},
	})
	list := reg.Books()
	list[0].EnglishName = "changed"
	list[0].Aliases[0] = "changed"

	again := reg.Books()
	if again[0].EnglishName != "Jude" || again[0].Aliases[0] != "judas" {
		t.Errorf("registry modified through Books(): %+v", again[0])
	}
	if b, ok := reg.Lookup("judas"); !ok || b.EnglishName != "Jude" {
		t.Errorf("Lookup(judas) = %v, %v", b, ok)
	}
}

func TestNewRegistryRejectsSharedAlias(t *testing.T) {
	_, err := NewRegistry([]Book{
		{EnglishName: "Jude", EnglishAbbr: "Jude", SwedishName: "Judasbrevet", SwedishAbbr: "Jud", Aliases: []string{"jud"}},
		{EnglishName: "Judges", EnglishAbbr: "Judg", SwedishName: "Domarboken", SwedishAbbr: "Dom", Aliases: []string{"Jud."}},
	})
	if err == nil || !strings.Contains(err.Error(), `"jud"`) {
		t.Fatalf("expected shared alias error, got %v", err)
	}
}

func TestBookNames(t *testing.T) {
	b, _ := Default().Lookup("1 mos")
	if got := b.Name(Swedish); got != "Första Moseboken" {
		t.Errorf("Name(sv) = %q", got)
	}
	if got := b.Abbr(English); got != "Gen" {
		t.Errorf("Abbr(en) = %q", got)
	}
	if b.Key() != "Genesis" {
		t.Errorf("Key() = %q", b.Key())
	}
}

func TestParseLang(t *testing.T) {
	for in, want := range map[string]Lang{"en": English, "EN": English, "": English, "sv": Swedish, "Svenska": Swedish} {
		got, err := ParseLang(in)
		if err != nil || got != want {
			t.Errorf("ParseLang(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseLang("de"); err == nil {
		t.Error("ParseLang(de) should fail")
	}
}
