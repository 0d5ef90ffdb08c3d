package ref

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// citationLexer tokenizes a single citation. Other catches every rune the
// grammar has no use for so lexing itself never fails.
var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[\pL\pM]+`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dash", Pattern: `[-–]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `.`},
})

var (
	symbols   = citationLexer.Symbols()
	tokInt    = symbols["Int"]
	tokWord   = symbols["Word"]
	tokDot    = symbols["Dot"]
	tokColon  = symbols["Colon"]
	tokSpace  = symbols["Whitespace"]
	tokEOF    = lexer.EOF
	dashRunes = "-–"
)

// spanItem is the grammar of one comma-separated verse item:
// an optional "v" or "v." marker, a verse, optionally a dash and a verse.
// Examples: "16", "1-3", "v.14", "V 2–5"
//
//nolint:govet // participle grammar tags are not standard struct tags
type spanItem struct {
	Marker string `( @"v" Dot? )?`
	Start  int    `@Int`
	End    *int   `( Dash @Int )?`
}

var spanParser = participle.MustBuild[spanItem](
	participle.Lexer(citationLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Word"),
)

// tokenize lexes s into tokens, the final one being EOF.
func tokenize(s string) ([]lexer.Token, error) {
	lex, err := citationLexer.Lex("", strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}

func countDashes(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(dashRunes, r) {
			n++
		}
	}
	return n
}
