package ref

import "strings"

// SplitList splits a multi-citation input on ';', trimming each piece and
// dropping empty ones.
func SplitList(input string) []string {
	var out []string
	for _, piece := range strings.Split(input, ";") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// Outcome is the result of parsing one item of a list. Exactly one of Ref
// and Err is set.
type Outcome struct {
	Citation string
	Ref      *Reference
	Err      error
}

// ParseList splits input and parses every piece independently. Outcomes
// are in input order; a failed piece does not affect its siblings.
func (p *Parser) ParseList(input string) []Outcome {
	pieces := SplitList(input)
	out := make([]Outcome, len(pieces))
	for i, piece := range pieces {
		r, err := p.Parse(piece)
		out[i] = Outcome{Citation: piece, Ref: r, Err: err}
	}
	return out
}
