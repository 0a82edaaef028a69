package finder

import "strings"

const maxWindowTokens = 4

// Candidate is a run of consecutive tokens offered to the parser. End is exclusive.
type Candidate struct {
	Text  string
	Start int
	End   int
}

func (c Candidate) Len() int {
	return c.End - c.Start
}

// windowsAt lists the candidates starting at token start, longest first
func windowsAt(tokens []Token, start int) []Candidate {
	length := min(maxWindowTokens, len(tokens)-start)
	if length <= 0 {
		return nil
	}

	candidates := make([]Candidate, 0, length)
	for ; length >= 1; length-- {
		var sb strings.Builder
		for i := start; i < start+length; i++ {
			if i > start {
				sb.WriteByte(' ')
			}
			sb.WriteString(tokens[i].Text)
		}
		candidates = append(candidates, Candidate{
			Text:  sb.String(),
			Start: start,
			End:   start + length,
		})
	}
	return candidates
}
