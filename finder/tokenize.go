package finder

import "strings"

type Token struct {
	Text  string
	Index int
}

var newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")

// Only single-digit ordinals are listed. "21st" still loses its suffix because it contains
// "1st", but "11th", "12th" and "13th" stay as they are.
var ordinalReplacer = strings.NewReplacer(
	"1st", "1",
	"2nd", "2",
	"3rd", "3",
	"4th", "4",
	"5th", "5",
	"6th", "6",
	"7th", "7",
	"8th", "8",
	"9th", "9",
)

func normalizeText(text string) string {
	text = newlineReplacer.Replace(text)
	return ordinalReplacer.Replace(text)
}

func tokenize(text string) []Token {
	fields := strings.Fields(normalizeText(text))
	tokens := make([]Token, len(fields))
	for i, field := range fields {
		tokens[i] = Token{
			Text:  field,
			Index: i,
		}
	}
	return tokens
}
