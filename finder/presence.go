package finder

import (
	"datefinder/dateparse"
	"datefinder/locale"
	"strings"
	"time"
)

// Bare numbers in this range make a year look typed out. It is a heuristic for presence only and
// doesn't move with Options.MinYear/MaxYear.
const (
	yearHintMin = 1900
	yearHintMax = 2050
)

// dayIsExplicit tells a typed "1" apart from the parser defaulting a missing day to the 1st
func dayIsExplicit(lex *locale.Lexicon, text string, date dateparse.Date) bool {
	if date.Day != 1 {
		return true
	}

	ones := 0
	for _, word := range normalizeWords(lex, text) {
		if value, ok := parseBareInt(word); ok && value == 1 {
			ones++
		}
	}

	if date.Month != time.January {
		return ones > 0
	}

	// In January a "1" may as well be the month
	switch ones {
	case 2:
		return true
	case 1:
		lowered := lex.Lower(text)
		abbreviated, full := lex.JanuaryNames()
		return (abbreviated != "" && strings.Contains(lowered, abbreviated)) ||
			(full != "" && strings.Contains(lowered, full))
	default:
		return false
	}
}

// yearIsExplicit tells a typed year apart from the parser defaulting a missing year to
// currentYear
func yearIsExplicit(lex *locale.Lexicon, text string, date dateparse.Date, currentYear int) bool {
	if date.Year != currentYear {
		return true
	}
	if strings.Contains(text, "'") {
		return true
	}

	words := normalizeWords(lex, text)
	allInts := true
	for _, word := range words {
		value, ok := parseBareInt(word)
		if !ok {
			allInts = false
			continue
		}
		if value >= yearHintMin && value <= yearHintMax {
			return true
		}
	}
	return len(words) == 3 && allInts
}
