package finder

import (
	"datefinder/locale"
	"strconv"
	"strings"
)

var wordSeparatorReplacer = strings.NewReplacer(
	"/", " ",
	"-", " ",
	":", " ",
	".", " ",
	`\`, " ",
	"'", "",
	",", "",
)

var ordinalSuffixStripper = strings.NewReplacer("st", "", "th", "", "rd", "", "nd", "")

// normalizeWords lower-cases text and splits it into words at date separators
func normalizeWords(lex *locale.Lexicon, text string) []string {
	return strings.Fields(wordSeparatorReplacer.Replace(lex.Lower(text)))
}

func parseBareInt(s string) (int, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

func isBareInt(s string) bool {
	_, ok := parseBareInt(s)
	return ok
}

func isKeyword(lex *locale.Lexicon, token string) bool {
	for _, word := range normalizeWords(lex, token) {
		if lex.IsCalendarName(word) {
			return true
		}
		if isBareInt(ordinalSuffixStripper.Replace(word)) {
			return true
		}
	}
	return false
}
