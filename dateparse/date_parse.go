package dateparse

// Staged fuzzy parsing in the manner of Ruby's Date._parse (ext/date/date_parse.c): every stage
// looks for one shape of date, blanks out what it consumed, and records the fields it found.
// Month and weekday names come from a locale.Lexicon instead of being hardcoded English, and
// all-numeric dates follow the lexicon's field order.

import (
	"datefinder/locale"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/width"
)

type FuzzyDate struct {
	Year         int
	YearIsSet    bool
	Month        int
	MonthIsSet   bool
	Day          int // "mday"
	DayIsSet     bool
	Weekday      time.Weekday
	WeekdayIsSet bool
	Hour         int
	HourIsSet    bool
	Minute       int
	MinuteIsSet  bool
	Second       int
	SecondIsSet  bool
	IsTooLong    bool
	// Whatever no stage could explain, e.g. "and" in "March 5 and"
	Residue    string
	HasResidue bool
}

const maxInputLength = 128

const backtrackingRegexTimeout = 250 * time.Millisecond

const defaultTwoDigitYearMax = 2049

type Parser struct {
	lex             *locale.Lexicon
	twoDigitYearMax int

	fillerRegex        *regexp2.Regexp
	weekdayRegex       *regexp2.Regexp
	timeRegex          *regexp2.Regexp
	euRegex            *regexp2.Regexp
	usRegex            *regexp2.Regexp
	vms11Regex         *regexp2.Regexp
	vms12Regex         *regexp2.Regexp
	numericTripleRegex *regexp2.Regexp
	compactRegex       *regexp2.Regexp
	spacedTripleRegex  *regexp2.Regexp
	numericPairRegex   *regexp2.Regexp
	yearRegex          *regexp2.Regexp
	monRegex           *regexp2.Regexp
	mdayRegex          *regexp2.Regexp
}

type Option func(*Parser)

// WithTwoDigitYearMax sets the last year a two-digit year can expand to. With the default of
// 2049, "49" is 2049 and "50" is 1950.
func WithTwoDigitYearMax(year int) Option {
	return func(p *Parser) {
		p.twoDigitYearMax = year
	}
}

var invisibleRegex *regexp2.Regexp
var residuePunctuation = " \t,./-:'+"

func init() {
	invisibleRegex = regexp2.MustCompile(`[\s\p{Z}\p{Cf}]+`, regexp2.None)
}

const num = "[0-9]"
const ordinalSuffix = "(?:st|nd|rd|th)"
const letterBefore = `(?<!\p{L})`
const letterAfter = `(?!\p{L})`

func New(lex *locale.Lexicon, opts ...Option) *Parser {
	p := &Parser{
		lex:             lex,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}
	for _, opt := range opts {
		opt(p)
	}

	monthNames := lex.MonthNameList()
	var weekdayNames []string
	for _, name := range lex.WeekdayNameList() {
		// "mar" is both March and martes in Spanish; the month wins
		if _, isMonth := lex.MonthNumber(name); !isMonth {
			weekdayNames = append(weekdayNames, name)
		}
	}
	months := "(" + alternation(monthNames) + `)\.?` + letterAfter
	weekdays := "(" + alternation(weekdayNames) + `)\.?` + letterAfter

	mustCompile := func(pattern string) *regexp2.Regexp {
		regex := regexp2.MustCompile(pattern, regexp2.IgnoreCase)
		regex.MatchTimeout = backtrackingRegexTimeout
		return regex
	}

	if fillers := lex.Fillers(); len(fillers) > 0 {
		p.fillerRegex = mustCompile(letterBefore + "(?:" + alternation(fillers) + ")" + letterAfter)
	}
	p.weekdayRegex = mustCompile(letterBefore + weekdays + `,?`)
	p.timeRegex = mustCompile("" +
		/**/ `(?:(?<=` + num + `)t)?` +
		/**/ `(?<!` + num + `)(` + num + `{1,2})` +
		/**/ "(?:" +
		/*  */ `\s*:\s*(` + num + `{2})` +
		/*  */ `(?:\s*:\s*(` + num + `{2})(?:[.,]` + num + `+)?)?` +
		/*  */ `(?:\s*([ap])(?:m|\.m\.?)` + letterAfter + `)?` +
		/**/ "|" +
		/*  */ `\s*([ap])(?:m|\.m\.?)` + letterAfter +
		/**/ ")" +
		/**/ "(?:" +
		/*  */ `\s*(?:z|utc|gmt)` + letterAfter +
		/**/ "|" +
		/*  */ `\s*[-+]` + num + `{2}:?` + num + `{2}(?!` + num + `)` +
		/**/ ")?",
	)
	p.euRegex = mustCompile("" +
		/**/ `(?<!` + num + `)('?` + num + `{1,4})` + ordinalSuffix + `?\.?` +
		/**/ `[\s,]*` +
		/**/ letterBefore + months +
		/**/ "(?:" +
		/*  */ `[\s,.]*` +
		/*  */ `('?` + num + `+)` + ordinalSuffix + `?` +
		/**/ `)?(?!` + num + `)`,
	)
	p.usRegex = mustCompile("" +
		/**/ letterBefore + months +
		/**/ `[\s,.]*` +
		/**/ `('?` + num + `+)` + ordinalSuffix + `?(?![0-9\p{L}])` +
		/**/ "(?:" +
		/*  */ `[\s,.]*` +
		/*  */ `('?` + num + `+)` +
		/**/ `)?(?!` + num + `)`,
	)
	p.vms11Regex = mustCompile("" +
		`(?<!` + num + `)('?` + num + `+)-` + months + `-('?` + num + `+)(?!` + num + `)`,
	)
	p.vms12Regex = mustCompile("" +
		letterBefore + months + `-('?` + num + `+)(?:-('?` + num + `+))?(?!` + num + `)`,
	)
	p.numericTripleRegex = mustCompile("" +
		`(?<!` + num + `)('?` + num + `+)\s*[-/.]\s*('?` + num + `+)\s*[-/.]\s*('?` + num + `+)(?!` + num + `)`,
	)
	p.compactRegex = mustCompile(`(?<!` + num + `)(` + num + `{4})(` + num + `{2})(` + num + `{2})(?!` + num + `)`)
	p.spacedTripleRegex = mustCompile("" +
		`(?<![0-9'])('?` + num + `{1,4})\s+('?` + num + `{1,4})\s+('?` + num + `{1,4})(?!` + num + `)`,
	)
	p.numericPairRegex = mustCompile("" +
		`(?<!` + num + `)('?` + num + `+)\s*([-/])\s*('?` + num + `+)(?!` + num + `)`,
	)
	p.yearRegex = mustCompile(`'(` + num + `+)(?!` + num + `)`)
	p.monRegex = mustCompile(letterBefore + months)
	p.mdayRegex = mustCompile(`(?<!` + num + `)(` + num + `+)` + ordinalSuffix + letterAfter)

	return p
}

// Longest first, so that "march" is tried before "mar"
func alternation(names []string) string {
	sorted := slices.Clone(names)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return len([]rune(b)) - len([]rune(a))
	})
	escaped := make([]string, 0, len(sorted))
	for _, name := range sorted {
		if name == "" {
			continue
		}
		escaped = append(escaped, regexp2.Escape(name))
	}
	if len(escaped) == 0 {
		// Matches nothing
		return "(?!)"
	}
	return strings.Join(escaped, "|")
}

func subs(str *string, match *regexp2.Match) {
	*str = strings.Replace(*str, match.String(), " ", 1)
}

func findMatch(regex *regexp2.Regexp, str string) *regexp2.Match {
	if regex == nil {
		return nil
	}
	match, err := regex.FindStringMatch(str)
	if err != nil {
		return nil
	}
	return match
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitCount(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			count++
		}
	}
	return count
}

// A field is year-like when it can only be a year: apostrophe shorthand or more than two digits
func isYearLike(field string) bool {
	return field != "" && (field[0] == '\'' || digitCount(field) > 2)
}

func (p *Parser) expandYear(year int) int {
	century := p.twoDigitYearMax / 100 * 100
	year += century
	if year > p.twoDigitYearMax {
		year -= 100
	}
	return year
}

func (p *Parser) setYear(fd *FuzzyDate, field string) {
	digits := strings.TrimLeft(field, "'")
	year, err := strconv.Atoi(digits)
	if err != nil {
		return
	}
	if field[0] == '\'' || len(digits) <= 2 {
		year = p.expandYear(year)
	}
	fd.Year = year
	fd.YearIsSet = true
}

func setMonth(fd *FuzzyDate, field string) {
	month, err := strconv.Atoi(strings.TrimLeft(field, "'"))
	if err == nil {
		fd.Month = month
		fd.MonthIsSet = true
	}
}

func setDay(fd *FuzzyDate, field string) {
	day, err := strconv.Atoi(strings.TrimLeft(field, "'"))
	if err == nil {
		fd.Day = day
		fd.DayIsSet = true
	}
}

// s3e sorts out which of three loosely captured fields is the year, month and day
func (p *Parser) s3e(fd *FuzzyDate, year, month, day string) {
	if year != "" && month != "" && day == "" {
		year, month, day = day, year, month
	}

	if year == "" {
		if day != "" && len(day) > 2 {
			year, day = day, ""
		}
		if day != "" && day[0] == '\'' {
			year, day = day, ""
		}
	}

	if month != "" {
		if month[0] == '\'' || len(month) > 2 {
			// us -> be
			year, month, day = month, day, year
		}
	}

	if day != "" {
		if day[0] == '\'' || len(day) > 2 {
			year, day = day, year
		}
	}

	if year != "" {
		p.setYear(fd, year)
	}
	if month != "" {
		setMonth(fd, month)
	}
	if day != "" {
		setDay(fd, day)
	}
}

// orderNumeric assigns three numeric fields by the locale order, unless the first one can only
// be a year, in which case it's year-month-day regardless of locale
func (p *Parser) orderNumeric(fd *FuzzyDate, a, b, c string) {
	var year, month, day string
	switch {
	case isYearLike(a) || p.lex.Order() == locale.OrderYMD:
		year, month, day = a, b, c
	case p.lex.Order() == locale.OrderDMY:
		day, month, year = a, b, c
	default:
		month, day, year = a, b, c
	}
	p.setYear(fd, year)
	setMonth(fd, month)
	setDay(fd, day)
}

func (p *Parser) monthNum(name string) string {
	month, ok := p.lex.MonthNumber(strings.TrimRight(name, "."))
	if !ok {
		return ""
	}
	return strconv.Itoa(int(month))
}

func (p *Parser) parseWeekday(str *string, fd *FuzzyDate) {
	match := findMatch(p.weekdayRegex, *str)
	if match == nil {
		return
	}
	subs(str, match)
	groups := match.Groups()

	fd.Weekday, fd.WeekdayIsSet = p.lex.Weekday(groups[1].String())
}

func (p *Parser) parseTime(str *string, fd *FuzzyDate) {
	match := findMatch(p.timeRegex, *str)
	if match == nil {
		return
	}
	subs(str, match)
	groups := match.Groups()

	hour, err := strconv.Atoi(groups[1].String())
	if err != nil {
		return
	}
	if groups[2].Length > 0 {
		fd.Minute, _ = strconv.Atoi(groups[2].String())
		fd.MinuteIsSet = true
	}
	if groups[3].Length > 0 {
		fd.Second, _ = strconv.Atoi(groups[3].String())
		fd.SecondIsSet = true
	}

	ampm := groups[4].String() + groups[5].String()
	if ampm != "" {
		if hour < 1 || hour > 12 {
			// 13pm is not a time, leave it for Resolve to reject
			hour = 99
		} else {
			hour %= 12
			if ampm[0] == 'p' || ampm[0] == 'P' {
				hour += 12
			}
		}
	}
	fd.Hour = hour
	fd.HourIsSet = true
}

func (p *Parser) parseEU(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.euRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	day := groups[1].String()
	month := p.monthNum(groups[2].String())
	year := groups[3].String()

	p.s3e(fd, year, month, day)
	return true
}

func (p *Parser) parseUS(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.usRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	month := p.monthNum(groups[1].String())
	day := groups[2].String()
	year := groups[3].String()

	p.s3e(fd, year, month, day)
	return true
}

func (p *Parser) parseVMS(str *string, fd *FuzzyDate) bool {
	if match := findMatch(p.vms11Regex, *str); match != nil {
		subs(str, match)
		groups := match.Groups()

		day := groups[1].String()
		month := p.monthNum(groups[2].String())
		year := groups[3].String()

		p.s3e(fd, year, month, day)
		return true
	}

	if match := findMatch(p.vms12Regex, *str); match != nil {
		subs(str, match)
		groups := match.Groups()

		month := p.monthNum(groups[1].String())
		day := groups[2].String()
		year := groups[3].String()

		p.s3e(fd, year, month, day)
		return true
	}

	return false
}

func (p *Parser) parseNumericTriple(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.numericTripleRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	p.orderNumeric(fd, groups[1].String(), groups[2].String(), groups[3].String())
	return true
}

func (p *Parser) parseCompact(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.compactRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	p.setYear(fd, groups[1].String())
	setMonth(fd, groups[2].String())
	setDay(fd, groups[3].String())
	return true
}

func (p *Parser) parseSpacedTriple(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.spacedTripleRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	p.orderNumeric(fd, groups[1].String(), groups[2].String(), groups[3].String())
	return true
}

// parseNumericPair handles month/day and month/year. Two short numbers only count with a slash,
// so that ranges like "10-12" stay ranges.
func (p *Parser) parseNumericPair(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.numericPairRegex, *str)
	if match == nil {
		return false
	}
	groups := match.Groups()
	a := groups[1].String()
	separator := groups[2].String()
	b := groups[3].String()

	switch {
	case isYearLike(a) && !isYearLike(b):
		p.setYear(fd, a)
		setMonth(fd, b)
	case isYearLike(b) && !isYearLike(a):
		setMonth(fd, a)
		p.setYear(fd, b)
	case isYearLike(a) || separator != "/":
		return false
	case p.lex.Order() == locale.OrderDMY:
		setDay(fd, a)
		setMonth(fd, b)
	default:
		setMonth(fd, a)
		setDay(fd, b)
	}
	subs(str, match)
	return true
}

func (p *Parser) parseYear(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.yearRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)

	p.setYear(fd, match.String())
	return true
}

func (p *Parser) parseMon(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.monRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	setMonth(fd, p.monthNum(groups[1].String()))
	return true
}

func (p *Parser) parseMDay(str *string, fd *FuzzyDate) bool {
	match := findMatch(p.mdayRegex, *str)
	if match == nil {
		return false
	}
	subs(str, match)
	groups := match.Groups()

	setDay(fd, groups[1].String())
	return true
}

func (p *Parser) prepare(str string) string {
	str = width.Fold.String(str)
	str = p.lex.Lower(str)
	str = strings.ReplaceAll(str, `\`, "/")
	str, _ = invisibleRegex.Replace(str, " ", -1, -1)
	if p.fillerRegex != nil {
		if replaced, err := p.fillerRegex.Replace(str, " ", -1, -1); err == nil {
			str = replaced
		}
	}
	return str
}

// Parse pulls whatever date fields it can recognize out of str. Fields that aren't in the text
// are left unset; use Resolve to get a calendar date with defaults applied.
func (p *Parser) Parse(str string) FuzzyDate {
	if len(str) > maxInputLength {
		return FuzzyDate{IsTooLong: true}
	}

	var fd FuzzyDate
	str = p.prepare(str)
	hasLetter := strings.IndexFunc(str, unicode.IsLetter) >= 0
	hasDigit := strings.IndexFunc(str, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0

	if hasLetter {
		p.parseWeekday(&str, &fd)
	}
	if hasDigit {
		p.parseTime(&str, &fd)
	}

	if hasLetter && hasDigit {
		if p.parseEU(&str, &fd) {
			goto ok
		}
		if p.parseUS(&str, &fd) {
			goto ok
		}
		if p.parseVMS(&str, &fd) {
			goto ok
		}
	}
	if hasDigit {
		if p.parseNumericTriple(&str, &fd) {
			goto ok
		}
		if p.parseCompact(&str, &fd) {
			goto ok
		}
		if p.parseSpacedTriple(&str, &fd) {
			goto ok
		}
		if p.parseNumericPair(&str, &fd) {
			goto ok
		}
		if p.parseYear(&str, &fd) {
			goto ok
		}
	}
	if hasLetter {
		if p.parseMon(&str, &fd) {
			goto ok
		}
	}
	if hasDigit {
		if p.parseMDay(&str, &fd) {
			goto ok
		}
	}

ok:
	residue := strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(residuePunctuation, r) {
			return ' '
		}
		return r
	}, str))
	if residue != "" {
		fd.Residue = residue
		fd.HasResidue = true
	}

	return fd
}
