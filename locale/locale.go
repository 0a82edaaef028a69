// Package locale holds the calendar name tables the extractor matches against: month and weekday
// names, full and abbreviated, plus the numeric field order and connective words of a language.
//
// Tables are bundled as YAML and lower-cased once when loaded. A Lexicon never changes after
// Load returns, so one value can be shared by any number of goroutines.
package locale

import (
	"datefinder/oops"
	"embed"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	om "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var tablesFS embed.FS

const Invariant = "invariant"

var ErrUnknownLocale = errors.New("unknown locale")

// Order is the sequence of day, month and year in all-numeric dates like 03/04/2024
type Order int

const (
	OrderMDY Order = iota
	OrderDMY
	OrderYMD
)

func (o Order) String() string {
	switch o {
	case OrderMDY:
		return "mdy"
	case OrderDMY:
		return "dmy"
	case OrderYMD:
		return "ymd"
	default:
		panic(fmt.Errorf("Unknown order: %d", int(o)))
	}
}

func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(node.Value) {
	case "mdy":
		*o = OrderMDY
	case "dmy":
		*o = OrderDMY
	case "ymd":
		*o = OrderYMD
	default:
		return oops.Newf("unknown date order: %q", node.Value)
	}
	return nil
}

type table struct {
	Name              string         `yaml:"name"`
	Tag               string         `yaml:"tag"`
	Order             Order          `yaml:"order"`
	Months            []string       `yaml:"months"`
	AbbreviatedMonths []string       `yaml:"abbreviated_months"`
	Days              []string       `yaml:"days"`
	AbbreviatedDays   []string       `yaml:"abbreviated_days"`
	MonthAliases      map[string]int `yaml:"month_aliases"`
	DayAliases        map[string]int `yaml:"day_aliases"`
	Fillers           []string       `yaml:"fillers"`
}

type Lexicon struct {
	name              string
	tag               language.Tag
	order             Order
	months            []string
	abbreviatedMonths []string
	days              []string
	abbreviatedDays   []string
	fillers           []string
	monthByName       *om.OrderedMap[string, time.Month]
	weekdayByName     *om.OrderedMap[string, time.Weekday]
	calendarNames     map[string]bool
}

var tableNames []string
var matcher language.Matcher
var matcherNames []string

func init() {
	entries, err := tablesFS.ReadDir("data")
	if err != nil {
		panic(err)
	}

	var tags []language.Tag
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		tableNames = append(tableNames, name)
		if name == Invariant {
			continue
		}
		tags = append(tags, language.MustParse(name))
		matcherNames = append(matcherNames, name)
	}
	matcher = language.NewMatcher(tags)
}

// Available lists the bundled tables by name
func Available() []string {
	return slices.Clone(tableNames)
}

// Load resolves name to a bundled table. "", "invariant" and "iv" are the locale-neutral
// table; anything else is a BCP 47 tag matched against the bundled languages, so "fr-CA"
// gets the French table.
func Load(name string) (*Lexicon, error) {
	tableName, err := resolve(name)
	if err != nil {
		return nil, err
	}

	content, err := tablesFS.ReadFile(path.Join("data", tableName+".yaml"))
	if err != nil {
		return nil, oops.Wrap(err)
	}

	var t table
	if err := yaml.Unmarshal(content, &t); err != nil {
		return nil, oops.Wrapf(err, "parsing locale table %s", tableName)
	}

	return newLexicon(t)
}

// ResolveName is the name of the bundled table that Load would pick for name
func ResolveName(name string) (string, error) {
	return resolve(name)
}

func MustLoad(name string) *Lexicon {
	lex, err := Load(name)
	if err != nil {
		panic(err)
	}
	return lex
}

func resolve(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Invariant, "iv":
		return Invariant, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return "", oops.Wrapf(ErrUnknownLocale, "%q: %v", name, err)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", oops.Wrapf(ErrUnknownLocale, "%q", name)
	}
	return matcherNames[index], nil
}

func newLexicon(t table) (*Lexicon, error) {
	tag := language.Und
	if t.Tag != "" && t.Tag != "und" {
		var err error
		tag, err = language.Parse(t.Tag)
		if err != nil {
			return nil, oops.Wrapf(err, "locale table %s", t.Name)
		}
	}
	lower := cases.Lower(tag)
	normalize := func(names []string) []string {
		result := make([]string, len(names))
		for i, name := range names {
			// Keyword matching strips dots, so "janv." has to be stored as "janv"
			result[i] = strings.TrimRight(lower.String(strings.TrimSpace(name)), ".")
		}
		return result
	}

	lex := &Lexicon{
		name:              t.Name,
		tag:               tag,
		order:             t.Order,
		months:            normalize(t.Months),
		abbreviatedMonths: normalize(t.AbbreviatedMonths),
		days:              normalize(t.Days),
		abbreviatedDays:   normalize(t.AbbreviatedDays),
		fillers:           normalize(t.Fillers),
		monthByName:       om.New[string, time.Month](),
		weekdayByName:     om.New[string, time.Weekday](),
		calendarNames:     map[string]bool{},
	}

	for _, names := range [][]string{lex.months, lex.abbreviatedMonths} {
		if countNonEmpty(names) != 12 {
			return nil, oops.Newf("locale table %s: expected 12 month names, got %v", t.Name, names)
		}
		month := time.January
		for _, name := range names {
			if name == "" {
				continue
			}
			lex.setMonth(name, month)
			lex.calendarNames[name] = true
			month++
		}
	}
	for _, names := range [][]string{lex.days, lex.abbreviatedDays} {
		if countNonEmpty(names) != 7 {
			return nil, oops.Newf("locale table %s: expected 7 day names, got %v", t.Name, names)
		}
		weekday := time.Sunday
		for _, name := range names {
			if name == "" {
				continue
			}
			lex.setWeekday(name, weekday)
			lex.calendarNames[name] = true
			weekday++
		}
	}

	for _, alias := range sortedKeys(t.MonthAliases) {
		month := t.MonthAliases[alias]
		if month < 1 || month > 12 {
			return nil, oops.Newf("locale table %s: month alias %q -> %d", t.Name, alias, month)
		}
		lex.setMonth(lower.String(alias), time.Month(month))
	}
	for _, alias := range sortedKeys(t.DayAliases) {
		weekday := t.DayAliases[alias]
		if weekday < 0 || weekday > 6 {
			return nil, oops.Newf("locale table %s: day alias %q -> %d", t.Name, alias, weekday)
		}
		lex.setWeekday(lower.String(alias), time.Weekday(weekday))
	}

	return lex, nil
}

// First writer wins, so a full name shadows an identical abbreviation from a later list
func (l *Lexicon) setMonth(name string, month time.Month) {
	if _, ok := l.monthByName.Get(name); !ok {
		l.monthByName.Set(name, month)
	}
}

func (l *Lexicon) setWeekday(name string, weekday time.Weekday) {
	if _, ok := l.weekdayByName.Get(name); !ok {
		l.weekdayByName.Set(name, weekday)
	}
}

func countNonEmpty(names []string) int {
	count := 0
	for _, name := range names {
		if name != "" {
			count++
		}
	}
	return count
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (l *Lexicon) Name() string {
	return l.name
}

func (l *Lexicon) Tag() language.Tag {
	return l.tag
}

func (l *Lexicon) Order() Order {
	return l.order
}

func (l *Lexicon) AbbreviatedMonthNames() []string {
	return slices.Clone(l.abbreviatedMonths)
}

func (l *Lexicon) AbbreviatedDayNames() []string {
	return slices.Clone(l.abbreviatedDays)
}

func (l *Lexicon) DayNames() []string {
	return slices.Clone(l.days)
}

func (l *Lexicon) MonthNames() []string {
	return slices.Clone(l.months)
}

func (l *Lexicon) Fillers() []string {
	return slices.Clone(l.fillers)
}

// IsCalendarName reports whether the lower-cased word is one of the four name tables. Aliases
// don't count. Empty entries never match.
func (l *Lexicon) IsCalendarName(word string) bool {
	if word == "" {
		return false
	}
	return l.calendarNames[word]
}

// MonthNumber looks up a lower-cased month name, abbreviation or alias
func (l *Lexicon) MonthNumber(word string) (time.Month, bool) {
	return l.monthByName.Get(word)
}

// Weekday looks up a lower-cased day name, abbreviation or alias
func (l *Lexicon) Weekday(word string) (time.Weekday, bool) {
	return l.weekdayByName.Get(word)
}

// JanuaryNames is the abbreviated and the full name of the first month
func (l *Lexicon) JanuaryNames() (abbreviated string, full string) {
	return firstNonEmpty(l.abbreviatedMonths), firstNonEmpty(l.months)
}

func firstNonEmpty(names []string) string {
	for _, name := range names {
		if name != "" {
			return name
		}
	}
	return ""
}

// MonthNameList has every month spelling in table order: full names, abbreviations, aliases
func (l *Lexicon) MonthNameList() []string {
	names := make([]string, 0, l.monthByName.Len())
	for pair := l.monthByName.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// WeekdayNameList has every weekday spelling in table order
func (l *Lexicon) WeekdayNameList() []string {
	names := make([]string, 0, l.weekdayByName.Len())
	for pair := l.weekdayByName.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Lower applies the lexicon's language casing rules
func (l *Lexicon) Lower(s string) string {
	return cases.Lower(l.tag).String(s)
}

func (l *Lexicon) String() string {
	return fmt.Sprintf("%s (%s, %s)", l.name, l.tag, l.order)
}
