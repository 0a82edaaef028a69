// Package finder pulls calendar dates out of free text. It walks the text token by token, offers
// the parser windows of up to four tokens starting at anything that looks like a date keyword,
// and keeps the longest window that parses to a date within the configured years.
//
// Each result also says whether the day and the year were actually written in the text or were
// filled in by the parser's defaults (the 1st of the month, the current year).
package finder

import (
	"datefinder/clock"
	"datefinder/dateparse"
	"datefinder/locale"
	"datefinder/oops"
	"errors"
)

const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2050
)

var ErrInvalidYearRange = errors.New("min year is greater than max year")

// Options are filled with defaults where left zero: the invariant locale, years 1900 to 2050,
// the system clock and no logging. Logger is shared by every ExtractDates call, so it has to be
// safe for concurrent use if the engine is.
type Options struct {
	Locale  string
	MinYear int
	MaxYear int
	Clock   clock.Clock
	Logger  Logger
}

type Result struct {
	Date      dateparse.Date `json:"date"`
	IsDaySet  bool           `json:"day_set"`
	IsYearSet bool           `json:"year_set"`
	// The candidate that was parsed and the token span it covered, End exclusive
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Engine is immutable after New and safe for concurrent use
type Engine struct {
	lex     *locale.Lexicon
	parser  *dateparse.Parser
	minYear int
	maxYear int
	clock   clock.Clock
	logger  Logger
}

func New(opts Options) (*Engine, error) {
	if opts.MinYear == 0 {
		opts.MinYear = DefaultMinYear
	}
	if opts.MaxYear == 0 {
		opts.MaxYear = DefaultMaxYear
	}
	if opts.MinYear > opts.MaxYear {
		return nil, oops.Wrapf(ErrInvalidYearRange, "%d > %d", opts.MinYear, opts.MaxYear)
	}
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}

	lex, err := locale.Load(opts.Locale)
	if err != nil {
		return nil, err
	}

	return &Engine{
		lex:     lex,
		parser:  dateparse.New(lex),
		minYear: opts.MinYear,
		maxYear: opts.MaxYear,
		clock:   opts.Clock,
		logger:  opts.Logger,
	}, nil
}

func NewDefault() (*Engine, error) {
	return New(Options{}) //nolint:exhaustruct
}

func NewWithLocale(localeName string) (*Engine, error) {
	return New(Options{Locale: localeName}) //nolint:exhaustruct
}

func NewWithYears(minYear, maxYear int) (*Engine, error) {
	return New(Options{MinYear: minYear, MaxYear: maxYear}) //nolint:exhaustruct
}

func NewWithLocaleAndYears(localeName string, minYear, maxYear int) (*Engine, error) {
	return New(Options{Locale: localeName, MinYear: minYear, MaxYear: maxYear}) //nolint:exhaustruct
}

func (e *Engine) Locale() *locale.Lexicon {
	return e.lex
}

func (e *Engine) YearRange() (minYear, maxYear int) {
	return e.minYear, e.maxYear
}

// ExtractDates returns the dates found in text in order of appearance. Matches never share
// tokens. No dates is an empty slice, not an error.
func (e *Engine) ExtractDates(text string) []Result {
	results := []Result{}
	now := e.clock.UTCNow()
	currentYear := now.Year()
	tokens := tokenize(text)

	for i := 0; i < len(tokens); i++ {
		if !isKeyword(e.lex, tokens[i].Text) {
			continue
		}

		for _, candidate := range windowsAt(tokens, i) {
			if !e.preProcess(candidate.Text) {
				e.logger.Info("Rejected numbers: %q", candidate.Text)
				continue
			}
			date, ok := e.parser.Resolve(candidate.Text, now)
			if !ok {
				continue
			}
			if !e.postProcess(date) {
				e.logger.Info("Year out of range: %q -> %s", candidate.Text, date)
				continue
			}

			result := Result{
				Date:      date,
				IsDaySet:  dayIsExplicit(e.lex, candidate.Text, date),
				IsYearSet: yearIsExplicit(e.lex, candidate.Text, date, currentYear),
				Text:      candidate.Text,
				Start:     candidate.Start,
				End:       candidate.End,
			}
			e.logger.Info(
				"Found date: %q -> %s (day set %t, year set %t)",
				candidate.Text, date, result.IsDaySet, result.IsYearSet,
			)
			results = append(results, result)
			i += candidate.Len() - 1
			break
		}
	}

	return results
}
