//go:build testing

package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadResolvesNames(t *testing.T) {
	type Test struct {
		Name         string
		ExpectedName string
		ExpectedTag  language.Tag
	}
	tests := []Test{
		{Name: "", ExpectedName: "invariant", ExpectedTag: language.Und},
		{Name: "Invariant", ExpectedName: "invariant", ExpectedTag: language.Und},
		{Name: "iv", ExpectedName: "invariant", ExpectedTag: language.Und},
		{Name: "en", ExpectedName: "en", ExpectedTag: language.English},
		{Name: "en-US", ExpectedName: "en", ExpectedTag: language.English},
		{Name: "en-GB", ExpectedName: "en-GB", ExpectedTag: language.BritishEnglish},
		{Name: "fr-CA", ExpectedName: "fr", ExpectedTag: language.French},
		{Name: "de-AT", ExpectedName: "de", ExpectedTag: language.German},
		{Name: "pt-BR", ExpectedName: "pt", ExpectedTag: language.Portuguese},
	}

	for _, test := range tests {
		lex, err := Load(test.Name)
		require.NoError(t, err, test.Name)
		require.Equal(t, test.ExpectedName, lex.Name(), test.Name)
		require.Equal(t, test.ExpectedTag, lex.Tag(), test.Name)
	}
}

func TestLoadUnknown(t *testing.T) {
	for _, name := range []string{"zh", "ja-JP", "not a tag!"} {
		_, err := Load(name)
		require.ErrorIs(t, err, ErrUnknownLocale, name)
	}
}

func TestResolveName(t *testing.T) {
	type Test struct {
		Name     string
		Expected string
	}
	tests := []Test{
		{"", Invariant},
		{"IV", Invariant},
		{"FR", "fr"},
		{"fr-CA", "fr"},
		{"en-GB", "en-GB"},
		{"en-US", "en"},
	}
	for _, test := range tests {
		name, err := ResolveName(test.Name)
		require.NoError(t, err, test.Name)
		require.Equal(t, test.Expected, name, test.Name)
	}

	_, err := ResolveName("zh")
	require.ErrorIs(t, err, ErrUnknownLocale)
}

func TestAvailableLoads(t *testing.T) {
	names := Available()
	require.Contains(t, names, Invariant)
	require.Contains(t, names, "fr")
	for _, name := range names {
		_, err := Load(name)
		require.NoError(t, err, name)
	}
}

func TestInvariantTables(t *testing.T) {
	lex := MustLoad("")

	months := lex.MonthNames()
	require.Len(t, months, 12)
	require.Equal(t, "january", months[0])
	require.Equal(t, "december", months[11])

	abbreviated := lex.AbbreviatedMonthNames()
	require.Len(t, abbreviated, 13)
	require.Equal(t, "", abbreviated[12])

	require.Equal(t, []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}, lex.AbbreviatedDayNames())
	require.Equal(t, "saturday", lex.DayNames()[6])
	require.Equal(t, OrderMDY, lex.Order())

	abbr, full := lex.JanuaryNames()
	require.Equal(t, "jan", abbr)
	require.Equal(t, "january", full)
}

func TestEmptyEntriesNeverMatch(t *testing.T) {
	lex := MustLoad("")
	require.False(t, lex.IsCalendarName(""))
	_, ok := lex.MonthNumber("")
	require.False(t, ok)
}

func TestTablesAreCopies(t *testing.T) {
	lex := MustLoad("en")
	months := lex.MonthNames()
	months[0] = "mutated"
	require.Equal(t, "january", lex.MonthNames()[0])
}

func TestLookups(t *testing.T) {
	type Test struct {
		Locale          string
		Word            string
		ExpectedMonth   time.Month
		ExpectedIsMonth bool
		ExpectedIsName  bool
	}
	tests := []Test{
		{Locale: "en", Word: "march", ExpectedMonth: time.March, ExpectedIsMonth: true, ExpectedIsName: true},
		{Locale: "en", Word: "sept", ExpectedMonth: time.September, ExpectedIsMonth: true, ExpectedIsName: false},
		{Locale: "fr", Word: "févr", ExpectedMonth: time.February, ExpectedIsMonth: true, ExpectedIsName: true},
		{Locale: "fr", Word: "aout", ExpectedMonth: time.August, ExpectedIsMonth: true, ExpectedIsName: false},
		{Locale: "de", Word: "märz", ExpectedMonth: time.March, ExpectedIsMonth: true, ExpectedIsName: true},
		{Locale: "de", Word: "dez", ExpectedMonth: time.December, ExpectedIsMonth: true, ExpectedIsName: true},
		{Locale: "es", Word: "mar", ExpectedMonth: time.March, ExpectedIsMonth: true, ExpectedIsName: true},
		{Locale: "en", Word: "monday", ExpectedIsMonth: false, ExpectedIsName: true},
		{Locale: "en", Word: "mars", ExpectedIsMonth: false, ExpectedIsName: false},
	}

	for _, test := range tests {
		lex := MustLoad(test.Locale)
		month, ok := lex.MonthNumber(test.Word)
		require.Equal(t, test.ExpectedIsMonth, ok, "%s %s", test.Locale, test.Word)
		if ok {
			require.Equal(t, test.ExpectedMonth, month, "%s %s", test.Locale, test.Word)
		}
		require.Equal(t, test.ExpectedIsName, lex.IsCalendarName(test.Word), "%s %s", test.Locale, test.Word)
	}
}

func TestWeekdays(t *testing.T) {
	lex := MustLoad("pt")
	weekday, ok := lex.Weekday("segunda")
	require.True(t, ok)
	require.Equal(t, time.Monday, weekday)

	weekday, ok = lex.Weekday("sáb")
	require.True(t, ok)
	require.Equal(t, time.Saturday, weekday)

	_, ok = lex.Weekday("janeiro")
	require.False(t, ok)
}

func TestNameListsAreOrdered(t *testing.T) {
	lex := MustLoad("en")
	months := lex.MonthNameList()
	require.Equal(t, "january", months[0])
	require.Equal(t, "december", months[11])
	require.Equal(t, "jan", months[12])
	require.Contains(t, months, "sept")

	require.Equal(t, lex.MonthNameList(), months)
	require.Equal(t, "sunday", lex.WeekdayNameList()[0])
}

func TestOrderYAML(t *testing.T) {
	require.Equal(t, OrderDMY, MustLoad("en-GB").Order())
	require.Equal(t, "dmy", MustLoad("fr").Order().String())
}

func TestLower(t *testing.T) {
	require.Equal(t, "décembre", MustLoad("fr").Lower("DÉCEMBRE"))
}
