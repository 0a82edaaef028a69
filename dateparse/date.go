package dateparse

import (
	"datefinder/oops"
	"fmt"
	"time"
)

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.DateOnly, string(text))
	if err != nil {
		return oops.Wrap(err)
	}
	*d = Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}

func Compare(d1, d2 Date) int {
	if d1.Year == d2.Year && d1.Month == d2.Month && d1.Day == d2.Day {
		return 0
	}
	if d1.Year < d2.Year {
		return -1
	}
	if d1.Year > d2.Year {
		return 1
	}
	if d1.Month < d2.Month {
		return -1
	}
	if d1.Month > d2.Month {
		return 1
	}
	if d1.Day < d2.Day {
		return -1
	}
	return 1
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Resolve turns str into a calendar date the way a strict date parser would: the whole string
// has to be explained by date parts, a month is required along with a day or a year, a missing
// day is the 1st and a missing year is the year of now. Time of day may be present but has to be a real time, and a weekday
// has to agree with the date.
func (p *Parser) Resolve(str string, now time.Time) (Date, bool) {
	fd := p.Parse(str)
	if fd.IsTooLong || fd.HasResidue || !fd.MonthIsSet {
		return Date{}, false
	}
	if fd.Month < 1 || fd.Month > 12 {
		return Date{}, false
	}
	// A month word on its own is too common in prose ("may", "march")
	if !fd.DayIsSet && !fd.YearIsSet {
		return Date{}, false
	}

	year := now.Year()
	if fd.YearIsSet {
		year = fd.Year
	}
	month := time.Month(fd.Month)
	day := 1
	if fd.DayIsSet {
		day = fd.Day
	}
	if year < 1 || year > 9999 {
		return Date{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, false
	}

	if fd.HourIsSet && (fd.Hour < 0 || fd.Hour > 24) {
		return Date{}, false
	}
	if fd.MinuteIsSet && (fd.Minute < 0 || fd.Minute > 59) {
		return Date{}, false
	}
	if fd.SecondIsSet && (fd.Second < 0 || fd.Second > 60) {
		return Date{}, false
	}
	if fd.HourIsSet && fd.Hour == 24 && (fd.Minute != 0 || fd.Second != 0) {
		return Date{}, false
	}

	date := Date{Year: year, Month: month, Day: day}
	if fd.WeekdayIsSet && date.Weekday() != fd.Weekday {
		return Date{}, false
	}
	return date, true
}
