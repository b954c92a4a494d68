// README: Tariff rules: fee schedule slots, daily cap, and toll-free calendar data.
package tariff

import (
	"fmt"
	"time"
)

// Slot is one fee tier as a half-open [Start, End) range in minutes of day.
type Slot struct {
	Start int
	End   int
	Fee   int
}

const minutesPerDay = 24 * 60

// Rules holds the full static tax configuration. Built once at startup and
// read-only afterwards; safe for concurrent use.
type Rules struct {
	MaxDailyTax            int
	SingleChargeWindowMins int
	TollFreeMonths         []time.Month
	Slots                  []Slot

	// Holiday and eve-of-holiday dates keyed by year, values are
	// zero-padded "MM-DD" strings. A year absent from the map simply has
	// no holiday exemptions.
	Holidays      map[int][]string
	EveOfHolidays map[int][]string
}

// Default returns the Gothenburg 2013 rules.
func Default() *Rules {
	r := &Rules{
		MaxDailyTax:            60,
		SingleChargeWindowMins: 60,
		TollFreeMonths:         []time.Month{time.July},
		Slots: []Slot{
			{Start: 0, End: hhmm(6, 0), Fee: 0},
			{Start: hhmm(6, 0), End: hhmm(6, 30), Fee: 8},
			{Start: hhmm(6, 30), End: hhmm(7, 0), Fee: 13},
			{Start: hhmm(7, 0), End: hhmm(8, 0), Fee: 18},
			{Start: hhmm(8, 0), End: hhmm(8, 30), Fee: 13},
			{Start: hhmm(8, 30), End: hhmm(15, 0), Fee: 8},
			{Start: hhmm(15, 0), End: hhmm(15, 30), Fee: 13},
			{Start: hhmm(15, 30), End: hhmm(17, 0), Fee: 18},
			{Start: hhmm(17, 0), End: hhmm(18, 0), Fee: 13},
			{Start: hhmm(18, 0), End: hhmm(18, 30), Fee: 8},
			{Start: hhmm(18, 30), End: minutesPerDay, Fee: 0},
		},
		Holidays: map[int][]string{
			2013: {
				"01-01", // New Year's Day
				"03-29", // Good Friday
				"04-01", // Easter Monday
				"05-01", // Labour Day
				"05-09", // Ascension Day
				"06-06", // National Day
				"06-21", // Midsummer Eve
				"11-01", // All Saints' Day
				"12-24", // Christmas Eve
				"12-25", // Christmas Day
				"12-26", // Boxing Day
				"12-31", // New Year's Eve
			},
		},
		EveOfHolidays: map[int][]string{
			2013: {
				"03-28", // day before Good Friday
				"04-30", // day before Labour Day
				"05-08", // day before Ascension Day
				"06-05", // day before National Day
			},
		},
	}
	// The slot table is compile-time reference data; a gap or overlap is a
	// programming error, not a runtime condition.
	if err := r.validate(); err != nil {
		panic(err)
	}
	return r
}

// validate checks that the slots partition the day: sorted, contiguous,
// starting at 00:00 and ending at 24:00.
func (r *Rules) validate() error {
	if len(r.Slots) == 0 {
		return fmt.Errorf("tariff: empty slot table")
	}
	next := 0
	for i, s := range r.Slots {
		if s.Start != next {
			return fmt.Errorf("tariff: slot %d starts at minute %d, want %d", i, s.Start, next)
		}
		if s.End <= s.Start {
			return fmt.Errorf("tariff: slot %d has non-positive range [%d, %d)", i, s.Start, s.End)
		}
		if s.Fee < 0 {
			return fmt.Errorf("tariff: slot %d has negative fee %d", i, s.Fee)
		}
		next = s.End
	}
	if next != minutesPerDay {
		return fmt.Errorf("tariff: slot table ends at minute %d, want %d", next, minutesPerDay)
	}
	return nil
}

func hhmm(hour, minute int) int {
	return hour*60 + minute
}
