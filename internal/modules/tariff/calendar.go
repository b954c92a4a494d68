// README: Toll-free calendar predicate (weekends, toll-free months, holidays).
package tariff

import (
	"fmt"
	"time"
)

// IsTollFreeDate reports whether the calendar day of t is exempt from the
// tax. Weekends and toll-free months apply to any year; holiday and
// eve-of-holiday exemptions only to years present in the tables.
func (r *Rules) IsTollFreeDate(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}

	for _, m := range r.TollFreeMonths {
		if t.Month() == m {
			return true
		}
	}

	key := monthDayKey(t.Month(), t.Day())
	return contains(r.Holidays[t.Year()], key) || contains(r.EveOfHolidays[t.Year()], key)
}

func monthDayKey(month time.Month, day int) string {
	return fmt.Sprintf("%02d-%02d", int(month), day)
}

func contains(dates []string, key string) bool {
	for _, d := range dates {
		if d == key {
			return true
		}
	}
	return false
}
