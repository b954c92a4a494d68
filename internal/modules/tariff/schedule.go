// README: Fee-schedule lookup by time of day.
package tariff

import (
	"fmt"
	"time"
)

// FeeAt returns the fee for the time of day of t. The date component is
// ignored here; date exemptions are the calendar's concern. Total over all
// 1440 minutes, never fails.
func (r *Rules) FeeAt(t time.Time) int {
	minute := t.Hour()*60 + t.Minute()
	for _, s := range r.Slots {
		if minute >= s.Start && minute < s.End {
			return s.Fee
		}
	}
	// Unreachable while validate() holds; the overnight slot carries fee 0.
	return 0
}

// Window renders the slot as an inclusive "HH:MM-HH:MM" range, matching the
// published schedule format.
func (s Slot) Window() string {
	last := s.End - 1
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.Start/60, s.Start%60, last/60, last%60)
}
