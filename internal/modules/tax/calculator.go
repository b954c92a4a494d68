// README: Single-day tax aggregation with the 60-minute single-charge rule.
package tax

import (
	"sort"
	"time"

	"tollgate/internal/modules/tariff"
	"tollgate/internal/modules/vehicle"
)

// Calculator computes per-day tax totals and per-passage fees against a
// fixed rule set. It holds no mutable state.
type Calculator struct {
	rules *tariff.Rules
}

func NewCalculator(rules *tariff.Rules) *Calculator {
	return &Calculator{rules: rules}
}

func (c *Calculator) Rules() *tariff.Rules {
	return c.rules
}

// TollFee returns the fee for a single passage: 0 on a toll-free date or for
// a toll-free vehicle category, otherwise the schedule fee for its time of
// day.
func (c *Calculator) TollFee(t time.Time, category vehicle.Category) int {
	if category.TollFree() || c.rules.IsTollFreeDate(t) {
		return 0
	}
	return c.rules.FeeAt(t)
}

// DayTax computes the capped total for one calendar day of passages. The
// caller is responsible for passing a single day's worth of timestamps.
//
// Passages are merged greedily: the window is measured from the first
// passage of the current run, and the anchor does not move while passages
// fall within it. Each run is charged its maximum single fee, and the sum of
// runs is capped at the daily maximum.
func (c *Calculator) DayTax(category vehicle.Category, passages []time.Time) int {
	if len(passages) == 0 {
		return 0
	}
	if category.TollFree() {
		return 0
	}

	sorted := make([]time.Time, len(passages))
	copy(sorted, passages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	window := time.Duration(c.rules.SingleChargeWindowMins) * time.Minute
	anchor := sorted[0]
	total := 0
	currentMax := c.TollFee(anchor, category)

	for _, p := range sorted {
		fee := c.TollFee(p, category)
		// Truncating division: 60m59s elapsed still counts as 60 minutes.
		elapsed := p.Sub(anchor) / time.Minute * time.Minute

		if elapsed <= window {
			if fee > currentMax {
				currentMax = fee
			}
		} else {
			total += currentMax
			anchor = p
			currentMax = fee
		}
	}
	total += currentMax

	if total > c.rules.MaxDailyTax {
		return c.rules.MaxDailyTax
	}
	return total
}
