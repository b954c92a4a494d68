// README: Tax calculation result types and reason strings.
package tax

import (
	"fmt"
	"time"

	"tollgate/internal/types"
)

// DailySummary reports one calendar day of a calculation.
type DailySummary struct {
	Date         types.Date `json:"date"`
	DailyTax     int        `json:"dailyTax"`
	PassageCount int        `json:"passageCount"`
	TollFreeDay  bool       `json:"tollFreeDay"`
	Reason       string     `json:"reason"`
}

// PassageDetail reports one passage. IndividualFee is the fee of the passage
// evaluated on its own; EffectiveFee is reported identically, the 60-minute
// merge is reflected only in the day total. The sum of individual fees
// therefore generally differs from the day total.
type PassageDetail struct {
	PassageTime     time.Time `json:"passageTime"`
	IndividualFee   int       `json:"individualFee"`
	EffectiveFee    int       `json:"effectiveFee"`
	TollFreeDay     bool      `json:"tollFreeDay"`
	IncludedInTotal bool      `json:"includedInTotal"`
	Reason          string    `json:"reason"`
}

// Result is the full outcome of one calculation request.
type Result struct {
	VehicleType     string          `json:"vehicleType"`
	TotalTax        int             `json:"totalTax"`
	TollFreeVehicle bool            `json:"tollFreeVehicle"`
	DailySummaries  []DailySummary  `json:"dailySummaries"`
	PassageDetails  []PassageDetail `json:"passageDetails"`
}

const (
	reasonTollFreeVehicle = "Toll-free vehicle type"
	reasonTollFreeDay     = "Toll-free day (weekend/holiday/July)"
	reasonRegularDay      = "Regular toll day"
	reasonOutsideHours    = "Outside toll hours (18:30-05:59)"
)

func dayReason(tollFreeVehicle, tollFreeDay bool) string {
	if tollFreeVehicle {
		return reasonTollFreeVehicle
	}
	if tollFreeDay {
		return reasonTollFreeDay
	}
	return reasonRegularDay
}

func passageReason(vehicleType string, fee int, tollFreeDay, tollFreeVehicle bool) string {
	if tollFreeVehicle {
		return reasonTollFreeVehicle + ": " + vehicleType
	}
	if tollFreeDay {
		return reasonTollFreeDay
	}
	if fee == 0 {
		return reasonOutsideHours
	}
	return fmt.Sprintf("Regular toll period - %d SEK", fee)
}
