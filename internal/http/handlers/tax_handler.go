// README: Tax calculation handlers: calculate (POST/GET), schedule, vehicle types.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tollgate/internal/modules/tax"
)

const (
	timeLayoutISO   = "2006-01-02T15:04:05"
	timeLayoutSpace = "2006-01-02 15:04:05"
)

type TaxHandler struct {
	tax *tax.Service
}

func NewTaxHandler(svc *tax.Service) *TaxHandler {
	return &TaxHandler{tax: svc}
}

type calculateRequest struct {
	VehicleType  string   `json:"vehicleType"`
	PassageTimes []string `json:"passageTimes"`
}

type passageDetailDTO struct {
	PassageTime   string `json:"passageTime"`
	IndividualFee int    `json:"individualFee"`
	TollFreeDay   bool   `json:"tollFreeDay"`
	Reason        string `json:"reason"`
}

type dailySummaryDTO struct {
	Date         string `json:"date"`
	DailyTax     int    `json:"dailyTax"`
	PassageCount int    `json:"passageCount"`
	TollFreeDay  bool   `json:"tollFreeDay"`
	Reason       string `json:"reason"`
}

type calculateResponse struct {
	VehicleType       string             `json:"vehicleType"`
	TotalTax          int                `json:"totalTax"`
	TollFreeVehicle   bool               `json:"tollFreeVehicle"`
	PassageDetails    []passageDetailDTO `json:"passageDetails"`
	DailyTaxSummaries []dailySummaryDTO  `json:"dailyTaxSummaries"`
	CalculatedAt      string             `json:"calculatedAt"`
}

func (h *TaxHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeMalformedRequest, "Invalid JSON format")
		return
	}
	times, ok := parsePassageTimes(c, req.PassageTimes)
	if !ok {
		return
	}
	h.calculate(c, req.VehicleType, times)
}

// CalculateQuery serves the query-parameter variant: passage times as a
// comma-separated list.
func (h *TaxHandler) CalculateQuery(c *gin.Context) {
	vehicleType := c.Query("vehicleType")
	if vehicleType == "" {
		writeError(c, http.StatusBadRequest, codeMissingParameter,
			"Required parameter 'vehicleType' is missing")
		return
	}
	raw := c.Query("passageTimes")
	if raw == "" {
		writeError(c, http.StatusBadRequest, codeMissingParameter,
			"Required parameter 'passageTimes' is missing")
		return
	}
	times, ok := parsePassageTimes(c, strings.Split(raw, ","))
	if !ok {
		return
	}
	h.calculate(c, vehicleType, times)
}

func (h *TaxHandler) calculate(c *gin.Context, vehicleType string, times []time.Time) {
	res, err := h.tax.Calculate(c.Request.Context(), tax.CalculateCommand{
		VehicleType:  vehicleType,
		PassageTimes: times,
	})
	if err != nil {
		writeTaxError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCalculateResponse(res))
}

func (h *TaxHandler) Schedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.tax.Schedule())
}

func (h *TaxHandler) VehicleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.tax.VehicleTypes())
}

// parsePassageTimes accepts both the ISO layout and the space-separated
// layout used by the JSON body. On failure it writes the error response and
// returns ok=false.
func parsePassageTimes(c *gin.Context, values []string) ([]time.Time, bool) {
	times := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := parsePassageTime(strings.TrimSpace(v))
		if err != nil {
			writeError(c, http.StatusBadRequest, codeInvalidDateFormat,
				"Invalid date format. Use ISO format: 2013-02-07T06:23:27")
			return nil, false
		}
		times = append(times, t)
	}
	return times, true
}

func parsePassageTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayoutISO, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(timeLayoutSpace, value)
}

func toCalculateResponse(res *tax.Result) calculateResponse {
	out := calculateResponse{
		VehicleType:       res.VehicleType,
		TotalTax:          res.TotalTax,
		TollFreeVehicle:   res.TollFreeVehicle,
		PassageDetails:    make([]passageDetailDTO, 0, len(res.PassageDetails)),
		DailyTaxSummaries: make([]dailySummaryDTO, 0, len(res.DailySummaries)),
		CalculatedAt:      time.Now().Format(timeLayoutISO),
	}
	for _, d := range res.PassageDetails {
		out.PassageDetails = append(out.PassageDetails, passageDetailDTO{
			PassageTime:   d.PassageTime.Format(timeLayoutISO),
			IndividualFee: d.IndividualFee,
			TollFreeDay:   d.TollFreeDay,
			Reason:        d.Reason,
		})
	}
	for _, s := range res.DailySummaries {
		out.DailyTaxSummaries = append(out.DailyTaxSummaries, dailySummaryDTO{
			Date:         s.Date.String(),
			DailyTax:     s.DailyTax,
			PassageCount: s.PassageCount,
			TollFreeDay:  s.TollFreeDay,
			Reason:       s.Reason,
		})
	}
	return out
}
