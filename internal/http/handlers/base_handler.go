// README: Shared handler utilities: error body format and error mapping.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tollgate/internal/modules/tax"
)

const (
	codeInvalidVehicleType = "INVALID_VEHICLE_TYPE"
	codeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	codeMalformedRequest   = "MALFORMED_REQUEST"
	codeMissingParameter   = "MISSING_PARAMETER"
	codeInternalError      = "INTERNAL_SERVER_ERROR"
)

type errorResponse struct {
	ErrorCode  string `json:"errorCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	HTTPStatus int    `json:"httpStatus"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, errorResponse{
		ErrorCode:  code,
		Message:    msg,
		Timestamp:  time.Now().Format(timeLayoutISO),
		HTTPStatus: status,
	})
}

func writeTaxError(c *gin.Context, err error) {
	switch err {
	case tax.ErrUnknownVehicleType:
		writeError(c, http.StatusBadRequest, codeInvalidVehicleType, err.Error())
	case tax.ErrNoPassages, tax.ErrTooManyPassages, tax.ErrDateSpanTooWide:
		writeError(c, http.StatusBadRequest, codeInvalidDateFormat, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, codeInternalError,
			"An unexpected error occurred. Please try again later.")
	}
}
