// README: API gateway; registers HTTP routes and delegates to the tax service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollgate/internal/http/handlers"
	"tollgate/internal/http/middleware"
	"tollgate/internal/modules/tax"
)

type ServerDeps struct {
	Tax *tax.Service
	Log *zap.Logger
}

type Server struct {
	tax *tax.Service
	log *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{tax: deps.Tax, log: log}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	h := handlers.NewTaxHandler(s.tax)
	v1 := r.Group("/api/v1/congestion-tax")
	v1.POST("/calculate", h.Calculate)
	v1.GET("/calculate", h.CalculateQuery)
	v1.GET("/schedule", h.Schedule)
	v1.GET("/vehicle-types", h.VehicleTypes)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
