package handlers

import (
	"context"
	"net/http"
	"time"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database connectivity
//
// Method: GET /api/health
//
// Success Response: 200 OK {status, timestamp, database, responseTime}
// Error Response: 503 SYSTEM_003 when the database does not answer
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	start := time.Now()

	sqlDB, err := h.db.DB()
	if err != nil {
		return sendUnavailable(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return sendUnavailable(c)
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Database:     "connected",
		ResponseTime: time.Since(start).Milliseconds(),
	})
}

func sendUnavailable(c echo.Context) error {
	return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
}
