package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/practicum/employee-model/internal/core/ports"
)

// HealthHandler handles GET /health (liveness) and GET /health/ready
// (readiness). Readiness lists one roster entry to prove the store answers.
type HealthHandler struct {
	service ports.StaffService
}

func NewHealthHandler(svc ports.StaffService) *HealthHandler {
	return &HealthHandler{service: svc}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Size   int64  `json:"size"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus, 1)
	status, httpStatus := "ok", http.StatusOK

	page, err := h.service.List(ctx, ports.ListStaffInput{Limit: 1})
	if err != nil {
		deps["roster"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	} else {
		deps["roster"] = dependencyStatus{Status: "ok", Size: page.Total}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
