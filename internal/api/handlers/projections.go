package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/horizon60/Horizon60-Backend/internal/service"
)

// ProjectionHandler handles projection HTTP requests
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// Portfolio returns the portfolio-wide projection over the configured
// horizon, including per-account plans and the independence year.
func (h *ProjectionHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	plan, err := h.projectionService.GetPortfolioPlan()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute projections", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// Account returns a single account's projection.
func (h *ProjectionHandler) Account(w http.ResponseWriter, r *http.Request) {
	plan, err := h.projectionService.GetAccountPlan(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}
