package handlers

import (
	"net/http"

	"github.com/horizon60/Horizon60-Backend/internal/service"
)

// PriceHandler handles quote cache and sync HTTP requests
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// Prices returns the current quote cache contents.
func (h *PriceHandler) Prices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.priceService.Cache().All())
}

// Sync refreshes quotes for every held ticker. Individual fetch failures are
// reported in the result rather than failing the request; the cache keeps
// whatever it had for those tickers.
func (h *PriceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.priceService.SyncAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Price sync failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}
