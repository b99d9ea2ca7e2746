package handlers

import (
	"net/http"

	"github.com/horizon60/Horizon60-Backend/internal/service"
)

// NetWorthHandler handles net-worth overview HTTP requests
type NetWorthHandler struct {
	netWorthService *service.NetWorthService
}

// NewNetWorthHandler creates a new NetWorthHandler
func NewNetWorthHandler(netWorthService *service.NetWorthService) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService}
}

// Summary returns the current net-worth overview: total, per-type breakdown,
// and per-account balances with profit/loss and display strings.
func (h *NetWorthHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.netWorthService.GetSummary()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute net worth", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
