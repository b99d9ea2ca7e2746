package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/service"
	"github.com/horizon60/Horizon60-Backend/internal/validation"
)

// SnapshotHandler handles net-worth history HTTP requests
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Snapshots returns the full history in ascending date order.
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotService.GetHistory()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve snapshots", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snapshots)
}

// Capture freezes the current net worth into a new snapshot.
func (h *SnapshotHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req request.CaptureSnapshotRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateCaptureSnapshot(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.Capture(req.Date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to capture snapshot", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, snapshot)
}

// CreateSnapshot records a manually entered snapshot, e.g. backfilled history.
func (h *SnapshotHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req request.SnapshotRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateSnapshot(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.CreateManual(snapshotFromRequest("", req))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create snapshot", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, snapshot)
}

// UpdateSnapshot replaces a snapshot's date, total, and account lines.
func (h *SnapshotHandler) UpdateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req request.SnapshotRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validation.ValidateSnapshot(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.Update(snapshotFromRequest(chi.URLParam(r, "uuid"), req))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// DeleteSnapshot removes a snapshot from the history.
func (h *SnapshotHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.Delete(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func snapshotFromRequest(id string, req request.SnapshotRequest) model.Snapshot {
	snap := model.Snapshot{
		ID:            id,
		Date:          req.Date,
		TotalNetWorth: req.TotalNetWorth,
		Accounts:      make([]model.SnapshotAccount, 0, len(req.Accounts)),
	}
	for _, line := range req.Accounts {
		snap.Accounts = append(snap.Accounts, model.SnapshotAccount{
			AccountID: line.AccountID,
			Name:      line.Name,
			Balance:   line.Balance,
		})
	}
	return snap
}
