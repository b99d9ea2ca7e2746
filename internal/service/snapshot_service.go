package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
	"github.com/horizon60/Horizon60-Backend/internal/valuation"
)

// SnapshotService manages the net-worth history: capturing the current
// aggregate as a new snapshot and editing or deleting past ones.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	accountRepo  *repository.AccountRepository
	cache        *prices.Cache
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	accountRepo *repository.AccountRepository,
	cache *prices.Cache,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		accountRepo:  accountRepo,
		cache:        cache,
	}
}

// GetHistory returns all snapshots in ascending date order.
func (s *SnapshotService) GetHistory() ([]model.Snapshot, error) {
	return s.snapshotRepo.GetSnapshots()
}

// Capture freezes the current net worth and per-account balances into a new
// snapshot dated today (or the given date when non-empty).
func (s *SnapshotService) Capture(date string) (model.Snapshot, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return model.Snapshot{}, err
	}

	snap := model.Snapshot{
		ID:            uuid.New().String(),
		Date:          date,
		TotalNetWorth: round2(valuation.TotalNetWorth(accounts, s.cache)),
		Accounts:      make([]model.SnapshotAccount, 0, len(accounts)),
	}
	for _, acct := range accounts {
		snap.Accounts = append(snap.Accounts, model.SnapshotAccount{
			AccountID: acct.ID,
			Name:      acct.Name,
			Balance:   round2(valuation.AccountBalance(acct, s.cache)),
		})
	}

	if err := s.snapshotRepo.CreateSnapshot(snap, newLineIDs(len(snap.Accounts))); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// CreateManual records a user-entered snapshot, e.g. backfilled history.
func (s *SnapshotService) CreateManual(snap model.Snapshot) (model.Snapshot, error) {
	snap.ID = uuid.New().String()
	if err := s.snapshotRepo.CreateSnapshot(snap, newLineIDs(len(snap.Accounts))); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// Update replaces a snapshot's date, total, and account lines.
func (s *SnapshotService) Update(snap model.Snapshot) (model.Snapshot, error) {
	if err := s.snapshotRepo.UpdateSnapshot(snap, newLineIDs(len(snap.Accounts))); err != nil {
		return model.Snapshot{}, err
	}
	return s.snapshotRepo.GetSnapshotOnID(snap.ID)
}

// Delete removes a snapshot from the history.
func (s *SnapshotService) Delete(snapshotID string) error {
	return s.snapshotRepo.DeleteSnapshot(snapshotID)
}

func newLineIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.New().String()
	}
	return ids
}
