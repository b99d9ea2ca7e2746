package repository

import (
	"database/sql"
	"fmt"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the snapshot history.
// History is returned date-sorted; snapshots remain editable and deletable
// after capture.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshots retrieves the full history in ascending date order.
func (s *SnapshotRepository) GetSnapshots() ([]model.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, date, total_net_worth
		FROM snapshot
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}
	for rows.Next() {
		var snap model.Snapshot
		if err := rows.Scan(&snap.ID, &snap.Date, &snap.TotalNetWorth); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot table: %w", err)
	}

	for i := range snapshots {
		accounts, err := s.getSnapshotAccounts(snapshots[i].ID)
		if err != nil {
			return nil, err
		}
		snapshots[i].Accounts = accounts
	}
	return snapshots, nil
}

// GetSnapshotOnID retrieves a single snapshot with its account breakdown.
func (s *SnapshotRepository) GetSnapshotOnID(snapshotID string) (model.Snapshot, error) {
	var snap model.Snapshot
	err := s.db.QueryRow(`
		SELECT id, date, total_net_worth
		FROM snapshot
		WHERE id = ?
	`, snapshotID).Scan(&snap.ID, &snap.Date, &snap.TotalNetWorth)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	accounts, err := s.getSnapshotAccounts(snap.ID)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.Accounts = accounts
	return snap, nil
}

// CreateSnapshot inserts a snapshot and its frozen account lines.
func (s *SnapshotRepository) CreateSnapshot(snap model.Snapshot, lineIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO snapshot (id, date, total_net_worth)
		VALUES (?, ?, ?)
	`, snap.ID, snap.Date, snap.TotalNetWorth); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, line := range snap.Accounts {
		if _, err := tx.Exec(`
			INSERT INTO snapshot_account (id, snapshot_id, account_id, name, balance)
			VALUES (?, ?, ?, ?, ?)
		`, lineIDs[i], snap.ID, line.AccountID, line.Name, line.Balance); err != nil {
			return fmt.Errorf("failed to insert snapshot account line: %w", err)
		}
	}

	return tx.Commit()
}

// UpdateSnapshot replaces a snapshot's date, total, and account lines.
func (s *SnapshotRepository) UpdateSnapshot(snap model.Snapshot, lineIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE snapshot SET date = ?, total_net_worth = ?
		WHERE id = ?
	`, snap.Date, snap.TotalNetWorth, snap.ID)
	if err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}
	if err := requireRow(result, apperrors.ErrSnapshotNotFound); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM snapshot_account WHERE snapshot_id = ?`, snap.ID); err != nil {
		return fmt.Errorf("failed to clear snapshot account lines: %w", err)
	}
	for i, line := range snap.Accounts {
		if _, err := tx.Exec(`
			INSERT INTO snapshot_account (id, snapshot_id, account_id, name, balance)
			VALUES (?, ?, ?, ?, ?)
		`, lineIDs[i], snap.ID, line.AccountID, line.Name, line.Balance); err != nil {
			return fmt.Errorf("failed to insert snapshot account line: %w", err)
		}
	}

	return tx.Commit()
}

// DeleteSnapshot removes a snapshot; its account lines cascade away.
func (s *SnapshotRepository) DeleteSnapshot(snapshotID string) error {
	result, err := s.db.Exec(`DELETE FROM snapshot WHERE id = ?`, snapshotID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return requireRow(result, apperrors.ErrSnapshotNotFound)
}

func (s *SnapshotRepository) getSnapshotAccounts(snapshotID string) ([]model.SnapshotAccount, error) {
	rows, err := s.db.Query(`
		SELECT account_id, name, balance
		FROM snapshot_account
		WHERE snapshot_id = ?
		ORDER BY name ASC
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot account table: %w", err)
	}
	defer rows.Close()

	lines := []model.SnapshotAccount{}
	for rows.Next() {
		var line model.SnapshotAccount
		if err := rows.Scan(&line.AccountID, &line.Name, &line.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot account row: %w", err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot account table: %w", err)
	}
	return lines, nil
}
