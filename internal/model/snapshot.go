package model

// Snapshot is a point-in-time record of total net worth with a per-account
// breakdown. History is kept date-sorted; snapshots stay editable and
// deletable after capture.
type Snapshot struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"` // YYYY-MM-DD
	TotalNetWorth float64           `json:"totalNetWorth"`
	Accounts      []SnapshotAccount `json:"accounts"`
}

// SnapshotAccount is one account's balance as captured in a snapshot. The
// account may have been renamed or deleted since, so name and balance are
// frozen copies rather than references.
type SnapshotAccount struct {
	AccountID string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
}
