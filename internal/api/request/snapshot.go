package request

// SnapshotAccountLine is one frozen account balance within a snapshot.
type SnapshotAccountLine struct {
	AccountID string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
}

// CaptureSnapshotRequest records the current net worth as a snapshot.
// Date is optional; empty means today.
type CaptureSnapshotRequest struct {
	Date string `json:"date"`
}

// SnapshotRequest creates or replaces a manually entered snapshot.
type SnapshotRequest struct {
	Date          string                `json:"date"`
	TotalNetWorth float64               `json:"totalNetWorth"`
	Accounts      []SnapshotAccountLine `json:"accounts"`
}
