package service_test

import (
	"testing"

	"github.com/horizon60/Horizon60-Backend/internal/testutil"
	"github.com/horizon60/Horizon60-Backend/internal/version"
)

// TestSystemService tests the health and version probes.
func TestSystemService(t *testing.T) {
	t.Run("healthy database passes the check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("closed database fails the check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected error for closed database")
		}
	})

	t.Run("reports the build version", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if got := svc.CheckVersion(); got != version.Version {
			t.Errorf("Expected %q, got %q", version.Version, got)
		}
	})
}
