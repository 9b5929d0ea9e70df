package repository

import (
	"context"
	"os"
	"testing"

	"account-insights/pkg/database"
	"account-insights/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Requires a migrated database; set TEST_DB_HOST to run.
func TestSnapshotRepositoryIntegration(t *testing.T) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set; skipping snapshot integration test")
	}

	config := utils.DatabaseConfig{
		Host:     host,
		Port:     envOr("TEST_DB_PORT", "5432"),
		Name:     envOr("TEST_DB_NAME", "account_insights_test"),
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: os.Getenv("TEST_DB_PASS"),
		MaxConns: 2,
	}

	db, err := database.InitDB(config)
	require.NoError(t, err)
	defer db.Close()

	repo := NewSnapshotRepository(db, zap.NewNop())

	dataset, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dataset)

	// re-reading an unchanged store must give identical snapshots
	again, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, dataset, again)
}
