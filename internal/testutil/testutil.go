// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfoliochat/internal/db"
)

// TestDB connects to TEST_DATABASE_URL, runs migrations and returns a cleanup
// function. Tests are skipped when the variable is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	cleanupTestData(ctx, database.Pool)

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM intent_lookups")
}

// SeedIntentLookup sets the persisted count of intent.
func SeedIntentLookup(t *testing.T, database *db.DB, intent string, count int64) {
	t.Helper()

	_, err := database.Pool.Exec(context.Background(), `
		INSERT INTO intent_lookups (intent, count, last_seen_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (intent) DO UPDATE SET count = EXCLUDED.count
	`, intent, count)
	if err != nil {
		t.Fatalf("failed to seed intent lookup: %v", err)
	}
}
