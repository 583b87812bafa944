package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/perugo/perugo-api/internal/database"
	"github.com/perugo/perugo-api/internal/repo/postgres"
	"github.com/perugo/perugo-api/internal/seed"
)

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the migrations. Tests using it are skipped when the variable is unset, so
// the suite stays runnable without a database.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, url); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func TestDestinationRepository_DoubleSeedKeepsExactRowCount(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewDestinationRepository(pool)
	ctx := context.Background()

	dataset, err := seed.Load()
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.ReplaceAll(ctx, dataset); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, dataset); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != int64(len(dataset)) {
		t.Fatalf("Expected exactly %d rows after seeding twice, got %d", len(dataset), count)
	}

	// Tours must not be duplicated either.
	dest, err := repo.FindBySlug(ctx, dataset[0].Slug)
	if err != nil {
		t.Fatal(err)
	}
	if dest == nil {
		t.Fatalf("Expected %s to exist after seed", dataset[0].Slug)
	}
	if len(dest.Tours) != len(dataset[0].Tours) {
		t.Fatalf("Expected %d tours for %s, got %d", len(dataset[0].Tours), dest.Slug, len(dest.Tours))
	}
}

func TestDestinationRepository_ListRecentCapsAndOrders(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewDestinationRepository(pool)
	ctx := context.Background()

	dataset, err := seed.Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.ReplaceAll(ctx, dataset); err != nil {
		t.Fatal(err)
	}

	limit := 3
	recent, err := repo.ListRecent(ctx, limit)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) > limit {
		t.Fatalf("Expected at most %d rows, got %d", limit, len(recent))
	}

	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Fatalf("Expected newest-first ordering, got %s before %s", recent[i-1].Slug, recent[i].Slug)
		}
	}
}
