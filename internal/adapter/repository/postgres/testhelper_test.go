package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/database"
)

const postgisImage = "postgis/postgis:18-3.6-alpine"

type TestDB struct {
	Pool *pgxpool.Pool
}

// SetupTestDB starts a PostGIS container with the schema migrated. The
// container and pool are released when the test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, postgisImage,
		postgres.WithDatabase("geocoord"),
		postgres.WithUsername("geocoord"),
		postgres.WithPassword("geocoord"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "starting postgis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = database.RunMigrations(ctx, pool, migrationsPath())
	require.NoError(t, err)

	return &TestDB{Pool: pool}
}

// Reset empties the parse history between subtests.
func (db *TestDB) Reset(t *testing.T) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE parse_records")
	require.NoError(t, err)
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}
