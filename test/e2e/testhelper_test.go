package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/coordinate"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testJWTIssuer  = "geocoord-test"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	BaseURL string
	Pool    *pgxpool.Pool
	Storage *memoryStorage

	jwt    *auth.JWTService
	client *http.Client
}

// setupTestApp runs the full API against a PostGIS container. Everything is
// torn down when the test ends.
func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgis/postgis:18-3.6-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	parseRecordRepo := pgRepo.NewParseRecordRepo(pool)
	jwtSvc := auth.NewJWTService(testJWTSecret, testJWTIssuer, 15*time.Minute)
	storage := newMemoryStorage()

	coordinateSvc, err := coordinate.NewService(parseRecordRepo, events.NoopPublisher{}, coordinate.Config{
		CacheSize:    128,
		MaxBatchSize: 10,
	}, logger)
	require.NoError(t, err)
	exportSvc := export.NewService(parseRecordRepo, storage, "exports", 15*time.Minute)

	router := server.NewRouter(server.RouterConfig{
		CoordinateHandler: handler.NewCoordinateHandler(coordinateSvc),
		ExportHandler:     handler.NewExportHandler(exportSvc),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtSvc),
		Logger:            logger,
		Environment:       "test",
	})

	ts := httptest.NewServer(router.Engine())
	t.Cleanup(ts.Close)

	return &TestApp{
		BaseURL: ts.URL + apiBasePath,
		Pool:    pool,
		Storage: storage,
		jwt:     jwtSvc,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// newUserToken issues an access token for a fresh user id.
func (app *TestApp) newUserToken(t *testing.T) string {
	t.Helper()

	token, _, err := app.jwt.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	return token
}

type apiResponse struct {
	Status int
	Body   []byte
}

// JSON decodes the body as a JSON object.
func (r apiResponse) JSON(t *testing.T) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out), "response body: %s", r.Body)
	return out
}

// call sends body as JSON (when non-nil) with token as bearer (when
// non-empty) and reads the whole response.
func (app *TestApp) call(t *testing.T, method, path, token string, body any) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{Status: resp.StatusCode, Body: data}
}

// memoryStorage keeps uploaded objects in memory so exports can be read back
// without S3.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memoryStorage) GetSignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://stub-storage.example.com/" + key + "?signed=true", nil
}

func (s *memoryStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
