package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adaptershttp "github.com/Paprikas/double-double/internal/adapter/http"
	"github.com/Paprikas/double-double/internal/adapter/http/handler"
	"github.com/Paprikas/double-double/internal/adapter/http/middleware"
	"github.com/Paprikas/double-double/internal/adapter/repository/postgres"
	redisrepo "github.com/Paprikas/double-double/internal/adapter/repository/redis"
	infraredis "github.com/Paprikas/double-double/internal/infrastructure/redis"
	"github.com/Paprikas/double-double/internal/usecase"
	"github.com/Paprikas/double-double/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database and a
// real Redis instance.
func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	retrier := postgres.NewRetrier()
	idGen := postgres.NewULIDGenerator()
	cache := redisrepo.NewCache(redisClient)

	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	entryUC := usecase.NewEntryUseCase(txManager, accountRepo, entryRepo, idGen, retrier, cache)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, balanceRepo, cache)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		EntryHandler:     handler.NewEntryHandler(entryUC),
		BalanceHandler:   handler.NewBalanceHandler(balanceUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
	})
}

// doJSONWithKey posts an entry with an Idempotency-Key header.
func doJSONWithKey(t *testing.T, router http.Handler, body any, key string) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(middleware.IdempotencyKeyHeader, key)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	return w
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	return w
}
