package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/adapter/http/handler"
	apimiddleware "github.com/iho/txengine/internal/adapter/http/middleware"
	"github.com/iho/txengine/internal/adapter/repository/memory"
	"github.com/iho/txengine/internal/infrastructure/idgen"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/usecase"
)

const uploadBody = "type,client,tx,amount\ndeposit,1,1,1.0\n"

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessUploads(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(uploadBody))
		req.RemoteAddr = "1.2.3.4:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(); code != http.StatusOK {
		t.Fatalf("expected first upload to succeed, got %d", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second upload to be throttled, got %d", code)
	}

	// reads are not limited
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/", nil)
	req.RemoteAddr = "1.2.3.4:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected account listing to succeed, got %d", rec.Code)
	}
}

func TestNewRouter_UploadThenQuery(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(uploadBody)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected upload to succeed, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected account 1, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"available":"1.0000"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/2", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unseen account, got %d", rec.Code)
	}
}

func TestNewRouter_ServesMetrics(t *testing.T) {
	router := NewRouter(newRouterConfig())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(uploadBody)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, name := range []string{"txengine_transactions_total", "txengine_http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/transactions",
		"GET /api/v1/accounts/",
		"GET /api/v1/accounts/{id}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	engine := usecase.NewEngine(memory.NewAccountRepository(), memory.NewRecordRepository())
	batch := usecase.NewBatchUseCase(engine, m, idgen.NewULIDGenerator(), zerolog.Nop())
	svc := usecase.NewLedgerService(engine, batch)

	cfg := RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(svc, 1<<20, zerolog.Nop()),
		AccountHandler:     handler.NewAccountHandler(svc, zerolog.Nop()),
		HealthHandler:      handler.NewHealthHandler(),
		Metrics:            m,
		Gatherer:           reg,
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
