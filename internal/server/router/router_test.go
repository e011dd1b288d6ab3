package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mamadbah2/bizdash/internal/latency"
	"github.com/mamadbah2/bizdash/internal/server/handlers"
	"github.com/mamadbah2/bizdash/internal/service/access"
	"github.com/mamadbah2/bizdash/internal/service/reporting"
	"github.com/mamadbah2/bizdash/internal/store"
)

func newTestEngine(t *testing.T) (*observer.ObservedLogs, http.Handler) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	svc := access.NewService(store.Seeded(), access.WithDelayer(latency.None))
	h := handlers.NewDashboardHandler(svc, reporting.NewService(svc, nil), nil)
	return logs, New(h, logger)
}

func TestHealthz(t *testing.T) {
	logs, engine := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/healthz" || fields["status"] != int64(http.StatusOK) {
		t.Fatalf("unexpected log fields %v", fields)
	}
}

func TestRoutesMounted(t *testing.T) {
	_, engine := newTestEngine(t)

	for _, path := range []string{"/api/transactions", "/api/customers", "/api/events", "/api/summaries", "/api/businesses/weed"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", path, w.Code)
		}
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route = %d", w.Code)
	}
}
