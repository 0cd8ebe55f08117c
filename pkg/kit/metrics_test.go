package kit

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetrics("test")
	ok := m.Middleware("fold")(func(context.Context, any) (any, error) { return nil, nil })
	bad := m.Middleware("fold")(func(context.Context, any) (any, error) { return nil, errors.New("boom") })

	ctx := WithTransport(context.Background(), "mcp_quic")
	ok(ctx, nil)
	ok(ctx, nil)
	bad(context.Background(), nil)

	body := scrape(t, m)
	for _, want := range []string{
		`test_endpoint_calls_total{endpoint="fold",outcome="ok",transport="mcp_quic"} 2`,
		`test_endpoint_calls_total{endpoint="fold",outcome="error",transport="http"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output lacks %q", want)
		}
	}
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	called := false
	ep := m.Middleware("fold")(func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	})
	ep(context.Background(), nil)
	if !called {
		t.Error("nil Metrics must pass calls through")
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics("test")
	m.GaugeFunc("test", "dictionaries", "Loaded dictionaries.", func() float64 { return 3 })
	m.Middleware("match")(func(context.Context, any) (any, error) { return nil, nil })(context.Background(), nil)

	body := scrape(t, m)
	for _, want := range []string{
		`test_endpoint_calls_total{endpoint="match",outcome="ok",transport="http"} 1`,
		"test_dictionaries 3",
		"test_endpoint_duration_seconds_bucket",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output lacks %q", want)
		}
	}
}
