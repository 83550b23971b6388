package utils

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordTick(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal)
	RecordTick(42, time.Millisecond)
	RecordTick(40, time.Millisecond)

	if got := testutil.ToFloat64(generationsTotal) - before; got != 2 {
		t.Fatalf("generations delta=%v, expected 2", got)
	}
	if got := testutil.ToFloat64(population); got != 40 {
		t.Fatalf("population=%v, expected 40", got)
	}
}

func TestRecordRestart(t *testing.T) {
	counter := restartsTotal.WithLabelValues("extinction")
	before := testutil.ToFloat64(counter)
	RecordRestart("extinction")
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("restarts delta=%v, expected 1", got)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond=%v, expected 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("AveragePopulation=%v, expected 100", s.AveragePopulation)
	}
	s.Update(2, 0, 0)
	if s.AveragePopulation != 90 || s.TotalGenerations != 2 {
		t.Fatalf("moving average=%v total=%d", s.AveragePopulation, s.TotalGenerations)
	}
}

func TestMetricsRouterServesMetrics(t *testing.T) {
	srv := httptest.NewServer(MetricsRouter())
	defer srv.Close()

	RecordTick(7, time.Millisecond)
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, expected 200", resp.StatusCode)
	}
	for _, name := range []string{"gol_universe_generations_total", "gol_universe_population 7", "gol_universe_tick_duration_seconds"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("scrape missing %q", name)
		}
	}

	health, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	health.Body.Close()
	if health.StatusCode != http.StatusOK {
		t.Fatalf("health status=%d, expected 200", health.StatusCode)
	}
}

func TestServeMetricsOnStopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeMetricsOn(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		cancel()
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err = <-done:
		if err != nil {
			t.Fatalf("ServeMetricsOn: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after cancel")
	}
}

func TestServeMetricsBadAddr(t *testing.T) {
	if err := ServeMetrics(context.Background(), "not-an-address"); err == nil {
		t.Fatal("expected a listen error")
	}
}
