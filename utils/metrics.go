package utils

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

var (
	registerOnce sync.Once

	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gol",
			Subsystem: "universe",
			Name:      "generations_total",
			Help:      "Total generations advanced.",
		},
	)
	restartsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gol",
			Subsystem: "universe",
			Name:      "restarts_total",
			Help:      "Universe reseeds by reason.",
		},
		[]string{"reason"},
	)
	population = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gol",
			Subsystem: "universe",
			Name:      "population",
			Help:      "Living cells in the current generation.",
		},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gol",
			Subsystem: "universe",
			Name:      "tick_duration_seconds",
			Help:      "Time spent computing one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(generationsTotal, restartsTotal, population, tickDuration)
	})
}

// RecordTick records one generation step and the population it produced
func RecordTick(living int, duration time.Duration) {
	RegisterMetrics()
	generationsTotal.Inc()
	population.Set(float64(living))
	tickDuration.Observe(duration.Seconds())
}

// RecordRestart records a reseed of the universe
func RecordRestart(reason string) {
	RegisterMetrics()
	restartsTotal.WithLabelValues(reason).Inc()
}

// MetricsRouter serves the default registry on /metrics and a liveness probe on /health
func MetricsRouter() *gin.Engine {
	RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	started := time.Now()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(started).String(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// ServeMetrics listens on addr and serves MetricsRouter until ctx is done
func ServeMetrics(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "[ServeMetrics] failed to listen on %s", addr)
	}
	return ServeMetricsOn(ctx, ln)
}

// ServeMetricsOn serves MetricsRouter on an open listener until ctx is done,
// then shuts the server down gracefully
func ServeMetricsOn(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           MetricsRouter(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		return errors.Wrapf(err, "[ServeMetricsOn] server on %s stopped", ln.Addr())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "[ServeMetricsOn] shutdown failed")
	}
	return nil
}
