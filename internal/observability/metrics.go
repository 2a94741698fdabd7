package observability

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds all Prometheus metrics for the preflight run.
// It uses a custom registry to avoid polluting the global default.
type Metrics struct {
	Registry *prometheus.Registry

	// Check metrics
	CheckDuration *prometheus.HistogramVec
	CheckResult   *prometheus.GaugeVec
	ChecksTotal   *prometheus.CounterVec

	// Snapshot metrics
	NodesScanned prometheus.Gauge

	// Run metadata
	ProviderInfo *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all Prometheus metrics
// registered on a custom registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		CheckDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rhaii_preflight_check_duration_seconds",
			Help:    "Duration of individual preflight checks in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"suite", "check"}),
		CheckResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rhaii_preflight_check_result",
			Help: "Result of each preflight check (1 = pass, 0 = fail).",
		}, []string{"suite", "check"}),
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rhaii_preflight_checks_total",
			Help: "Total preflight checks executed, by result.",
		}, []string{"result"}),
		NodesScanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rhaii_preflight_nodes_scanned",
			Help: "Number of nodes in the most recent node snapshot.",
		}),
		ProviderInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rhaii_preflight_provider_info",
			Help: "Detected cloud provider and run identifier (value is always 1).",
		}, []string{"provider", "run_id"}),
	}

	reg.MustRegister(
		m.CheckDuration,
		m.CheckResult,
		m.ChecksTotal,
		m.NodesScanned,
		m.ProviderInfo,
	)

	return m
}

// ObserveCheck records the duration and result of one check execution.
func (m *Metrics) ObserveCheck(suite, check string, success bool, d time.Duration) {
	m.CheckDuration.WithLabelValues(suite, check).Observe(d.Seconds())
	result := "fail"
	value := 0.0
	if success {
		result = "pass"
		value = 1.0
	}
	m.CheckResult.WithLabelValues(suite, check).Set(value)
	m.ChecksTotal.WithLabelValues(result).Inc()
}

// SetProviderInfo stamps the resolved provider and run ID on the registry.
func (m *Metrics) SetProviderInfo(provider, runID string) {
	m.ProviderInfo.WithLabelValues(provider, runID).Set(1)
}

// WriteTextfile gathers the registry and writes it in Prometheus text
// exposition format, for node-exporter-textfile or CI scraping.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("observability: failed to gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("observability: failed to create metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("observability: failed to encode metrics: %w", err)
		}
	}
	return nil
}
