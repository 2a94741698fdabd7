package config

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Config holds all preflight configuration values.
type Config struct {
	LogLevel       string        // RHAII_XKS_LOG_LEVEL: debug|info|warn|error, default: info
	Kubeconfig     string        // KUBECONFIG, default: "" (in-cluster, then ~/.kube/config)
	CloudProvider  string        // RHAII_XKS_CLOUD_PROVIDER: auto|azure|gcp, default: auto
	Suite          string        // RHAII_XKS_SUITE: all|cluster|operators, default: all
	MetricsFile    string        // RHAII_XKS_METRICS_FILE, default: "" (no textfile export)
	RequestTimeout time.Duration // RHAII_XKS_REQUEST_TIMEOUT, default: 30s
	NoColor        bool          // RHAII_XKS_NO_COLOR or NO_COLOR, default: false
	RunID          string        // generated per run, stamped on report and metrics
}

// Load reads configuration from environment variables and returns a Config
// with defaults applied for any unset values.
func Load() Config {
	cfg := Config{
		LogLevel:       envOrDefault("RHAII_XKS_LOG_LEVEL", "info"),
		Kubeconfig:     os.Getenv("KUBECONFIG"),
		CloudProvider:  envOrDefault("RHAII_XKS_CLOUD_PROVIDER", "auto"),
		Suite:          envOrDefault("RHAII_XKS_SUITE", "all"),
		MetricsFile:    os.Getenv("RHAII_XKS_METRICS_FILE"),
		RequestTimeout: parseDuration("RHAII_XKS_REQUEST_TIMEOUT", 30*time.Second),
		RunID:          uuid.New().String(),
	}

	cfg.NoColor = parseBool("RHAII_XKS_NO_COLOR", false)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	return cfg
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// parseDuration tries time.ParseDuration first, then falls back to treating
// the value as integer seconds.
func parseDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(v)
	if err == nil {
		return d
	}

	secs, err := strconv.Atoi(v)
	if err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultVal
}

func parseBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
