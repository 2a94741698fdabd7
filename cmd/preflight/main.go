package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"

	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/opendatahub-io/rhaii-on-xks/internal/checks"
	"github.com/opendatahub-io/rhaii-on-xks/internal/cloud"
	"github.com/opendatahub-io/rhaii-on-xks/internal/config"
	"github.com/opendatahub-io/rhaii-on-xks/internal/errors"
	"github.com/opendatahub-io/rhaii-on-xks/internal/observability"
	"github.com/opendatahub-io/rhaii-on-xks/internal/report"
	"github.com/opendatahub-io/rhaii-on-xks/internal/snapshot"
)

// Exit codes: 1 = configuration or cluster connection failure,
// 2 = cloud provider detection failure, otherwise the number of failed
// mandatory checks.
func main() {
	// 1. Load and validate config.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	// 2. Create context with signal handling.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		slog.Info("shutdown signal received", "signal", sig)
		cancel()
	}()

	slog.Info("rhaii-on-xks preflight starting",
		"run_id", cfg.RunID,
		"cloud_provider", cfg.CloudProvider,
		"suite", cfg.Suite,
	)

	// 3. Shared infrastructure.
	metrics := observability.NewMetrics()
	diags := errors.NewCollector(errors.RealClock{})

	// 4. Build Kubernetes clients.
	restCfg := buildKubeConfig(cfg.Kubeconfig)
	restCfg.Timeout = cfg.RequestTimeout
	kubeClient, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		slog.Error("failed to create kubernetes client", "error", err)
		os.Exit(1)
	}
	crdClient, err := apiextensionsclient.NewForConfig(restCfg)
	if err != nil {
		slog.Error("failed to create apiextensions client", "error", err)
		os.Exit(1)
	}

	lister := snapshot.NewKubeLister(kubeClient, metrics)

	// 5. Resolve the cloud provider: forced by config or detected once
	// from the node inventory. Detection failure is a hard stop — every
	// cluster check depends on the provider configuration.
	providerCfg, ok := resolveProvider(ctx, cfg.CloudProvider, lister, diags)
	if !ok {
		os.Exit(2)
	}
	metrics.SetProviderInfo(providerCfg.Name, cfg.RunID)

	// 6. Build the selected suites.
	var suites []checks.Suite
	if cfg.Suite == "all" || cfg.Suite == "cluster" {
		suites = append(suites, checks.ClusterSuite(lister, providerCfg, diags))
	}
	if cfg.Suite == "all" || cfg.Suite == "operators" {
		crds := checks.NewCachedCRDLister(crdClient)
		suites = append(suites, checks.OperatorsSuite(crds, kubeClient, diags))
	}

	// 7. Run checks.
	runner := checks.NewRunner(metrics, suites...)
	results := runner.Run(ctx)

	// 8. Optional metrics textfile for CI scraping, written before the
	// report so a write failure shows up in the diagnostics footer.
	if cfg.MetricsFile != "" {
		writeMetricsFile(metrics, cfg.MetricsFile, diags)
	}

	// 9. Render the report. Color only when stdout is a terminal and not
	// explicitly opted out.
	renderer := report.New(os.Stdout, !report.ColorEnabled(cfg.NoColor, os.Stdout))
	failed := renderer.Render(results, cfg.RunID, diags.Active())

	os.Exit(failed)
}

// writeMetricsFile exports the registry to path. A failure is logged and
// recorded as a diagnostic; it never affects the exit code.
func writeMetricsFile(m *observability.Metrics, path string, diags *errors.Collector) {
	if err := m.WriteTextfile(path); err != nil {
		slog.Error("failed to write metrics file", "path", path, "error", err)
		diags.Report(errors.Diagnostic{
			Code:    errors.ErrMetricsWriteFailed,
			Message: err.Error(),
			Check:   "metrics",
			Err:     err,
		})
	}
}

// resolveProvider returns the active provider configuration: the named one
// when forced, otherwise the first registry entry detected from the node
// inventory.
func resolveProvider(ctx context.Context, name string, lister snapshot.Lister, diags *errors.Collector) (cloud.Config, bool) {
	if name != "auto" {
		providerCfg, ok := cloud.Lookup(name)
		if !ok {
			slog.Error("unknown cloud provider", "provider", name)
			return cloud.Config{}, false
		}
		slog.Info("cloud provider specified", "provider", name)
		return providerCfg, true
	}

	nodes, err := lister.List(ctx)
	if err != nil {
		slog.Error("failed to list nodes for provider detection", "error", err)
		diags.Report(errors.Diagnostic{
			Code:    errors.ErrProviderNotDetected,
			Message: err.Error(),
			Check:   "detect",
			Err:     err,
		})
		return cloud.Config{}, false
	}

	providerCfg, ok := cloud.Detect(nodes, cloud.Registry())
	if !ok {
		slog.Error("failed to detect cloud provider", "nodes", len(nodes))
		diags.Report(errors.Diagnostic{
			Code:    errors.ErrProviderNotDetected,
			Message: "no configured provider matched the node inventory",
			Check:   "detect",
		})
		return cloud.Config{}, false
	}
	slog.Info("cloud provider detected", "provider", providerCfg.Name)
	return providerCfg, true
}

// setupLogging configures the default slog logger at the requested level.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// buildKubeConfig creates a Kubernetes REST config. An explicit kubeconfig
// path wins; otherwise it tries in-cluster config, then the default
// ~/.kube/config.
func buildKubeConfig(kubeconfig string) *rest.Config {
	if kubeconfig == "" {
		cfg, err := rest.InClusterConfig()
		if err == nil {
			slog.Info("using in-cluster kubernetes config")
			return cfg
		}
		kubeconfig = clientcmd.RecommendedHomeFile
	}

	cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		slog.Error("failed to build kubernetes config", "error", err)
		os.Exit(1)
	}
	slog.Info("using kubeconfig file", "path", kubeconfig)
	return cfg
}
