package checks

import (
	"context"
	"log/slog"
	"time"

	"github.com/opendatahub-io/rhaii-on-xks/internal/observability"
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// Check is one preflight validation: a stable name, remediation guidance,
// and a run function producing an outcome. Checks are read-only against the
// cluster and independent of each other.
type Check struct {
	Name            string
	Description     string
	SuggestedAction string
	Optional        bool
	Run             func(ctx context.Context) model.CheckOutcome
}

// Suite is an ordered list of checks run and reported together.
type Suite struct {
	Name        string
	Description string
	Checks      []Check
}

// Runner executes suites sequentially and records per-check timing and
// results. A failed check never short-circuits the rest of the pass.
type Runner struct {
	suites  []Suite
	metrics *observability.Metrics
}

// NewRunner creates a Runner over the given suites.
func NewRunner(metrics *observability.Metrics, suites ...Suite) *Runner {
	return &Runner{suites: suites, metrics: metrics}
}

// Run executes every check in every suite in declaration order and returns
// the results in the same order.
func (r *Runner) Run(ctx context.Context) []model.CheckResult {
	var results []model.CheckResult
	for _, suite := range r.suites {
		slog.Info("starting suite", "suite", suite.Name, "description", suite.Description)
		for _, check := range suite.Checks {
			start := time.Now()
			outcome := check.Run(ctx)
			elapsed := time.Since(start)

			if r.metrics != nil {
				r.metrics.ObserveCheck(suite.Name, check.Name, outcome.Success, elapsed)
			}
			for _, w := range outcome.Warnings {
				slog.Warn(w, "check", check.Name)
			}
			switch {
			case outcome.Success:
				slog.Debug("check passed", "check", check.Name, "message", outcome.Message)
			case check.Optional:
				slog.Warn("optional check failed", "check", check.Name, "message", outcome.Message)
			default:
				slog.Error("check failed", "check", check.Name, "message", outcome.Message)
			}

			results = append(results, model.CheckResult{
				Name:            check.Name,
				Suite:           suite.Name,
				Description:     check.Description,
				SuggestedAction: check.SuggestedAction,
				Optional:        check.Optional,
				Outcome:         outcome,
				Duration:        elapsed,
			})
		}
	}
	return results
}
