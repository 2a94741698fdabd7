package errors

import (
	"sync"
	"time"
)

// Code represents a typed diagnostic code surfaced in the report footer.
type Code string

// Preflight diagnostic codes.
const (
	ErrNodeListFailed       Code = "NODE_LIST_FAILED"
	ErrCRDListFailed        Code = "CRD_LIST_FAILED"
	ErrDeploymentReadFailed Code = "DEPLOYMENT_READ_FAILED"
	ErrProviderNotDetected  Code = "PROVIDER_NOT_DETECTED"
	ErrMetricsWriteFailed   Code = "METRICS_WRITE_FAILED"
)

// defaultTTL is the auto-expiry duration for diagnostics not re-reported.
const defaultTTL = 5 * time.Minute

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Diagnostic is a typed problem encountered during a validation pass, tied
// to the check that hit it and optionally wrapping the underlying error.
type Diagnostic struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Check     string `json:"check"`
	Timestamp int64  `json:"timestamp"`
	Err       error  `json:"-"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Message
}

// Unwrap returns the wrapped error for errors.Is/As compatibility.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// entry wraps a Diagnostic with its last-reported time for expiry tracking.
type entry struct {
	diag       Diagnostic
	lastReport time.Time
}

// Collector is a thread-safe store for active diagnostics. Entries are
// keyed by Code+Check and auto-expire after 5 minutes if not re-reported.
type Collector struct {
	mu      sync.Mutex
	clock   Clock
	entries map[string]entry // key = string(Code) + "|" + Check
}

// NewCollector creates a Collector with the given clock.
func NewCollector(clock Clock) *Collector {
	return &Collector{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// key builds the dedup key for a diagnostic.
func key(code Code, check string) string {
	return string(code) + "|" + check
}

// Report stores or refreshes a diagnostic. The dedup key is Code+Check.
func (c *Collector) Report(diag Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if diag.Timestamp == 0 {
		diag.Timestamp = c.clock.Now().UnixMilli()
	}
	k := key(diag.Code, diag.Check)
	c.entries[k] = entry{
		diag:       diag,
		lastReport: c.clock.Now(),
	}
}

// Active returns all diagnostics reported within the TTL window.
func (c *Collector) Active() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	result := make([]Diagnostic, 0, len(c.entries))
	for k, e := range c.entries {
		if now.Sub(e.lastReport) > defaultTTL {
			delete(c.entries, k)
			continue
		}
		result = append(result, e.diag)
	}
	return result
}

// ActiveCodes returns a deduplicated list of active diagnostic codes.
func (c *Collector) ActiveCodes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	seen := make(map[Code]struct{})
	codes := make([]string, 0)
	for k, e := range c.entries {
		if now.Sub(e.lastReport) > defaultTTL {
			delete(c.entries, k)
			continue
		}
		if _, ok := seen[e.diag.Code]; !ok {
			seen[e.diag.Code] = struct{}{}
			codes = append(codes, string(e.diag.Code))
		}
	}
	return codes
}

// Clear removes all tracked diagnostics.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
