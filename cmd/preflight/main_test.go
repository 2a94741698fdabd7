package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendatahub-io/rhaii-on-xks/internal/errors"
	"github.com/opendatahub-io/rhaii-on-xks/internal/observability"
)

func TestWriteMetricsFile(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.ObserveCheck("cluster", "instance_type", true, time.Second)
	diags := errors.NewCollector(errors.RealClock{})

	path := filepath.Join(t.TempDir(), "preflight.prom")
	writeMetricsFile(metrics, path, diags)

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Empty(t, diags.Active())
}

func TestWriteMetricsFile_FailureRecordsDiagnostic(t *testing.T) {
	metrics := observability.NewMetrics()
	diags := errors.NewCollector(errors.RealClock{})

	writeMetricsFile(metrics, filepath.Join(t.TempDir(), "missing", "preflight.prom"), diags)

	active := diags.Active()
	require.Len(t, active, 1)
	assert.Equal(t, errors.ErrMetricsWriteFailed, active[0].Code)
	assert.Equal(t, "metrics", active[0].Check)
}
