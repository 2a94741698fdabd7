package config

import (
	"fmt"
	"time"
)

var (
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validProviders = map[string]bool{"auto": true, "azure": true, "gcp": true}
	validSuites    = map[string]bool{"all": true, "cluster": true, "operators": true}
)

// Validate checks that the Config contains valid values.
// Returns an error describing the first invalid field found.
func (c Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("config: RHAII_XKS_LOG_LEVEL must be debug|info|warn|error, got %q", c.LogLevel)
	}

	if !validProviders[c.CloudProvider] {
		return fmt.Errorf("config: RHAII_XKS_CLOUD_PROVIDER must be auto|azure|gcp, got %q", c.CloudProvider)
	}

	if !validSuites[c.Suite] {
		return fmt.Errorf("config: RHAII_XKS_SUITE must be all|cluster|operators, got %q", c.Suite)
	}

	if c.RequestTimeout < time.Second {
		return fmt.Errorf("config: RequestTimeout must be >= 1s, got %v", c.RequestTimeout)
	}

	return nil
}
