package model

import "time"

// CheckOutcome is what a single validation produces: a verdict, a
// human-readable message populated on both outcomes, and any advisory
// warnings accumulated while scanning (driver-absent hardware, unexpected
// identifier formats). Messages are for operators; nothing parses them.
type CheckOutcome struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// CheckResult couples an outcome with the identity of the check that
// produced it. Optional checks that fail are reported but never flip the
// overall verdict the way a mandatory failure does.
type CheckResult struct {
	Name            string        `json:"name"`
	Suite           string        `json:"suite"`
	Description     string        `json:"description"`
	SuggestedAction string        `json:"suggested_action"`
	Optional        bool          `json:"optional"`
	Outcome         CheckOutcome  `json:"outcome"`
	Duration        time.Duration `json:"duration"`
}
