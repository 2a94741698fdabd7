package cloud

import (
	"fmt"
	"strings"

	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// ValidateInstanceTypes checks node instance-type labels against the
// provider's family list. Nodes without an instance-type label, or whose
// type matches no configured family, are silently excluded from the tally.
func ValidateInstanceTypes(nodes []model.Node, cfg Config) model.CheckOutcome {
	exact := exactMatchMode(cfg.InstanceFamilies)

	var found []string
	for _, node := range nodes {
		instanceType := node.Label(labelInstanceType)
		if instanceType == "" {
			instanceType = node.Label(labelInstanceTypeBeta)
		}
		if instanceType == "" {
			continue
		}
		if matchesFamily(instanceType, cfg.InstanceFamilies, exact) {
			found = append(found, fmt.Sprintf("%s on %s", instanceType, node.Name))
		}
	}

	if len(found) == 0 {
		return model.CheckOutcome{
			Message: fmt.Sprintf("No supported instance types found. Expected families: %s",
				strings.Join(cfg.InstanceFamilies, ", ")),
		}
	}
	return model.CheckOutcome{
		Success: true,
		Message: "Found supported instance types: " + strings.Join(found, ", "),
	}
}

// exactMatchMode reports whether the family list names literal SKUs.
// Families containing an underscore (Azure's Standard_* SKUs) are full-name
// identifiers matched exactly; everything else is a hyphen-delimited family
// prefix. The mode is decided once for the whole provider, never per node,
// so a list mixing both conventions cannot be expressed. Known limitation,
// kept for parity with the provider naming conventions in use.
func exactMatchMode(families []string) bool {
	for _, f := range families {
		if strings.Contains(f, "_") {
			return true
		}
	}
	return false
}

// matchesFamily applies the provider-wide match rule: the full instance
// type in exact mode, or the segment before the first hyphen in prefix
// mode. The two modes never fall back to one another.
func matchesFamily(instanceType string, families []string, exact bool) bool {
	candidate := instanceType
	if !exact {
		if i := strings.Index(instanceType, "-"); i >= 0 {
			candidate = instanceType[:i]
		}
	}
	for _, f := range families {
		if f == candidate {
			return true
		}
	}
	return false
}

// ValidateAccelerators checks GPU/TPU availability against the provider's
// accelerator definitions. A node qualifies for a class only when the
// presence label is set and the allocatable resource count is positive;
// presence without a positive count is recorded as a driver-absent warning
// so operators can tell "driver missing" from "no hardware".
func ValidateAccelerators(nodes []model.Node, cfg Config) model.CheckOutcome {
	var summaries []string
	var warnings []string

	for _, accel := range cfg.Accelerators {
		var accelNodes []string
		for _, node := range nodes {
			value := node.Label(accel.PresenceLabel)
			if value == "" {
				continue
			}
			count := node.AllocatableCount(accel.ResourceKey)
			if count == 0 {
				warnings = append(warnings, fmt.Sprintf(
					"%s accelerator present but no allocatable resources on %s",
					accel.Name, node.Name))
				continue
			}

			detail := fmt.Sprintf("%s: %d", value, count)
			for _, extra := range accel.ExtraLabels {
				ev := node.Label(extra)
				if ev == "" {
					continue
				}
				short := extra
				if i := strings.LastIndex(extra, "/"); i >= 0 {
					short = extra[i+1:]
				}
				detail += fmt.Sprintf(", %s: %s", short, ev)
			}
			accelNodes = append(accelNodes, fmt.Sprintf("%s (%s)", node.Name, detail))
		}
		if len(accelNodes) > 0 {
			summaries = append(summaries, fmt.Sprintf("%s available on: %s",
				accel.Name, strings.Join(accelNodes, ", ")))
		}
	}

	if len(summaries) > 0 {
		return model.CheckOutcome{
			Success:  true,
			Message:  strings.Join(summaries, " | "),
			Warnings: warnings,
		}
	}

	names := make([]string, len(cfg.Accelerators))
	for i, a := range cfg.Accelerators {
		names[i] = a.Name
	}
	return model.CheckOutcome{
		Message:  fmt.Sprintf("No accelerators found (checked: %s)", strings.Join(names, ", ")),
		Warnings: warnings,
	}
}

// ValidateZoneCompatibility cross-references accelerator placement against
// the provider's known-good-zone table. The table is an allowlist of
// validated zones: a model absent from it is unconstrained and always
// compatible. Providers without a table succeed unconditionally. This check
// is advisory; callers register it as optional.
func ValidateZoneCompatibility(nodes []model.Node, cfg Config) model.CheckOutcome {
	if len(cfg.Zones) == 0 {
		return model.CheckOutcome{
			Success: true,
			Message: fmt.Sprintf("Zone compatibility not applicable for provider %s", cfg.Name),
		}
	}

	var incompatible []string
	var notes []string

	for _, node := range nodes {
		zone := node.Label(labelZone)
		if zone == "" {
			continue
		}
		for _, accel := range cfg.Accelerators {
			if accel.ZoneClass == "" {
				continue
			}
			id := node.Label(accel.PresenceLabel)
			if id == "" {
				continue
			}

			modelKey, note := normalizeModel(accel.ZoneClass, id)
			if note != "" {
				notes = append(notes, note)
			}

			validZones := cfg.Zones[accel.ZoneClass][modelKey]
			if len(validZones) == 0 {
				continue
			}
			if _, ok := validZones[zone]; !ok {
				incompatible = append(incompatible, fmt.Sprintf(
					"%s %s on %s in zone %s not in validated zones for %s",
					accel.Name, id, node.Name, zone, modelKey))
			}
		}
	}

	if len(incompatible) > 0 {
		return model.CheckOutcome{
			Message:  strings.Join(incompatible, "; "),
			Warnings: append(notes, incompatible...),
		}
	}
	return model.CheckOutcome{
		Success:  true,
		Message:  "All accelerators in validated zones",
		Warnings: notes,
	}
}

// normalizeModel reduces an accelerator identifier to its zone-table model
// key. TPU identifiers are versioned slice names ("v6e-slice" → "v6e"); GPU
// identifiers carry an NVIDIA vendor prefix ("nvidia-tesla-t4" → "t4").
// Identifiers that do not follow the convention are used verbatim and the
// returned note flags the unexpected format.
func normalizeModel(class, id string) (string, string) {
	switch class {
	case ZoneClassTPU:
		if i := strings.Index(id, "-"); i >= 0 {
			return id[:i], ""
		}
		return id, fmt.Sprintf("unexpected TPU type format (no hyphen): %s", id)
	case ZoneClassGPU:
		short := strings.TrimPrefix(id, "nvidia-tesla-")
		short = strings.TrimPrefix(short, "nvidia-")
		if short == id {
			return id, fmt.Sprintf("unexpected GPU type format (no nvidia prefix): %s", id)
		}
		return short, ""
	}
	return id, ""
}
