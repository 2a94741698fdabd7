package cloud

// Provider name constants.
const (
	ProviderAzure = "azure"
	ProviderGCP   = "gcp"
)

// Instance-type label keys. The beta key is long deprecated but some node
// pools still set it; the stable key wins when both are present.
const (
	labelInstanceType     = "node.kubernetes.io/instance-type"
	labelInstanceTypeBeta = "beta.kubernetes.io/instance-type"
	labelZone             = "topology.kubernetes.io/zone"
)

// Accelerator classes understood by the zone table.
const (
	ZoneClassGPU = "gpu"
	ZoneClassTPU = "tpu"
)

// AcceleratorDef describes one class of accelerator a provider can expose.
// A node counts toward the class only if PresenceLabel is set to a
// non-empty value and the allocatable quantity under ResourceKey parses to
// a positive integer (hardware attached and driver-enabled).
type AcceleratorDef struct {
	// Name is the display name, e.g. "GPU" or "TPU".
	Name string
	// PresenceLabel is the label key whose presence signals the
	// accelerator class is attached to the node. Its value identifies the
	// accelerator variant on providers that publish one.
	PresenceLabel string
	// ResourceKey is the allocatable resource key counted as usable units.
	ResourceKey string
	// ExtraLabels are surfaced in diagnostics (e.g. topology) but do not
	// affect pass/fail.
	ExtraLabels []string
	// ZoneClass ties the def to a section of the provider's zone table
	// ("gpu" or "tpu"). Empty means the zone advisor ignores this class.
	ZoneClass string
}

// ZoneTable maps accelerator class → model → zone → region label. It is a
// positive allowlist of validated zones: a model with no entry is
// unconstrained, not incompatible.
type ZoneTable map[string]map[string]map[string]string

// Config is the static, immutable description of one managed-Kubernetes
// environment. Provider-specific behavior is data, not code: the same
// validators run over every Config.
type Config struct {
	// Name identifies the provider ("azure", "gcp").
	Name string
	// DetectLabels detect the provider: presence of any of these label
	// keys on any node is sufficient.
	DetectLabels []string
	// InstanceFamilies are the instance/machine types suitable for
	// large-model workloads. Entries containing an underscore are literal
	// SKUs matched exactly; otherwise entries are hyphen-delimited family
	// prefixes. The convention is uniform per provider.
	InstanceFamilies []string
	// Accelerators lists the accelerator classes the provider can expose.
	Accelerators []AcceleratorDef
	// Zones is the optional known-good-zone table. Nil means zone
	// compatibility is not applicable for this provider.
	Zones ZoneTable
}

// Registry returns the built-in provider configurations in detection
// priority order.
func Registry() []Config {
	return []Config{azureConfig(), gcpConfig()}
}

// Lookup returns the configuration for an explicitly named provider.
func Lookup(name string) (Config, bool) {
	for _, cfg := range Registry() {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return Config{}, false
}

// azureConfig describes Azure AKS: NC/ND series VMs with A100/H100/H200
// GPUs, exposed via the NVIDIA GPU operator labels.
func azureConfig() Config {
	return Config{
		Name:         ProviderAzure,
		DetectLabels: []string{"kubernetes.azure.com/cluster"},
		InstanceFamilies: []string{
			"Standard_NC24ads_A100_v4",
			"Standard_ND96asr_v4",
			"Standard_ND96amsr_A100_v4",
			"Standard_ND96isr_H100_v5",
			"Standard_ND96isr_H200_v5",
		},
		Accelerators: []AcceleratorDef{
			{
				Name:          "GPU",
				PresenceLabel: "nvidia.com/gpu.present",
				ResourceKey:   "nvidia.com/gpu",
			},
		},
	}
}

// gcpConfig describes Google Cloud GKE: TPU machine families (ct6e, ct5e,
// ct5p) and GPU families (n1, a2, g2, a3), with GKE accelerator labels and
// a known-good-zone table.
func gcpConfig() Config {
	return Config{
		Name: ProviderGCP,
		DetectLabels: []string{
			"cloud.google.com/gke-nodepool",
			"cloud.google.com/gke-os-distribution",
		},
		InstanceFamilies: []string{
			"ct6e", "ct5e", "ct5p",
			"n1", "a2", "g2", "a3",
		},
		Accelerators: []AcceleratorDef{
			{
				Name:          "GPU",
				PresenceLabel: "cloud.google.com/gke-accelerator",
				ResourceKey:   "nvidia.com/gpu",
				ZoneClass:     ZoneClassGPU,
			},
			{
				Name:          "TPU",
				PresenceLabel: "cloud.google.com/gke-tpu-accelerator",
				ResourceKey:   "google.com/tpu",
				ExtraLabels:   []string{"cloud.google.com/gke-tpu-topology"},
				ZoneClass:     ZoneClassTPU,
			},
		},
		Zones: gcpZoneData,
	}
}
