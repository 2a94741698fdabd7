package cloud

import (
	"strings"
	"testing"

	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

func azure() Config { cfg, _ := Lookup(ProviderAzure); return cfg }
func gcp() Config   { cfg, _ := Lookup(ProviderGCP); return cfg }

func TestValidateInstanceTypes_AzureExactMatch(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "Standard_NC24ads_A100_v4"},
	}}
	out := ValidateInstanceTypes(nodes, azure())
	if !out.Success {
		t.Fatalf("expected success, got failure: %s", out.Message)
	}
	if !strings.Contains(out.Message, "Standard_NC24ads_A100_v4") {
		t.Errorf("message should name the matched type, got %q", out.Message)
	}
	if !strings.Contains(out.Message, "node-1") {
		t.Errorf("message should name the node, got %q", out.Message)
	}
}

func TestValidateInstanceTypes_AzureUnsupported(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "Standard_D4s_v3"},
	}}
	out := ValidateInstanceTypes(nodes, azure())
	if out.Success {
		t.Fatal("expected failure for unsupported SKU")
	}
	if !strings.Contains(out.Message, "Standard_NC24ads_A100_v4") {
		t.Errorf("failure message should enumerate expected families, got %q", out.Message)
	}
}

// Exact mode never falls back to prefix matching: a hyphen-family type on
// an exact-match provider does not match even if it shares a prefix.
func TestValidateInstanceTypes_ExactModeNoPrefixFallback(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "Standard_NC24ads_A100_v4-extra"},
	}}
	out := ValidateInstanceTypes(nodes, azure())
	if out.Success {
		t.Errorf("exact-mode provider must not prefix-match, got success: %s", out.Message)
	}
}

func TestValidateInstanceTypes_GCPPrefixMatch(t *testing.T) {
	nodes := []model.Node{{
		Name:   "gpu-node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "n1-standard-4"},
	}}
	out := ValidateInstanceTypes(nodes, gcp())
	if !out.Success {
		t.Fatalf("expected success via n1 prefix, got: %s", out.Message)
	}
	if !strings.Contains(out.Message, "n1-standard-4 on gpu-node-1") {
		t.Errorf("message should pair type and node, got %q", out.Message)
	}
}

func TestValidateInstanceTypes_GCPTPUMachine(t *testing.T) {
	nodes := []model.Node{{
		Name:   "tpu-node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "ct6e-standard-4t"},
	}}
	out := ValidateInstanceTypes(nodes, gcp())
	if !out.Success || !strings.Contains(out.Message, "ct6e-standard-4t") {
		t.Errorf("expected ct6e match, got (%v, %q)", out.Success, out.Message)
	}
}

func TestValidateInstanceTypes_GCPUnsupportedFamily(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"node.kubernetes.io/instance-type": "e2-standard-4"},
	}}
	out := ValidateInstanceTypes(nodes, gcp())
	if out.Success {
		t.Fatal("expected failure for e2 family")
	}
	if !strings.Contains(out.Message, "No supported instance types") {
		t.Errorf("unexpected failure message: %q", out.Message)
	}
}

func TestValidateInstanceTypes_BetaLabelFallback(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"beta.kubernetes.io/instance-type": "n1-standard-4"},
	}}
	out := ValidateInstanceTypes(nodes, gcp())
	if !out.Success {
		t.Errorf("beta label alone should suffice, got: %s", out.Message)
	}
}

func TestValidateInstanceTypes_StableLabelWins(t *testing.T) {
	nodes := []model.Node{{
		Name: "node-1",
		Labels: map[string]string{
			"node.kubernetes.io/instance-type": "n1-standard-4",
			"beta.kubernetes.io/instance-type": "e2-standard-4",
		},
	}}
	out := ValidateInstanceTypes(nodes, gcp())
	if !out.Success {
		t.Errorf("stable label value should win over beta, got: %s", out.Message)
	}
}

func TestValidateInstanceTypes_UnlabeledNodesSkipped(t *testing.T) {
	nodes := []model.Node{
		{Name: "bare", Labels: map[string]string{}},
		{Name: "good", Labels: map[string]string{"node.kubernetes.io/instance-type": "a3-highgpu-8g"}},
	}
	out := ValidateInstanceTypes(nodes, gcp())
	if !out.Success {
		t.Fatalf("unlabeled node must not poison the check: %s", out.Message)
	}
	if strings.Contains(out.Message, "bare") {
		t.Errorf("unlabeled node should be excluded from the tally, got %q", out.Message)
	}
}

// Node order changes diagnostic ordering only, never the verdict or the set
// of matched pairs.
func TestValidateInstanceTypes_PermutationInvariant(t *testing.T) {
	a := model.Node{Name: "a", Labels: map[string]string{"node.kubernetes.io/instance-type": "n1-standard-4"}}
	b := model.Node{Name: "b", Labels: map[string]string{"node.kubernetes.io/instance-type": "e2-standard-4"}}
	c := model.Node{Name: "c", Labels: map[string]string{"node.kubernetes.io/instance-type": "g2-standard-8"}}

	out1 := ValidateInstanceTypes([]model.Node{a, b, c}, gcp())
	out2 := ValidateInstanceTypes([]model.Node{c, b, a}, gcp())

	if out1.Success != out2.Success {
		t.Fatalf("verdict changed under permutation: %v vs %v", out1.Success, out2.Success)
	}
	for _, pair := range []string{"n1-standard-4 on a", "g2-standard-8 on c"} {
		if !strings.Contains(out1.Message, pair) || !strings.Contains(out2.Message, pair) {
			t.Errorf("pair %q missing from one of the permuted results", pair)
		}
	}
}

func TestValidateAccelerators_AzureGPUAvailable(t *testing.T) {
	nodes := []model.Node{{
		Name:        "node-1",
		Labels:      map[string]string{"nvidia.com/gpu.present": "true"},
		Allocatable: map[string]string{"nvidia.com/gpu": "4"},
	}}
	out := ValidateAccelerators(nodes, azure())
	if !out.Success {
		t.Fatalf("expected success, got: %s", out.Message)
	}
	if !strings.Contains(out.Message, "GPU available on") || !strings.Contains(out.Message, "node-1") {
		t.Errorf("unexpected success message: %q", out.Message)
	}
}

// Presence label without an allocatable quantity means hardware attached
// but driver missing: the node never qualifies, the check never aborts.
func TestValidateAccelerators_PresentButNoDriver(t *testing.T) {
	nodes := []model.Node{{
		Name:        "node-1",
		Labels:      map[string]string{"nvidia.com/gpu.present": "true"},
		Allocatable: map[string]string{},
	}}
	out := ValidateAccelerators(nodes, azure())
	if out.Success {
		t.Fatal("driver-absent node must not count toward a pass")
	}
	if !strings.Contains(out.Message, "No accelerators found") {
		t.Errorf("unexpected failure message: %q", out.Message)
	}
	if len(out.Warnings) != 1 || !strings.Contains(out.Warnings[0], "no allocatable resources") {
		t.Errorf("expected driver-absent warning, got %v", out.Warnings)
	}
}

func TestValidateAccelerators_UnparsableQuantityIsZero(t *testing.T) {
	nodes := []model.Node{{
		Name:        "node-1",
		Labels:      map[string]string{"nvidia.com/gpu.present": "true"},
		Allocatable: map[string]string{"nvidia.com/gpu": "many"},
	}}
	out := ValidateAccelerators(nodes, azure())
	if out.Success {
		t.Error("unparsable quantity must count as zero")
	}
}

func TestValidateAccelerators_GCPTPUWithTopology(t *testing.T) {
	nodes := []model.Node{{
		Name: "tpu-node-1",
		Labels: map[string]string{
			"cloud.google.com/gke-tpu-accelerator": "v6e-slice",
			"cloud.google.com/gke-tpu-topology":    "2x2",
		},
		Allocatable: map[string]string{"google.com/tpu": "4"},
	}}
	out := ValidateAccelerators(nodes, gcp())
	if !out.Success {
		t.Fatalf("expected success, got: %s", out.Message)
	}
	for _, want := range []string{"TPU available on", "v6e-slice", "gke-tpu-topology: 2x2"} {
		if !strings.Contains(out.Message, want) {
			t.Errorf("message missing %q: %q", want, out.Message)
		}
	}
}

// Classes with zero qualifying nodes are omitted from a passing message.
func TestValidateAccelerators_GCPOnlyGPUPresent(t *testing.T) {
	nodes := []model.Node{{
		Name:        "gpu-node-1",
		Labels:      map[string]string{"cloud.google.com/gke-accelerator": "nvidia-tesla-t4"},
		Allocatable: map[string]string{"nvidia.com/gpu": "1"},
	}}
	out := ValidateAccelerators(nodes, gcp())
	if !out.Success {
		t.Fatalf("expected success, got: %s", out.Message)
	}
	if !strings.Contains(out.Message, "GPU available on") {
		t.Errorf("message missing GPU summary: %q", out.Message)
	}
	if strings.Contains(out.Message, "TPU available") {
		t.Errorf("empty TPU class must be omitted from the pass message: %q", out.Message)
	}
}

func TestValidateAccelerators_NoneFoundListsClasses(t *testing.T) {
	nodes := []model.Node{{Name: "node-1", Labels: map[string]string{}, Allocatable: map[string]string{}}}
	out := ValidateAccelerators(nodes, gcp())
	if out.Success {
		t.Fatal("expected failure with no accelerators")
	}
	if !strings.Contains(out.Message, "GPU") || !strings.Contains(out.Message, "TPU") {
		t.Errorf("failure message should list every checked class, got %q", out.Message)
	}
}

func TestValidateAccelerators_PermutationInvariant(t *testing.T) {
	a := model.Node{
		Name:        "a",
		Labels:      map[string]string{"cloud.google.com/gke-accelerator": "nvidia-tesla-t4"},
		Allocatable: map[string]string{"nvidia.com/gpu": "1"},
	}
	b := model.Node{
		Name:        "b",
		Labels:      map[string]string{"cloud.google.com/gke-accelerator": "nvidia-h100-80gb"},
		Allocatable: map[string]string{"nvidia.com/gpu": "8"},
	}
	out1 := ValidateAccelerators([]model.Node{a, b}, gcp())
	out2 := ValidateAccelerators([]model.Node{b, a}, gcp())
	if out1.Success != out2.Success {
		t.Fatalf("verdict changed under permutation")
	}
	for _, name := range []string{"a (", "b ("} {
		if !strings.Contains(out1.Message, name) || !strings.Contains(out2.Message, name) {
			t.Errorf("node entry %q missing from one of the permuted results", name)
		}
	}
}
