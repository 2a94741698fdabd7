package cloud

import (
	"testing"

	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

func TestDetect_Azure(t *testing.T) {
	nodes := []model.Node{{
		Name:   "aks-node-1",
		Labels: map[string]string{"kubernetes.azure.com/cluster": "my-cluster"},
	}}
	cfg, ok := Detect(nodes, Registry())
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if cfg.Name != ProviderAzure {
		t.Errorf("Detect = %q, want %q", cfg.Name, ProviderAzure)
	}
}

func TestDetect_GKENodePool(t *testing.T) {
	nodes := []model.Node{{
		Name:   "gke-node-1",
		Labels: map[string]string{"cloud.google.com/gke-nodepool": "default-pool"},
	}}
	cfg, ok := Detect(nodes, Registry())
	if !ok || cfg.Name != ProviderGCP {
		t.Errorf("Detect = (%q, %v), want (%q, true)", cfg.Name, ok, ProviderGCP)
	}
}

func TestDetect_GKEOSDistribution(t *testing.T) {
	nodes := []model.Node{{
		Name:   "gke-node-1",
		Labels: map[string]string{"cloud.google.com/gke-os-distribution": "cos"},
	}}
	cfg, ok := Detect(nodes, Registry())
	if !ok || cfg.Name != ProviderGCP {
		t.Errorf("Detect = (%q, %v), want (%q, true)", cfg.Name, ok, ProviderGCP)
	}
}

func TestDetect_NoProviderLabels(t *testing.T) {
	nodes := []model.Node{{
		Name:   "node-1",
		Labels: map[string]string{"kubernetes.io/hostname": "node-1"},
	}}
	if _, ok := Detect(nodes, Registry()); ok {
		t.Error("expected detection to fail with no provider labels")
	}
}

func TestDetect_EmptySnapshot(t *testing.T) {
	if _, ok := Detect(nil, Registry()); ok {
		t.Error("Detect(nil) should not find a provider")
	}
	if _, ok := Detect([]model.Node{}, Registry()); ok {
		t.Error("Detect([]) should not find a provider")
	}
}

// A node hypothetically carrying detection labels of two providers resolves
// to whichever provider is declared first in the registry.
func TestDetect_RegistryOrderBreaksTies(t *testing.T) {
	nodes := []model.Node{{
		Name: "weird-node",
		Labels: map[string]string{
			"kubernetes.azure.com/cluster":  "c",
			"cloud.google.com/gke-nodepool": "p",
		},
	}}
	cfg, ok := Detect(nodes, Registry())
	if !ok || cfg.Name != ProviderAzure {
		t.Errorf("Detect = (%q, %v), want azure (first in registry)", cfg.Name, ok)
	}
}

func TestDetect_LabelOnLaterNode(t *testing.T) {
	nodes := []model.Node{
		{Name: "plain", Labels: map[string]string{"kubernetes.io/os": "linux"}},
		{Name: "aks", Labels: map[string]string{"kubernetes.azure.com/cluster": "c"}},
	}
	cfg, ok := Detect(nodes, Registry())
	if !ok || cfg.Name != ProviderAzure {
		t.Errorf("Detect = (%q, %v), want azure via second node", cfg.Name, ok)
	}
}

func TestLookup(t *testing.T) {
	cfg, ok := Lookup(ProviderGCP)
	if !ok || cfg.Name != ProviderGCP {
		t.Errorf("Lookup(gcp) = (%q, %v)", cfg.Name, ok)
	}
	if _, ok := Lookup("coreweave"); ok {
		t.Error("Lookup of unconfigured provider should fail")
	}
}
