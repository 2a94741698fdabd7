package snapshot

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// FromK8sNode converts a Kubernetes Node to the snapshot record the
// classification core operates on. Pure function — no side effects.
// Allocatable quantities keep their string encoding; parsing is deferred
// to the point of use so a malformed value degrades to zero in the check
// that reads it rather than failing the conversion.
func FromK8sNode(node *corev1.Node) model.Node {
	allocatable := make(map[string]string, len(node.Status.Allocatable))
	for name, qty := range node.Status.Allocatable {
		allocatable[string(name)] = qty.String()
	}
	return model.Node{
		Name:        node.Name,
		Labels:      node.Labels,
		Allocatable: allocatable,
	}
}
