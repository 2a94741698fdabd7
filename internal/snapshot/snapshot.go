package snapshot

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/opendatahub-io/rhaii-on-xks/internal/observability"
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// Lister produces the node inventory a validation pass operates on.
// Implementations query the live cluster; tests substitute fixtures.
type Lister interface {
	List(ctx context.Context) ([]model.Node, error)
}

// KubeLister lists nodes through a Kubernetes clientset. Every call
// performs a fresh node-listing query: validators deliberately do not
// share a cached snapshot, so results reflect the cluster at the moment
// each check runs.
type KubeLister struct {
	client  kubernetes.Interface
	metrics *observability.Metrics
}

// NewKubeLister creates a KubeLister. metrics may be nil in tests.
func NewKubeLister(client kubernetes.Interface, metrics *observability.Metrics) *KubeLister {
	return &KubeLister{client: client, metrics: metrics}
}

// List returns the current node inventory with labels and allocatable
// resource quantities.
func (l *KubeLister) List(ctx context.Context) ([]model.Node, error) {
	nodeList, err := l.client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("snapshot: failed to list nodes: %w", err)
	}

	nodes := make([]model.Node, 0, len(nodeList.Items))
	for i := range nodeList.Items {
		nodes = append(nodes, FromK8sNode(&nodeList.Items[i]))
	}
	if l.metrics != nil {
		l.metrics.NodesScanned.Set(float64(len(nodes)))
	}
	return nodes, nil
}
