package checks

import (
	"context"
	"fmt"
	"sync"

	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CRDLister returns the names of installed CustomResourceDefinitions.
type CRDLister interface {
	CRDNames(ctx context.Context) (map[string]struct{}, error)
}

// CachedCRDLister lists CRDs once per run and caches the name set; the set
// of installed CRDs is not expected to change during a preflight pass.
// A failed listing is not cached, so a later check may retry.
type CachedCRDLister struct {
	client apiextensionsclient.Interface

	mu    sync.Mutex
	names map[string]struct{}
}

// NewCachedCRDLister creates a CachedCRDLister over the given clientset.
func NewCachedCRDLister(client apiextensionsclient.Interface) *CachedCRDLister {
	return &CachedCRDLister{client: client}
}

// CRDNames returns the set of installed CRD names.
func (l *CachedCRDLister) CRDNames(ctx context.Context) (map[string]struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.names != nil {
		return l.names, nil
	}

	list, err := l.client.ApiextensionsV1().CustomResourceDefinitions().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("checks: failed to list custom resource definitions: %w", err)
	}

	names := make(map[string]struct{}, len(list.Items))
	for i := range list.Items {
		names[list.Items[i].Name] = struct{}{}
	}
	l.names = names
	return names, nil
}
