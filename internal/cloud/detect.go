package cloud

import (
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// Detect selects the managed-cloud provider hosting the given nodes.
// Providers are tried in registry declaration order and the first whose
// detection labels appear on any node wins, so the result stays
// deterministic even if label namespaces ever overlapped. An empty
// snapshot detects nothing. Pure function — no API calls.
func Detect(nodes []model.Node, registry []Config) (Config, bool) {
	for _, cfg := range registry {
		for _, node := range nodes {
			for _, label := range cfg.DetectLabels {
				if _, ok := node.Labels[label]; ok {
					return cfg, true
				}
			}
		}
	}
	return Config{}, false
}
