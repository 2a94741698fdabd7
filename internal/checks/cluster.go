package checks

import (
	"context"
	"fmt"

	"github.com/opendatahub-io/rhaii-on-xks/internal/cloud"
	"github.com/opendatahub-io/rhaii-on-xks/internal/errors"
	"github.com/opendatahub-io/rhaii-on-xks/internal/snapshot"
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// ClusterSuite builds the cluster readiness checks for the active provider:
// instance-type validation, accelerator validation, and the advisory zone
// compatibility check.
func ClusterSuite(lister snapshot.Lister, cfg cloud.Config, diags *errors.Collector) Suite {
	return Suite{
		Name:        "cluster",
		Description: "Cluster readiness",
		Checks: []Check{
			{
				Name:            "instance_type",
				Description:     "Validate machine/instance types for the cloud provider",
				SuggestedAction: "Provision cluster with supported instance types",
				Run: withNodes(lister, diags, "instance_type", func(nodes []model.Node) model.CheckOutcome {
					return cloud.ValidateInstanceTypes(nodes, cfg)
				}),
			},
			{
				Name:            "accelerators",
				Description:     "Validate accelerator availability",
				SuggestedAction: "Provision cluster with supported accelerators",
				Run: withNodes(lister, diags, "accelerators", func(nodes []model.Node) model.CheckOutcome {
					return cloud.ValidateAccelerators(nodes, cfg)
				}),
			},
			{
				Name:            "zone_compatibility",
				Description:     "Validate accelerators are deployed in zones with known capacity",
				SuggestedAction: "Move accelerator node pools to validated zones",
				Optional:        true,
				Run: withNodes(lister, diags, "zone_compatibility", func(nodes []model.Node) model.CheckOutcome {
					return cloud.ValidateZoneCompatibility(nodes, cfg)
				}),
			},
		},
	}
}

// withNodes adapts a pure validator over a node snapshot into a Check run
// function. Each invocation re-queries the cluster; a listing failure
// degrades to a failed outcome carrying the error text, never a fault.
func withNodes(lister snapshot.Lister, diags *errors.Collector, checkName string, fn func([]model.Node) model.CheckOutcome) func(context.Context) model.CheckOutcome {
	return func(ctx context.Context) model.CheckOutcome {
		nodes, err := lister.List(ctx)
		if err != nil {
			diags.Report(errors.Diagnostic{
				Code:    errors.ErrNodeListFailed,
				Message: err.Error(),
				Check:   checkName,
				Err:     err,
			})
			return model.CheckOutcome{Message: fmt.Sprintf("Failed to query nodes: %v", err)}
		}
		return fn(nodes)
	}
}
