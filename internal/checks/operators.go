package checks

import (
	"context"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/ptr"

	"github.com/opendatahub-io/rhaii-on-xks/internal/errors"
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

// Required CRDs per operator.
var (
	certManagerCRDs = []string{
		"certificaterequests.cert-manager.io",
		"certificates.cert-manager.io",
		"clusterissuers.cert-manager.io",
		"issuers.cert-manager.io",
	}
	sailOperatorCRDs = []string{
		"istiocnis.sailoperator.io",
		"istiorevisions.sailoperator.io",
		"istiorevisiontags.sailoperator.io",
		"istios.sailoperator.io",
		"ztunnels.sailoperator.io",
	}
	lwsOperatorCRDs = []string{
		"leaderworkersets.leaderworkerset.x-k8s.io",
	}
	kserveCRDs = []string{
		"llminferenceservices.serving.kserve.io",
		"llminferenceserviceconfigs.serving.kserve.io",
		"inferencepools.inference.networking.k8s.io",
		"inferencemodels.inference.networking.x-k8s.io",
		"inferenceobjectives.inference.networking.x-k8s.io",
		"inferencepoolimports.inference.networking.x-k8s.io",
		"inferencepools.inference.networking.x-k8s.io",
	}
)

// deploymentRef identifies one deployment whose readiness an operator
// check depends on.
type deploymentRef struct {
	Namespace string
	Name      string
}

// Deployments per operator.
var (
	certManagerDeployments = []deploymentRef{
		{"cert-manager-operator", "cert-manager-operator-controller-manager"},
		{"cert-manager", "cert-manager-webhook"},
		{"cert-manager", "cert-manager-cainjector"},
		{"cert-manager", "cert-manager"},
	}
	sailDeployments = []deploymentRef{
		{"istio-system", "istiod"},
		{"istio-system", "servicemesh-operator3"},
	}
	lwsDeployments = []deploymentRef{
		{"openshift-lws-operator", "openshift-lws-operator"},
	}
	kserveDeployments = []deploymentRef{
		{"opendatahub", "kserve-controller-manager"},
	}
)

// OperatorsSuite builds the operator readiness checks: CRD presence and
// deployment readiness for cert-manager, sail-operator, lws-operator
// (optional), and KServe.
func OperatorsSuite(crds CRDLister, client kubernetes.Interface, diags *errors.Collector) Suite {
	return Suite{
		Name:        "operators",
		Description: "Operators readiness",
		Checks: []Check{
			{
				Name:            "crd_certmanager",
				Description:     "Check the cluster has the cert-manager CRDs",
				SuggestedAction: "Install cert-manager",
				Run:             crdCheck(crds, diags, "crd_certmanager", certManagerCRDs),
			},
			{
				Name:            "operator_certmanager",
				Description:     "Check the cert-manager operator is running properly",
				SuggestedAction: "Install or verify cert-manager deployment",
				Run:             deploymentsCheck(client, diags, "operator_certmanager", certManagerDeployments),
			},
			{
				Name:            "crd_sailoperator",
				Description:     "Check the cluster has the sail-operator CRDs",
				SuggestedAction: "Install sail-operator",
				Run:             crdCheck(crds, diags, "crd_sailoperator", sailOperatorCRDs),
			},
			{
				Name:            "operator_sail",
				Description:     "Check the sail operator is running properly",
				SuggestedAction: "Install or verify sail operator deployment",
				Run:             deploymentsCheck(client, diags, "operator_sail", sailDeployments),
			},
			{
				Name:            "crd_lwsoperator",
				Description:     "Check the cluster has the lws-operator CRDs",
				SuggestedAction: "Install lws-operator",
				Optional:        true,
				Run:             crdCheck(crds, diags, "crd_lwsoperator", lwsOperatorCRDs),
			},
			{
				Name:            "operator_lws",
				Description:     "Check the lws-operator is running properly",
				SuggestedAction: "Install or verify lws operator deployment",
				Optional:        true,
				Run:             deploymentsCheck(client, diags, "operator_lws", lwsDeployments),
			},
			{
				Name:            "crd_kserve",
				Description:     "Check the cluster has the KServe CRDs",
				SuggestedAction: "Install KServe",
				Run:             crdCheck(crds, diags, "crd_kserve", kserveCRDs),
			},
			{
				Name:            "operator_kserve",
				Description:     "Check the KServe controller is running properly",
				SuggestedAction: "Install or verify KServe deployment",
				Run:             deploymentsCheck(client, diags, "operator_kserve", kserveDeployments),
			},
		},
	}
}

// crdCheck verifies every required CRD name is installed.
func crdCheck(crds CRDLister, diags *errors.Collector, checkName string, required []string) func(context.Context) model.CheckOutcome {
	return func(ctx context.Context) model.CheckOutcome {
		names, err := crds.CRDNames(ctx)
		if err != nil {
			diags.Report(errors.Diagnostic{
				Code:    errors.ErrCRDListFailed,
				Message: err.Error(),
				Check:   checkName,
				Err:     err,
			})
			return model.CheckOutcome{Message: fmt.Sprintf("Failed to list CRDs: %v", err)}
		}

		var missing []string
		for _, crd := range required {
			if _, ok := names[crd]; !ok {
				missing = append(missing, crd)
			}
		}
		if len(missing) > 0 {
			return model.CheckOutcome{
				Message: "Missing CRDs: " + strings.Join(missing, ", "),
			}
		}
		return model.CheckOutcome{
			Success: true,
			Message: fmt.Sprintf("All %d required CRDs are present", len(required)),
		}
	}
}

// deploymentsCheck verifies every listed deployment has as many ready
// replicas as desired. A read failure or replica shortfall fails the check;
// all deployments are inspected so the message covers every problem found.
func deploymentsCheck(client kubernetes.Interface, diags *errors.Collector, checkName string, refs []deploymentRef) func(context.Context) model.CheckOutcome {
	return func(ctx context.Context) model.CheckOutcome {
		var problems []string
		for _, ref := range refs {
			deployment, err := client.AppsV1().Deployments(ref.Namespace).Get(ctx, ref.Name, metav1.GetOptions{})
			if err != nil {
				diags.Report(errors.Diagnostic{
					Code:    errors.ErrDeploymentReadFailed,
					Message: err.Error(),
					Check:   checkName,
					Err:     err,
				})
				problems = append(problems, fmt.Sprintf(
					"Failed to read deployment %s/%s: %v", ref.Namespace, ref.Name, err))
				continue
			}

			desired := ptr.Deref(deployment.Spec.Replicas, 1)
			ready := deployment.Status.ReadyReplicas
			if ready != desired {
				problems = append(problems, fmt.Sprintf(
					"Deployment %s/%s has only %d replicas out of %d desired",
					ref.Namespace, ref.Name, ready, desired))
			}
		}

		if len(problems) > 0 {
			return model.CheckOutcome{Message: strings.Join(problems, "; ")}
		}
		return model.CheckOutcome{
			Success: true,
			Message: fmt.Sprintf("All %d deployments ready", len(refs)),
		}
	}
}
