// Package operators installs the day-two operators on a running cluster.
package operators

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/go-logr/logr"
	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"

	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	crclient "sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"
)

// FieldOwner identifies this tool as the server-side apply manager.
const FieldOwner = "hcpctl"

//go:embed assets/gitops-subscription.yaml
var gitOpsSubscriptionYAML []byte

// NewScheme returns the types the operator install path reads and writes.
func NewScheme() (*runtime.Scheme, error) {
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return nil, err
	}
	if err := operatorsv1alpha1.AddToScheme(scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

// GitOpsSubscription returns the OpenShift GitOps subscription on channel.
func GitOpsSubscription(channel string) (*operatorsv1alpha1.Subscription, error) {
	sub := &operatorsv1alpha1.Subscription{}
	if err := yaml.UnmarshalStrict(gitOpsSubscriptionYAML, sub); err != nil {
		return nil, fmt.Errorf("cannot decode gitops subscription: %w", err)
	}
	if sub.Spec == nil {
		return nil, fmt.Errorf("gitops subscription has no spec")
	}
	if channel != "" {
		sub.Spec.Channel = channel
	}
	return sub, nil
}

type InstallOptions struct {
	GitOpsChannel string
}

// Install applies every operator subscription. OLM resolves and installs the
// operator afterwards, this does not wait for it.
func (o *InstallOptions) Install(ctx context.Context, l logr.Logger, client crclient.Client) error {
	sub, err := GitOpsSubscription(o.GitOpsChannel)
	if err != nil {
		return err
	}
	if err := client.Patch(ctx, sub, crclient.Apply, crclient.ForceOwnership, crclient.FieldOwner(FieldOwner)); err != nil {
		return fmt.Errorf("failed to apply subscription %s/%s: %w", sub.Namespace, sub.Name, err)
	}
	l.Info("Applied subscription", "name", sub.Name, "namespace", sub.Namespace, "channel", sub.Spec.Channel)
	return nil
}
