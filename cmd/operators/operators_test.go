package operators

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/go-logr/logr"
	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"

	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	crclient "sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
)

func TestGitOpsSubscription(t *testing.T) {
	tests := []struct {
		name          string
		channel       string
		expectChannel string
	}{
		{
			name:          "When no channel is given, it should keep the manifest channel",
			expectChannel: "latest",
		},
		{
			name:          "When a channel is given, it should override the manifest",
			channel:       "gitops-1.15",
			expectChannel: "gitops-1.15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			sub, err := GitOpsSubscription(tt.channel)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(sub.APIVersion).To(Equal("operators.coreos.com/v1alpha1"))
			g.Expect(sub.Kind).To(Equal("Subscription"))
			g.Expect(sub.Name).To(Equal("openshift-gitops-operator"))
			g.Expect(sub.Namespace).To(Equal("openshift-operators"))
			g.Expect(sub.Spec.Package).To(Equal("openshift-gitops-operator"))
			g.Expect(sub.Spec.CatalogSource).To(Equal("redhat-operators"))
			g.Expect(sub.Spec.CatalogSourceNamespace).To(Equal("openshift-marketplace"))
			g.Expect(sub.Spec.InstallPlanApproval).To(Equal(operatorsv1alpha1.ApprovalAutomatic))
			g.Expect(sub.Spec.Channel).To(Equal(tt.expectChannel))
		})
	}
}

func TestInstall(t *testing.T) {
	t.Run("When the API accepts the patch, it should server-side apply the subscription as hcpctl", func(t *testing.T) {
		g := NewWithT(t)
		scheme, err := NewScheme()
		g.Expect(err).ToNot(HaveOccurred())

		var applied []*operatorsv1alpha1.Subscription
		var patchTypes []types.PatchType
		var patchOpts []*crclient.PatchOptions
		client := fake.NewClientBuilder().WithScheme(scheme).WithInterceptorFuncs(interceptor.Funcs{
			Patch: func(_ context.Context, _ crclient.WithWatch, obj crclient.Object, patch crclient.Patch, opts ...crclient.PatchOption) error {
				applied = append(applied, obj.(*operatorsv1alpha1.Subscription))
				patchTypes = append(patchTypes, patch.Type())
				po := &crclient.PatchOptions{}
				po.ApplyOptions(opts)
				patchOpts = append(patchOpts, po)
				return nil
			},
		}).Build()

		opts := &InstallOptions{GitOpsChannel: "latest"}
		g.Expect(opts.Install(context.Background(), logr.Discard(), client)).To(Succeed())

		g.Expect(applied).To(HaveLen(1))
		g.Expect(applied[0].Name).To(Equal("openshift-gitops-operator"))
		g.Expect(patchTypes).To(ConsistOf(types.ApplyPatchType))
		g.Expect(patchOpts[0].FieldManager).To(Equal(FieldOwner))
		g.Expect(patchOpts[0].Force).To(Equal(ptr.To(true)))
	})

	t.Run("When the API rejects the patch, it should return the error", func(t *testing.T) {
		g := NewWithT(t)
		scheme, err := NewScheme()
		g.Expect(err).ToNot(HaveOccurred())

		client := fake.NewClientBuilder().WithScheme(scheme).WithInterceptorFuncs(interceptor.Funcs{
			Patch: func(_ context.Context, _ crclient.WithWatch, _ crclient.Object, _ crclient.Patch, _ ...crclient.PatchOption) error {
				return errors.New("forbidden")
			},
		}).Build()

		opts := &InstallOptions{GitOpsChannel: "latest"}
		err = opts.Install(context.Background(), logr.Discard(), client)
		g.Expect(err).To(MatchError(ContainSubstring("openshift-operators/openshift-gitops-operator")))
	})
}
