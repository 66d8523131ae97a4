package root

import (
	"context"
	"io"

	"github.com/openshift/hcpctl/cmd/cluster/rosa"
	awsinfra "github.com/openshift/hcpctl/cmd/infra/aws"
	"github.com/openshift/hcpctl/cmd/operators"
	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/preflight"
	"github.com/openshift/hcpctl/cmd/settings"
	"github.com/openshift/hcpctl/support/rosacli"

	"github.com/go-logr/logr"
)

type Operation string

const (
	OpCreateVPC        Operation = "create-vpc"
	OpCreatePermission Operation = "create-permission"
	OpInstallHCP       Operation = "install-hcp"
	OpDeleteHCP        Operation = "delete-hcp"
	OpCreateAdmin      Operation = "create-admin"
	OpInstallOperators Operation = "install-operators"
)

// AllOperations lists the operations in the order they are normally run.
var AllOperations = []Operation{
	OpCreateVPC,
	OpCreatePermission,
	OpInstallHCP,
	OpDeleteHCP,
	OpCreateAdmin,
	OpInstallOperators,
}

var descriptions = map[Operation]string{
	OpCreateVPC:        "Create the VPC, public and private subnets, internet and NAT gateways and route tables",
	OpCreatePermission: "Create the account roles, the managed OIDC config and the operator roles",
	OpInstallHCP:       "Install the hosted control plane cluster",
	OpDeleteHCP:        "Delete the hosted control plane cluster",
	OpCreateAdmin:      "Create a cluster-admin user for the cluster",
	OpInstallOperators: "Install the OpenShift GitOps operator on the cluster the current kubeconfig context points at",
}

// tools returns the binaries an operation needs on PATH.
func (o Operation) tools() []preflight.Tool {
	if o == OpInstallOperators {
		return preflight.ClusterTools()
	}
	return preflight.DefaultTools()
}

// Env is what every operation gets to work with once the gate passed.
type Env struct {
	Settings *settings.Settings
	Params   *params.Params
	Identity *preflight.Identity
	Clients  ClientFactory
	Rosa     *rosacli.Client
	Log      logr.Logger
	Out      io.Writer
}

// OperationFunc runs one operation and returns the parameters it produced.
type OperationFunc func(ctx context.Context, env *Env) (params.Output, error)

func DefaultOperations() map[Operation]OperationFunc {
	return map[Operation]OperationFunc{
		OpCreateVPC:        createVPC,
		OpCreatePermission: createPermission,
		OpInstallHCP:       installHCP,
		OpDeleteHCP:        deleteHCP,
		OpCreateAdmin:      createAdmin,
		OpInstallOperators: installOperators,
	}
}

func createVPC(ctx context.Context, env *Env) (params.Output, error) {
	client, err := env.Clients.EC2(ctx, env.Params.Region)
	if err != nil {
		return nil, err
	}
	out, err := awsinfra.NewCreateNetworkOptions(env.Params, env.Settings).Run(ctx, env.Log, client)
	if err != nil {
		return nil, err
	}
	return out.Params(), nil
}

func createPermission(ctx context.Context, env *Env) (params.Output, error) {
	stsClient, err := env.Clients.STS(ctx, env.Params.Region)
	if err != nil {
		return nil, err
	}
	iamClient, err := env.Clients.IAM(ctx, env.Params.Region)
	if err != nil {
		return nil, err
	}
	out, err := awsinfra.NewCreatePermissionsOptions(env.Params).Run(ctx, env.Log, stsClient, iamClient, env.Rosa)
	if err != nil {
		return nil, err
	}
	return out.Params(), nil
}

func installHCP(ctx context.Context, env *Env) (params.Output, error) {
	opts, err := rosa.NewInstallOptions(env.Params, env.Identity.Partition)
	if err != nil {
		return nil, err
	}
	return nil, rosa.Install(ctx, env.Log, env.Rosa, opts)
}

func deleteHCP(ctx context.Context, env *Env) (params.Output, error) {
	return nil, rosa.Delete(ctx, env.Log, env.Rosa, env.Params.ClusterName)
}

func createAdmin(ctx context.Context, env *Env) (params.Output, error) {
	return nil, rosa.CreateAdmin(ctx, env.Log, env.Rosa, env.Params.ClusterName)
}

func installOperators(ctx context.Context, env *Env) (params.Output, error) {
	scheme, err := operators.NewScheme()
	if err != nil {
		return nil, err
	}
	client, err := env.Clients.Kube(scheme)
	if err != nil {
		return nil, err
	}
	opts := &operators.InstallOptions{GitOpsChannel: env.Settings.GitOpsChannel}
	return nil, opts.Install(ctx, env.Log, client)
}
