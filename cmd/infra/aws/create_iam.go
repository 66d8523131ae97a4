package aws

import (
	"context"
	"fmt"

	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"
	"github.com/openshift/hcpctl/support/rosacli"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/go-logr/logr"
)

// CreatePermissionsOptions are the inputs of the account roles, the managed
// OIDC configuration and the operator roles of a hosted control plane cluster.
type CreatePermissionsOptions struct {
	AccountRolesPrefix  string
	OperatorRolesPrefix string
}

type CreatePermissionsOutput struct {
	AccountID        string
	Partition        string
	OIDCConfigID     string
	InstallerRoleARN string
}

func (o *CreatePermissionsOutput) Params() params.Output {
	return params.Output{
		{Key: params.OIDCConfigID, Value: o.OIDCConfigID},
		{Key: params.AccountID, Value: o.AccountID},
	}
}

func NewCreatePermissionsOptions(p *params.Params) *CreatePermissionsOptions {
	return &CreatePermissionsOptions{
		AccountRolesPrefix:  p.AccountRolesPrefix,
		OperatorRolesPrefix: p.OperatorRolesPrefix,
	}
}

func (o *CreatePermissionsOptions) Validate() error {
	if err := util.ValidateRequiredOption(params.AccountRolesPrefix, o.AccountRolesPrefix); err != nil {
		return err
	}
	return util.ValidateRequiredOption(params.OperatorRolesPrefix, o.OperatorRolesPrefix)
}

// Run creates the permissions in order. Nothing is rolled back on failure.
func (o *CreatePermissionsOptions) Run(ctx context.Context, l logr.Logger, stsClient awsapi.STSAPI, iamClient awsapi.IAMAPI, rosa *rosacli.Client) (*CreatePermissionsOutput, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}
	accountID := aws.ToString(identity.Account)
	partition, err := awsutil.PartitionFromARN(aws.ToString(identity.Arn))
	if err != nil {
		return nil, err
	}
	installerRoleARN, err := awsutil.InstallerRoleARN(partition, accountID, o.AccountRolesPrefix)
	if err != nil {
		return nil, err
	}
	l.Info("Resolved AWS account", "account", accountID, "partition", partition)

	if err := rosa.CreateAccountRoles(ctx, o.AccountRolesPrefix); err != nil {
		return nil, fmt.Errorf("failed to create account roles: %w", err)
	}
	l.Info("Created account roles", "prefix", o.AccountRolesPrefix)

	if err := verifyRole(ctx, l, iamClient, awsutil.AccountRoleName(o.AccountRolesPrefix, awsutil.InstallerRoleSuffix)); err != nil {
		return nil, err
	}

	oidcConfigID, err := rosa.CreateOIDCConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC config: %w", err)
	}
	l.Info("Created OIDC config", "id", oidcConfigID)

	if err := rosa.CreateOperatorRoles(ctx, o.OperatorRolesPrefix, oidcConfigID, installerRoleARN); err != nil {
		return nil, fmt.Errorf("failed to create operator roles: %w", err)
	}
	l.Info("Created operator roles", "prefix", o.OperatorRolesPrefix, "installer role", installerRoleARN)

	return &CreatePermissionsOutput{
		AccountID:        accountID,
		Partition:        partition,
		OIDCConfigID:     oidcConfigID,
		InstallerRoleARN: installerRoleARN,
	}, nil
}
