// Package rosa installs, deletes and administers the hosted control plane
// cluster through the rosa command line tool.
package rosa

import (
	"context"
	"fmt"

	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsutil"
	"github.com/openshift/hcpctl/support/rosacli"

	"github.com/go-logr/logr"
)

type InstallOptions struct {
	Name                string
	Region              string
	PublicSubnetID      string
	PrivateSubnetID     string
	OIDCConfigID        string
	OperatorRolesPrefix string
	AccountRolesPrefix  string
	AccountID           string
	Partition           string
}

// NewInstallOptions reads the install inputs from p. The subnet, OIDC and
// account values must have been produced by earlier steps.
func NewInstallOptions(p *params.Params, partition string) (*InstallOptions, error) {
	if err := p.RequireDerived(params.PublicSubnetID, params.PrivateSubnetID, params.OIDCConfigID, params.AccountID); err != nil {
		return nil, util.NewExitError(util.ExitUsage, err)
	}
	if partition == "" {
		partition = awsutil.DefaultPartition
	}
	return &InstallOptions{
		Name:                p.ClusterName,
		Region:              p.Region,
		PublicSubnetID:      p.PublicSubnetID,
		PrivateSubnetID:     p.PrivateSubnetID,
		OIDCConfigID:        p.OIDCConfigID,
		OperatorRolesPrefix: p.OperatorRolesPrefix,
		AccountRolesPrefix:  p.AccountRolesPrefix,
		AccountID:           p.AccountID,
		Partition:           partition,
	}, nil
}

func (o *InstallOptions) clusterOptions() (rosacli.CreateClusterOptions, error) {
	installer, err := awsutil.InstallerRoleARN(o.Partition, o.AccountID, o.AccountRolesPrefix)
	if err != nil {
		return rosacli.CreateClusterOptions{}, err
	}
	support, err := awsutil.SupportRoleARN(o.Partition, o.AccountID, o.AccountRolesPrefix)
	if err != nil {
		return rosacli.CreateClusterOptions{}, err
	}
	worker, err := awsutil.WorkerRoleARN(o.Partition, o.AccountID, o.AccountRolesPrefix)
	if err != nil {
		return rosacli.CreateClusterOptions{}, err
	}
	return rosacli.CreateClusterOptions{
		Name:                o.Name,
		Region:              o.Region,
		PublicSubnetID:      o.PublicSubnetID,
		PrivateSubnetID:     o.PrivateSubnetID,
		OIDCConfigID:        o.OIDCConfigID,
		OperatorRolesPrefix: o.OperatorRolesPrefix,
		InstallerRoleARN:    installer,
		SupportRoleARN:      support,
		WorkerRoleARN:       worker,
	}, nil
}

// Install requests the cluster and returns once the request is accepted. It
// does not wait for the cluster to become ready.
func Install(ctx context.Context, l logr.Logger, rosa *rosacli.Client, o *InstallOptions) error {
	opts, err := o.clusterOptions()
	if err != nil {
		return err
	}
	if err := rosa.CreateCluster(ctx, opts); err != nil {
		return fmt.Errorf("failed to create cluster %s: %w", o.Name, err)
	}
	l.Info("Requested cluster installation", "name", o.Name, "region", o.Region)
	return nil
}

func Delete(ctx context.Context, l logr.Logger, rosa *rosacli.Client, name string) error {
	if err := util.ValidateRequiredOption(params.ClusterName, name); err != nil {
		return err
	}
	if err := rosa.DeleteCluster(ctx, name); err != nil {
		return fmt.Errorf("failed to delete cluster %s: %w", name, err)
	}
	l.Info("Requested cluster deletion", "name", name)
	return nil
}

// CreateAdmin creates the cluster-admin user. rosa prints the credentials
// directly to the terminal.
func CreateAdmin(ctx context.Context, l logr.Logger, rosa *rosacli.Client, name string) error {
	if err := util.ValidateRequiredOption(params.ClusterName, name); err != nil {
		return err
	}
	if err := rosa.CreateAdmin(ctx, name); err != nil {
		return fmt.Errorf("failed to create admin for cluster %s: %w", name, err)
	}
	l.Info("Created cluster admin", "cluster", name)
	return nil
}
