package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/settings"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// CreateNetworkOptions are the inputs of the network a hosted control plane cluster runs in.
type CreateNetworkOptions struct {
	ClusterName    string
	VPCCIDR        string
	PublicCIDR     string
	PrivateCIDR    string
	AdditionalTags []string

	NATGatewayTimeout      time.Duration
	NATGatewayPollInterval time.Duration
	RollbackOnFailure      bool

	additionalEC2Tags []ec2types.Tag
}

type CreateNetworkOutput struct {
	VPCID           string
	PublicSubnetID  string
	PrivateSubnetID string
}

// Params returns the values later steps read back from the parameter file.
func (o *CreateNetworkOutput) Params() params.Output {
	return params.Output{
		{Key: params.VPCID, Value: o.VPCID},
		{Key: params.PublicSubnetID, Value: o.PublicSubnetID},
		{Key: params.PrivateSubnetID, Value: o.PrivateSubnetID},
	}
}

const (
	clusterTagValue = "owned"
	nameTagKey      = "Name"
	anyIPv4CIDR     = "0.0.0.0/0"

	// budget for the teardown calls, on top of the NAT gateway deletion wait
	rollbackTimeout = 5 * time.Minute
)

func NewCreateNetworkOptions(p *params.Params, s *settings.Settings) *CreateNetworkOptions {
	return &CreateNetworkOptions{
		ClusterName:            p.ClusterName,
		VPCCIDR:                p.VPCCIDR,
		PublicCIDR:             p.PublicCIDR,
		PrivateCIDR:            p.PrivateCIDR,
		AdditionalTags:         p.AdditionalTags,
		NATGatewayTimeout:      s.NATGatewayTimeout,
		NATGatewayPollInterval: s.NATGatewayInterval,
		RollbackOnFailure:      s.RollbackOnFailure,
	}
}

func (o *CreateNetworkOptions) Validate() error {
	if err := util.ValidateRequiredOption(params.ClusterName, o.ClusterName); err != nil {
		return err
	}
	if o.NATGatewayPollInterval <= 0 || o.NATGatewayTimeout <= 0 {
		return fmt.Errorf("NAT gateway poll interval and timeout must be positive")
	}
	return o.parseAdditionalTags()
}

// Run creates the VPC, both subnets, the gateways and the route tables in a
// fixed order. Every created resource is recorded; on failure the record is
// logged for manual cleanup, or torn down when RollbackOnFailure is set.
func (o *CreateNetworkOptions) Run(ctx context.Context, l logr.Logger, client awsapi.EC2API) (*CreateNetworkOutput, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	ledger := &Ledger{}
	out, err := o.createNetwork(ctx, l, client, ledger)
	if err == nil {
		return out, nil
	}

	l.Error(err, "Failed to create network", "created", ledger.String())
	if !o.RollbackOnFailure {
		if len(ledger.Resources()) > 0 {
			l.Info("Created resources were left in place and must be removed manually", "resources", ledger.String())
		}
		return nil, err
	}

	destroyOpts := &DestroyNetworkOptions{
		NATGatewayTimeout:      o.NATGatewayTimeout,
		NATGatewayPollInterval: o.NATGatewayPollInterval,
	}
	// an interrupt cancels ctx, the teardown must still run to completion
	rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout+o.NATGatewayTimeout)
	defer cancel()
	if rollbackErr := destroyOpts.Rollback(rollbackCtx, l, client, ledger); rollbackErr != nil {
		return nil, utilerrors.NewAggregate([]error{err, fmt.Errorf("rollback incomplete: %w", rollbackErr)})
	}
	l.Info("Rolled back created resources", "count", len(ledger.Resources()))
	return nil, err
}

func (o *CreateNetworkOptions) createNetwork(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger) (*CreateNetworkOutput, error) {
	vpcID, err := o.createVPC(ctx, l, client, ledger)
	if err != nil {
		return nil, err
	}
	publicSubnetID, err := o.CreatePublicSubnet(ctx, l, client, ledger, vpcID)
	if err != nil {
		return nil, err
	}
	privateSubnetID, err := o.CreatePrivateSubnet(ctx, l, client, ledger, vpcID)
	if err != nil {
		return nil, err
	}
	igwID, err := o.CreateInternetGateway(ctx, l, client, ledger, vpcID)
	if err != nil {
		return nil, err
	}
	if _, err := o.CreatePublicRouteTable(ctx, l, client, ledger, vpcID, igwID, publicSubnetID); err != nil {
		return nil, err
	}
	natGatewayID, err := o.CreateNATGateway(ctx, l, client, ledger, publicSubnetID)
	if err != nil {
		return nil, err
	}
	if _, err := o.CreatePrivateRouteTable(ctx, l, client, ledger, vpcID, natGatewayID, privateSubnetID); err != nil {
		return nil, err
	}
	return &CreateNetworkOutput{
		VPCID:           vpcID,
		PublicSubnetID:  publicSubnetID,
		PrivateSubnetID: privateSubnetID,
	}, nil
}

func (o *CreateNetworkOptions) ec2TagSpecifications(resourceType ec2types.ResourceType, name string) []ec2types.TagSpecification {
	return []ec2types.TagSpecification{
		{
			ResourceType: resourceType,
			Tags:         append(ec2Tags(o.ClusterName, name), o.additionalEC2Tags...),
		},
	}
}

// parseAdditionalTags converts ADDITIONAL_TAGS into EC2 tags. Repeating the
// cluster ownership tag is allowed, overriding it or the Name tag is not.
func (o *CreateNetworkOptions) parseAdditionalTags() error {
	parsed, err := util.ParseAWSTags(o.AdditionalTags)
	if err != nil {
		return err
	}
	tags := awsutil.EC2Tags(parsed)
	ownership := clusterTag(o.ClusterName)
	if awsutil.HasTagWithValue(tags, ownership, clusterTagValue) {
		delete(parsed, ownership)
		tags = awsutil.EC2Tags(parsed)
	}
	for _, key := range []string{nameTagKey, ownership} {
		if awsutil.FindTagByKey(tags, key) != nil {
			return fmt.Errorf("additional tag %s=%s conflicts with a tag set on every resource", key, awsutil.GetTagValue(tags, key))
		}
	}
	o.additionalEC2Tags = tags
	return nil
}

func clusterTag(clusterName string) string {
	return fmt.Sprintf("kubernetes.io/cluster/%s", clusterName)
}

func ec2Tags(clusterName, name string) []ec2types.Tag {
	tags := []ec2types.Tag{
		{
			Key:   aws.String(clusterTag(clusterName)),
			Value: aws.String(clusterTagValue),
		},
	}
	if name != "" {
		tags = append(tags, ec2types.Tag{
			Key:   aws.String(nameTagKey),
			Value: aws.String(name),
		})
	}
	return tags
}
