package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"

	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"
)

const (
	invalidVPCID             = "InvalidVpcID.NotFound"
	invalidSubnetID          = "InvalidSubnetID.NotFound"
	invalidRouteTableID      = "InvalidRouteTableID.NotFound"
	invalidNATGatewayID      = "InvalidNatGatewayID.NotFound"
	invalidAllocationID      = "InvalidAllocationID.NotFound"
	invalidInternetGatewayID = "InvalidInternetGatewayID.NotFound"

	// tagNameSubnetInternalELB is the tag name used on a subnet to designate that
	// it should be used for internal ELBs
	tagNameSubnetInternalELB = "kubernetes.io/role/internal-elb"

	// tagNameSubnetPublicELB is the tag name used on a subnet to designate that
	// it should be used for internet ELBs
	tagNameSubnetPublicELB = "kubernetes.io/role/elb"
)

var (
	retryBackoff = wait.Backoff{
		Steps:    5,
		Duration: 3 * time.Second,
		Factor:   3.0,
		Jitter:   0.1,
	}

	// Freshly created resources are not visible to every endpoint right away.
	eventualConsistencyCodes = []string{
		invalidVPCID,
		invalidSubnetID,
		invalidRouteTableID,
		invalidNATGatewayID,
		invalidAllocationID,
		invalidInternetGatewayID,
	}
)

func isEventualConsistencyError(err error) bool {
	return awsutil.HasErrorCode(err, eventualConsistencyCodes...)
}

func (o *CreateNetworkOptions) createVPC(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger) (string, error) {
	vpcName := fmt.Sprintf("%s-vpc", o.ClusterName)
	createResult, err := client.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:         aws.String(o.VPCCIDR),
		TagSpecifications: o.ec2TagSpecifications(ec2types.ResourceTypeVpc, vpcName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create VPC: %w", err)
	}
	vpcID := aws.ToString(createResult.Vpc.VpcId)
	ledger.Record(KindVPC, vpcID, "")
	l.Info("Created VPC", "id", vpcID)

	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		_, err := client.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
			VpcId:            aws.String(vpcID),
			EnableDnsSupport: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to modify VPC attributes: %w", err)
	}
	l.Info("Enabled DNS support on VPC", "id", vpcID)

	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		_, err := client.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
			VpcId:              aws.String(vpcID),
			EnableDnsHostnames: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to modify VPC attributes: %w", err)
	}
	l.Info("Enabled DNS hostnames on VPC", "id", vpcID)
	return vpcID, nil
}

func (o *CreateNetworkOptions) CreatePublicSubnet(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID string) (string, error) {
	return o.CreateSubnet(ctx, l, client, ledger, vpcID, o.PublicCIDR, fmt.Sprintf("%s-public", o.ClusterName), tagNameSubnetPublicELB)
}

func (o *CreateNetworkOptions) CreatePrivateSubnet(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID string) (string, error) {
	return o.CreateSubnet(ctx, l, client, ledger, vpcID, o.PrivateCIDR, fmt.Sprintf("%s-private", o.ClusterName), tagNameSubnetInternalELB)
}

func (o *CreateNetworkOptions) CreateSubnet(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID, cidr, name, scopeTag string) (string, error) {
	tagSpec := o.ec2TagSpecifications(ec2types.ResourceTypeSubnet, name)
	tagSpec[0].Tags = append(tagSpec[0].Tags, ec2types.Tag{
		Key:   aws.String(scopeTag),
		Value: aws.String("1"),
	})

	var subnetID string
	err := retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		result, err := client.CreateSubnet(ctx, &ec2.CreateSubnetInput{
			VpcId:             aws.String(vpcID),
			CidrBlock:         aws.String(cidr),
			TagSpecifications: tagSpec,
		})
		if err != nil {
			return err
		}
		subnetID = aws.ToString(result.Subnet.SubnetId)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("cannot create subnet %s: %w", name, err)
	}
	ledger.Record(KindSubnet, subnetID, vpcID)
	l.Info("Created subnet", "name", name, "id", subnetID, "cidr", cidr)
	return subnetID, nil
}

func (o *CreateNetworkOptions) CreateInternetGateway(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID string) (string, error) {
	gatewayName := fmt.Sprintf("%s-igw", o.ClusterName)
	result, err := client.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{
		TagSpecifications: o.ec2TagSpecifications(ec2types.ResourceTypeInternetGateway, gatewayName),
	})
	if err != nil {
		return "", fmt.Errorf("cannot create internet gateway: %w", err)
	}
	igwID := aws.ToString(result.InternetGateway.InternetGatewayId)
	ledger.Record(KindInternetGateway, igwID, "")
	l.Info("Created internet gateway", "id", igwID)

	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		_, err := client.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
			VpcId:             aws.String(vpcID),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("cannot attach internet gateway to vpc: %w", err)
	}
	ledger.Record(KindInternetGatewayAttachment, igwID, vpcID)
	l.Info("Attached internet gateway to VPC", "internet gateway", igwID, "vpc", vpcID)
	return igwID, nil
}

func (o *CreateNetworkOptions) CreatePublicRouteTable(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID, igwID, subnetID string) (string, error) {
	tableName := fmt.Sprintf("%s-public-rtb", o.ClusterName)
	tableID, err := o.createRouteTable(ctx, l, client, ledger, vpcID, tableName)
	if err != nil {
		return "", err
	}
	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		_, err := client.CreateRoute(ctx, &ec2.CreateRouteInput{
			RouteTableId:         aws.String(tableID),
			DestinationCidrBlock: aws.String(anyIPv4CIDR),
			GatewayId:            aws.String(igwID),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("cannot create route to internet gateway: %w", err)
	}
	l.Info("Created route to internet gateway", "route table", tableID, "internet gateway", igwID)

	if err := o.associateRouteTable(ctx, l, client, ledger, tableID, subnetID); err != nil {
		return "", err
	}
	return tableID, nil
}

func (o *CreateNetworkOptions) CreatePrivateRouteTable(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID, natGatewayID, subnetID string) (string, error) {
	tableName := fmt.Sprintf("%s-private-rtb", o.ClusterName)
	tableID, err := o.createRouteTable(ctx, l, client, ledger, vpcID, tableName)
	if err != nil {
		return "", err
	}
	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		_, err := client.CreateRoute(ctx, &ec2.CreateRouteInput{
			RouteTableId:         aws.String(tableID),
			DestinationCidrBlock: aws.String(anyIPv4CIDR),
			NatGatewayId:         aws.String(natGatewayID),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("cannot create nat gateway route in private route table: %w", err)
	}
	l.Info("Created route to NAT gateway", "route table", tableID, "nat gateway", natGatewayID)

	if err := o.associateRouteTable(ctx, l, client, ledger, tableID, subnetID); err != nil {
		return "", err
	}
	return tableID, nil
}

func (o *CreateNetworkOptions) createRouteTable(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, vpcID, name string) (string, error) {
	var tableID string
	err := retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		result, err := client.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{
			VpcId:             aws.String(vpcID),
			TagSpecifications: o.ec2TagSpecifications(ec2types.ResourceTypeRouteTable, name),
		})
		if err != nil {
			return err
		}
		tableID = aws.ToString(result.RouteTable.RouteTableId)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("cannot create route table %s: %w", name, err)
	}
	ledger.Record(KindRouteTable, tableID, vpcID)
	l.Info("Created route table", "name", name, "id", tableID)
	return tableID, nil
}

func (o *CreateNetworkOptions) associateRouteTable(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, tableID, subnetID string) error {
	var associationID string
	err := retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		result, err := client.AssociateRouteTable(ctx, &ec2.AssociateRouteTableInput{
			RouteTableId: aws.String(tableID),
			SubnetId:     aws.String(subnetID),
		})
		if err != nil {
			return err
		}
		associationID = aws.ToString(result.AssociationId)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cannot associate route table %s with subnet %s: %w", tableID, subnetID, err)
	}
	ledger.Record(KindRouteTableAssociation, associationID, tableID)
	l.Info("Associated route table with subnet", "route table", tableID, "subnet", subnetID)
	return nil
}

// CreateNATGateway allocates an elastic IP, places a NAT gateway in the public
// subnet and waits until the gateway is available.
func (o *CreateNetworkOptions) CreateNATGateway(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger, publicSubnetID string) (string, error) {
	eipResult, err := client.AllocateAddress(ctx, &ec2.AllocateAddressInput{
		Domain:            ec2types.DomainTypeVpc,
		TagSpecifications: o.ec2TagSpecifications(ec2types.ResourceTypeElasticIp, fmt.Sprintf("%s-eip", o.ClusterName)),
	})
	if err != nil {
		return "", fmt.Errorf("cannot allocate EIP for NAT gateway: %w", err)
	}
	allocationID := aws.ToString(eipResult.AllocationId)
	ledger.Record(KindElasticIP, allocationID, "")
	l.Info("Created elastic IP for NAT gateway", "id", allocationID)

	var natGatewayID string
	err = retry.OnError(retryBackoff, isEventualConsistencyError, func() error {
		result, err := client.CreateNatGateway(ctx, &ec2.CreateNatGatewayInput{
			AllocationId:      aws.String(allocationID),
			SubnetId:          aws.String(publicSubnetID),
			TagSpecifications: o.ec2TagSpecifications(ec2types.ResourceTypeNatgateway, fmt.Sprintf("%s-nat", o.ClusterName)),
		})
		if err != nil {
			return err
		}
		natGatewayID = aws.ToString(result.NatGateway.NatGatewayId)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("cannot create NAT gateway: %w", err)
	}
	ledger.Record(KindNATGateway, natGatewayID, publicSubnetID)
	l.Info("Created NAT gateway", "id", natGatewayID)

	if err := waitForNATGatewayState(ctx, l, client, natGatewayID, ec2types.NatGatewayStateAvailable, o.NATGatewayPollInterval, o.NATGatewayTimeout); err != nil {
		return "", err
	}
	return natGatewayID, nil
}

// waitForNATGatewayState polls until the gateway reaches want. A gateway that
// fails, or disappears while it should become available, ends the wait.
func waitForNATGatewayState(ctx context.Context, l logr.Logger, client awsapi.EC2API, natGatewayID string, want ec2types.NatGatewayState, interval, timeout time.Duration) error {
	var lastState ec2types.NatGatewayState
	err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, func(ctx context.Context) (bool, error) {
		result, err := client.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{
			NatGatewayIds: []string{natGatewayID},
		})
		if err != nil {
			if awsutil.HasErrorCode(err, invalidNATGatewayID) {
				if want == ec2types.NatGatewayStateDeleted {
					return true, nil
				}
				return false, nil
			}
			return false, fmt.Errorf("cannot describe NAT gateway %s: %w", natGatewayID, err)
		}
		if len(result.NatGateways) == 0 {
			return want == ec2types.NatGatewayStateDeleted, nil
		}
		gateway := result.NatGateways[0]
		lastState = gateway.State
		switch {
		case gateway.State == want:
			return true, nil
		case gateway.State == ec2types.NatGatewayStateFailed:
			return false, fmt.Errorf("NAT gateway %s failed: %s", natGatewayID, aws.ToString(gateway.FailureMessage))
		case want == ec2types.NatGatewayStateAvailable &&
			(gateway.State == ec2types.NatGatewayStateDeleting || gateway.State == ec2types.NatGatewayStateDeleted):
			return false, fmt.Errorf("NAT gateway %s is %s", natGatewayID, gateway.State)
		}
		l.V(1).Info("Waiting for NAT gateway", "id", natGatewayID, "state", gateway.State, "want", want)
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("NAT gateway %s did not become %s (last state %q): %w", natGatewayID, want, lastState, err)
	}
	l.Info("NAT gateway is "+string(want), "id", natGatewayID)
	return nil
}
