package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/openshift/hcpctl/support/awsapi"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type DestroyNetworkOptions struct {
	NATGatewayTimeout      time.Duration
	NATGatewayPollInterval time.Duration
}

// Rollback deletes every resource in the ledger in reverse creation order. It
// keeps going after a failed deletion and returns the aggregated errors.
func (o *DestroyNetworkOptions) Rollback(ctx context.Context, l logr.Logger, client awsapi.EC2API, ledger *Ledger) error {
	resources := ledger.Resources()
	var errs []error
	for i := len(resources) - 1; i >= 0; i-- {
		if err := o.destroyResource(ctx, l, client, resources[i]); err != nil {
			l.Error(err, "Failed to delete resource", "resource", resources[i].String())
			errs = append(errs, err)
		}
	}
	return utilerrors.NewAggregate(errs)
}

func (o *DestroyNetworkOptions) destroyResource(ctx context.Context, l logr.Logger, client awsapi.EC2API, r Resource) error {
	switch r.Kind {
	case KindRouteTableAssociation:
		if _, err := client.DisassociateRouteTable(ctx, &ec2.DisassociateRouteTableInput{
			AssociationId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to disassociate route table %s: %w", r.Parent, err)
		}
		l.Info("Disassociated route table", "association", r.ID, "route table", r.Parent)
	case KindRouteTable:
		if _, err := client.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
			RouteTableId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to delete route table %s: %w", r.ID, err)
		}
		l.Info("Deleted route table", "id", r.ID)
	case KindNATGateway:
		if _, err := client.DeleteNatGateway(ctx, &ec2.DeleteNatGatewayInput{
			NatGatewayId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to delete NAT gateway %s: %w", r.ID, err)
		}
		l.Info("Deleting NAT gateway", "id", r.ID)
		// the elastic IP stays in use until the gateway is gone
		if err := waitForNATGatewayState(ctx, l, client, r.ID, ec2types.NatGatewayStateDeleted, o.NATGatewayPollInterval, o.NATGatewayTimeout); err != nil {
			return err
		}
	case KindElasticIP:
		if _, err := client.ReleaseAddress(ctx, &ec2.ReleaseAddressInput{
			AllocationId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to release elastic IP %s: %w", r.ID, err)
		}
		l.Info("Released elastic IP", "id", r.ID)
	case KindInternetGatewayAttachment:
		if _, err := client.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
			InternetGatewayId: aws.String(r.ID),
			VpcId:             aws.String(r.Parent),
		}); err != nil {
			return fmt.Errorf("failed to detach internet gateway %s from vpc %s: %w", r.ID, r.Parent, err)
		}
		l.Info("Detached internet gateway", "id", r.ID, "vpc", r.Parent)
	case KindInternetGateway:
		if _, err := client.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
			InternetGatewayId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to delete internet gateway %s: %w", r.ID, err)
		}
		l.Info("Deleted internet gateway", "id", r.ID)
	case KindSubnet:
		if _, err := client.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
			SubnetId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to delete subnet %s: %w", r.ID, err)
		}
		l.Info("Deleted subnet", "id", r.ID)
	case KindVPC:
		if _, err := client.DeleteVpc(ctx, &ec2.DeleteVpcInput{
			VpcId: aws.String(r.ID),
		}); err != nil {
			return fmt.Errorf("failed to delete VPC %s: %w", r.ID, err)
		}
		l.Info("Deleted VPC", "id", r.ID)
	default:
		return fmt.Errorf("unknown resource kind %q", r.Kind)
	}
	return nil
}
