package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"
	"go.uber.org/mock/gomock"
)

func testNetworkOptions() *CreateNetworkOptions {
	return &CreateNetworkOptions{
		ClusterName:            "jeretan",
		VPCCIDR:                "10.0.0.0/16",
		PublicCIDR:             "10.0.1.0/24",
		PrivateCIDR:            "10.0.0.0/24",
		NATGatewayTimeout:      time.Second,
		NATGatewayPollInterval: time.Millisecond,
	}
}

func tagValue(specs []ec2types.TagSpecification, key string) string {
	for _, spec := range specs {
		if v := awsutil.GetTagValue(spec.Tags, key); v != "" {
			return v
		}
	}
	return ""
}

// expectNetwork registers the full creation sequence up to and including the
// failing step. A nil failAt expects every step to succeed.
func expectNetwork(g Gomega, m *awsapi.MockEC2API, failAt string) []any {
	var calls []any
	add := func(name string, c *gomock.Call) bool {
		calls = append(calls, c)
		if name == failAt {
			c.Return(nil, errors.New("boom"))
			return false
		}
		return true
	}

	if !add("CreateVpc", m.EXPECT().CreateVpc(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.CreateVpcInput, _ ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error) {
			g.Expect(aws.ToString(in.CidrBlock)).To(Equal("10.0.0.0/16"))
			g.Expect(in.TagSpecifications[0].ResourceType).To(Equal(ec2types.ResourceTypeVpc))
			g.Expect(tagValue(in.TagSpecifications, "Name")).To(Equal("jeretan-vpc"))
			g.Expect(tagValue(in.TagSpecifications, "kubernetes.io/cluster/jeretan")).To(Equal("owned"))
			return &ec2.CreateVpcOutput{Vpc: &ec2types.Vpc{VpcId: aws.String("vpc-1")}}, nil
		})) {
		return calls
	}
	add("EnableDnsSupport", m.EXPECT().ModifyVpcAttribute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.ModifyVpcAttributeInput, _ ...func(*ec2.Options)) (*ec2.ModifyVpcAttributeOutput, error) {
			g.Expect(aws.ToString(in.VpcId)).To(Equal("vpc-1"))
			g.Expect(in.EnableDnsSupport).ToNot(BeNil())
			g.Expect(in.EnableDnsHostnames).To(BeNil())
			return &ec2.ModifyVpcAttributeOutput{}, nil
		}))
	add("EnableDnsHostnames", m.EXPECT().ModifyVpcAttribute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.ModifyVpcAttributeInput, _ ...func(*ec2.Options)) (*ec2.ModifyVpcAttributeOutput, error) {
			g.Expect(in.EnableDnsHostnames).ToNot(BeNil())
			return &ec2.ModifyVpcAttributeOutput{}, nil
		}))
	add("CreatePublicSubnet", m.EXPECT().CreateSubnet(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.CreateSubnetInput, _ ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error) {
			g.Expect(aws.ToString(in.CidrBlock)).To(Equal("10.0.1.0/24"))
			g.Expect(tagValue(in.TagSpecifications, "kubernetes.io/role/elb")).To(Equal("1"))
			return &ec2.CreateSubnetOutput{Subnet: &ec2types.Subnet{SubnetId: aws.String("subnet-public")}}, nil
		}))
	add("CreatePrivateSubnet", m.EXPECT().CreateSubnet(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.CreateSubnetInput, _ ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error) {
			g.Expect(aws.ToString(in.CidrBlock)).To(Equal("10.0.0.0/24"))
			g.Expect(tagValue(in.TagSpecifications, "kubernetes.io/role/internal-elb")).To(Equal("1"))
			return &ec2.CreateSubnetOutput{Subnet: &ec2types.Subnet{SubnetId: aws.String("subnet-private")}}, nil
		}))
	add("CreateInternetGateway", m.EXPECT().CreateInternetGateway(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&ec2.CreateInternetGatewayOutput{InternetGateway: &ec2types.InternetGateway{InternetGatewayId: aws.String("igw-1")}}, nil))
	add("AttachInternetGateway", m.EXPECT().AttachInternetGateway(gomock.Any(), &ec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String("igw-1"),
		VpcId:             aws.String("vpc-1"),
	}, gomock.Any()).Return(&ec2.AttachInternetGatewayOutput{}, nil))
	add("CreatePublicRouteTable", m.EXPECT().CreateRouteTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&ec2.CreateRouteTableOutput{RouteTable: &ec2types.RouteTable{RouteTableId: aws.String("rtb-public")}}, nil))
	if !add("CreatePublicRoute", m.EXPECT().CreateRoute(gomock.Any(), &ec2.CreateRouteInput{
		RouteTableId:         aws.String("rtb-public"),
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		GatewayId:            aws.String("igw-1"),
	}, gomock.Any()).Return(&ec2.CreateRouteOutput{}, nil)) {
		return calls
	}
	add("AssociatePublicRouteTable", m.EXPECT().AssociateRouteTable(gomock.Any(), &ec2.AssociateRouteTableInput{
		RouteTableId: aws.String("rtb-public"),
		SubnetId:     aws.String("subnet-public"),
	}, gomock.Any()).Return(&ec2.AssociateRouteTableOutput{AssociationId: aws.String("rtbassoc-public")}, nil))
	add("AllocateAddress", m.EXPECT().AllocateAddress(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.AllocateAddressInput, _ ...func(*ec2.Options)) (*ec2.AllocateAddressOutput, error) {
			g.Expect(in.Domain).To(Equal(ec2types.DomainTypeVpc))
			g.Expect(tagValue(in.TagSpecifications, "Name")).To(Equal("jeretan-eip"))
			return &ec2.AllocateAddressOutput{AllocationId: aws.String("eipalloc-1")}, nil
		}))
	add("CreateNatGateway", m.EXPECT().CreateNatGateway(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ec2.CreateNatGatewayInput, _ ...func(*ec2.Options)) (*ec2.CreateNatGatewayOutput, error) {
			g.Expect(aws.ToString(in.AllocationId)).To(Equal("eipalloc-1"))
			g.Expect(aws.ToString(in.SubnetId)).To(Equal("subnet-public"))
			return &ec2.CreateNatGatewayOutput{NatGateway: &ec2types.NatGateway{NatGatewayId: aws.String("nat-1")}}, nil
		}))
	add("DescribeNatGatewaysPending", m.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&ec2.DescribeNatGatewaysOutput{NatGateways: []ec2types.NatGateway{{NatGatewayId: aws.String("nat-1"), State: ec2types.NatGatewayStatePending}}}, nil))
	add("DescribeNatGatewaysAvailable", m.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&ec2.DescribeNatGatewaysOutput{NatGateways: []ec2types.NatGateway{{NatGatewayId: aws.String("nat-1"), State: ec2types.NatGatewayStateAvailable}}}, nil))
	add("CreatePrivateRouteTable", m.EXPECT().CreateRouteTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&ec2.CreateRouteTableOutput{RouteTable: &ec2types.RouteTable{RouteTableId: aws.String("rtb-private")}}, nil))
	if !add("CreatePrivateRoute", m.EXPECT().CreateRoute(gomock.Any(), &ec2.CreateRouteInput{
		RouteTableId:         aws.String("rtb-private"),
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		NatGatewayId:         aws.String("nat-1"),
	}, gomock.Any()).Return(&ec2.CreateRouteOutput{}, nil)) {
		return calls
	}
	add("AssociatePrivateRouteTable", m.EXPECT().AssociateRouteTable(gomock.Any(), &ec2.AssociateRouteTableInput{
		RouteTableId: aws.String("rtb-private"),
		SubnetId:     aws.String("subnet-private"),
	}, gomock.Any()).Return(&ec2.AssociateRouteTableOutput{AssociationId: aws.String("rtbassoc-private")}, nil))
	return calls
}

func TestCreateNetwork(t *testing.T) {
	t.Run("When every call succeeds, it should create the network in order and return both subnets", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		gomock.InOrder(expectNetwork(g, mockEC2, "")...)

		out, err := testNetworkOptions().Run(context.Background(), logr.Discard(), mockEC2)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(out).To(Equal(&CreateNetworkOutput{
			VPCID:           "vpc-1",
			PublicSubnetID:  "subnet-public",
			PrivateSubnetID: "subnet-private",
		}))
		g.Expect(out.Params()).To(HaveLen(3))
	})

	t.Run("When a step fails without rollback, it should stop and leave resources in place", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		gomock.InOrder(expectNetwork(g, mockEC2, "CreatePublicRoute")...)

		out, err := testNetworkOptions().Run(context.Background(), logr.Discard(), mockEC2)
		g.Expect(err).To(MatchError(ContainSubstring("cannot create route to internet gateway")))
		g.Expect(out).To(BeNil())
	})

	t.Run("When a step fails with rollback enabled, it should delete created resources in reverse order", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		calls := expectNetwork(g, mockEC2, "CreatePublicRoute")
		calls = append(calls,
			mockEC2.EXPECT().DeleteRouteTable(gomock.Any(), &ec2.DeleteRouteTableInput{RouteTableId: aws.String("rtb-public")}, gomock.Any()).Return(&ec2.DeleteRouteTableOutput{}, nil),
			mockEC2.EXPECT().DetachInternetGateway(gomock.Any(), &ec2.DetachInternetGatewayInput{InternetGatewayId: aws.String("igw-1"), VpcId: aws.String("vpc-1")}, gomock.Any()).Return(&ec2.DetachInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteInternetGateway(gomock.Any(), &ec2.DeleteInternetGatewayInput{InternetGatewayId: aws.String("igw-1")}, gomock.Any()).Return(&ec2.DeleteInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteSubnet(gomock.Any(), &ec2.DeleteSubnetInput{SubnetId: aws.String("subnet-private")}, gomock.Any()).Return(&ec2.DeleteSubnetOutput{}, nil),
			mockEC2.EXPECT().DeleteSubnet(gomock.Any(), &ec2.DeleteSubnetInput{SubnetId: aws.String("subnet-public")}, gomock.Any()).Return(&ec2.DeleteSubnetOutput{}, nil),
			mockEC2.EXPECT().DeleteVpc(gomock.Any(), &ec2.DeleteVpcInput{VpcId: aws.String("vpc-1")}, gomock.Any()).Return(&ec2.DeleteVpcOutput{}, nil),
		)
		gomock.InOrder(calls...)

		opts := testNetworkOptions()
		opts.RollbackOnFailure = true
		_, err := opts.Run(context.Background(), logr.Discard(), mockEC2)
		g.Expect(err).To(MatchError(ContainSubstring("boom")))
		g.Expect(err.Error()).ToNot(ContainSubstring("rollback incomplete"))
	})

	t.Run("When the private route fails with rollback enabled, it should delete the NAT gateway before releasing its elastic IP", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		calls := expectNetwork(g, mockEC2, "CreatePrivateRoute")
		calls = append(calls,
			mockEC2.EXPECT().DeleteRouteTable(gomock.Any(), &ec2.DeleteRouteTableInput{RouteTableId: aws.String("rtb-private")}, gomock.Any()).Return(&ec2.DeleteRouteTableOutput{}, nil),
			mockEC2.EXPECT().DeleteNatGateway(gomock.Any(), &ec2.DeleteNatGatewayInput{NatGatewayId: aws.String("nat-1")}, gomock.Any()).Return(&ec2.DeleteNatGatewayOutput{}, nil),
			mockEC2.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeNatGatewaysOutput{NatGateways: []ec2types.NatGateway{{NatGatewayId: aws.String("nat-1"), State: ec2types.NatGatewayStateDeleting}}}, nil),
			mockEC2.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeNatGatewaysOutput{NatGateways: []ec2types.NatGateway{{NatGatewayId: aws.String("nat-1"), State: ec2types.NatGatewayStateDeleted}}}, nil),
			mockEC2.EXPECT().ReleaseAddress(gomock.Any(), &ec2.ReleaseAddressInput{AllocationId: aws.String("eipalloc-1")}, gomock.Any()).Return(&ec2.ReleaseAddressOutput{}, nil),
			mockEC2.EXPECT().DisassociateRouteTable(gomock.Any(), &ec2.DisassociateRouteTableInput{AssociationId: aws.String("rtbassoc-public")}, gomock.Any()).Return(&ec2.DisassociateRouteTableOutput{}, nil),
			mockEC2.EXPECT().DeleteRouteTable(gomock.Any(), &ec2.DeleteRouteTableInput{RouteTableId: aws.String("rtb-public")}, gomock.Any()).Return(&ec2.DeleteRouteTableOutput{}, nil),
			mockEC2.EXPECT().DetachInternetGateway(gomock.Any(), &ec2.DetachInternetGatewayInput{InternetGatewayId: aws.String("igw-1"), VpcId: aws.String("vpc-1")}, gomock.Any()).Return(&ec2.DetachInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteInternetGateway(gomock.Any(), &ec2.DeleteInternetGatewayInput{InternetGatewayId: aws.String("igw-1")}, gomock.Any()).Return(&ec2.DeleteInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteSubnet(gomock.Any(), &ec2.DeleteSubnetInput{SubnetId: aws.String("subnet-private")}, gomock.Any()).Return(&ec2.DeleteSubnetOutput{}, nil),
			mockEC2.EXPECT().DeleteSubnet(gomock.Any(), &ec2.DeleteSubnetInput{SubnetId: aws.String("subnet-public")}, gomock.Any()).Return(&ec2.DeleteSubnetOutput{}, nil),
			mockEC2.EXPECT().DeleteVpc(gomock.Any(), &ec2.DeleteVpcInput{VpcId: aws.String("vpc-1")}, gomock.Any()).Return(&ec2.DeleteVpcOutput{}, nil),
		)
		gomock.InOrder(calls...)

		opts := testNetworkOptions()
		opts.RollbackOnFailure = true
		_, err := opts.Run(context.Background(), logr.Discard(), mockEC2)
		g.Expect(err).To(MatchError(ContainSubstring("cannot create nat gateway route in private route table")))
		g.Expect(err.Error()).ToNot(ContainSubstring("rollback incomplete"))
	})

	t.Run("When the run is interrupted, it should still roll back with a live context", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		calls := expectNetwork(g, mockEC2, "CreatePublicRoute")
		calls[len(calls)-1].(*gomock.Call).Do(func(context.Context, *ec2.CreateRouteInput, ...func(*ec2.Options)) {
			cancel()
		})
		liveContext := func(ctx context.Context) {
			g.Expect(ctx.Err()).ToNot(HaveOccurred())
			_, hasDeadline := ctx.Deadline()
			g.Expect(hasDeadline).To(BeTrue())
		}
		calls = append(calls,
			mockEC2.EXPECT().DeleteRouteTable(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, _ *ec2.DeleteRouteTableInput, _ ...func(*ec2.Options)) (*ec2.DeleteRouteTableOutput, error) {
					liveContext(ctx)
					return &ec2.DeleteRouteTableOutput{}, nil
				}),
			mockEC2.EXPECT().DetachInternetGateway(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ec2.DetachInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteInternetGateway(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ec2.DeleteInternetGatewayOutput{}, nil),
			mockEC2.EXPECT().DeleteSubnet(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ec2.DeleteSubnetOutput{}, nil).Times(2),
			mockEC2.EXPECT().DeleteVpc(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, _ *ec2.DeleteVpcInput, _ ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error) {
					liveContext(ctx)
					return &ec2.DeleteVpcOutput{}, nil
				}),
		)
		gomock.InOrder(calls...)

		opts := testNetworkOptions()
		opts.RollbackOnFailure = true
		_, err := opts.Run(ctx, logr.Discard(), mockEC2)
		g.Expect(err).To(MatchError(ContainSubstring("boom")))
		g.Expect(err.Error()).ToNot(ContainSubstring("rollback incomplete"))
	})

	t.Run("When additional tags are malformed, it should fail before calling EC2", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)

		opts := testNetworkOptions()
		opts.AdditionalTags = []string{"no-value"}
		_, err := opts.Run(context.Background(), logr.Discard(), mockEC2)
		g.Expect(err).To(HaveOccurred())
	})
}

func TestParseAdditionalTags(t *testing.T) {
	tests := []struct {
		name        string
		tags        []string
		expectKeys  []string
		expectError string
	}{
		{
			name:       "When tags are plain, it should keep them sorted by key",
			tags:       []string{"team=platform", "env=dev"},
			expectKeys: []string{"env", "team"},
		},
		{
			name:       "When the ownership tag is repeated with its value, it should drop the duplicate",
			tags:       []string{"kubernetes.io/cluster/jeretan=owned", "env=dev"},
			expectKeys: []string{"env"},
		},
		{
			name:        "When the ownership tag has another value, it should fail",
			tags:        []string{"kubernetes.io/cluster/jeretan=shared"},
			expectError: "kubernetes.io/cluster/jeretan=shared conflicts",
		},
		{
			name:        "When the Name tag is given, it should fail",
			tags:        []string{"Name=mine"},
			expectError: "Name=mine conflicts",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			opts := testNetworkOptions()
			opts.AdditionalTags = tt.tags
			err := opts.Validate()
			if tt.expectError != "" {
				g.Expect(err).To(MatchError(ContainSubstring(tt.expectError)))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			var keys []string
			for _, tag := range opts.additionalEC2Tags {
				keys = append(keys, aws.ToString(tag.Key))
			}
			g.Expect(keys).To(Equal(tt.expectKeys))
		})
	}
}

func TestWaitForNATGatewayState(t *testing.T) {
	tests := []struct {
		name        string
		want        ec2types.NatGatewayState
		responses   []*ec2.DescribeNatGatewaysOutput
		expectError string
	}{
		{
			name: "When the gateway fails, it should stop polling with the failure message",
			want: ec2types.NatGatewayStateAvailable,
			responses: []*ec2.DescribeNatGatewaysOutput{
				{NatGateways: []ec2types.NatGateway{{State: ec2types.NatGatewayStateFailed, FailureMessage: aws.String("no capacity")}}},
			},
			expectError: "no capacity",
		},
		{
			name: "When waiting for deletion and the gateway is gone, it should succeed",
			want: ec2types.NatGatewayStateDeleted,
			responses: []*ec2.DescribeNatGatewaysOutput{
				{NatGateways: []ec2types.NatGateway{{State: ec2types.NatGatewayStateDeleting}}},
				{NatGateways: []ec2types.NatGateway{{State: ec2types.NatGatewayStateDeleted}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			ctrl := gomock.NewController(t)
			mockEC2 := awsapi.NewMockEC2API(ctrl)
			var calls []any
			for _, resp := range tt.responses {
				calls = append(calls, mockEC2.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(resp, nil))
			}
			gomock.InOrder(calls...)

			err := waitForNATGatewayState(context.Background(), logr.Discard(), mockEC2, "nat-1", tt.want, time.Millisecond, time.Second)
			if tt.expectError != "" {
				g.Expect(err).To(MatchError(ContainSubstring(tt.expectError)))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
		})
	}

	t.Run("When the gateway never becomes available, it should time out", func(t *testing.T) {
		g := NewWithT(t)
		ctrl := gomock.NewController(t)
		mockEC2 := awsapi.NewMockEC2API(ctrl)
		mockEC2.EXPECT().DescribeNatGateways(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			&ec2.DescribeNatGatewaysOutput{NatGateways: []ec2types.NatGateway{{State: ec2types.NatGatewayStatePending}}}, nil).AnyTimes()

		err := waitForNATGatewayState(context.Background(), logr.Discard(), mockEC2, "nat-1", ec2types.NatGatewayStateAvailable, 5*time.Millisecond, 30*time.Millisecond)
		g.Expect(err).To(MatchError(ContainSubstring(`last state "pending"`)))
	})
}
