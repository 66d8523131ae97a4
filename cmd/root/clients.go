package root

import (
	"context"

	awsinfrautil "github.com/openshift/hcpctl/cmd/infra/aws/util"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsapi"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"k8s.io/apimachinery/pkg/runtime"
	crclient "sigs.k8s.io/controller-runtime/pkg/client"
)

// ClientFactory builds the API clients the operations talk to. An empty
// region falls back to the environment and then to a default.
type ClientFactory interface {
	STS(ctx context.Context, region string) (awsapi.STSAPI, error)
	IAM(ctx context.Context, region string) (awsapi.IAMAPI, error)
	EC2(ctx context.Context, region string) (awsapi.EC2API, error)
	Kube(scheme *runtime.Scheme) (crclient.Client, error)
}

type defaultClients struct {
	agent string
}

func (c *defaultClients) STS(ctx context.Context, region string) (awsapi.STSAPI, error) {
	cfg, err := awsinfrautil.NewConfig(ctx, c.agent, region)
	if err != nil {
		return nil, err
	}
	return sts.NewFromConfig(cfg), nil
}

func (c *defaultClients) IAM(ctx context.Context, region string) (awsapi.IAMAPI, error) {
	cfg, err := awsinfrautil.NewConfig(ctx, c.agent, region)
	if err != nil {
		return nil, err
	}
	return iam.NewFromConfig(cfg), nil
}

func (c *defaultClients) EC2(ctx context.Context, region string) (awsapi.EC2API, error) {
	cfg, err := awsinfrautil.NewConfig(ctx, c.agent, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}

func (c *defaultClients) Kube(scheme *runtime.Scheme) (crclient.Client, error) {
	return util.GetClient(scheme)
}
