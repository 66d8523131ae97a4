package awsapi

//go:generate ../../hack/tools/bin/mockgen -source=sts.go -package=awsapi -destination=sts_mock.go

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var _ STSAPI = (*sts.Client)(nil)
