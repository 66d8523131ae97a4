package awsapi

//go:generate ../../hack/tools/bin/mockgen -source=iam.go -package=awsapi -destination=iam_mock.go

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
)

type IAMAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
}

var _ IAMAPI = (*iam.Client)(nil)
