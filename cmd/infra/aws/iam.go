package aws

import (
	"context"
	"fmt"

	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/go-logr/logr"

	"k8s.io/client-go/util/retry"
)

// verifyRole waits for a role that was just created out of band to become visible.
func verifyRole(ctx context.Context, l logr.Logger, client awsapi.IAMAPI, roleName string) error {
	var roleARN string
	err := retry.OnError(retryBackoff, func(err error) bool {
		return awsutil.HasErrorCode(err, awsutil.NoSuchEntity)
	}, func() error {
		result, err := client.GetRole(ctx, &iam.GetRoleInput{
			RoleName: aws.String(roleName),
		})
		if err != nil {
			return err
		}
		roleARN = aws.ToString(result.Role.Arn)
		return nil
	})
	if err != nil {
		return fmt.Errorf("role %s is not available: %w", roleName, err)
	}
	l.Info("Found role", "name", roleName, "arn", roleARN)
	return nil
}
