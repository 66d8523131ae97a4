package awsutil

import (
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

const (
	DefaultPartition = "aws"

	InstallerRoleSuffix = "HCP-ROSA-Installer-Role"
	SupportRoleSuffix   = "HCP-ROSA-Support-Role"
	WorkerRoleSuffix    = "HCP-ROSA-Worker-Role"

	// IAM role names are capped at 64 characters.
	maxRoleNameLength = 64
)

var (
	accountIDPattern  = regexp.MustCompile(`^[0-9A-Za-z]+$`)
	rolePrefixPattern = regexp.MustCompile(`^[\w+=,.@-]+$`)
	knownPartitions   = map[string]bool{
		"aws":        true,
		"aws-cn":     true,
		"aws-us-gov": true,
	}
)

// IsValidAccountID reports whether id looks like a resolved account identifier.
func IsValidAccountID(id string) bool {
	return accountIDPattern.MatchString(id)
}

// AccountRoleName returns the name rosa gives to a hosted control plane account role.
func AccountRoleName(prefix, suffix string) string {
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func InstallerRoleARN(partition, accountID, prefix string) (string, error) {
	return accountRoleARN(partition, accountID, prefix, InstallerRoleSuffix)
}

func SupportRoleARN(partition, accountID, prefix string) (string, error) {
	return accountRoleARN(partition, accountID, prefix, SupportRoleSuffix)
}

func WorkerRoleARN(partition, accountID, prefix string) (string, error) {
	return accountRoleARN(partition, accountID, prefix, WorkerRoleSuffix)
}

func accountRoleARN(partition, accountID, prefix, suffix string) (string, error) {
	if !knownPartitions[partition] {
		return "", fmt.Errorf("unknown AWS partition %q", partition)
	}
	if !IsValidAccountID(accountID) {
		return "", fmt.Errorf("invalid account id %q", accountID)
	}
	if !rolePrefixPattern.MatchString(prefix) {
		return "", fmt.Errorf("invalid role prefix %q", prefix)
	}
	name := AccountRoleName(prefix, suffix)
	if len(name) > maxRoleNameLength {
		return "", fmt.Errorf("role name %q exceeds %d characters", name, maxRoleNameLength)
	}
	return arn.ARN{
		Partition: partition,
		Service:   "iam",
		AccountID: accountID,
		Resource:  "role/" + name,
	}.String(), nil
}

// PartitionFromARN extracts the partition of a caller identity ARN.
func PartitionFromARN(callerARN string) (string, error) {
	parsed, err := arn.Parse(callerARN)
	if err != nil {
		return "", fmt.Errorf("failed to parse ARN %s: %w", callerARN, err)
	}
	return parsed.Partition, nil
}
