package awsutil

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

const (
	AuthFailure           = "AuthFailure"
	UnauthorizedOperation = "UnauthorizedOperation"
	AccessDenied          = "AccessDenied"
	NoSuchEntity          = "NoSuchEntity"
)

func AWSErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "Unknown"
}

// IsPermissionsError returns true if on aws permission errors. EC2 reports
// AuthFailure or UnauthorizedOperation, IAM and STS report AccessDenied.
func IsPermissionsError(err error) bool {
	code := AWSErrorCode(err)
	return code == AuthFailure || code == UnauthorizedOperation || code == AccessDenied
}

// HasErrorCode reports whether err carries one of the given API error codes, ignoring case.
func HasErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	code := AWSErrorCode(err)
	for _, c := range codes {
		if strings.EqualFold(code, c) {
			return true
		}
	}
	return false
}
