package awsutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"

	. "github.com/onsi/gomega"
)

func TestAWSErrorCode(t *testing.T) {
	g := NewWithT(t)

	apiErr := &smithy.GenericAPIError{Code: "InvalidSubnetID.NotFound", Message: "not yet"}
	g.Expect(AWSErrorCode(apiErr)).To(Equal("InvalidSubnetID.NotFound"))
	g.Expect(AWSErrorCode(fmt.Errorf("wrapped: %w", apiErr))).To(Equal("InvalidSubnetID.NotFound"))
	g.Expect(AWSErrorCode(errors.New("plain"))).To(Equal("Unknown"))
}

func TestHasErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		codes    []string
		expected bool
	}{
		{
			name:     "When the code matches ignoring case, it should return true",
			err:      &smithy.GenericAPIError{Code: "InvalidRouteTableID.NotFound"},
			codes:    []string{"InvalidRouteTableId.NotFound"},
			expected: true,
		},
		{
			name:     "When no code matches, it should return false",
			err:      &smithy.GenericAPIError{Code: "VpcLimitExceeded"},
			codes:    []string{"InvalidVpcID.NotFound"},
			expected: false,
		},
		{
			name:     "When the error is nil, it should return false",
			codes:    []string{"Unknown"},
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(HasErrorCode(tt.err, tt.codes...)).To(Equal(tt.expected))
		})
	}
}

func TestIsPermissionsError(t *testing.T) {
	g := NewWithT(t)
	g.Expect(IsPermissionsError(&smithy.GenericAPIError{Code: UnauthorizedOperation})).To(BeTrue())
	g.Expect(IsPermissionsError(fmt.Errorf("cannot create role: %w", &smithy.GenericAPIError{Code: AccessDenied}))).To(BeTrue())
	g.Expect(IsPermissionsError(&smithy.GenericAPIError{Code: "Throttling"})).To(BeFalse())
}
