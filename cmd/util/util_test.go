package util

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "When there is no error, it should exit 0",
			expected: 0,
		},
		{
			name:     "When the error carries no code, it should exit 1",
			err:      errors.New("boom"),
			expected: ExitUsage,
		},
		{
			name:     "When the error is an auth error, it should exit 2",
			err:      NewExitError(ExitAuth, errors.New("expired")),
			expected: ExitAuth,
		},
		{
			name:     "When the exit error is wrapped, it should still be found",
			err:      fmt.Errorf("gate: %w", NewExitError(ExitAuth, errors.New("expired"))),
			expected: ExitAuth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(ExitCode(tt.err)).To(Equal(tt.expected))
		})
	}
}
