package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Outcome
	}{
		{"OK", OK},
		{"VERIFICATION_REQUIRED", VerificationRequired},
		{"success", OK},
		{"done", OK},
		{"not_found", NotFound},
		{"needs_auth", VerificationRequired},
		{"forbidden", Denied},
		{"upstream_failure", InfraError},
		// Unknown strings must never look like a success.
		{"", InfraError},
		{"banana", InfraError},
		{"Ok", InfraError},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw))
		})
	}
}

func TestHighest(t *testing.T) {
	assert.Equal(t, OK, Highest(nil))
	assert.Equal(t, OK, Highest([]Outcome{}))
	assert.Equal(t, OK, Highest([]Outcome{OK, OK}))
	assert.Equal(t, NotFound, Highest([]Outcome{OK, NotFound}))
	assert.Equal(t, Denied, Highest([]Outcome{OK, InfraError, Denied, NotFound}))
	assert.Equal(t, InfraError, Highest([]Outcome{VerificationRequired, InfraError}))
	assert.Equal(t, VerificationRequired, Highest([]Outcome{NotFound, VerificationRequired, OK}))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, OK.IsTerminal())
	assert.True(t, NotFound.IsTerminal())
	assert.True(t, Denied.IsTerminal())
	assert.False(t, VerificationRequired.IsTerminal())
	assert.False(t, NeedMoreInfo.IsTerminal())
	assert.False(t, InfraError.IsTerminal())
}

func TestIsValidClosedSet(t *testing.T) {
	for _, o := range []Outcome{OK, NotFound, ValidationError, VerificationRequired, NeedMoreInfo, Denied, InfraError} {
		assert.True(t, o.IsValid(), string(o))
	}
	assert.False(t, Outcome("SUCCESS").IsValid())
	assert.False(t, Outcome("").IsValid())
}
