package tickdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV1_HasDeclaredSize(t *testing.T) {
	assert.Len(t, V1(), 102400)
}

func TestFingerprint_StableAndNonZero(t *testing.T) {
	assert.NotZero(t, Fingerprint())
	assert.Equal(t, Fingerprint(), Fingerprint())
}
