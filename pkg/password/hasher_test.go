package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskapi/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hasher := password.NewHasher(4)

	digest, err := hasher.Hash("supersecret")

	assert.NoError(t, err)
	assert.NotEqual(t, "supersecret", digest)
	assert.True(t, hasher.Verify("supersecret", digest))
	assert.False(t, hasher.Verify("wrongpassword", digest))
}

func TestHashIsSalted(t *testing.T) {
	hasher := password.NewHasher(4)

	first, err := hasher.Hash("supersecret")
	assert.NoError(t, err)

	second, err := hasher.Hash("supersecret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("supersecret", first))
	assert.True(t, hasher.Verify("supersecret", second))
}

func TestVerifyMalformedDigest(t *testing.T) {
	hasher := password.NewHasher(4)

	assert.False(t, hasher.Verify("supersecret", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("supersecret", ""))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := password.NewHasher(99)

	digest, err := hasher.Hash("supersecret")

	assert.NoError(t, err)
	assert.True(t, hasher.Verify("supersecret", digest))
}
