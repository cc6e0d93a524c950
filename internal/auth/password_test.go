package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3gr3do-forte", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NoError(t, ComparePassword(hashed, "s3gr3do-forte"))
	assert.Error(t, ComparePassword(hashed, "senha-errada"))
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	// an unset cost must not degrade below bcrypt's minimum
	hashed, err := HashPassword("s3gr3do-forte", 0)
	require.NoError(t, err)

	actual, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, actual)
}
