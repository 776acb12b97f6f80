package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandRange(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
	}
}

func TestCheckPassword(t *testing.T) {
	require.True(t, CheckPassword("ADMIN123", "ADMIN123"))
	require.False(t, CheckPassword("ADMIN123", "admin123"))

	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.True(t, IsBcryptHash(hashed))
	require.True(t, CheckPassword(hashed, "s3cret"))
	require.False(t, CheckPassword(hashed, "other"))
}
