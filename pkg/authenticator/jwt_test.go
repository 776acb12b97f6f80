package authenticator_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rifa-premiada/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[claims]("secret", time.Minute)
	token, err := engine.Generate("ADMIN", claims{Username: "ADMIN", Role: "admin"})
	require.NoError(t, err)

	got, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims{Username: "ADMIN", Role: "admin"}, got)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[claims]("secret", time.Nanosecond)
	token, err := engine.Generate("ADMIN", claims{Username: "ADMIN"})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine[claims]("secret", time.Minute).
		Generate("ADMIN", claims{Username: "ADMIN"})
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[claims]("other", time.Minute).Verify(token)
	require.Error(t, err)
}

func TestJWTRejectsOtherAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "rifa-premiada",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[claims]("secret", time.Minute).Verify(signed)
	require.Error(t, err)
}

func TestJWTRejectsOtherIssuer(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[claims]("secret", time.Minute).Verify(signed)
	require.Error(t, err)
}
