package authenticator

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "rifa-premiada"

type claims[T any] struct {
	jwt.RegisteredClaims
	Object T `json:"obj,omitempty"`
}

type jwtTokenEngine[T any] struct {
	expiration time.Duration
	secret     []byte
	parser     *jwt.Parser

	// counter makes the jti of two tokens issued in the same second differ.
	counter atomic.Int64
}

// NewTokenEngine signs tokens with HS256. Tokens signed by another algorithm
// or issuer are rejected on Verify.
func NewTokenEngine[T any](secret string, expiration time.Duration) TokenEngine[T] {
	return &jwtTokenEngine[T]{
		expiration: expiration,
		secret:     []byte(secret),
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (e *jwtTokenEngine[T]) Generate(sub string, obj T) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims[T]{
		Object: obj,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub,
			ID:        strconv.FormatInt(e.counter.Add(1), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.expiration)),
		},
	})

	return token.SignedString(e.secret)
}

func (e *jwtTokenEngine[T]) Verify(token string) (T, error) {
	var c claims[T]
	_, err := e.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return e.secret, nil
	})
	if err == nil && !c.VerifyIssuer(issuer, true) {
		err = jwt.NewValidationError("unexpected issuer", jwt.ValidationErrorIssuer)
	}

	if err != nil {
		var empty T
		return empty, err
	}

	return c.Object, nil
}
