package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatus(New(BadRequest, "bad")))
	require.Equal(t, http.StatusUnauthorized, HTTPStatus(New(Unauthenticated, "who")))
	require.Equal(t, http.StatusNotFound, HTTPStatus(New(NotFound, "where")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(Unknown))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("raw")))

	wrapped := fmt.Errorf("wrap: %w", New(Unauthenticated, "who"))
	require.Equal(t, http.StatusUnauthorized, HTTPStatus(wrapped))
}

func TestNew(t *testing.T) {
	err := New(BadRequest, "Rarity must be between %d and %d", 1, 5)
	require.Equal(t, "Rarity must be between 1 and 5", err.Error())
	require.Equal(t, BadRequest, err.Code)
}
