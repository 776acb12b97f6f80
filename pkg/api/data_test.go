package api

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	body, err := bytesToJSON([]byte(`{"access_token":"abc","error":null,"order":{"external_id":42,"amount":10.5}}`))
	require.NoError(t, err)

	token, err := Field[string](body, "access_token")
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	id, err := Field[int64](body, "order.external_id")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	order, err := Field[JSON](body, "order")
	require.NoError(t, err)
	amount, err := Field[float64](order, "amount")
	require.NoError(t, err)
	require.Equal(t, 10.5, amount)

	_, err = Field[int64](order, "amount")
	require.Error(t, err)

	_, err = Field[string](body, "order.external_id")
	require.Error(t, err)

	empty, err := Field[string](body, "error")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = Field[string](body, "missing")
	require.Error(t, err)

	_, err = Field[string](body, "access_token.inner")
	require.Error(t, err)
}

func TestJSON_ToReader(t *testing.T) {
	reader, contentType, err := JSON{"client_key": "k"}.ToReader()
	require.NoError(t, err)
	require.Equal(t, "application/json", contentType)

	b, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.JSONEq(t, `{"client_key":"k"}`, string(b))
}

func TestParameter_Encode(t *testing.T) {
	require.Equal(t, "a=1&b=x%20y", Parameter{"b": "x y", "a": "1"}.Encode())
}
