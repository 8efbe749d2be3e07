package generate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAliasName(t *testing.T) {
	table := map[string]string{
		"uint256":      "Uint256",
		"address":      "Address",
		"address[]":    "Address",
		"uint256[3]":   "Uint256",
		"bytes32[][2]": "Bytes32",
		"x":            "X",
		"":             "",
	}
	for raw, want := range table {
		require.Equal(t, want, AliasName(raw), raw)
	}
}

func TestSignatureType(t *testing.T) {
	table := map[string]string{
		"uint256":      "Uint256",
		"address[]":    "Address[]",
		"uint8[4]":     "Uint8[]",
		"bytes32[][2]": "Bytes32[][]",
		"":             "",
	}
	for raw, want := range table {
		require.Equal(t, want, SignatureType(raw), raw)
	}
}

func TestParamName(t *testing.T) {
	table := map[string]string{
		"_owner":    "owner",
		"owner":     "owner",
		"_from_to":  "from_to",
		"__private": "_private",
		"":          "",
	}
	for raw, want := range table {
		require.Equal(t, want, ParamName(raw), raw)
	}
}

func TestGoNames(t *testing.T) {
	require.Equal(t, "BalanceOf", goMethodName("balanceOf"))
	require.Equal(t, "owner", goParamName("_owner", 0))
	require.Equal(t, "arg2", goParamName("", 2))
	require.Equal(t, "type_", goParamName("_type", 0))
	require.Equal(t, "method_", goParamName("method", 0))
	require.Equal(t, "token_sale.go", goFileName("TokenSale"))
}
