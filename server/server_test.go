package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ustchcl/contractgen/generate"
)

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestGenerateTypeScript(t *testing.T) {
	artifact, err := os.ReadFile("../generate/testdata/Token.json")
	require.NoError(t, err)
	golden, err := os.ReadFile("../generate/testdata/Token.ts.golden")
	require.NoError(t, err)

	s := New(generate.Config{})
	for _, target := range []string{"typescript", "ts"} {
		rec := post(t, s, "/generate/"+target, string(artifact))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/typescript; charset=utf-8", rec.Header().Get("Content-Type"))
		require.Equal(t, string(golden), rec.Body.String())
	}
}

func TestGenerateGo(t *testing.T) {
	artifact, err := os.ReadFile("../generate/testdata/Token.json")
	require.NoError(t, err)

	s := New(generate.Config{Package: "bindings"})
	rec := post(t, s, "/generate/go", string(artifact))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/x-go; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "package bindings")
	require.Contains(t, rec.Body.String(), "type TokenContract struct")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown target", "/generate/rust", `{"contractName": "A", "abi": []}`, http.StatusNotFound},
		{"malformed", "/generate/typescript", `{`, http.StatusBadRequest},
		{"missing abi", "/generate/typescript", `{"contractName": "A"}`, http.StatusBadRequest},
		{"unsupported type", "/generate/go", `{"contractName": "A", "abi": [
			{"type": "function", "name": "f", "inputs": [{"name": "x", "type": "notatype"}], "stateMutability": "view"}
		]}`, http.StatusUnprocessableEntity},
	}
	s := New(generate.Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestBase(t *testing.T) {
	s := New(generate.Config{NetworkID: "5777"})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/base.ts", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "networkId = '5777'")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/base.ts?network=42", nil))
	require.Contains(t, rec.Body.String(), "networkId = '42'")
}
