package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func copyToken(t *testing.T, dir string) {
	t.Helper()
	data, err := os.ReadFile("../../generate/testdata/Token.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Token.json"), data, 0o644))
}

func TestGenerateCommand(t *testing.T) {
	input, output := t.TempDir(), t.TempDir()
	copyToken(t, input)

	out, err := execute(t, "generate", "-i", input, "-o", output, "--network-id", "5777")
	require.NoError(t, err)
	require.Contains(t, out, "generated "+filepath.Join(input, "Token.json"))

	golden, err := os.ReadFile("../../generate/testdata/Token.ts.golden")
	require.NoError(t, err)
	code, err := os.ReadFile(filepath.Join(output, "contracts", "Token.ts"))
	require.NoError(t, err)
	require.Equal(t, string(golden), string(code))

	base, err := os.ReadFile(filepath.Join(output, "base.ts"))
	require.NoError(t, err)
	require.Contains(t, string(base), "networkId = '5777'")

	_, err = os.Stat(filepath.Join(output, "json", "Token.json"))
	require.NoError(t, err)
}

func TestGenerateCommandEnvironment(t *testing.T) {
	input, output := t.TempDir(), t.TempDir()
	copyToken(t, input)

	t.Setenv("CONTRACTGEN_TARGET", "go")
	t.Setenv("CONTRACTGEN_PACKAGE", "bindings")

	_, err := execute(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)

	code, err := os.ReadFile(filepath.Join(output, "token.go"))
	require.NoError(t, err)
	require.Contains(t, string(code), "package bindings")
}

func TestGenerateCommandFailure(t *testing.T) {
	input, output := t.TempDir(), t.TempDir()
	copyToken(t, input)
	require.NoError(t, os.WriteFile(filepath.Join(input, "Broken.json"), []byte(`{"abi": []}`), 0o644))

	out, err := execute(t, "generate", "-i", input, "-o", output)
	require.Error(t, err)
	require.Contains(t, out, "1 of 2 artifacts failed")
	require.Contains(t, out, "missing contractName")

	_, err = os.Stat(filepath.Join(output, "contracts", "Token.ts"))
	require.NoError(t, err)
}

func TestGenerateCommandMissingInput(t *testing.T) {
	_, err := execute(t, "generate", "-o", t.TempDir())
	require.ErrorContains(t, err, "input directory is required")
}
