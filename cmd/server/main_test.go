package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args,
		"--config", filepath.Join(dir, "config.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
	))
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "120", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "120/80 mmHg")
	assert.Contains(t, out, "Elevated/Caution")
}

func TestClassifyCmd_RejectsOutOfRange(t *testing.T) {
	_, err := run(t, "classify", "301", "80")
	assert.Error(t, err)

	_, err = run(t, "classify", "abc", "80")
	assert.Error(t, err)

	_, err = run(t, "classify", "120")
	assert.Error(t, err)
}

func TestConsultCmd_MissingCredential(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("SENIORCARE_SECRETS_PATH", filepath.Join(t.TempDir(), "secrets.toml"))

	out, err := run(t, "consult", "68세", "독거")
	assert.Error(t, err)
	assert.Contains(t, out, "OPENROUTER_API_KEY is not configured.")
}

func TestConsultCmd_EmptyInput(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(bytes.NewBufferString("   \n"))
	dir := t.TempDir()
	root.SetArgs([]string{"consult",
		"--config", filepath.Join(dir, "config.yaml"),
		"--env-file", filepath.Join(dir, ".env")})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Please describe your situation.")
}
