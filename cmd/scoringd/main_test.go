package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmd_Local(t *testing.T) {
	out, err := execute(t, "score", "--amount", "20000", "--merchant", "acme")
	require.NoError(t, err)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.GreaterOrEqual(t, resp["score"], 0.9)
	assert.LessOrEqual(t, resp["score"], 1.0)
}

func TestScoreCmd_RequiresAmount(t *testing.T) {
	_, err := execute(t, "score", "--merchant", "acme")
	assert.ErrorContains(t, err, "amount")
}

func TestScoreCmd_RemoteUnreachable(t *testing.T) {
	_, err := execute(t, "score", "--amount", "10", "--addr", "127.0.0.1:1", "--timeout", "200ms")
	assert.ErrorContains(t, err, "remote score failed")
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
