package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/bs-parity/internal/logger"
	"github.com/contactkeval/bs-parity/internal/pricing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRoot_NoArgsPricesScenarioA(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Call price: 4.6679264880"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Put price: 3.527459702"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Put-call parity check: "), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Difference: "), lines[3])
}

func TestRoot_NamedScenario(t *testing.T) {
	out, err := execute(t, "--scenario", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "Call price: 8.6077075887")
	assert.Contains(t, out, "Put price: 2.787949437")
}

func TestRoot_All(t *testing.T) {
	out, err := execute(t, "--all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "# A", lines[0])
	assert.Equal(t, "# B", lines[5])
}

func TestRoot_ScenarioAndAllConflict(t *testing.T) {
	_, err := execute(t, "--all", "--scenario", "A")
	assert.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := writeFile(t, "s.yaml", `
scenarios:
  - name: textbook
    spot: 100
    strike: 100
    rate: 0.05
    expiry: 1
    volatility: 0.2
`)
	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Call price: 10.45058357")
	assert.Contains(t, out, "Put price: 5.57352602")
}

func TestRoot_DomainError(t *testing.T) {
	path := writeFile(t, "s.toml", `
[[scenarios]]
name = "expired"
spot = 100.0
strike = 100.0
rate = 0.05
expiry = 0.0
volatility = 0.2
`)
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	_, err := execute(t, "--config", path)
	require.Error(t, err)
	assert.Empty(t, logs.String(), "main reports the error once")
	assert.True(t, errors.Is(err, pricing.ErrDomain))
	assert.Contains(t, err.Error(), "expiry must be > 0")
}

func TestRoot_ReportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := execute(t, "--all", "--report-dir", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "valuations.json"))
	assert.FileExists(t, filepath.Join(dir, "valuations.csv"))
}

func TestRoot_BadInputs(t *testing.T) {
	_, err := execute(t, "--scenario", "Z")
	assert.EqualError(t, err, `scenario "Z" not found`)

	_, err = execute(t, "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "extra")
	assert.Error(t, err)
}
