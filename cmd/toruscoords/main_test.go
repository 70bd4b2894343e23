// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/katalvlaran/topocoords/internal/config"
	"github.com/katalvlaran/topocoords/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndices(t *testing.T) {
	got, err := parseIndices(" 0, 2 ,")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	_, err = parseIndices("")
	assert.Error(t, err)
	_, err = parseIndices("one")
	assert.Error(t, err)
}

func TestOverridesOnlySetFlags(t *testing.T) {
	flags, fs, err := parseFlags([]string{"-landmarks", "30", "-debug"})
	require.NoError(t, err)

	cfg := &config.Config{Points: 500, Landmarks: 100, Prime: 41, Seed: 9}
	flags.overrides(fs, cfg)
	assert.Equal(t, 30, cfg.Landmarks)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 500, cfg.Points)
	assert.Equal(t, int64(9), cfg.Seed, "unset flags keep the configured value")
}

func TestHistogram(t *testing.T) {
	out := histogram([]float64{0.1, 0.2, 3.2, 6.28})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, bins)
	assert.True(t, strings.HasSuffix(lines[0], " 2"))
	assert.True(t, strings.HasSuffix(lines[bins-1], " 1"))
}

func TestRun_HeadlessWritesState(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	out := filepath.Join(dir, "state.yaml")
	t.Setenv("TOPO_LOG_FILE", filepath.Join(dir, "run.log"))

	args := []string{
		"-env", filepath.Join(dir, "missing.env"),
		"-headless",
		"-points", "400", "-landmarks", "25",
		"-cocycle", "0", "-theta", "0.78", "-kernel", "quadratic",
		"-out", out,
	}
	require.NoError(t, run(args))

	st, issues, err := session.LoadState(out)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, []int{0}, st.CocycleIdx)
	require.NotNil(t, st.Theta)
	assert.InDelta(t, 0.78, *st.Theta, 1e-12)
	require.NotNil(t, st.PartUnity)
	assert.Equal(t, "quadratic", *st.PartUnity)

	// A second run resumes from the file and keeps the selection.
	again := filepath.Join(dir, "again.json")
	require.NoError(t, run([]string{
		"-env", filepath.Join(dir, "missing.env"),
		"-headless", "-points", "400", "-landmarks", "25",
		"-resume", out, "-out", again,
	}))
	st2, _, err := session.LoadState(again)
	require.NoError(t, err)
	assert.True(t, st2.Equal(st))
}

func TestWriteDiagram_Empty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	writeDiagram(&buf, nil, nil)
	assert.Contains(t, buf.String(), "none")
}
