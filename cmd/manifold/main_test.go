// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manifold/beam"
)

// writeDiagram stores content in a temp dir and returns its path.
func writeDiagram(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifold_diagram.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, map[string]string{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Config{Diagram: "manifold_diagram.txt", Memory: beam.FullMatrix}, cfg)
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	environ := map[string]string{
		"MANIFOLD_DIAGRAM": "from-env.txt",
		"MANIFOLD_MEMORY":  "rows",
		"MANIFOLD_VERBOSE": "true",
	}
	cfg, err := loadConfig(nil, environ, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Config{Diagram: "from-env.txt", Memory: beam.TwoRows, Verbose: true}, cfg)

	cfg, err = loadConfig([]string{"-diagram", "flag.txt", "-memory", "full", "-v=false"}, environ, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Config{Diagram: "flag.txt", Memory: beam.FullMatrix}, cfg)

	cfg, err = loadConfig([]string{"positional.txt"}, environ, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "positional.txt", cfg.Diagram)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(nil, map[string]string{"MANIFOLD_MEMORY": "sparse"}, &bytes.Buffer{})
	assert.Error(t, err, "bad env memory mode")

	_, err = loadConfig([]string{"-memory", "sparse"}, map[string]string{}, &bytes.Buffer{})
	assert.Error(t, err, "bad flag memory mode")

	_, err = loadConfig([]string{"a.txt", "b.txt"}, map[string]string{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)
}

func TestRun(t *testing.T) {
	path := writeDiagram(t, "..S..\n..^..\n.^.^.\n..^..\n")
	for _, mode := range []string{"full", "rows"} {
		t.Run(mode, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"-memory", mode, path}, map[string]string{}, &stdout, &stderr)
			assert.Equal(t, exitOK, code, stderr.String())
			assert.Equal(t, "Total splits: 4\nTotal possible timelines: 6\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	path := writeDiagram(t, "S.\n^.\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v"}, map[string]string{"MANIFOLD_DIAGRAM": path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Total splits: 1\nTotal possible timelines: 2\n", stdout.String())

	logs := stderr.String()
	assert.Contains(t, logs, "manifold: loaded ")
	assert.Contains(t, logs, "splits: row 1 beams [1]")
	assert.Contains(t, logs, "timelines: row 1 ways [0 1]")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		log  string
	}{
		{"MissingFile", []string{filepath.Join(t.TempDir(), "nope.txt")}, exitError, "open diagram"},
		{"MissingStart", []string{writeDiagram(t, "...\n.^.\n")}, exitError, "no start cell"},
		{"Ragged", []string{writeDiagram(t, "S..\n.\n")}, exitError, "same length"},
		{"TooManyArgs", []string{"a", "b"}, exitUsage, "at most one diagram"},
		{"UnknownFlag", []string{"-nope"}, exitUsage, "-nope"},
		{"Help", []string{"-h"}, exitOK, "Usage: manifold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, map[string]string{}, &stdout, &stderr)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.log)
		})
	}
}
