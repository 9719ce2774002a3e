package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/internal/cli"
	"github.com/katalvlaran/circuittrace/tracer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Console(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "grid.dat", "2 3\n1 O O\nO O 2\n")

	for _, mode := range []string{"-s", "-q"} {
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		require.NoError(t, run(context.Background(), out, errOut, []string{mode, "-c", path}))
		assert.Equal(t, 3, strings.Count(out.String(), "\n\n"), mode)
		assert.Contains(t, out.String(), "1 T T \nO O 2 \n", mode)
	}
}

func TestRun_JSONWithConfig(t *testing.T) {
	t.Parallel()
	grid := writeFile(t, "grid.dat", "3 3\n1 O O\nO O O\nO O 2\n")
	cfg := writeFile(t, "run.hcl", "output = \"json\"\ndiscipline = \"queue\"\nprune = true\nlog_level = \"debug\"\n")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, errOut, []string{"-config", cfg, grid}))

	var doc struct {
		Discipline string `json:"discipline"`
		Best       int    `json:"best"`
		Count      int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "queue", doc.Discipline)
	assert.Equal(t, 4, doc.Best)
	assert.Equal(t, 6, doc.Count)
	assert.Contains(t, errOut.String(), "trace finished")
	assert.Contains(t, errOut.String(), "board loaded")
	assert.Contains(t, errOut.String(), "shortest trace bound")
	assert.Contains(t, errOut.String(), "length=4")
}

func TestRun_BoundOnlyAtDebug(t *testing.T) {
	t.Parallel()
	grid := writeFile(t, "grid.dat", "3 3\n1 O O\nO O O\nO O 2\n")

	errOut := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), &bytes.Buffer{}, errOut, []string{"-log-level", "info", grid}))
	assert.Contains(t, errOut.String(), "trace finished")
	assert.NotContains(t, errOut.String(), "shortest trace bound")
}

func TestRun_NoPath(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "walled.dat", "3 3\n1 O O\nO O X\nO X 2\n")
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"-reach", path}))
	assert.Empty(t, out.String())
}

func TestRun_MalformedBoard(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.dat", "2 2\n1 O\nO\n")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, board.ErrMalformedInput)
}

func TestRun_StateLimit(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "grid.dat", "3 3\n1 O O\nO O O\nO O 2\n")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-max-states", "2", path})
	assert.ErrorIs(t, err, tracer.ErrStateLimit)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	errOut := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), &bytes.Buffer{}, errOut, []string{"-h"}))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_GUI(t *testing.T) {
	t.Parallel()
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-s", "-g", "x.dat"})
	assert.ErrorIs(t, err, cli.ErrGUIUnsupported)
}

func TestRun_Testdata(t *testing.T) {
	t.Parallel()
	cases := []struct {
		file  string
		best  int
		count int
		err   error
	}{
		{"grid1.dat", 4, 2, nil},
		{"grid2.dat", 9, 3, nil},
		{"walled.dat", 0, 0, nil},
		{"invalid_row.dat", 0, 0, board.ErrRowWidth},
	}
	for _, tc := range cases {
		for _, mode := range []string{"-s", "-q"} {
			t.Run(tc.file+mode, func(t *testing.T) {
				out := &bytes.Buffer{}
				path := filepath.Join("..", "..", "testdata", tc.file)
				err := run(context.Background(), out, &bytes.Buffer{}, []string{mode, "-output", "json", path})
				if tc.err != nil {
					assert.ErrorIs(t, err, tc.err)
					return
				}
				require.NoError(t, err)

				var doc struct {
					Best  int `json:"best"`
					Count int `json:"count"`
				}
				require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
				assert.Equal(t, tc.best, doc.Best)
				assert.Equal(t, tc.count, doc.Count)
			})
		}
	}
}
