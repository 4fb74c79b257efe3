package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var (
		out    bytes.Buffer
		stderr bytes.Buffer
		cmd    = newRootCmd()
	)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	return execute(cmd, args), out.String(), stderr.String()
}

func TestWcStdin(t *testing.T) {
	code, out, errs := run(t, "the cat\nsat\n")
	require.Equal(t, exitOk, code)
	require.Equal(t, "       2       3      12\n", out)
	require.Empty(t, errs)
}

func TestWcFiles(t *testing.T) {
	dir := t.TempDir()
	var (
		empty = filepath.Join(dir, "empty")
		one   = filepath.Join(dir, "one")
	)
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	require.NoError(t, os.WriteFile(one, []byte("a\n"), 0644))

	code, out, errs := run(t, "", empty, one)
	require.Equal(t, exitOk, code)
	require.Equal(t, "       0       0       0 "+empty+"\n"+
		"       1       1       2 "+one+"\n"+
		"       1       1       2 total\n", out)
	require.Empty(t, errs)

	code, out, _ = run(t, "", "-wl", one)
	require.Equal(t, exitOk, code)
	require.Equal(t, "       1       1 "+one+"\n", out)
}

func TestWcUsage(t *testing.T) {
	for _, args := range [][]string{{"-z"}, {"-h"}, {"-l", "-x"}} {
		code, out, errs := run(t, "input\n", args...)
		require.Equal(t, exitUsage, code, "args: %q", args)
		require.Empty(t, out)
		require.Contains(t, errs, "Unknown option")
		require.Contains(t, errs, "Usage: wc [-cwl] [<filename>*]")
	}
}

func TestWcMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	code, out, errs := run(t, "", missing, missing)
	require.Equal(t, exitSource, code)
	require.Empty(t, out)
	require.Equal(t, missing+": no such file or directory\n", errs)
}

func TestWcCompletionNames(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	require.NoError(t, os.WriteFile("__complete", []byte("a b\n"), 0644))
	require.NoError(t, os.WriteFile("__completeNoDesc", []byte("c\n"), 0644))

	code, out, errs := run(t, "", "__complete")
	require.Equal(t, exitOk, code)
	require.Equal(t, "       1       2       4 __complete\n", out)
	require.Empty(t, errs)

	code, out, errs = run(t, "", "__completeNoDesc", "-w")
	require.Equal(t, exitSource, code)
	require.Equal(t, "       1       1       2 __completeNoDesc\n", out)
	require.Equal(t, "-w: no such file or directory\n", errs)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWcWriteErrorReportedOnce(t *testing.T) {
	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("x\n"))
	cmd.SetOut(failWriter{})
	cmd.SetErr(&stderr)

	code := execute(cmd, nil)
	require.Equal(t, exitSource, code)
	require.Equal(t, "broken pipe\n", stderr.String())
}
