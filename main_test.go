package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProcRoot(t *testing.T, meminfo string) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("procfs fixtures are only read on linux")
	}
	dir := t.TempDir()
	if meminfo != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "meminfo"), []byte(meminfo), 0o644))
	}
	return dir
}

func TestRunSystem(t *testing.T) {
	root := fakeProcRoot(t, "MemTotal: 16000000 kB\nMemAvailable: 4000000 kB\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--proc-root", root}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Memory         [===============     ] 75% 12000000 kB/16000000 kB\n", stdout.String())
}

func TestRunSystemHumanReadable(t *testing.T) {
	root := fakeProcRoot(t, "MemTotal: 16000000 kB\nMemAvailable: 4000000 kB\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--proc-root", root, "-H", "-l", "10"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Memory         [========  ] 75% 11.44 GiB/15.26 GiB\n", stdout.String())
}

func TestRunProgramNotFound(t *testing.T) {
	root := fakeProcRoot(t, "MemTotal: 16000000 kB\nMemAvailable: 4000000 kB\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--proc-root", root, "no-such-program-7f3a9c"}, &stdout, &stderr)
	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "no-such-program-7f3a9c not found.\n", stdout.String())
}

func TestRunMissingMeminfo(t *testing.T) {
	root := fakeProcRoot(t, "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--proc-root", root}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "memory statistics unavailable")
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run([]string{"--bogus"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-l", "0"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"a", "b"}, &stdout, &stderr))
	assert.Equal(t, exitOK, run([]string{"--help"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
