package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoMemGraph/internal/config"
	"github.com/CristiGvl/picoMemGraph/internal/memory"
	"github.com/CristiGvl/picoMemGraph/internal/process"
	"github.com/CristiGvl/picoMemGraph/internal/report"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	fsys := fstest.MapFS{
		"meminfo":  &fstest.MapFile{Data: []byte("MemTotal: 16000000 kB\nMemAvailable: 4000000 kB\n")},
		"10/smaps": &fstest.MapFile{Data: []byte("Rss: 1000 kB\n")},
		"11/smaps": &fstest.MapFile{Data: []byte("Rss: 2000 kB\n")},
	}
	log, _ := test.NewNullLogger()
	cfg := config.Defaults()
	a := report.New(
		memory.NewProcReader(fsys),
		process.StaticResolver{"nginx": {11, 10}},
		process.NewSmapsReader(fsys, log),
		cfg.Units(),
		cfg.Length,
	)

	s, err := NewServer(a, cfg, log)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string, v any) int {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
	return resp.StatusCode
}

func TestGetMemory(t *testing.T) {
	s := newTestServer(t)

	var got report.System
	require.Equal(t, http.StatusOK, get(t, s, "/api/memory", &got))
	assert.Equal(t, uint64(16000000), got.Total)
	assert.Equal(t, uint64(12000000), got.Used)
	assert.Equal(t, "===============     ", got.Bar)
	assert.Equal(t, "Memory         [===============     ] 75% 12000000 kB/16000000 kB", got.Line)
}

func TestGetMemoryQuery(t *testing.T) {
	s := newTestServer(t)

	var got report.System
	require.Equal(t, http.StatusOK, get(t, s, "/api/memory?length=4&human=true", &got))
	assert.Equal(t, "=== ", got.Bar)
	assert.Contains(t, got.Line, "11.44 GiB/15.26 GiB")

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/memory?length=0", &errBody))
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/memory?human=maybe", &errBody))
}

func TestGetProgram(t *testing.T) {
	s := newTestServer(t)

	var got report.Program
	require.Equal(t, http.StatusOK, get(t, s, "/api/memory/nginx", &got))
	assert.Equal(t, "nginx", got.Name)
	assert.Equal(t, uint64(3000), got.RSS)
	require.Len(t, got.Processes, 2)
	assert.Equal(t, int32(11), got.Processes[0].PID)
	assert.Equal(t, uint64(2000), got.Processes[0].RSS)
}

func TestGetProgramNotFound(t *testing.T) {
	s := newTestServer(t)

	var got map[string]string
	require.Equal(t, http.StatusNotFound, get(t, s, "/api/memory/ghost", &got))
	assert.Equal(t, "ghost not found.", got["error"])
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	var got map[string]any
	require.Equal(t, http.StatusOK, get(t, s, "/api/health", &got))
	assert.Equal(t, "ok", got["status"])
}
