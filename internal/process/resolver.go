package process

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// exeSuffix is ignored when comparing names, so "notepad" finds notepad.exe.
var exeSuffix = func() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}()

// TableResolver enumerates the process table and matches names the way
// pidof does: against the command name, argv[0], or the basename of argv[0].
type TableResolver struct{}

// Resolve returns matching PIDs, newest (highest PID) first
func (r *TableResolver) Resolve(ctx context.Context, name string) ([]int32, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty program name", ErrResolutionUnavailable)
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolutionUnavailable, err)
	}

	pids := []int32{}
	for _, p := range procs {
		comm, err := p.NameWithContext(ctx)
		if err != nil {
			continue // exited while we were looking
		}
		argv, _ := p.CmdlineSliceWithContext(ctx)
		if matchesName(name, comm, argv) {
			pids = append(pids, p.Pid)
		}
	}

	sort.Slice(pids, func(i, j int) bool { return pids[i] > pids[j] })
	return pids, nil
}

func matchesName(want, comm string, argv []string) bool {
	want = trimExe(want)
	base := filepath.Base(want)
	if comm != "" && trimExe(comm) == base {
		return true
	}
	if len(argv) == 0 || argv[0] == "" {
		return false
	}
	arg0 := trimExe(argv[0])
	return arg0 == want || arg0 == base || filepath.Base(arg0) == base
}

func trimExe(name string) string {
	if exeSuffix == "" {
		return name
	}
	return strings.TrimSuffix(strings.ToLower(name), exeSuffix)
}

// StaticResolver resolves names from a fixed table
type StaticResolver map[string][]int32

// Resolve returns the PIDs recorded for name
func (r StaticResolver) Resolve(ctx context.Context, name string) ([]int32, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty program name", ErrResolutionUnavailable)
	}
	pids := append([]int32{}, r[name]...)
	return pids, nil
}
