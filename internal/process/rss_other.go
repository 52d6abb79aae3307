//go:build !linux

package process

import (
	"context"
	"errors"
	"os"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
)

// PsutilReader reads resident memory through the OS process API
type PsutilReader struct {
	log logrus.FieldLogger
}

// newPlatformRSSReader creates a reader for platforms without procfs smaps
func newPlatformRSSReader(_ string, log logrus.FieldLogger) RSSReader {
	return &PsutilReader{log: log}
}

// RSS returns the resident set size of pid in kB, or zero if it is gone
func (r *PsutilReader) RSS(ctx context.Context, pid int32) uint64 {
	entry := r.log.WithField("pid", pid)

	p, err := process.NewProcessWithContext(ctx, pid)
	if err == nil {
		var info *process.MemoryInfoStat
		info, err = p.MemoryInfoWithContext(ctx)
		if err == nil && info != nil {
			return info.RSS / 1024
		}
	}

	if errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, os.ErrNotExist) {
		entry.Debug("process exited before its memory could be read")
		return 0
	}
	entry.WithError(err).Warnf("Error reading memory for PID %d", pid)
	return 0
}
