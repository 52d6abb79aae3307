package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SmapsReader sums the Rss lines of /proc/<pid>/smaps
type SmapsReader struct {
	fsys fs.FS
	log  logrus.FieldLogger
}

// NewSmapsReader creates a reader over fsys, which must be rooted at the
// procfs mount point.
func NewSmapsReader(fsys fs.FS, log logrus.FieldLogger) *SmapsReader {
	return &SmapsReader{fsys: fsys, log: log}
}

// RSS returns the total resident memory of pid in kB, or zero if the
// process is gone or its smaps cannot be read.
func (r *SmapsReader) RSS(ctx context.Context, pid int32) uint64 {
	total, err := r.sum(ctx, pid)
	if err == nil {
		return total
	}

	entry := r.log.WithField("pid", pid)
	if errors.Is(err, fs.ErrNotExist) {
		entry.Debug("process exited before its smaps could be read")
		return 0
	}
	entry.WithError(err).Warnf("Error reading smaps for PID %d", pid)
	return 0
}

func (r *SmapsReader) sum(ctx context.Context, pid int32) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := r.fsys.Open(path.Join(strconv.Itoa(int(pid)), "smaps"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var total uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Rss:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("malformed line %q", line)
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed line %q: %w", line, err)
		}
		total += kb
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return total, nil
}
