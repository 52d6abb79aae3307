package memory

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

const (
	meminfoFile = "meminfo"

	FieldMemTotal     = "MemTotal"
	FieldMemAvailable = "MemAvailable"
)

// ProcReader reads memory statistics from a procfs meminfo file
type ProcReader struct {
	fsys fs.FS
}

// NewProcReader creates a reader over fsys, which must be rooted at the
// procfs mount point.
func NewProcReader(fsys fs.FS) *ProcReader {
	return &ProcReader{fsys: fsys}
}

// GetInfo returns total, available and used memory
func (r *ProcReader) GetInfo(ctx context.Context) (*Info, error) {
	total, err := r.Field(ctx, FieldMemTotal)
	if err != nil {
		return nil, err
	}
	available, err := r.Field(ctx, FieldMemAvailable)
	if err != nil {
		return nil, err
	}
	return newInfo(total, available)
}

// GetTotal returns total system memory in kB
func (r *ProcReader) GetTotal(ctx context.Context) (uint64, error) {
	return r.Field(ctx, FieldMemTotal)
}

// Field scans meminfo for label and returns its value in kB. The file is
// reopened on every call; it is small enough that no index is kept.
func (r *ProcReader) Field(ctx context.Context, label string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}

	f, err := r.fsys.Open(meminfoFile)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}
	defer f.Close()

	key := label + ":"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != key {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s has invalid value %q", ErrStatUnavailable, label, fields[1])
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrStatUnavailable, meminfoFile, err)
	}

	return 0, fmt.Errorf("%w: %s not found in %s", ErrFieldNotFound, label, meminfoFile)
}
