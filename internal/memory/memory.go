package memory

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStatUnavailable means the statistics source could not be read.
	ErrStatUnavailable = errors.New("memory statistics unavailable")
	// ErrFieldNotFound means a required field is absent from the source.
	ErrFieldNotFound = errors.New("memory statistics field not found")
)

// Info represents a system-wide memory snapshot. All sizes are in kB.
type Info struct {
	Total     uint64  `json:"total_kb"`
	Available uint64  `json:"available_kb"`
	Used      uint64  `json:"used_kb"`
	UsedRatio float64 `json:"used_ratio"`
}

// Reader interface for system memory statistics
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
	GetTotal(ctx context.Context) (uint64, error)
}

// NewReader creates a new memory reader for the current platform.
// procRoot is only consulted where memory comes from procfs.
func NewReader(procRoot string) Reader {
	return newPlatformReader(procRoot)
}

func newInfo(total, available uint64) (*Info, error) {
	if available > total {
		return nil, fmt.Errorf("%w: available %d kB exceeds total %d kB", ErrStatUnavailable, available, total)
	}
	used := total - available
	return &Info{
		Total:     total,
		Available: available,
		Used:      used,
		UsedRatio: float64(used) / float64(total),
	}, nil
}
