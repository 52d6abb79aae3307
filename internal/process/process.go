package process

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrResolutionUnavailable means the process table could not be enumerated.
// Finding no matching process is not an error.
var ErrResolutionUnavailable = errors.New("process lookup unavailable")

// Resolver maps a program name to the PIDs currently running it
type Resolver interface {
	Resolve(ctx context.Context, name string) ([]int32, error)
}

// RSSReader returns the resident set size of one process in kB. Processes
// that cannot be read contribute zero; failures are logged, never returned.
type RSSReader interface {
	RSS(ctx context.Context, pid int32) uint64
}

// NewResolver creates a resolver backed by the live process table
func NewResolver() Resolver {
	return &TableResolver{}
}

// NewRSSReader creates a resident memory reader for the current platform
func NewRSSReader(procRoot string, log logrus.FieldLogger) RSSReader {
	return newPlatformRSSReader(procRoot, log)
}
