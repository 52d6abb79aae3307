//go:build linux

package memory

import "os"

// newPlatformReader creates a Linux memory reader backed by procfs
func newPlatformReader(procRoot string) Reader {
	return NewProcReader(os.DirFS(procRoot))
}
