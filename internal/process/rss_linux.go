//go:build linux

package process

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newPlatformRSSReader creates a Linux reader backed by procfs smaps
func newPlatformRSSReader(procRoot string, log logrus.FieldLogger) RSSReader {
	return NewSmapsReader(os.DirFS(procRoot), log)
}
