package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS names an operating system memgraph can read memory from
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
)

// DefaultProcRoot is where procfs is mounted on Linux hosts.
const DefaultProcRoot = "/proc"

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported reports whether memory statistics and the process table
// can be read on os.
func IsSupported(os SupportedOS) bool {
	return os == Linux || os == Windows
}

// ValidateSupport returns an error if the current OS has no memory readers
func ValidateSupport() error {
	if !IsSupported(GetOS()) {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux, windows", runtime.GOOS)
	}
	return nil
}
