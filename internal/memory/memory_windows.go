//go:build windows

package memory

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

// WindowsReader implements memory statistics for Windows via WMI
type WindowsReader struct{}

// newPlatformReader creates a new Windows memory reader
func newPlatformReader(string) Reader {
	return &WindowsReader{}
}

// Win32_OperatingSystem carries the physical memory size in kB
type Win32_OperatingSystem struct {
	TotalVisibleMemorySize *uint64
}

// Win32_PerfFormattedData_PerfOS_Memory carries "Memory\Available KBytes":
// free, zeroed and standby pages, the counterpart of Linux MemAvailable.
// Win32_OperatingSystem.FreePhysicalMemory leaves out standby cache.
type Win32_PerfFormattedData_PerfOS_Memory struct {
	AvailableKBytes *uint64
}

// GetInfo returns total, available and used memory
func (r *WindowsReader) GetInfo(ctx context.Context) (*Info, error) {
	total, err := r.GetTotal(ctx)
	if err != nil {
		return nil, err
	}

	var perf []Win32_PerfFormattedData_PerfOS_Memory
	if err := wmi.Query("SELECT AvailableKBytes FROM Win32_PerfFormattedData_PerfOS_Memory", &perf); err != nil {
		return nil, fmt.Errorf("%w: WMI query failed: %v", ErrStatUnavailable, err)
	}
	if len(perf) == 0 || perf[0].AvailableKBytes == nil {
		return nil, fmt.Errorf("%w: AvailableKBytes not reported by WMI", ErrFieldNotFound)
	}
	return newInfo(total, *perf[0].AvailableKBytes)
}

// GetTotal returns total physical memory in kB
func (r *WindowsReader) GetTotal(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}

	var dst []Win32_OperatingSystem
	if err := wmi.Query("SELECT TotalVisibleMemorySize FROM Win32_OperatingSystem", &dst); err != nil {
		return 0, fmt.Errorf("%w: WMI query failed: %v", ErrStatUnavailable, err)
	}
	if len(dst) == 0 {
		return 0, fmt.Errorf("%w: no Win32_OperatingSystem instance", ErrStatUnavailable)
	}
	if dst[0].TotalVisibleMemorySize == nil {
		return 0, fmt.Errorf("%w: TotalVisibleMemorySize not reported by WMI", ErrFieldNotFound)
	}
	return *dst[0].TotalVisibleMemorySize, nil
}
