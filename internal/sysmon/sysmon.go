// Package sysmon samples host-wide CPU and memory usage, shown next to the
// execution configuration so timings can be read in context.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes, 0 when unknown
	// Available reports whether the memory probe succeeded.
	Available bool
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since the previous call, or since boot on the
// first one). Probe failures leave the corresponding fields zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
		s.Available = true
	}
	return s
}
