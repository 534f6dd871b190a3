// Package sysmon samples host CPU and memory usage for run telemetry.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0, i.e. usage since the previous call or since boot.
func Sample(ctx context.Context) (Stats, error) {
	var s Stats
	cpuPcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return s, fmt.Errorf("sampling cpu: %w", err)
	}
	if len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}

	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("sampling memory: %w", err)
	}
	s.MemPercent = vmem.UsedPercent
	s.MemUsed = vmem.Used
	return s, nil
}
