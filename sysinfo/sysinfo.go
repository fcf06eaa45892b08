// Package sysinfo samples lightweight system metrics for the status
// footer. Sampling is best effort: a probe that fails or misses the
// deadline leaves its field zeroed with the Valid flag down, and the
// snapshot as a whole never errors.
package sysinfo

import (
	"context"
	"strings"
	"time"

	"github.com/mmadalone/rick-assistant/format"
)

// Snapshot is one reading of the machine. Check the Valid flag before
// trusting the paired value.
type Snapshot struct {
	CPUPercent float64
	CPUValid   bool

	MemPercent float64
	MemTotal   int64
	MemValid   bool

	Uptime      time.Duration
	UptimeValid bool

	Load1     float64
	LoadValid bool

	DiskPercent float64
	DiskFree    int64
	DiskValid   bool
}

// Sample gathers a snapshot, honoring the context deadline. Probes
// run concurrently; whatever finished in time is marked valid.
func Sample(ctx context.Context) Snapshot {
	return sample(ctx)
}

// StatusLine renders the compact footer form, with "--" standing in
// for fields the sampler could not fill.
func StatusLine(s Snapshot) string {
	cpu, ram, up := "--", "--", "--"
	if s.CPUValid {
		cpu = format.Percent(s.CPUPercent)
	}
	if s.MemValid {
		ram = format.Percent(s.MemPercent)
	}
	if s.UptimeValid {
		up = format.HumanDuration(s.Uptime)
	}
	return strings.Join([]string{"CPU: " + cpu, "RAM: " + ram, "Up: " + up}, " | ")
}
