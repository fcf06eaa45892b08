//go:build linux

package sysinfo

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/mmadalone/rick-assistant/envconfig"
)

// cpuGap separates the two /proc/stat reads a usage percentage needs.
const cpuGap = 100 * time.Millisecond

func sample(ctx context.Context) Snapshot {
	var snap Snapshot
	var g errgroup.Group

	g.Go(func() error {
		if pct, err := cpuPercent(ctx); err == nil {
			snap.CPUPercent, snap.CPUValid = pct, true
		}
		return nil
	})
	g.Go(func() error {
		b, err := os.ReadFile("/proc/meminfo")
		if err != nil {
			return nil
		}
		if pct, total, err := parseMemInfo(b); err == nil {
			snap.MemPercent, snap.MemTotal, snap.MemValid = pct, total, true
		}
		return nil
	})
	g.Go(func() error {
		b, err := os.ReadFile("/proc/uptime")
		if err != nil {
			return nil
		}
		if up, err := parseUptime(b); err == nil {
			snap.Uptime, snap.UptimeValid = up, true
		}
		return nil
	})
	g.Go(func() error {
		b, err := os.ReadFile("/proc/loadavg")
		if err != nil {
			return nil
		}
		if load, err := parseLoadAvg(b); err == nil {
			snap.Load1, snap.LoadValid = load, true
		}
		return nil
	})
	g.Go(func() error {
		if pct, free, err := diskPercent(envconfig.StateDir()); err == nil {
			snap.DiskPercent, snap.DiskFree, snap.DiskValid = pct, free, true
		}
		return nil
	})

	_ = g.Wait()
	return snap
}

// cpuPercent needs two readings with a gap between them. The gap is
// where the context deadline bites.
func cpuPercent(ctx context.Context) (float64, error) {
	first, err := readCPUSample()
	if err != nil {
		return 0, err
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(cpuGap):
	}

	second, err := readCPUSample()
	if err != nil {
		return 0, err
	}
	return cpuDelta(first, second)
}

func readCPUSample() (cpuTimes, error) {
	b, err := os.ReadFile("/proc/stat")
	if err != nil {
		return cpuTimes{}, err
	}
	return parseCPUStat(b)
}

// diskPercent reports how full the filesystem holding dir is, plus
// the bytes still available to unprivileged writes.
func diskPercent(dir string) (float64, int64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, 0, err
	}
	if st.Blocks == 0 {
		return 0, 0, errors.New("sysinfo: zero-size filesystem")
	}
	used := st.Blocks - st.Bavail
	pct := 100 * float64(used) / float64(st.Blocks)
	return pct, int64(st.Bavail) * int64(st.Bsize), nil
}
