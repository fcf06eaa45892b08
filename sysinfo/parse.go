package sysinfo

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"
)

type cpuTimes struct {
	idle, total uint64
}

// parseCPUStat reads the aggregate "cpu" line of /proc/stat. Jiffies
// spent idle or waiting on IO both count as idle.
func parseCPUStat(b []byte) (cpuTimes, error) {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}

		var t cpuTimes
		for i, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return cpuTimes{}, errors.New("sysinfo: malformed cpu line")
			}
			t.total += v
			if i == 3 || i == 4 { // idle, iowait
				t.idle += v
			}
		}
		return t, nil
	}
	return cpuTimes{}, errors.New("sysinfo: no cpu line")
}

// cpuDelta turns two samples into a busy percentage over the interval.
func cpuDelta(first, second cpuTimes) (float64, error) {
	if second.total <= first.total {
		return 0, errors.New("sysinfo: cpu counters went backwards")
	}
	total := second.total - first.total
	idle := second.idle - first.idle
	if idle > total {
		idle = total
	}
	return 100 * float64(total-idle) / float64(total), nil
}

// parseMemInfo computes used-memory percent from MemTotal and
// MemAvailable, and returns MemTotal in bytes. The kernel reports
// both in kB.
func parseMemInfo(b []byte) (float64, int64, error) {
	var total, avail uint64
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, _ = strconv.ParseUint(fields[1], 10, 64)
		case "MemAvailable:":
			avail, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}
	if total == 0 {
		return 0, 0, errors.New("sysinfo: no MemTotal")
	}
	if avail > total {
		avail = total
	}
	return 100 * float64(total-avail) / float64(total), int64(total) * 1024, nil
}

// parseUptime reads the first field of /proc/uptime, seconds since
// boot.
func parseUptime(b []byte) (time.Duration, error) {
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0, errors.New("sysinfo: empty uptime")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// parseLoadAvg reads the one-minute average from /proc/loadavg.
func parseLoadAvg(b []byte) (float64, error) {
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0, errors.New("sysinfo: empty loadavg")
	}
	return strconv.ParseFloat(fields[0], 64)
}
