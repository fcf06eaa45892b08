package format

import (
	"fmt"
	"time"
)

const (
	Byte     = 1
	KiloByte = Byte * 1000
	MegaByte = KiloByte * 1000
	GigaByte = MegaByte * 1000
	TeraByte = GigaByte * 1000
)

// HumanBytes renders a byte count with decimal units.
func HumanBytes(b int64) string {
	var number float64
	var suffix string

	switch {
	case b >= TeraByte:
		number = float64(b) / TeraByte
		suffix = "TB"
	case b >= GigaByte:
		number = float64(b) / GigaByte
		suffix = "GB"
	case b >= MegaByte:
		number = float64(b) / MegaByte
		suffix = "MB"
	case b >= KiloByte:
		number = float64(b) / KiloByte
		suffix = "KB"
	default:
		return fmt.Sprintf("%d B", b)
	}

	switch {
	case number >= 10:
		return fmt.Sprintf("%d %s", int(number), suffix)
	default:
		return fmt.Sprintf("%.1f %s", number, suffix)
	}
}

// Percent renders a 0-100 value as "42%". Values outside the range are
// clamped so a bad probe can never produce "-3%" or "250%".
func Percent(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return fmt.Sprintf("%.0f%%", v)
}

// HumanDuration renders a duration with at most two leading units,
// e.g. "3d4h", "4h12m", "2m5s", "42s".
func HumanDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d >= 24*time.Hour:
		days := d / (24 * time.Hour)
		hours := (d % (24 * time.Hour)) / time.Hour
		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd%dh", days, hours)
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
