package format

import (
	"testing"
	"time"
)

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		in       int64
		expected string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1.0 KB"},
		{1500, "1.5 KB"},
		{12_000, "12 KB"},
		{1_000_000, "1.0 MB"},
		{2_500_000_000, "2.5 GB"},
		{3_000_000_000_000, "3.0 TB"},
	}

	for _, tt := range cases {
		if s := HumanBytes(tt.in); s != tt.expected {
			t.Errorf("HumanBytes(%d): expected %s, got %s", tt.in, tt.expected, s)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in       float64
		expected string
	}{
		{0, "0%"},
		{42.4, "42%"},
		{99.6, "100%"},
		{-3, "0%"},
		{250, "100%"},
	}

	for _, tt := range cases {
		if s := Percent(tt.in); s != tt.expected {
			t.Errorf("Percent(%v): expected %s, got %s", tt.in, tt.expected, s)
		}
	}
}

func TestHumanDuration(t *testing.T) {
	cases := []struct {
		in       time.Duration
		expected string
	}{
		{42 * time.Second, "42s"},
		{2*time.Minute + 5*time.Second, "2m5s"},
		{10 * time.Minute, "10m"},
		{4*time.Hour + 12*time.Minute, "4h12m"},
		{76 * time.Hour, "3d4h"},
		{72 * time.Hour, "3d"},
		{-time.Second, "0s"},
	}

	for _, tt := range cases {
		if s := HumanDuration(tt.in); s != tt.expected {
			t.Errorf("HumanDuration(%s): expected %s, got %s", tt.in, tt.expected, s)
		}
	}
}
