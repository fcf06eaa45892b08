package terminal

import "testing"

func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NO_COLOR", "COLORTERM", "TERM", "LC_ALL", "LC_CTYPE", "LANG", "COLUMNS", "LINES", "RICK_COLOR", "RICK_UNICODE"} {
		t.Setenv(k, "")
	}
}

func TestDetectColor(t *testing.T) {
	cases := map[string]struct {
		env      map[string]string
		expected bool
	}{
		"no term":              {map[string]string{}, false},
		"dumb":                 {map[string]string{"TERM": "dumb"}, false},
		"xterm":                {map[string]string{"TERM": "xterm"}, true},
		"xterm 256":            {map[string]string{"TERM": "xterm-256color"}, true},
		"screen 256":           {map[string]string{"TERM": "screen-256color"}, true},
		"tmux":                 {map[string]string{"TERM": "tmux-256color"}, true},
		"linux console":        {map[string]string{"TERM": "linux"}, true},
		"unknown family":       {map[string]string{"TERM": "weirdterm"}, false},
		"unknown with color":   {map[string]string{"TERM": "weirdterm-color"}, true},
		"colorterm beats dumb": {map[string]string{"TERM": "dumb", "COLORTERM": "truecolor"}, true},
		"colorterm 24bit":      {map[string]string{"COLORTERM": "24bit"}, true},
		"no_color wins":        {map[string]string{"TERM": "xterm-256color", "NO_COLOR": "1"}, false},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := detectColor(); got != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestDetectUnicode(t *testing.T) {
	cases := map[string]struct {
		env      map[string]string
		expected bool
	}{
		"bare":              {map[string]string{}, false},
		"utf8 lang":         {map[string]string{"LANG": "en_US.UTF-8"}, true},
		"lowercase utf8":    {map[string]string{"LANG": "de_DE.utf8"}, true},
		"c locale":          {map[string]string{"LANG": "C"}, false},
		"lc_all wins":       {map[string]string{"LC_ALL": "C", "LANG": "en_US.UTF-8"}, false},
		"lc_ctype":          {map[string]string{"LC_CTYPE": "en_GB.UTF-8"}, true},
		"lc_all over ctype": {map[string]string{"LC_ALL": "en_US.UTF-8", "LC_CTYPE": "C"}, true},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := detectUnicode(); got != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestDetectEnvOverrides(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM", "dumb")
	t.Setenv("LANG", "C")
	t.Setenv("RICK_COLOR", "1")
	t.Setenv("RICK_UNICODE", "true")

	caps := Detect()
	if !caps.Color {
		t.Error("RICK_COLOR=1 should force color on")
	}
	if !caps.Unicode {
		t.Error("RICK_UNICODE=true should force unicode on")
	}

	t.Setenv("RICK_COLOR", "0")
	t.Setenv("RICK_UNICODE", "0")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("LANG", "en_US.UTF-8")

	caps = Detect()
	if caps.Color {
		t.Error("RICK_COLOR=0 should force color off")
	}
	if caps.Unicode {
		t.Error("RICK_UNICODE=0 should force unicode off")
	}
}

func TestClampSize(t *testing.T) {
	cases := []struct {
		w, h                 int
		expectedW, expectedH int
	}{
		{0, 0, 80, 24},
		{-3, -1, 80, 24},
		{39, 50, 80, 50},
		{100, 9, 100, 24},
		{501, 201, 80, 24},
		{40, 10, 40, 10},
		{500, 200, 500, 200},
		{120, 40, 120, 40},
	}

	for _, tt := range cases {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.expectedW || h != tt.expectedH {
			t.Errorf("clampSize(%d, %d): expected %dx%d, got %dx%d", tt.w, tt.h, tt.expectedW, tt.expectedH, w, h)
		}
	}
}

func TestEnvSize(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	if w, h := envSize(); w != 132 || h != 43 {
		t.Errorf("expected 132x43, got %dx%d", w, h)
	}

	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "junk")
	if w, h := envSize(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("expected defaults, got %dx%d", w, h)
	}
}

// Whatever the probe finds (real terminal, pipe, or nothing), the
// published dimensions stay inside the sanity ranges.
func TestWindowSizeWithinRange(t *testing.T) {
	w, h := WindowSize()
	if w < MinWidth || w > MaxWidth {
		t.Errorf("width %d outside [%d,%d]", w, MinWidth, MaxWidth)
	}
	if h < MinHeight || h > MaxHeight {
		t.Errorf("height %d outside [%d,%d]", h, MinHeight, MaxHeight)
	}
}
