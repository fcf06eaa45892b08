// Package personality generates the assistant's flavor lines. Phrases
// are grouped by mood and banded by the configured sass level, so a
// higher level unlocks snarkier material. With catchphrases disabled
// every mood falls back to a plain neutral string.
package personality

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"text/template"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/envconfig"
)

// Mood selects which table a line is drawn from.
type Mood int

const (
	Greeting Mood = iota
	Confirm
	Cancel
	Error
	Status
)

func (m Mood) String() string {
	switch m {
	case Greeting:
		return "greeting"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	case Error:
		return "error"
	case Status:
		return "status"
	}
	return "unknown"
}

// ParseMood resolves a mood name from the command line.
func ParseMood(s string) (Mood, error) {
	for _, m := range []Mood{Greeting, Confirm, Cancel, Error, Status} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mood %q (expected greeting, confirm, cancel, error or status)", s)
}

// Data carries the template placeholders a line may reference.
type Data struct {
	User  string
	Topic string
}

// Speaker picks and renders lines at a fixed sass level.
type Speaker struct {
	sass    int
	enabled bool
	user    string
	rng     *rand.Rand
}

// New builds a Speaker from the stored personality settings.
// RICK_PERSONALITY, when set to a level in range, wins over the file
// value.
func New(cfg *config.Config) *Speaker {
	sass, err := cfg.Int("personality.sass_level")
	if err != nil {
		sass = 7
	}
	enabled, err := cfg.Bool("personality.catchphrases")
	if err != nil {
		enabled = true
	}
	if o := envconfig.SassLevel(); o <= 10 {
		sass = int(o)
	}
	return newSpeaker(sass, enabled, rand.Uint64())
}

// newSpeaker pins the rng seed so line picks are reproducible.
func newSpeaker(sass int, enabled bool, seed uint64) *Speaker {
	user := os.Getenv("USER")
	if user == "" {
		user = "Morty"
	}
	return &Speaker{
		sass:    sass,
		enabled: enabled,
		user:    user,
		rng:     rand.New(rand.NewPCG(seed, seed)),
	}
}

// Line returns one rendered phrase for the mood. The pick is uniform
// over every phrase whose band the current sass level reaches.
func (s *Speaker) Line(mood Mood) string {
	if !s.enabled {
		return neutral[mood]
	}

	var pool []string
	for _, l := range lines[mood] {
		if l.band <= s.sass {
			pool = append(pool, l.text)
		}
	}
	if len(pool) == 0 {
		return neutral[mood]
	}

	out, err := s.Render(pool[s.rng.IntN(len(pool))], Data{})
	if err != nil {
		return neutral[mood]
	}
	return out
}

// Render expands template placeholders in text. An empty Data.User is
// filled with the speaker's own user name before execution.
func (s *Speaker) Render(text string, data Data) (string, error) {
	if data.User == "" {
		data.User = s.user
	}

	tmpl, err := template.New("").Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
