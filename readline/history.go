package readline

import "github.com/emirpasic/gods/v2/lists/arraylist"

// History holds the lines entered during this process. Pos is the
// navigation cursor: Size() means "past the newest entry", which is
// where every fresh prompt starts.
type History struct {
	lines   *arraylist.List[string]
	Pos     int
	Enabled bool
}

func NewHistory() *History {
	return &History{
		lines:   arraylist.New[string](),
		Enabled: true,
	}
}

func (h *History) Size() int {
	return h.lines.Size()
}

// Add appends a line and parks the cursor past it. Repeats of the
// newest entry are dropped.
func (h *History) Add(line string) {
	if !h.Enabled {
		return
	}
	if last, ok := h.lines.Get(h.lines.Size() - 1); ok && last == line {
		h.Pos = h.lines.Size()
		return
	}
	h.lines.Add(line)
	h.Pos = h.lines.Size()
}

func (h *History) Prev() string {
	if h.Pos > 0 {
		h.Pos--
	}
	line, _ := h.lines.Get(h.Pos)
	return line
}

func (h *History) Next() string {
	if h.Pos < h.lines.Size() {
		h.Pos++
	}
	line, _ := h.lines.Get(h.Pos)
	return line
}
