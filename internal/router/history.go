package router

// History is the back stack of visited routes. The current route is kept
// separately so that Back with nothing behind it leaves it untouched.
type History struct {
	current Route
	entries []Route
}

func NewHistory(start Route) *History {
	return &History{
		current: start,
		entries: make([]Route, 0),
	}
}

func (h *History) Current() Route {
	return h.current
}

// Push records the current route and makes r current. Pushing the current
// route again is ignored.
func (h *History) Push(r Route) {
	if r == h.current {
		return
	}
	h.entries = append(h.entries, h.current)
	h.current = r
}

// Back returns to the previous route. It reports false and changes nothing
// when there is no previous entry.
func (h *History) Back() (Route, bool) {
	if len(h.entries) == 0 {
		return h.current, false
	}
	h.current = h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return h.current, true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Reset drops every entry and makes r current.
func (h *History) Reset(r Route) {
	h.entries = h.entries[:0]
	h.current = r
}
