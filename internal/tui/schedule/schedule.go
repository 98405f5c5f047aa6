// Package schedule abstracts delayed messages so views can be driven by a
// fake clock in tests.
package schedule

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// Func returns a command that delivers msg after d.
type Func func(d time.Duration, msg tea.Msg) tea.Cmd

func Tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

type Call struct {
	Delay time.Duration
	Msg   tea.Msg
}

// Recorder captures scheduled messages instead of waiting for them. The
// returned commands deliver their message immediately.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	r.Calls = append(r.Calls, Call{Delay: d, Msg: msg})
	return func() tea.Msg {
		return msg
	}
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
