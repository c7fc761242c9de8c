// Package countdown models a confirmation or undo window as an explicit
// state machine: idle → armed(deadline) → executed | expired.
//
// Timers are tea.Tick commands tagged with the window's generation. Every
// transition bumps the generation, so ticks scheduled for an earlier arming
// are recognised as stale and dropped.
package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the state of a Window.
type Phase int

const (
	Idle Phase = iota
	Armed
	Executed
	Expired
)

func (p Phase) String() string {
	switch p {
	case Armed:
		return "armed"
	case Executed:
		return "executed"
	case Expired:
		return "expired"
	}
	return "idle"
}

// TickMsg is delivered once per TickInterval while a window is armed.
type TickMsg struct {
	Name       string
	Generation int
}

// TickInterval is the spacing of countdown ticks.
const TickInterval = time.Second

// Window is one cancelable timed window. The zero value is unusable;
// create windows with New.
type Window struct {
	name       string
	duration   time.Duration
	phase      Phase
	deadline   time.Time
	generation int
}

// New returns an idle window.
func New(name string, d time.Duration) Window {
	return Window{name: name, duration: d}
}

func (w *Window) Name() string            { return w.name }
func (w *Window) Duration() time.Duration { return w.duration }
func (w *Window) Phase() Phase            { return w.phase }
func (w *Window) Generation() int         { return w.generation }
func (w *Window) Deadline() time.Time     { return w.deadline }

// Armed reports whether the window is armed and its deadline has not passed.
func (w *Window) Armed(now time.Time) bool {
	return w.phase == Armed && now.Before(w.deadline)
}

// Arm (re)starts the window at now, invalidating ticks of any earlier arming.
func (w *Window) Arm(now time.Time) tea.Cmd {
	w.generation++
	w.phase = Armed
	w.deadline = now.Add(w.duration)
	return w.Tick()
}

// Fire executes the window if it is armed and within its deadline.
// It never arms.
func (w *Window) Fire(now time.Time) bool {
	if !w.Armed(now) {
		return false
	}
	w.generation++
	w.phase = Executed
	return true
}

// Activate is the two-step confirmation: the first activation arms the
// window, a second one before the deadline executes it. An activation after
// the deadline arms a fresh window.
func (w *Window) Activate(now time.Time) (executed bool, cmd tea.Cmd) {
	if w.Fire(now) {
		return true, nil
	}
	return false, w.Arm(now)
}

// Expire moves an armed window whose deadline has passed to Expired.
func (w *Window) Expire(now time.Time) bool {
	if w.phase != Armed || now.Before(w.deadline) {
		return false
	}
	w.generation++
	w.phase = Expired
	return true
}

// Cancel returns the window to Idle.
func (w *Window) Cancel() {
	w.generation++
	w.phase = Idle
	w.deadline = time.Time{}
}

// Remaining returns the time left before the deadline, or 0.
func (w *Window) Remaining(now time.Time) time.Duration {
	if w.phase != Armed || !now.Before(w.deadline) {
		return 0
	}
	return w.deadline.Sub(now)
}

// RemainingSeconds returns Remaining rounded up to whole seconds.
func (w *Window) RemainingSeconds(now time.Time) int {
	r := w.Remaining(now)
	return int((r + time.Second - 1) / time.Second)
}

// Accept reports whether msg belongs to the current arming of this window.
func (w *Window) Accept(msg TickMsg) bool {
	return msg.Name == w.name && msg.Generation == w.generation && w.phase == Armed
}

// Tick schedules the next TickMsg for the current generation.
func (w *Window) Tick() tea.Cmd {
	name, gen := w.name, w.generation
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return TickMsg{Name: name, Generation: gen}
	})
}
