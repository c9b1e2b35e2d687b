// Package router keeps the stack of screens a session moves through:
// practice at the bottom, then the summary, then history or the gem
// vault opened from it.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprechen/internal/screen"
)

// PushScreenMsg opens a screen on top of the current one.
type PushScreenMsg struct{ Screen screen.Screen }

// PopScreenMsg returns to the screen below. The bottom screen stays.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen, e.g. practice for its summary.
type ReplaceScreenMsg struct{ Screen screen.Screen }

// Router owns the screen stack. The zero value is unusable; use New.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Pop() {
	if n := len(r.stack); n > 1 {
		r.stack[n-1] = nil
		r.stack = r.stack[:n-1]
	}
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen on top.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and hands everything else to the
// active screen, which may return a different screen to take its place.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
