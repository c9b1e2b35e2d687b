package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/router"
	"github.com/abhisek/sprechen/internal/screen"
	"github.com/abhisek/sprechen/internal/screens/practice"
	"github.com/abhisek/sprechen/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Practice practice.Deps
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	rewards *rewards.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel with the practice screen at the root.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router:  router.New(practice.New(opts.Practice)),
		rewards: opts.Practice.Rewards,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders the active screen inside the chrome.
func (m AppModel) frame() string {
	active := m.router.Active()
	chrome := layout.Chrome{Hints: footerHints(active)}
	if active != nil {
		chrome.Title = active.Title()
	}
	if m.rewards != nil {
		chrome.Gems, chrome.Streak = m.rewards.TotalGems(), m.rewards.Streak()
	}
	return chrome.Render(m.width, m.height, m.router.View)
}

// footerHints returns the active screen's hints followed by the global quit.
func footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
