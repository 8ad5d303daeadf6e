package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xlab-si/nuagex/internal/nuagex"
)

// Model is the Bubble Tea model for the status watch view.
type Model struct {
	LabName string

	// Latest observed state
	Lab     *nuagex.Lab
	Checked bool
	Polls   int

	// Animation
	SpinnerFrame int
	StartTime    time.Time

	// UI state
	Err  error
	Done bool

	interval time.Duration
	lookup   func() LabStatusMsg
}

// NewModel creates a watch model that polls labName through api every
// interval until the user quits.
func NewModel(ctx context.Context, api nuagex.API, labName string, interval time.Duration) Model {
	return Model{
		LabName:   labName,
		StartTime: time.Now(),
		interval:  interval,
		lookup: func() LabStatusMsg {
			lab, err := api.LabByName(ctx, labName)
			return LabStatusMsg{Lab: lab, Err: err}
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), spinnerCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Done = true
			return m, tea.Quit
		}

	case LabStatusMsg:
		m.Checked = true
		m.Polls++
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}
		m.Lab = msg.Lab
		return m, tea.Tick(m.interval, func(_ time.Time) tea.Msg {
			return pollMsg{}
		})

	case pollMsg:
		return m, m.pollCmd()

	case spinnerMsg:
		m.SpinnerFrame++
		return m, spinnerCmd()
	}

	return m, nil
}

// pollCmd performs one lab lookup off the UI loop.
func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		return m.lookup()
	}
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(_ time.Time) tea.Msg {
		return spinnerMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

// Run starts the watch TUI and blocks until the user quits or a poll fails.
func Run(ctx context.Context, api nuagex.API, labName string, interval time.Duration) error {
	p := tea.NewProgram(NewModel(ctx, api, labName, interval))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}
