package tui

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/reformulator/internal/tui/styles"
)

// Task is the blocking call the progress program waits on.
type Task func(ctx context.Context) (string, error)

type doneMsg struct {
	text string
	err  error
}

// App shows a spinner while a Task runs off the UI goroutine.
type App struct {
	title   string
	detail  string
	spinner spinner.Model
	task    Task
	ctx     context.Context
	cancel  context.CancelFunc
	started time.Time

	done   bool
	result string
	err    error
}

func newApp(ctx context.Context, title, detail string, task Task) *App {
	ctx, cancel := context.WithCancel(ctx)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleLabel.Foreground(styles.ColorSecondary)

	return &App{
		title:   title,
		detail:  detail,
		spinner: s,
		task:    task,
		ctx:     ctx,
		cancel:  cancel,
		started: time.Now(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.run())
}

func (a *App) run() tea.Cmd {
	return func() tea.Msg {
		text, err := a.task(a.ctx)
		return doneMsg{text: text, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Cancel) {
			a.cancel()
			a.done = true
			a.err = context.Canceled
			return a, tea.Quit
		}

	case doneMsg:
		if !a.done {
			a.done = true
			a.result = msg.text
			a.err = msg.err
		}
		a.cancel()
		return a, tea.Quit

	case spinner.TickMsg:
		if a.done {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) View() string {
	if a.done {
		return ""
	}
	return a.renderProcessing()
}

// Run draws a spinner on stderr until task returns or the user cancels.
func Run(ctx context.Context, title, detail string, task Task, opts ...tea.ProgramOption) (string, error) {
	app := newApp(ctx, title, detail, task)
	defer app.cancel()

	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}, opts...)

	final, err := tea.NewProgram(app, options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	result := final.(*App)
	return result.result, result.err
}

// RunPlain runs task without drawing anything.
func RunPlain(ctx context.Context, task Task) (string, error) {
	return task(ctx)
}
