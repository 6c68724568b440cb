package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketdex/pocketdex/internal/logtail"
	"github.com/pocketdex/pocketdex/internal/nav"
	"github.com/pocketdex/pocketdex/internal/pokeapi"
	"github.com/pocketdex/pocketdex/internal/prefs"
	"github.com/pocketdex/pocketdex/internal/state"
)

const logOverlayLines = 200

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    pokeapi.Fetcher
	Store     *state.Store
	Bounds    nav.Bounds
	StartID   int
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    pokeapi.Fetcher
	store     *state.Store
	bounds    nav.Bounds
	prefsPath string
	logPath   string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	currentID  int
	snapshot   state.Snapshot
	initialGen uint64

	// Loading indicator
	spin spinner.Model

	// Jump-to-id input
	jumpInput textinput.Model
	jumping   bool
	jumpErr   string

	// Overlays
	showHelp bool
	showLogs bool
	logLines []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	bounds := opts.Bounds
	if bounds.Max < bounds.Min || bounds.Max == 0 {
		bounds = nav.DefaultBounds()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Kanto"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	jumpInput := textinput.New()
	jumpInput.Placeholder = "id"
	jumpInput.CharLimit = 8
	jumpInput.Width = 10

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		bounds:    bounds,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		theme:     theme,
		currentID: bounds.Clamp(opts.StartID),
		spin:      spin,
		jumpInput: jumpInput,
	}

	// Begin the startup fetch here so its generation is allotted before any
	// key event can supersede it; Init only schedules the network call.
	if m.store != nil && m.client != nil {
		m.initialGen = m.store.Begin(m.currentID)
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model. It kicks off the fetch for the starting id.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	if m.initialGen > 0 {
		cmds = append(cmds, fetchCmd(m.ctx, m.client, m.store, m.currentID, m.initialGen))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case fetchDoneMsg:
		// A completion rejected by the store belongs to a superseded fetch;
		// it must never update visible state.
		if !msg.accepted {
			return m, nil
		}
		m.snapshot = m.store.Snapshot()
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the overlays.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		m.showLogs = false
		return m, nil
	}

	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.savePrefs()
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "L":
		lines, err := logtail.Read(m.logPath, logOverlayLines)
		if err != nil {
			lines = []string{"cannot read log: " + err.Error()}
		}
		m.logLines = lines
		m.showLogs = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil

	case "right", "n":
		return m.startFetch(m.bounds.Next(m.currentID))

	case "left", "p":
		return m.startFetch(m.bounds.Prev(m.currentID))

	case "r":
		// Manual retry re-invokes the fetch with the same id.
		return m.startFetch(m.currentID)

	case "g", "/":
		m.jumping = true
		m.jumpErr = ""
		m.jumpInput.SetValue("")
		m.jumpInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// handleJumpKey processes keyboard input while the jump prompt is open.
func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jumpErr = ""
		m.jumpInput.Blur()
		return m, nil

	case "enter":
		target, err := m.bounds.ParseJumpTarget(m.jumpInput.Value())
		if err != nil {
			m.jumpErr = jumpErrorMessage(err)
			return m, nil
		}
		m.jumping = false
		m.jumpErr = ""
		m.jumpInput.Blur()
		return m.startFetch(target)
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// startFetch begins a new fetch for id, superseding any outstanding one.
func (m Model) startFetch(id int) (tea.Model, tea.Cmd) {
	m.currentID = id
	gen := m.store.Begin(id)
	m.snapshot = m.store.Snapshot()
	return m, tea.Batch(
		m.spin.Tick,
		fetchCmd(m.ctx, m.client, m.store, id, gen),
	)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastID: m.currentID})
}

// jumpErrorMessage maps jump validation failures to prompt text.
func jumpErrorMessage(err error) string {
	var oor *nav.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		return fmt.Sprintf("highest known id is %d", oor.Max)
	case errors.Is(err, nav.ErrNotANumber):
		return "enter a number"
	default:
		return err.Error()
	}
}

// Messages

// fetchDoneMsg signals that a fetch finished; accepted is false when the
// store rejected the completion as stale.
type fetchDoneMsg struct {
	accepted bool
}

// Commands

func fetchCmd(ctx context.Context, client pokeapi.Fetcher, store *state.Store, id int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		pokemon, err := client.FetchPokemon(ctx, id)
		var accepted bool
		if err != nil {
			accepted = store.Complete(gen, nil, err)
		} else {
			accepted = store.Complete(gen, &pokemon, nil)
		}
		return fetchDoneMsg{accepted: accepted}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
