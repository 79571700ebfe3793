package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/domain/entity"
)

// Palette is the query state the model drives.
type Palette interface {
	SetQuery(ctx context.Context, query string) uint64
	Snapshot() entity.AggregateResult
}

// Selector activates rows and runs the search fallback.
type Selector interface {
	Activate(ctx context.Context, input usecase.ActivateInput) (*usecase.ActivateOutput, error)
	Submit(ctx context.Context) (*usecase.SubmitOutput, error)
}

// BangHinter describes what the search fallback does with a bang query.
type BangHinter interface {
	Hint(ctx context.Context, query string) usecase.BangHint
}

// URLCopier copies a row's URL to the clipboard.
type URLCopier interface {
	Copy(ctx context.Context, item entity.ResultItem) error
}

// NewUpdateSignal returns a coalescing signal channel and the aggregator
// listener feeding it. The model re-reads the snapshot on every signal, so
// dropped signals lose nothing.
func NewUpdateSignal() (<-chan struct{}, usecase.GroupListener) {
	ch := make(chan struct{}, 1)
	return ch, func(entity.GroupUpdate) {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// PaletteConfig holds the model dependencies.
type PaletteConfig struct {
	Palette  Palette
	Selector Selector
	Updates  <-chan struct{}
	MaxRows  int
	// Bangs and Copier are optional.
	Bangs  BangHinter
	Copier URLCopier
}

// Outcome is what the palette did before closing.
type Outcome struct {
	Activated *usecase.ActivateOutput
	Submitted *usecase.SubmitOutput
	Err       error
}

// PaletteModel is the Bubble Tea model for the interactive palette.
type PaletteModel struct {
	// UI components
	input    textinput.Model
	help     help.Model
	spinner  spinner.Model
	keys     styles.PaletteKeyMap
	renderer *styles.PaletteRenderer
	theme    *styles.Theme

	// State
	query   string
	groups  []entity.Group
	rows    []entity.ResultItem
	pending int
	cursor  int
	outcome Outcome
	status  string
	width   int
	height  int

	// Dependencies
	ctx      context.Context
	palette  Palette
	selector Selector
	updates  <-chan struct{}
	maxRows  int
	bangs    BangHinter
	copier   URLCopier
}

// NewPaletteModel creates a new palette model.
func NewPaletteModel(ctx context.Context, theme *styles.Theme, cfg PaletteConfig) PaletteModel {
	input := styles.NewPaletteInput(theme)
	input.Focus()

	return PaletteModel{
		input:    input,
		help:     styles.NewStyledHelp(theme),
		spinner:  styles.NewPendingSpinner(theme),
		keys:     styles.DefaultPaletteKeyMap(),
		renderer: styles.NewPaletteRenderer(theme),
		theme:    theme,
		ctx:      ctx,
		palette:  cfg.Palette,
		selector: cfg.Selector,
		updates:  cfg.Updates,
		maxRows:  cfg.MaxRows,
		bangs:    cfg.Bangs,
		copier:   cfg.Copier,
		width:    80,
		height:   24,
	}
}

// groupsChangedMsg is sent when a group of the current cycle landed.
type groupsChangedMsg struct{}

// activatedMsg is sent when activation finished.
type activatedMsg struct {
	output *usecase.ActivateOutput
	err    error
}

// copiedMsg is sent when a copy finished.
type copiedMsg struct {
	url string
	err error
}

// submittedMsg is sent when the fallback finished.
type submittedMsg struct {
	output *usecase.SubmitOutput
	err    error
}

// Init implements tea.Model.
func (m PaletteModel) Init() tea.Cmd {
	m.palette.SetQuery(m.ctx, "")
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForUpdate())
}

func (m PaletteModel) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return groupsChangedMsg{}
	}
}

// Update implements tea.Model.
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case groupsChangedMsg:
		m.refresh()
		cmds = append(cmds, m.waitForUpdate())

	case activatedMsg:
		m.outcome = Outcome{Activated: msg.output, Err: msg.err}
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.status = m.theme.ErrorStyle.Render("  " + msg.err.Error())
		} else {
			m.status = m.theme.SuccessStyle.Render("  Copied " + msg.url)
		}

	case submittedMsg:
		if msg.err == nil && msg.output != nil && !msg.output.Fallback {
			// Nothing to open; keep the palette up.
			return m, nil
		}
		m.outcome = Outcome{Submitted: msg.output, Err: msg.err}
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			return m, m.enter()

		case key.Matches(msg, m.keys.Copy):
			return m, m.copySelected()

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.setQuery("")

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)

			if m.input.Value() != m.query {
				m.setQuery(m.input.Value())
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *PaletteModel) setQuery(query string) {
	m.query = query
	m.status = ""
	m.cursor = 0
	m.palette.SetQuery(m.ctx, query)
	m.refresh()
}

// refresh rebuilds the visible rows from the aggregator snapshot.
func (m *PaletteModel) refresh() {
	snap := m.palette.Snapshot()
	m.groups = styles.VisibleGroups(snap.Groups(), m.maxRows)
	m.rows = styles.Rows(m.groups)
	m.pending = 0
	for _, key := range entity.GroupOrder {
		if !snap.Resolved(key) {
			m.pending++
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

// enter activates the selected row, or submits the query when no row is shown.
func (m PaletteModel) enter() tea.Cmd {
	ctx := m.ctx
	if len(m.rows) > 0 {
		item := m.rows[m.cursor]
		return func() tea.Msg {
			out, err := m.selector.Activate(ctx, usecase.ActivateInput{Item: item})
			return activatedMsg{output: out, err: err}
		}
	}
	return func() tea.Msg {
		out, err := m.selector.Submit(ctx)
		return submittedMsg{output: out, err: err}
	}
}

// copySelected copies the selected row's URL. Without a copier or a row it does nothing.
func (m PaletteModel) copySelected() tea.Cmd {
	if m.copier == nil || len(m.rows) == 0 {
		return nil
	}
	ctx := m.ctx
	item := m.rows[m.cursor]
	return func() tea.Msg {
		return copiedMsg{url: item.URL, err: m.copier.Copy(ctx, item)}
	}
}

// View implements tea.Model.
func (m PaletteModel) View() string {
	t := m.theme

	searchBar := t.InputBox(m.input.View(), m.input.Focused())
	if indicator := t.PendingIndicator(m.spinner, m.pending); indicator != "" {
		searchBar = lipgloss.JoinHorizontal(lipgloss.Center, searchBar, "  ", indicator)
	}

	body := m.renderer.RenderEmpty(m.query)
	if len(m.rows) > 0 {
		body = m.renderer.RenderGroups(m.groups, m.cursor, m.width)
	}
	if m.outcome.Err != nil {
		body = t.ErrorStyle.Render("Error: " + m.outcome.Err.Error())
	}

	parts := []string{searchBar}
	if m.bangs != nil {
		if hint := m.renderer.RenderBangHint(m.bangs.Hint(m.ctx, m.query)); hint != "" {
			parts = append(parts, hint)
		}
	}
	parts = append(parts, body)
	if m.status != "" {
		parts = append(parts, "", m.status)
	}
	parts = append(parts, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Outcome returns what the palette did before closing.
func (m PaletteModel) Outcome() Outcome {
	return m.outcome
}

// Ensure interface compliance.
var _ tea.Model = (*PaletteModel)(nil)
