// Package gateapp is the terminal program: the contract gate until today is
// acknowledged, then the ritual checklist.
package gateapp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/gate"
	"tableflip.dev/ackgate/pkg/guard"
	"tableflip.dev/ackgate/pkg/history"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/ritual"
	"tableflip.dev/ackgate/pkg/shell"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
	"tableflip.dev/ackgate/pkg/tui/components/badge"
	"tableflip.dev/ackgate/pkg/tui/components/contractview"
	"tableflip.dev/ackgate/pkg/tui/components/help"
	"tableflip.dev/ackgate/pkg/tui/components/historypane"
	"tableflip.dev/ackgate/pkg/tui/theme"
)

type view int

const (
	viewGate view = iota
	viewRitual
)

type focus int

const (
	focusContract focus = iota
	focusCheckbox
	focusInput
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHistory
	overlayHelp
)

// messages
type dwellMsg struct{ gen uint64 }
type storeMsg struct {
	ev store.Event
	ok bool
}
type notifiedMsg struct{ err error }
type errMsg struct{ err error }

// Model contains UI state. It is owned by the Bubble Tea event loop.
type Model struct {
	svc      *app.Service
	ctx      context.Context
	log      *slog.Logger
	theme    theme.Theme
	window   shell.Window
	suppress *shell.Suppression
	events   <-chan store.Event

	view    view
	overlay overlay

	// gate
	session  *app.Session
	timer    *gate.ManualTimer
	contract *contractview.Model
	checked  bool
	input    textinput.Model
	focus    focus

	// ritual
	items     []ritual.Item
	checklist record.Checklist
	progress  ritual.Progress
	cursor    int
	action    string
	history   []record.HistoryEntry
	streak    int
	help      *help.Model

	status string
	notice string
	width  int
	height int
}

// New creates the model. The gate is skipped when today is already
// acknowledged.
func New(ctx context.Context, svc *app.Service, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.Default()
	}
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := &Model{
		svc:      svc,
		ctx:      ctx,
		log:      log,
		theme:    theme.Default(),
		suppress: shell.NewSuppression(),
		input:    ti,
		items:    svc.Tracker.Items(),
		width:    80,
		height:   24,
	}
	if _, ok := svc.AcknowledgedToday(); ok {
		if err := m.enterRitual(); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err := m.enterGate(); err != nil {
		return nil, err
	}
	return m, nil
}

// SetWindow installs the host window used by logout.
func (m *Model) SetWindow(w shell.Window) { m.window = w }

// SetEvents subscribes the model to store changes.
func (m *Model) SetEvents(ch <-chan store.Event) { m.events = ch }

func (m *Model) enterGate() error {
	m.timer = &gate.ManualTimer{}
	session, err := m.svc.NewSession(m.timer)
	if err != nil {
		return err
	}
	m.session = session
	m.view = viewGate
	m.suppress.Engage()
	m.contract = contractview.New(m.svc.Blocks(), m.theme.Contract)
	m.checked = false
	m.input.Reset()
	m.focus = focusContract
	cfg := m.svc.UserConfig()
	if m.phrasePolicy() {
		m.input.Placeholder = cfg.Phrase
	} else {
		m.input.Placeholder = "Your highest-leverage action today"
	}
	m.input.Blur()
	m.status = m.session.Status()
	return nil
}

func (m *Model) enterRitual() error {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	m.timer = nil
	m.view = viewRitual
	m.overlay = overlayNone
	m.suppress.Lift()
	m.input.Blur()
	return m.reloadRitual()
}

func (m *Model) reloadRitual() error {
	c, p, err := m.svc.Checklist()
	if err != nil {
		return err
	}
	m.checklist, m.progress = c, p
	if ack, ok := m.svc.AcknowledgedToday(); ok {
		m.action = ack.Action
	}
	m.history = m.svc.History(history.DefaultRecent)
	m.streak = m.svc.Report(0).Streak
	return nil
}

func (m *Model) phrasePolicy() bool {
	return m.session != nil && m.session.Policy().Name() == gate.PolicyPhrase
}

// Init subscribes to store changes and evaluates the initial position.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForStore(), m.layout())
}

func (m *Model) waitForStore() tea.Cmd {
	ch := m.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		return storeMsg{ev: ev, ok: ok}
	}
}

// layout sizes the contract and re-feeds the scroll position, since a resize
// can move the reader onto or off the bottom.
func (m *Model) layout() tea.Cmd {
	if m.view != viewGate {
		if m.help != nil {
			m.help.SetSize(m.width-4, m.height-2)
		}
		return nil
	}
	footer := lipgloss.Height(m.gateFooter())
	m.contract.SetSize(m.width, max(m.height-1-footer, 1))
	return m.feedScroll()
}

// feedScroll hands the contract position to the gate and schedules the dwell
// wake-up when this arms the timer.
func (m *Model) feedScroll() tea.Cmd {
	if m.session == nil {
		return nil
	}
	gen := m.timer.Generation()
	m.session.Scroll(m.contract.Position())
	m.status = m.session.Status()
	if m.timer.Armed() && m.timer.Generation() != gen {
		next := m.timer.Generation()
		return tea.Tick(m.timer.Delay(), func(time.Time) tea.Msg { return dwellMsg{gen: next} })
	}
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.layout()
	case dwellMsg:
		if m.timer != nil && m.timer.FireGeneration(msg.gen) {
			m.status = m.session.Status()
		}
		return m, nil
	case storeMsg:
		if !msg.ok {
			m.events = nil
			return m, nil
		}
		return m, tea.Batch(m.onStoreChanged(msg.ev), m.waitForStore())
	case notifiedMsg:
		if msg.err != nil {
			m.status = "acknowledgement recorded locally; side channel failed"
		}
		return m, nil
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
		return m, nil
	case tea.PasteMsg:
		if m.view == viewGate && m.suppress.BlocksEvent(shell.EventPaste) {
			m.notice = "Paste is disabled until the contract is acknowledged."
			return m, nil
		}
		if m.view == viewGate && m.focus == focusInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.syncInput()
			return m, cmd
		}
		return m, nil
	case tea.MouseWheelMsg:
		if m.view == viewGate && m.overlay == overlayNone {
			switch msg.Mouse().Button {
			case tea.MouseWheelUp:
				m.contract.ScrollBy(-3)
			case tea.MouseWheelDown:
				m.contract.ScrollBy(3)
			}
			return m, m.feedScroll()
		}
		if m.overlay == overlayHelp && m.help != nil {
			return m, m.help.Update(msg)
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	if m.view == viewGate && m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.notice = ""

	if key == "ctrl+c" {
		return m, m.requestClose()
	}
	if m.view == viewGate {
		if m.suppress.BlocksKey(key) {
			m.notice = "Clipboard and selection shortcuts are disabled until the contract is acknowledged."
			return m, nil
		}
		return m.handleGateKey(msg, key)
	}
	return m.handleRitualKey(msg, key)
}

func (m *Model) requestClose() tea.Cmd {
	if m.svc.CanClose() == guard.Allow {
		return tea.Quit
	}
	m.notice = guard.VetoReason
	m.log.Info("ui: close vetoed")
	return nil
}

func (m *Model) handleGateKey(msg tea.KeyPressMsg, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab":
		m.cycleFocus(1)
		return m, m.focusCmd()
	case "shift+tab":
		m.cycleFocus(-1)
		return m, m.focusCmd()
	case "enter":
		return m, m.confirm()
	}

	switch m.focus {
	case focusContract:
		switch key {
		case "up", "k":
			m.contract.ScrollBy(-1)
		case "down", "j":
			m.contract.ScrollBy(1)
		case "pgup", "b":
			m.contract.PageUp()
		case "pgdown", "space", " ", "f":
			m.contract.PageDown()
		case "home", "g":
			m.contract.Top()
		case "end", "G":
			m.contract.Bottom()
		default:
			return m, nil
		}
		return m, m.feedScroll()
	case focusCheckbox:
		switch key {
		case "space", " ", "x":
			m.checked = !m.checked
			m.syncInput()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.syncInput()
		return m, cmd
	}
}

func (m *Model) cycleFocus(step int) {
	order := []focus{focusContract, focusCheckbox, focusInput}
	if m.phrasePolicy() {
		order = []focus{focusContract, focusInput}
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	m.focus = order[(idx+step+len(order))%len(order)]
}

func (m *Model) focusCmd() tea.Cmd {
	if m.focus == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) syncInput() {
	if m.session == nil {
		return
	}
	m.session.SetInput(gate.Input{Checked: m.checked, Text: m.input.Value()})
	m.status = m.session.Status()
}

func (m *Model) confirm() tea.Cmd {
	if m.session == nil || !m.session.Ready() {
		if m.session != nil {
			m.notice = m.session.Status()
		}
		return nil
	}
	conf, err := m.session.Confirm(m.ctx)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return nil
	}
	if err := m.enterRitual(); err != nil {
		m.status = "ERR: " + err.Error()
		return nil
	}
	m.status = "Contract acknowledged for " + timeutil.FormatShort(conf.Acknowledgement.Date) + "."
	pending := conf.Notified
	return tea.Batch(m.layout(), func() tea.Msg { return notifiedMsg{err: pending.Wait()} })
}

func (m *Model) handleRitualKey(msg tea.KeyPressMsg, key string) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayHistory:
		if key == "h" || key == "esc" || key == "q" {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayHelp:
		switch key {
		case "?", "esc", "q":
			m.overlay = overlayNone
			return m, nil
		}
		return m, m.help.Update(msg)
	}

	switch key {
	case "q", "esc":
		return m, m.requestClose()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "space", " ", "enter", "x":
		return m, m.toggleSelected()
	case "h":
		m.history = m.svc.History(history.DefaultRecent)
		m.overlay = overlayHistory
	case "?":
		if m.help == nil {
			m.help = help.New(m.width-4, m.height-2, m.theme.Modal)
		}
		m.overlay = overlayHelp
	case "L":
		return m, m.logout()
	}
	return m, nil
}

func (m *Model) toggleSelected() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	it := m.items[m.cursor]
	p, err := m.svc.Toggle(it.ID, !ritual.Checked(m.checklist, it.ID))
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	if err := m.reloadRitual(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	m.progress = p
	if p.Level() == ritual.LevelComplete {
		m.status = "Ritual complete for today."
	}
	return nil
}

func (m *Model) logout() tea.Cmd {
	if m.window == nil {
		return tea.Quit
	}
	w, log := m.window, m.log
	return func() tea.Msg {
		if err := shell.DestroyOrClose(w, log); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// onStoreChanged re-derives the view after another process (or this one)
// wrote to the store.
func (m *Model) onStoreChanged(ev store.Event) tea.Cmd {
	m.log.Debug("ui: store changed", "key", ev.Key)
	_, acknowledged := m.svc.AcknowledgedToday()
	switch {
	case m.view == viewGate && acknowledged:
		if err := m.enterRitual(); err != nil {
			m.status = "ERR: " + err.Error()
		}
	case m.view == viewRitual && !acknowledged:
		// The day rolled over or the record was removed.
		if err := m.enterGate(); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		return m.layout()
	case m.view == viewRitual:
		if err := m.reloadRitual(); err != nil {
			m.status = "ERR: " + err.Error()
		}
	}
	return nil
}

// View renders the active screen.
func (m *Model) View() string {
	header := m.header()
	var body string
	if m.view == viewGate {
		body = lipgloss.JoinVertical(lipgloss.Left, m.contract.View(), m.gateFooter())
	} else {
		body = m.ritualView()
		switch m.overlay {
		case overlayHistory:
			box := historypane.View(m.history, m.streak, m.svc.Now(), min(m.width-4, 72), m.theme.Modal)
			body = historypane.Center(box, m.width, max(m.height-1, 1))
		case overlayHelp:
			body = historypane.Center(m.help.View(), m.width, max(m.height-1, 1))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m *Model) header() string {
	date := timeutil.FormatLong(m.svc.Now())
	title := m.theme.Header.Title.Render("ackgate")
	return title + "  " + m.theme.Header.Date.Render(date)
}

func (m *Model) gateFooter() string {
	th := m.theme.Gate
	style := func(f focus) lipgloss.Style {
		if m.focus == f {
			return th.Focused
		}
		return th.Blurred
	}
	rule := m.theme.Contract.Rule.Render(strings.Repeat("─", max(m.width, 1)))
	lines := []string{rule}
	if m.phrasePolicy() {
		cfg := m.svc.UserConfig()
		lines = append(lines,
			style(focusInput).Render(cfg.Prompt),
			th.Phrase.Render(fmt.Sprintf("%q", cfg.Phrase)),
			m.input.View(),
		)
	} else {
		box := "[ ]"
		if m.checked {
			box = "[x]"
		}
		lines = append(lines,
			style(focusCheckbox).Render(box+" I have read this contract and accept it for today"),
			style(focusInput).Render("Commitment:")+" "+m.input.View(),
		)
	}
	lines = append(lines, m.statusLine(), m.theme.Footer.Help.Render("tab focus · ↑/↓ scroll · space check · enter confirm"))
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	if m.notice != "" {
		return m.theme.Footer.Notice.Render(m.notice)
	}
	if m.session != nil {
		switch m.session.State() {
		case gate.Ready:
			return m.theme.Gate.Ready.Render(m.status)
		case gate.DwellPending:
			return m.theme.Gate.Pending.Render(m.status)
		}
	}
	return m.theme.Footer.Status.Render(m.status)
}

func (m *Model) ritualView() string {
	th := m.theme.Ritual
	lines := []string{
		badge.Render(m.progress, 16),
	}
	if m.action != "" {
		lines = append(lines, th.Action.Render("Today: "+m.action))
	}
	lines = append(lines, "")
	for i, it := range m.items {
		box := "[ ]"
		style := th.Item
		if ritual.Checked(m.checklist, it.ID) {
			box = "[x]"
			style = th.Done
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "→ "
			style = th.Selected
		}
		lines = append(lines, cursor+style.Render(box+" "+it.Label))
	}
	lines = append(lines, "", m.statusLine(), m.theme.Footer.Help.Render("j/k move · space toggle · h history · ? help · L logout · q quit"))
	return strings.Join(lines, "\n")
}
