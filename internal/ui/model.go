package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"tekstitv/internal/config"
	"tekstitv/internal/domain"
	"tekstitv/internal/eventbus"
	"tekstitv/internal/history"
	"tekstitv/internal/refresh"
	"tekstitv/internal/ui/views"
)

// pageDigits is how many digits a page jump collects before loading.
const pageDigits = 3

// Model is the UI state: the current address, the navigation history,
// the fetch state machine and the digit jump buffer. All of it is
// mutated only inside Update.
type Model struct {
	bus eventbus.EventBus
	cfg *config.Config

	kind    domain.PageKind
	current domain.PageAddress
	hist    *history.History
	timer   *refresh.Timer

	state         FetchState
	everCompleted bool
	generation    uint64

	digits []int

	width    int
	height   int
	keys     keyMap
	help     help.Model
	spin     spinner.Model
	renderer *views.Renderer
	showHelp bool

	// Program reference for terminal management around the pager
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	kind := domain.PageKindText
	if cfg.Reader == "image" {
		kind = domain.PageKindImage
	}

	start := domain.NewPageAddress(cfg.StartPage)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	m := &Model{
		bus:      bus,
		cfg:      cfg,
		kind:     kind,
		current:  start,
		hist:     history.New(start),
		timer:    refresh.NewTimer(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spin:     sp,
		renderer: views.NewRenderer(),
	}

	if cfg.RefreshIntervalSec > 0 {
		m.timer.SetInterval(cfg.RefreshIntervalSec)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Stop halts background work owned by the model.
func (m *Model) Stop() {
	m.timer.Stop()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init issues the initial page load.
func (m *Model) Init() tea.Cmd {
	m.loadCurrent()
	return tea.Batch(m.spin.Tick, m.tickCmd())
}

// load resolves a page address into a fetch request. Requests are
// fire-and-forget; the generation counter makes sure that out of two
// overlapping loads only the newer result is accepted.
func (m *Model) load(addr domain.PageAddress, addToHistory bool) {
	if addToHistory {
		m.hist.Add(addr)
	}
	m.current = addr
	m.generation++
	m.state = FetchState{Phase: PhaseFetching}

	log.Debug().Str("page", addr.String()).Uint64("generation", m.generation).Msg("requesting page")
	m.bus.Publish(eventbus.PageRequestedEvent{
		Address:    addr,
		Kind:       m.kind,
		Generation: m.generation,
	})
}

// loadCurrent re-issues the currently addressed page without touching
// history. Used by refresh, retry and reader switching.
func (m *Model) loadCurrent() {
	m.load(m.current, false)
}

// returnFromError unwinds the failed page from history and reloads, so
// the failed address cannot be reached with forward navigation again.
func (m *Model) returnFromError() {
	if addr, ok := m.hist.PrevTrunc(); ok {
		m.current = addr
	}
	m.loadCurrent()
}

// jumpDigit accumulates one digit of a page number; the third digit
// completes the jump.
func (m *Model) jumpDigit(d int) {
	m.digits = append(m.digits, d)
	if len(m.digits) < pageDigits {
		return
	}

	page := 0
	for _, digit := range m.digits {
		page = page*10 + digit
	}
	m.digits = nil
	m.load(domain.NewPageAddress(page), true)
}

// navigationTarget returns the link of the given navigation slot of the
// loaded document: slots 0..3 are previous page, previous sub-page,
// next sub-page, next page. A text or hidden slot has no target.
func (m *Model) navigationTarget(slot int) (domain.Link, bool) {
	if m.state.Phase != PhaseComplete {
		return domain.Link{}, false
	}

	doc := m.state.Document
	switch doc.Kind {
	case domain.PageKindText:
		if doc.Text == nil || slot >= len(doc.Text.PageNavigation) {
			return domain.Link{}, false
		}
		item := doc.Text.PageNavigation[slot]
		if item.Kind != domain.ItemLink {
			return domain.Link{}, false
		}
		return item.Link, true
	case domain.PageKindImage:
		if doc.Image == nil || slot >= len(doc.Image.BottomNavigation) {
			return domain.Link{}, false
		}
		link := doc.Image.BottomNavigation[slot]
		if link == nil {
			return domain.Link{}, false
		}
		return *link, true
	}
	return domain.Link{}, false
}

// navigate follows the navigation slot's link, if it has one.
func (m *Model) navigate(slot int) {
	link, ok := m.navigationTarget(slot)
	if !ok {
		return
	}
	addr, err := domain.ParsePageAddress(link.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", link.URL).Msg("unparseable navigation target")
		return
	}
	m.load(addr, true)
}

// switchReader toggles between the text and image readers and reloads
// the current page in the other variant.
func (m *Model) switchReader() {
	if m.kind == domain.PageKindText {
		m.kind = domain.PageKindImage
		m.cfg.Reader = "image"
	} else {
		m.kind = domain.PageKindText
		m.cfg.Reader = "text"
	}
	m.loadCurrent()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.timer.Due() {
			log.Debug().Str("page", m.current.String()).Msg("auto refresh due")
			m.loadCurrent()
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		// Keep the spinner ticking so it is alive for the next load.
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case EventMsg:
		m.handleEvent(msg.Event)

	case sourcePagerMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("source pager failed")
		}
	}

	return m, nil
}

// handleEvent folds a load outcome into the fetch state machine.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch ev := event.(type) {
	case eventbus.PageLoadedEvent:
		if ev.Generation != m.generation {
			log.Debug().Uint64("generation", ev.Generation).Msg("dropping stale page load")
			return
		}
		m.state = FetchState{
			Phase:    PhaseComplete,
			Document: ev.Document,
			Raw:      ev.Raw,
		}
		m.everCompleted = true

	case eventbus.PageLoadFailedEvent:
		if ev.Generation != m.generation {
			log.Debug().Uint64("generation", ev.Generation).Msg("dropping stale page failure")
			return
		}
		m.state = FetchState{
			Phase: failedPhase(m.everCompleted),
			Err:   ev.Err,
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits always feed the jump buffer.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		m.jumpDigit(int(s[0] - '0'))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.PrevPage):
		m.navigate(0)
	case key.Matches(msg, m.keys.PrevSubPage):
		m.navigate(1)
	case key.Matches(msg, m.keys.NextSubPage):
		m.navigate(2)
	case key.Matches(msg, m.keys.NextPage):
		m.navigate(3)

	case key.Matches(msg, m.keys.Back):
		if addr, ok := m.hist.Prev(); ok {
			m.load(addr, false)
		}
	case key.Matches(msg, m.keys.Forward):
		if addr, ok := m.hist.Next(); ok {
			m.load(addr, false)
		}

	case key.Matches(msg, m.keys.Home):
		m.load(domain.NewPageAddress(100), true)

	case key.Matches(msg, m.keys.Reload):
		m.loadCurrent()

	case key.Matches(msg, m.keys.Return):
		if m.state.Phase == PhaseError {
			m.returnFromError()
		}

	case key.Matches(msg, m.keys.Reader):
		m.switchReader()

	case key.Matches(msg, m.keys.Source):
		if m.state.Phase == PhaseComplete && len(m.state.Raw) > 0 {
			return m, m.viewSourceCmd()
		}
	}

	return m, nil
}

// pageLabel is the header page indicator: the typed digits while a jump
// is being entered, the current page number otherwise.
func (m *Model) pageLabel() string {
	if len(m.digits) > 0 {
		label := []byte("---")
		for i, d := range m.digits {
			label[i] = byte('0') + byte(d)
		}
		return "P" + string(label)
	}
	return fmt.Sprintf("P%d", m.current.Page)
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:     m.width,
		Height:    m.height,
		Document:  m.state.Document,
		PageLabel: m.pageLabel(),
		Clock:     time.Now(),
		Spinner:   m.spin.View(),
		Err:       m.state.Err,
		HelpView:  m.help.View(m.keys),
	}

	switch m.state.Phase {
	case PhaseInit:
		state.Phase = views.PhaseOpening
	case PhaseFetching:
		state.Phase = views.PhaseLoading
	case PhaseComplete:
		state.Phase = views.PhaseComplete
	case PhaseError:
		state.Phase = views.PhaseFailed
	case PhaseInitFailed:
		state.Phase = views.PhaseFailedFirst
	}

	return m.renderer.Render(state)
}
