package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/five82/internboard/internal/board"
	"github.com/five82/internboard/internal/cards"
	"github.com/five82/internboard/internal/feed"
	"github.com/five82/internboard/internal/listing"
	"github.com/five82/internboard/internal/logging"
	"github.com/five82/internboard/internal/prefs"
	"github.com/five82/internboard/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context  context.Context
	Fetcher  feed.DatasetFetcher
	Source   string
	Prefs    *prefs.Store
	Theme    string
	Debounce time.Duration
	Logger   *zap.Logger

	// Overridable side effects; nil uses the system browser, clipboard and clock.
	OpenURL  func(string) error
	CopyText func(string) error
	Now      func() time.Time
}

type focusArea int

const (
	focusCards focusArea = iota
	focusSearch
)

// Messages

type datasetMsg struct {
	dataset listing.Dataset
	err     error
}

type searchTickMsg struct {
	seq  int
	term string
}

type actionMsg struct {
	text string
	err  error
}

type flashExpiredMsg struct {
	seq int
}

// Model is the Bubble Tea model for the listing.
type Model struct {
	ctx      context.Context
	fetcher  feed.DatasetFetcher
	source   string
	prefs    *prefs.Store
	logger   *zap.Logger
	openURL  func(string) error
	copyText func(string) error
	now      func() time.Time
	debounce time.Duration

	state state.State
	page  cards.Page

	// Every scheduled search carries the seq at scheduling time; only the
	// latest one may apply.
	searchSeq int

	search   textinput.Model
	viewport viewport.Model
	keys     keyMap
	theme    Theme
	focus    focusArea
	selected int
	offsets  []int
	showHelp bool

	flash    string
	flashErr bool
	flashSeq int

	width  int
	height int
}

// New builds the model. Loading starts in Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "title, company, location, skill..."
	ti.Prompt = ""
	ti.CharLimit = 120

	m := Model{
		ctx:      ctx,
		fetcher:  opts.Fetcher,
		source:   opts.Source,
		prefs:    opts.Prefs,
		logger:   logging.OrNop(opts.Logger),
		openURL:  openURL,
		copyText: copyText,
		now:      now,
		debounce: debounce,
		state:    state.Initial(),
		search:   ti,
		viewport: viewport.New(0, 0),
		keys:     DefaultKeyMap(),
		theme:    GetTheme(opts.Theme),
	}
	m.refreshPage()
	return m
}

// Init starts the single dataset retrieval.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	fetcher := m.fetcher
	ctx := m.ctx
	return func() tea.Msg {
		if fetcher == nil {
			return datasetMsg{err: fmt.Errorf("%w: no data source configured", feed.ErrLoadFailed)}
		}
		ds, err := fetcher.FetchDataset(ctx)
		return datasetMsg{dataset: ds, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case datasetMsg:
		if msg.err != nil {
			m.logger.Error("dataset load failed", zap.String("source", m.source), zap.Error(msg.err))
			m.dispatch(state.LoadFailed{Err: msg.err})
			return m, nil
		}
		m.logger.Info("dataset ready",
			zap.Int("items", len(msg.dataset.Internships)),
			zap.Int("total", msg.dataset.TotalInternships))
		m.dispatch(state.Loaded{Dataset: msg.dataset})
		return m, nil

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.logger.Debug("search applied", zap.String("term", msg.term))
		m.dispatch(state.SearchChanged{Term: msg.term})
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.logger.Warn("card action failed", zap.Error(msg.err))
			cmd := m.setFlash(msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.setFlash(msg.text, false)
		return m, cmd

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help, m.keys.Escape) {
				m.showHelp = false
			} else if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.focus == focusSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.blurSearch()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		// Apply now instead of waiting for the quiet period.
		m.searchSeq++
		m.dispatch(state.SearchChanged{Term: m.search.Value()})
		m.blurSearch()
		return m, nil
	case msg.Type == tea.KeyCtrlU:
		m.clearSearch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		tick := m.scheduleSearch(after)
		return m, tea.Batch(cmd, tick)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() != "" {
			m.clearSearch()
		}
	case key.Matches(msg, m.keys.CycleType):
		m.dispatch(state.TypeChanged{Type: board.CycleType(m.state.Filter.Type, m.state.Types())})
	case key.Matches(msg, m.keys.ToggleWFH):
		m.dispatch(state.LocationChanged{Location: m.state.Filter.Location.Next()})
	case key.Matches(msg, m.keys.CycleSort):
		m.dispatch(state.SortChanged{Key: m.state.Filter.Sort.Next()})
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Up):
		m.selectCard(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.selectCard(m.selected + 1)
	case key.Matches(msg, m.keys.Top):
		m.selectCard(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectCard(len(m.page.Cards) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Apply):
		return m, m.openSelected()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.CycleTheme):
		cmd := m.cycleTheme()
		return m, cmd
	}
	return m, nil
}

// scheduleSearch supersedes any pending search and starts a new quiet period.
func (m *Model) scheduleSearch(term string) tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq, term: term}
	})
}

func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.searchSeq++
	m.dispatch(state.SearchChanged{Term: ""})
}

func (m *Model) reset() {
	m.search.SetValue("")
	m.searchSeq++
	m.dispatch(state.ResetRequested{})
}

func (m *Model) blurSearch() {
	m.search.Blur()
	m.focus = focusCards
}

// dispatch runs ev through the reducer and rebuilds the page.
func (m *Model) dispatch(ev state.Event) {
	m.state = state.Reduce(m.state, ev)
	m.refreshPage()
}

func (m *Model) refreshPage() {
	m.page = cards.NewPage(m.state, m.now())
	m.selected = clamp(m.selected, 0, len(m.page.Cards)-1)
	m.renderCards()
	m.viewport.GotoTop()
	m.ensureVisible()
}

func (m *Model) selectCard(idx int) {
	if len(m.page.Cards) == 0 {
		return
	}
	m.selected = clamp(idx, 0, len(m.page.Cards)-1)
	m.renderCards()
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.selected >= len(m.offsets) || m.viewport.Height <= 0 {
		return
	}
	top := m.offsets[m.selected]
	bottom := m.viewport.TotalLineCount()
	if m.selected+1 < len(m.offsets) {
		bottom = m.offsets[m.selected+1]
	}
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) resize() {
	m.viewport.Width = max(m.width, 0)
	m.viewport.Height = max(m.height-chromeLines, 0)
	m.search.Width = max(min(m.width/3, 48), 10)
	m.renderCards()
	m.ensureVisible()
}

func (m Model) selectedCard() (cards.Card, bool) {
	if m.page.Status != cards.StatusResults || m.selected < 0 || m.selected >= len(m.page.Cards) {
		return cards.Card{}, false
	}
	return m.page.Cards[m.selected], true
}

func (m Model) openSelected() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		return nil
	}
	open := m.openURL
	return func() tea.Msg {
		if err := open(card.URL); err != nil {
			return actionMsg{err: fmt.Errorf("open %s: %w", card.URL, err)}
		}
		return actionMsg{text: "Opened " + card.Title + " in browser"}
	}
}

func (m Model) copySelected() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(card.URL); err != nil {
			return actionMsg{err: fmt.Errorf("copy link: %w", err)}
		}
		return actionMsg{text: "Copied " + card.URL}
	}
}

func (m *Model) cycleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.renderCards()
	store := m.prefs
	name := m.theme.Name
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.SaveTheme(name); err != nil {
			return actionMsg{err: fmt.Errorf("save theme: %w", err)}
		}
		return actionMsg{text: "Theme: " + name}
	}
}

func (m *Model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

// State returns the current reducer state.
func (m Model) State() state.State {
	return m.state
}

// Page returns the current view model.
func (m Model) Page() cards.Page {
	return m.page
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(opts Options) error {
	opts.Context = contextOrBackground(opts.Context)
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	if err != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
