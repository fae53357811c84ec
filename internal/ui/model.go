package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/drilldown/internal/backend"
	"github.com/atomicstack/drilldown/internal/bookmark"
	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/data/dispatcher"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging"
	"github.com/atomicstack/drilldown/internal/permission"
	"github.com/atomicstack/drilldown/internal/state"
	"github.com/atomicstack/drilldown/internal/theme"
	"github.com/atomicstack/drilldown/internal/ui/command"
	uistate "github.com/atomicstack/drilldown/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// FeatureName is bookmark segment 0 for the catalog browser.
const FeatureName = "catalog"

const (
	readOnlyInfo = "Read only: deleting entries is not permitted"
	staleCatalog = "Catalog reload failed, showing the last good copy"
)

const (
	defaultWidth = 80
	// breadcrumbPadding is in terminal cells; the controller default of 60
	// assumes pixel-like units and would hide most of an 80 column bar.
	breadcrumbPadding = 4
	frameInterval     = 16 * time.Millisecond
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog     *catalog.Catalog
	Path        string
	Width       int
	Height      int
	ShowFooter  bool
	Animate     bool
	Bookmark    string
	Watcher     *backend.Watcher
	Permissions *permission.Checker
}

// Model implements the Bubble Tea model for the catalog browser. It hosts
// the drilldown controller and plays every collaborator role the controller
// needs: the sliding surface, the breadcrumb bar, the settle scheduler and
// the confirmation prompt.
type Model struct {
	ctrl       *drilldown.Controller
	bookmarks  *bookmark.Store
	catalog    *catalog.Catalog
	path       string
	stores     []state.RecordStore
	lists      []*level
	detail     *detailPanel
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	perms      *permission.Checker
	canCreate  *toggle
	canDelete  *toggle
	unbind     []func()

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	animate     bool
	position    int
	slide       *slide
	slideSeq    int
	levelCount  int
	focusIndex  int
	holds       int
	heldResize  *tea.WindowSizeMsg

	tick     tickFunc
	timers   map[int]func()
	timerSeq int
	queued   []tea.Cmd

	crumbs   *breadcrumbBar
	confirm  *confirmPrompt
	gotoForm *gotoForm

	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	backend           *backend.Watcher
	backendLastErr    string
	showFooter        bool
	spinner           spinner.Model
	spinning          bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the browser for a catalog. The stores start out loading;
// they fill when the first catalog event arrives, at which point the initial
// bookmark resolves.
func NewModel(opts Options) *Model {
	cat := opts.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	perms := opts.Permissions
	if perms == nil {
		perms = permission.NewChecker(nil)
	}
	m := &Model{
		catalog:    cat,
		path:       opts.Path,
		detail:     &detailPanel{},
		bus:        command.New(),
		perms:      perms,
		canCreate:  &toggle{enabled: cat.Permission == ""},
		canDelete:  &toggle{enabled: cat.Permission == ""},
		animate:    opts.Animate,
		showFooter: opts.ShowFooter,
		backend:    opts.Watcher,
		crumbs:     newBreadcrumbBar(),
		tick:       tea.Tick,
		timers:     map[int]func(){},
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if styles.Loading != nil {
		m.spinner.Style = *styles.Loading
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	masters := make([]drilldown.Master, len(cat.Levels))
	for i, kind := range cat.Levels {
		store := state.NewRecordStore(i)
		list := uistate.NewLevel(kind, levelTitle(kind), i, nil)
		m.stores = append(m.stores, store)
		m.lists = append(m.lists, list)
		masters[i] = drilldown.Master{View: list, Source: store}
	}
	m.dispatcher = dispatcher.New(m.stores)

	initial, err := initialBookmark(opts.Bookmark)
	if err != nil {
		m.errMsg = err.Error()
	}
	m.bookmarks = bookmark.NewStore(initial)

	m.ctrl = drilldown.New(drilldown.Options{
		Feature: drilldown.Feature{
			Name:       FeatureName,
			Title:      featureTitle(cat),
			IconClass:  cat.Icon,
			Permission: cat.Permission,
		},
		Masters:           masters,
		Detail:            m.detail,
		Surface:           m,
		Breadcrumb:        m.crumbs,
		Bookmarks:         m.bookmarks,
		Scheduler:         m,
		Confirm:           m,
		Delete:            m.deleteRecord,
		Describe:          describeRecord,
		IconClass:         recordIcon,
		Permissions:       func(perm string) drilldown.Condition { return m.perms.Condition(perm) },
		OnSelection:       m.onSelection,
		OnError:           m.reportError,
		BreadcrumbPadding: breadcrumbPadding,
	})
	m.bookmarks.Subscribe(m.ctrl, m.ctrl.NavigateTo)
	m.ctrl.AddTab("TOML", detailTabRenderer(tomlTab))
	m.canDelete.changed = func(enabled bool) {
		if enabled {
			m.ctrl.ClearInfo()
		} else {
			m.ctrl.ShowInfo(readOnlyInfo)
		}
	}
	m.unbind = append(m.unbind, m.ctrl.BindCreate(m.canCreate), m.ctrl.BindDelete(m.canDelete))

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.ctrl.SyncSize()
	m.reportError(m.ctrl.NavigateTo(m.bookmarks.Current()))
	m.registerHandlers()
	return m
}

func initialBookmark(token string) (bookmark.Bookmark, error) {
	b, err := parseLocation(token)
	if err != nil {
		return bookmark.FromSegments([]string{FeatureName}), fmt.Errorf("initial bookmark %q: %w", token, err)
	}
	return b, nil
}

func featureTitle(c *catalog.Catalog) string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return "Catalog"
}

func levelTitle(kind string) string {
	title := strings.TrimSpace(headerSegmentCleaner.Replace(kind))
	if title == "" {
		return kind
	}
	return strings.ToUpper(title[:1]) + title[1:]
}

// Controller exposes the drilldown controller.
func (m *Model) Controller() *drilldown.Controller {
	return m.ctrl
}

// Bookmarks exposes the bookmark store the controller is subscribed to.
func (m *Model) Bookmarks() *bookmark.Store {
	return m.bookmarks
}

// Close releases permission subscriptions.
func (m *Model) Close() {
	for _, fn := range m.unbind {
		fn()
	}
	m.unbind = nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := m.drainQueue(nil)
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(timerMsg{}):          m.handleTimerMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerMsg,
		reflect.TypeOf(catalogChangedMsg{}): m.handleCatalogChangedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// queue holds a command produced while the controller was running; it is
// handed to Bubble Tea at the end of the current update.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) drainQueue(cmds []tea.Cmd) []tea.Cmd {
	if len(m.queued) > 0 {
		cmds = append(cmds, m.queued...)
		m.queued = nil
	}
	return cmds
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = m.drainQueue(cmds)
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) reportError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	m.errMsg = err.Error()
	m.forceClearInfo()
}

// loading reports whether any store is waiting for catalog data.
func (m *Model) loading() bool {
	for _, s := range m.stores {
		if s.IsLoading() {
			return true
		}
	}
	return false
}

type toggle struct {
	enabled bool
	changed func(enabled bool)
}

func (t *toggle) Enable()  { t.set(true) }
func (t *toggle) Disable() { t.set(false) }

func (t *toggle) set(enabled bool) {
	t.enabled = enabled
	if t.changed != nil {
		t.changed(enabled)
	}
}
