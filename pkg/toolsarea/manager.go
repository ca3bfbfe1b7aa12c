package toolsarea

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/toolsarea/pkg/animation"
	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/graphics"
	"github.com/go-drift/toolsarea/pkg/theme"
)

// Options configures a Manager. The zero value is usable.
type Options struct {
	// Config holds animation and debounce tuning. Nil means
	// config.Default(); a zero Resolved is used as given.
	Config *config.Resolved
	// Theme supplies the endpoint colors. Nil means the default light palette.
	Theme theme.Provider
	// Clock drives timers and animations. Nil means the animation package clock.
	Clock animation.Clock
	// Logger receives diagnostic records. Nil means slog.Default().
	Logger *slog.Logger
	// Registerer, when set, receives the manager's Prometheus collectors.
	Registerer prometheus.Registerer
}

// Stats is a snapshot of the manager's counters.
type Stats struct {
	Passes          uint64
	DebouncedPasses uint64
	Absorbed        uint64
	Transitions     uint64
	Windows         int
	Elements        int
}

// ElementInfo is a copy of a registered element's state.
type ElementInfo struct {
	ID       NodeID
	Kind     ElementKind
	Window   NodeID
	Geometry geometry.Rect
	Visible  bool
	Member   bool
	Reason   Reason
}

// WindowInfo is a copy of a tracked window's state.
type WindowInfo struct {
	ID       NodeID
	Area     Area
	Active   bool
	Enabled  bool
	Members  []NodeID
	Elements int
	Phase    Phase
	Progress float64
	Pending  bool
	Passes   uint64
}

// Manager is the tools area facade. It is not safe for concurrent use
// except for Post; see the package documentation.
type Manager struct {
	tree    Tree
	cfg     config.Resolved
	theme   theme.Provider
	tickers *animation.TickerSet
	logger  *slog.Logger
	metrics *metrics
	reg     *registry

	listeners      map[int]func(NodeID)
	nextListenerID int
	stats          Stats
	passDepth      int

	postMu sync.Mutex
	posted []func()
	closed bool
}

// New creates a manager reading the host hierarchy from tree.
func New(tree Tree, opts Options) *Manager {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	provider := opts.Theme
	if provider == nil {
		provider = theme.StaticProvider{P: theme.DefaultLightPalette()}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		tree:      tree,
		cfg:       cfg,
		theme:     provider,
		tickers:   animation.NewTickerSet(opts.Clock),
		logger:    logger.With(slog.String("component", "toolsarea")),
		metrics:   newMetrics(opts.Registerer),
		reg:       newRegistry(),
		listeners: make(map[int]func(NodeID)),
	}
}

// RegisterElement starts tracking id. The owning window is resolved from the
// tree; windowHint is used when the tree cannot resolve one. Registering an
// already registered element only refreshes its kind and hint. It reports
// whether the element is tracked afterwards.
func (m *Manager) RegisterElement(id NodeID, kind ElementKind, windowHint NodeID) bool {
	if m.closed || id == NoNode {
		return false
	}
	m.purge()

	if _, rec := m.reg.lookup(id); rec != nil {
		changed := rec.kind != kind || rec.hint != windowHint
		rec.kind = kind
		rec.hint = windowHint
		if changed {
			m.invalidate(rec.window, InvalidateStructural)
		}
		return true
	}

	owner := windowHint
	if top, ok := TopLevelOf(m.tree, id); ok {
		owner = top.ID
	}
	if owner == NoNode {
		m.logger.Debug("element has no window", slog.Uint64("element", uint64(id)))
		return false
	}

	h := m.reg.insert(elementRecord{id: id, kind: kind, hint: windowHint, window: owner})
	w := m.ensureWindow(owner)
	m.reg.attach(h, w)
	w.teardown = false
	m.invalidate(owner, InvalidateStructural)
	return true
}

// UnregisterElement stops tracking id. Unknown elements are ignored.
func (m *Manager) UnregisterElement(id NodeID) {
	m.purge()
	h, rec := m.reg.lookup(id)
	if rec == nil {
		return
	}
	win := m.reg.remove(h)
	m.afterRemoval(win)
}

// afterRemoval schedules teardown of an emptied window and refreshes it.
func (m *Manager) afterRemoval(win NodeID) {
	w := m.reg.windows[win]
	if w == nil {
		return
	}
	if len(w.elements) == 0 {
		w.teardown = true
		m.cancelPending(w)
	}
	m.invalidate(win, InvalidateStructural)
}

// ensureWindow returns the record for id, creating it with the window's
// current state from the tree.
func (m *Manager) ensureWindow(id NodeID) *windowRecord {
	if w := m.reg.windows[id]; w != nil {
		return w
	}
	w := newWindowRecord(id)
	if n, ok := m.tree.Node(id); ok {
		w.active = n.Active
		w.enabled = n.Enabled
		w.noSeparator = n.NoSeparator
	}
	w.area = Aggregate(m.windowFrame(id), nil, m.hairline(w))
	win := id
	w.anim = newAnimState(w.active, m.theme.Palette(), m.cfg, m.tickers, func() { m.emit(win) })
	m.reg.windows[id] = w
	m.stats.Windows = len(m.reg.windows)
	m.metrics.windows.Inc()
	m.logger.Debug("window tracked", slog.Uint64("window", uint64(id)))
	return w
}

// destroyWindow drops a window and every element registered under it.
func (m *Manager) destroyWindow(id NodeID) {
	w := m.reg.windows[id]
	if w == nil {
		return
	}
	m.cancelPending(w)
	w.anim.dispose()
	for h := range w.elements {
		m.reg.remove(h)
	}
	delete(m.reg.windows, id)
	m.stats.Windows = len(m.reg.windows)
	m.metrics.windows.Dec()
	m.logger.Info("window released", slog.Uint64("window", uint64(id)))
}

func (m *Manager) windowFrame(id NodeID) geometry.Rect {
	if n, ok := m.tree.Node(id); ok {
		return n.Geometry
	}
	return geometry.Rect{}
}

func (m *Manager) hairline(w *windowRecord) float64 {
	if w.noSeparator {
		return 0
	}
	return m.cfg.Hairline
}

// purge frees destroyed elements and refreshes the windows they left.
func (m *Manager) purge() {
	for _, win := range m.reg.purgeDestroyed() {
		m.afterRemoval(win)
	}
}

// IsInToolsArea reports whether id was a member as of the last pass.
func (m *Manager) IsInToolsArea(id NodeID) bool {
	m.purge()
	_, rec := m.reg.lookup(id)
	return rec != nil && rec.member
}

// Rect returns the tools area of window, or an empty rect when the window is
// unknown.
func (m *Manager) Rect(window NodeID) geometry.Rect {
	m.purge()
	if w := m.reg.windows[window]; w != nil {
		return w.area.Rect
	}
	return geometry.Rect{}
}

// HasContents reports whether window's tools area has any member.
func (m *Manager) HasContents(window NodeID) bool {
	m.purge()
	if w := m.reg.windows[window]; w != nil {
		return w.area.HasContents
	}
	return false
}

// Area returns the full computed area of window.
func (m *Manager) Area(window NodeID) (Area, bool) {
	m.purge()
	if w := m.reg.windows[window]; w != nil {
		return w.area, true
	}
	return Area{}, false
}

// Margin returns the top content margin window should reserve. Unknown
// windows get the hairline.
func (m *Manager) Margin(window NodeID) float64 {
	m.purge()
	if w := m.reg.windows[window]; w != nil {
		return w.area.Margin
	}
	return m.cfg.Hairline
}

// Foreground returns the tools area text color for element at this instant.
func (m *Manager) Foreground(element NodeID) graphics.Color {
	fg, _ := m.colors(element)
	return fg
}

// Background returns the tools area fill color for element at this instant.
func (m *Manager) Background(element NodeID) graphics.Color {
	_, bg := m.colors(element)
	return bg
}

func (m *Manager) colors(element NodeID) (graphics.Color, graphics.Color) {
	m.purge()
	p := m.theme.Palette()

	win := NoNode
	if _, rec := m.reg.lookup(element); rec != nil {
		win = rec.window
	} else if m.reg.windows[element] != nil {
		win = element
	}
	if w := m.reg.windows[win]; w != nil {
		return w.anim.colors(w.enabled, p)
	}

	// Untracked: answer from the tree without animating.
	if top, ok := TopLevelOf(m.tree, element); ok {
		return resolveColors(p, top.Enabled, top.Active, nil)
	}
	return resolveColors(p, true, true, nil)
}

// Element returns a copy of the state of a registered element.
func (m *Manager) Element(id NodeID) (ElementInfo, bool) {
	m.purge()
	_, rec := m.reg.lookup(id)
	if rec == nil {
		return ElementInfo{}, false
	}
	return ElementInfo{
		ID:       rec.id,
		Kind:     rec.kind,
		Window:   rec.window,
		Geometry: rec.geometry,
		Visible:  rec.visible,
		Member:   rec.member,
		Reason:   rec.reason,
	}, true
}

// Window returns a copy of the state of a tracked window.
func (m *Manager) Window(id NodeID) (WindowInfo, bool) {
	m.purge()
	w := m.reg.windows[id]
	if w == nil {
		return WindowInfo{}, false
	}
	return WindowInfo{
		ID:       w.id,
		Area:     w.area,
		Active:   w.active,
		Enabled:  w.enabled,
		Members:  m.reg.memberIDs(w),
		Elements: len(w.elements),
		Phase:    w.anim.phase(),
		Progress: w.anim.ctrl.Value,
		Pending:  w.timer.Pending(),
		Passes:   w.passes,
	}, true
}

// Windows returns the tracked windows in ascending order.
func (m *Manager) Windows() []NodeID {
	m.purge()
	ids := make([]NodeID, 0, len(m.reg.windows))
	for id := range m.reg.windows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Stats returns a snapshot of the manager's counters.
func (m *Manager) Stats() Stats {
	s := m.stats
	s.Windows = len(m.reg.windows)
	s.Elements = m.reg.elementCount()
	return s
}

// OnAreaUpdated registers fn to run after every completed pass and every
// animation sample. It returns an unsubscribe function.
func (m *Manager) OnAreaUpdated(fn func(window NodeID)) func() {
	id := m.nextListenerID
	m.nextListenerID++
	m.listeners[id] = fn
	return func() {
		delete(m.listeners, id)
	}
}

func (m *Manager) emit(window NodeID) {
	if len(m.listeners) == 0 {
		return
	}
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := m.listeners[id]; ok {
			fn(window)
		}
	}
}

// SetPalette replaces the theme with a fixed palette and repaints.
func (m *Manager) SetPalette(p theme.Palette) {
	m.theme = theme.StaticProvider{P: p}
	m.ThemeChanged()
}

// ThemeChanged re-reads the theme provider after it changed. Endpoints are
// refreshed and every window repaints.
func (m *Manager) ThemeChanged() {
	p := m.theme.Palette()
	for _, id := range m.Windows() {
		w := m.reg.windows[id]
		w.anim.applyPalette(p)
		m.emit(id)
	}
}

// SetConfig applies new tuning. Running animations keep their timing;
// later transitions and timers use the new values.
func (m *Manager) SetConfig(cfg config.Resolved) {
	m.cfg = cfg
	for _, id := range m.Windows() {
		w := m.reg.windows[id]
		w.anim.configure(cfg)
		if hl := m.hairline(w); !w.area.HasContents && w.area.Margin != hl {
			m.invalidate(id, InvalidateStructural)
		}
	}
}

// Post queues fn to run on the UI thread during the next Tick. It is safe
// to call from any goroutine.
func (m *Manager) Post(fn func()) {
	m.postMu.Lock()
	defer m.postMu.Unlock()
	m.posted = append(m.posted, fn)
}

// Tick runs posted work, fires due debounce timers and advances animations.
// Call it once per frame from the UI thread.
func (m *Manager) Tick() {
	m.postMu.Lock()
	posted := m.posted
	m.posted = nil
	m.postMu.Unlock()
	for _, fn := range posted {
		m.runSafely("toolsarea.Post", NoNode, fn)
	}

	m.purge()
	m.tickers.Step()
}

// NextDeadline returns the time until the earliest armed debounce timer
// fires. Hosts that idle between frames can sleep that long.
func (m *Manager) NextDeadline() (time.Duration, bool) {
	var next time.Duration
	found := false
	for _, w := range m.reg.windows {
		if wait, ok := w.timer.Remaining(); ok && (!found || wait < next) {
			next, found = wait, true
		}
	}
	return next, found
}

// NeedsTick reports whether timers, animations or posted work are pending.
func (m *Manager) NeedsTick() bool {
	m.postMu.Lock()
	posted := len(m.posted) > 0
	m.postMu.Unlock()
	return posted || m.tickers.HasActive()
}

// Close releases every window, stopping timers and animations.
func (m *Manager) Close() {
	for _, id := range m.Windows() {
		m.destroyWindow(id)
	}
	m.listeners = make(map[int]func(NodeID))
	m.closed = true
}
