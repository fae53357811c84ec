package ui

import (
	"math"
	"time"

	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	_ drilldown.Surface   = (*Model)(nil)
	_ drilldown.Scheduler = (*Model)(nil)
)

// slide is an in-flight strip animation, advanced one frame per frameMsg.
type slide struct {
	seq    int
	from   int
	to     int
	frame  int
	frames int
	easing drilldown.Easing
}

type frameMsg struct {
	seq int
}

type timerMsg struct {
	id int
}

// Width is the width of one level panel; panels are as wide as the terminal.
func (m *Model) Width() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// Height is the number of rows left for panels once the header, status and
// prompt rows are drawn, or -1 before the terminal size is known.
func (m *Model) Height() int {
	if m.height <= 0 {
		return -1
	}
	return max(m.height-m.chromeRows(), 1)
}

func (m *Model) chromeRows() int {
	if m.showFooter {
		return 5
	}
	return 3
}

func (m *Model) Origin() int {
	return 0
}

func (m *Model) SetPosition(x int) {
	m.slide = nil
	m.position = x
}

// AnimateTo moves the strip to x over d. Without animation it jumps.
func (m *Model) AnimateTo(x int, d time.Duration, easing drilldown.Easing) {
	if !m.animate || d <= 0 {
		m.SetPosition(x)
		return
	}
	if easing == nil {
		easing = drilldown.EaseInOut
	}
	m.slideSeq++
	m.slide = &slide{
		seq:    m.slideSeq,
		from:   m.position,
		to:     x,
		frames: max(int(d/frameInterval), 1),
		easing: easing,
	}
	m.queue(m.nextFrame())
}

func (m *Model) nextFrame() tea.Cmd {
	seq := m.slide.seq
	return m.tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok || m.slide == nil || frame.seq != m.slide.seq {
		return nil
	}
	s := m.slide
	s.frame++
	if s.frame >= s.frames {
		m.position = s.to
		m.slide = nil
		return nil
	}
	progress := s.easing(float64(s.frame) / float64(s.frames))
	m.position = s.from + int(math.Round(float64(s.to-s.from)*progress))
	return m.nextFrame()
}

// SuspendResize holds window size changes until the matching ResumeResize.
// Holds nest.
func (m *Model) SuspendResize() {
	m.holds++
}

func (m *Model) ResumeResize() {
	if m.holds == 0 {
		return
	}
	m.holds--
	if m.holds > 0 || m.heldResize == nil {
		return
	}
	held := *m.heldResize
	m.heldResize = nil
	m.queue(func() tea.Msg { return held })
}

func (m *Model) SyncSize(levels int) {
	m.levelCount = levels
}

func (m *Model) Focus(index int, field string) {
	m.focusIndex = index
	lvl, ok := m.ctrl.Level(index)
	if !ok {
		return
	}
	if form, ok := lvl.VisiblePanel().(*createForm); ok {
		form.focus(field)
	}
}

// After runs fn on the update loop once d has passed.
func (m *Model) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	m.timerSeq++
	id := m.timerSeq
	m.timers[id] = fn
	m.queue(m.tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
}

func (m *Model) handleTimerMsg(msg tea.Msg) tea.Cmd {
	timer, ok := msg.(timerMsg)
	if !ok {
		return nil
	}
	fn, ok := m.timers[timer.id]
	if !ok {
		return nil
	}
	delete(m.timers, timer.id)
	fn()
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if m.holds > 0 {
		m.heldResize = &size
		events.UI.Resize(size.Width, size.Height, true)
		return nil
	}
	events.UI.Resize(size.Width, size.Height, false)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.ctrl.SyncSize()
	for _, list := range m.lists {
		m.syncViewport(list)
	}
	return nil
}

// stripOffset splits the strip position into the leftmost visible level and
// how many of its columns have scrolled off the left edge.
func (m *Model) stripOffset() (first, cut int) {
	w := m.Width()
	scrolled := m.Origin() - m.position
	if scrolled <= 0 {
		return 0, 0
	}
	return scrolled / w, scrolled % w
}
