package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling
}

var (
	_ drilldown.DetailNotifier = (*detailPanel)(nil)
	_ drilldown.DetailTabs     = (*detailPanel)(nil)
)

// summaryTab names the record card, which is always the first tab.
const summaryTab = "Summary"

// detailTabRenderer renders one extra tab of the detail panel for a record.
type detailTabRenderer func(rec *catalog.Record) []string

type detailTab struct {
	name   string
	render detailTabRenderer
}

// detailPanel is the browse card of the level after the last list. Besides
// the record card it carries an info line, a warning line and extra tabs.
type detailPanel struct {
	record  *catalog.Record
	info    string
	warning string
	tabs    []detailTab
	active  int // 0 is the summary card, n is tabs[n-1]
}

func (d *detailPanel) set(rec *catalog.Record) {
	d.record = rec
}

func (d *detailPanel) ShowInfo(message string)    { d.info = message }
func (d *detailPanel) ClearInfo()                 { d.info = "" }
func (d *detailPanel) ShowWarning(message string) { d.warning = message }
func (d *detailPanel) ClearWarning()              { d.warning = "" }

// AddTab adds or replaces the tab called name. content may be a
// detailTabRenderer (or the equivalent func), a string or a fmt.Stringer.
func (d *detailPanel) AddTab(name string, content any) {
	tab := detailTab{name: name, render: tabRenderer(content)}
	for i := range d.tabs {
		if d.tabs[i].name == name {
			d.tabs[i] = tab
			return
		}
	}
	d.tabs = append(d.tabs, tab)
}

func (d *detailPanel) RemoveTab(name string) {
	for i := range d.tabs {
		if d.tabs[i].name != name {
			continue
		}
		d.tabs = append(d.tabs[:i], d.tabs[i+1:]...)
		switch {
		case d.active == i+1:
			d.active = 0
		case d.active > i+1:
			d.active--
		}
		return
	}
}

func tabRenderer(content any) detailTabRenderer {
	switch c := content.(type) {
	case detailTabRenderer:
		return c
	case func(*catalog.Record) []string:
		return c
	case string:
		return func(*catalog.Record) []string { return strings.Split(c, "\n") }
	case fmt.Stringer:
		return func(*catalog.Record) []string { return strings.Split(c.String(), "\n") }
	case nil:
		return func(*catalog.Record) []string { return nil }
	}
	return func(*catalog.Record) []string { return []string{fmt.Sprint(content)} }
}

// cycleTab moves the active tab by delta, wrapping around. It reports false
// when there is only the summary.
func (d *detailPanel) cycleTab(delta int) bool {
	n := len(d.tabs) + 1
	if n == 1 {
		return false
	}
	d.active = ((d.active+delta)%n + n) % n
	return true
}

func (d *detailPanel) activeTab() string {
	if d.active == 0 || d.active > len(d.tabs) {
		return summaryTab
	}
	return d.tabs[d.active-1].name
}

func (d *detailPanel) lines() []styledLine {
	var lines []styledLine
	if d.record == nil {
		lines = append(lines, styledLine{text: "(nothing selected)", style: styles.Info})
	} else {
		name := d.record.Name
		if name == "" {
			name = d.record.ID
		}
		lines = append(lines, styledLine{text: name, style: styles.PanelTitle})
	}
	if d.warning != "" {
		lines = append(lines, styledLine{text: "! " + d.warning, style: styles.Warning})
	}
	if d.info != "" {
		lines = append(lines, styledLine{text: d.info, style: styles.Info})
	}
	if d.record == nil {
		return lines
	}
	if len(d.tabs) > 0 {
		lines = append(lines, styledLine{text: d.tabRow(), raw: true})
	}
	lines = append(lines, styledLine{})
	if d.active > 0 && d.active <= len(d.tabs) {
		for _, row := range d.tabs[d.active-1].render(d.record) {
			lines = append(lines, styledLine{text: row, style: styles.DetailValue})
		}
		return lines
	}
	return append(lines, d.summaryLines()...)
}

func (d *detailPanel) tabRow() string {
	names := []string{summaryTab}
	for _, tab := range d.tabs {
		names = append(names, tab.name)
	}
	active := d.activeTab()
	parts := make([]string, len(names))
	for i, name := range names {
		if name == active {
			parts[i] = render(styles.ActiveTab, name)
		} else {
			parts[i] = render(styles.Tab, name)
		}
	}
	return strings.Join(parts, render(styles.Tab, " │ "))
}

func (d *detailPanel) summaryLines() []styledLine {
	rec := d.record
	pairs := [][2]string{
		{render(styles.DetailKey, "id"), render(styles.DetailValue, rec.ID)},
		{render(styles.DetailKey, "kind"), render(styles.DetailValue, rec.Kind)},
	}
	if rec.Parent != "" {
		pairs = append(pairs, [2]string{render(styles.DetailKey, "parent"), render(styles.DetailValue, rec.Parent)})
	}
	keys := make([]string, 0, len(rec.Attributes))
	for k := range rec.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, [2]string{render(styles.DetailKey, k), render(styles.DetailValue, rec.Attributes[k])})
	}
	var lines []styledLine
	for _, row := range table.KeyValues(pairs) {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	return lines
}

// tomlTab shows the record as it appears in the catalog file.
func tomlTab(rec *catalog.Record) []string {
	out, err := catalog.EncodeRecord(*rec)
	if err != nil {
		return []string{err.Error()}
	}
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

// View renders the header, the panel strip, the status row and the prompt.
func (m *Model) View() string {
	w := m.Width()
	rows := []string{fitWidth(m.headerView(), w)}
	rows = append(rows, m.stripView()...)
	rows = append(rows, fitWidth(m.statusView(), w), fitWidth(m.promptView(), w))
	if m.showFooter {
		rows = append(rows, "", fitWidth(m.footerView(), w))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) headerView() string {
	spin := ""
	if m.loading() {
		spin = " " + m.spinner.View()
	}
	if m.crumbs.Hidden() {
		return render(styles.Header, m.ctrl.Feature().Title) + spin
	}
	return m.crumbs.View() + spin
}

func (m *Model) statusView() string {
	switch {
	case m.confirm != nil:
		return render(styles.Confirm, m.confirm.View())
	case m.errMsg != "":
		return render(styles.Error, "Error: "+m.errMsg)
	case m.backendLastErr != "":
		return render(styles.Error, "Catalog: "+m.backendLastErr)
	}
	return render(styles.Info, m.currentInfo())
}

func (m *Model) promptView() string {
	if m.gotoForm != nil {
		return m.gotoForm.View()
	}
	if m.currentList() != nil {
		return m.filterPrompt()
	}
	return ""
}

// stripView renders the visible window of the level strip. While a slide is
// in flight two neighbouring panels share the window.
func (m *Model) stripView() []string {
	w := m.Width()
	first, cut := m.stripOffset()
	left := m.panelView(first, w)
	if cut == 0 {
		return m.padPanel(left, w)
	}
	right := m.panelView(first+1, w)
	n := max(len(left), len(right))
	left, right = m.padRows(left, n, w), m.padRows(right, n, w)
	out := make([]string, n)
	for i := range out {
		out[i] = ansi.Cut(left[i], cut, w) + ansi.Cut(right[i], 0, cut)
	}
	return m.padPanel(out, w)
}

func (m *Model) padPanel(rows []string, w int) []string {
	if h := m.Height(); h > 0 {
		if len(rows) > h {
			rows = rows[:h]
		}
		return m.padRows(rows, h, w)
	}
	return m.padRows(rows, len(rows), w)
}

func (m *Model) padRows(rows []string, n, w int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(rows) {
			out[i] = fitWidth(rows[i], w)
		} else {
			out[i] = strings.Repeat(" ", w)
		}
	}
	return out
}

// panelView renders level index as it currently shows.
func (m *Model) panelView(index, w int) []string {
	lvl, ok := m.ctrl.Level(index)
	if !ok {
		return nil
	}
	var lines []styledLine
	switch lvl.Mode {
	case drilldown.ModeBrowse:
		switch panel := lvl.Browse.(type) {
		case *level:
			lines = m.listLines(panel, w)
		case *detailPanel:
			lines = panel.lines()
		}
	case drilldown.ModeCreateWizard:
		if form, ok := lvl.Wizard.(*createForm); ok {
			lines = form.lines()
		}
	}
	return strings.Split(renderLines(applyWidth(lines, w)), "\n")
}

func (m *Model) listLines(l *level, w int) []styledLine {
	title := l.Title
	if l.Index > 0 && l.Scope != "" {
		if rec, ok := m.catalog.Find(l.Scope); ok && rec.Name != "" {
			title += " in " + rec.Name
		}
	}
	lines := []styledLine{{text: title, style: styles.PanelTitle}}
	switch {
	case len(l.Full) == 0 && m.stores[l.Index].IsLoading():
		return append(lines, styledLine{text: "Loading…", style: styles.Loading})
	case len(l.Full) == 0:
		return append(lines, styledLine{text: "(no entries)", style: styles.Info})
	case len(l.Items) == 0:
		return append(lines, styledLine{text: fmt.Sprintf("No matches for %q", l.Filter), style: styles.Info})
	}
	visible, start := l.Visible(m.maxVisibleItems())
	for i, item := range visible {
		lines = append(lines, m.buildItemLine(item.ID, item.Label, start+i, l, w))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a list row. The row the
// drilldown has opened keeps its own colour when the cursor moves away.
func (m *Model) buildItemLine(id, label string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if current.IsSelected(id) {
		lineStyle = styles.ChosenItem
	}
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// maxVisibleItems is the number of list rows a panel can show, leaving one
// row for the panel title.
func (m *Model) maxVisibleItems() int {
	h := m.Height()
	if h <= 0 {
		return -1
	}
	return max(h-1, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// fitWidth truncates or pads a rendered row to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return s
	}
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := render(line.prefixStyle, string(runes[:line.highlightFrom]))
			tail := render(line.style, string(runes[line.highlightFrom:]))
			text = head + tail
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width-1), "") + "…"
}

// footerView lists the key hints. Actions the permission checker denies are
// struck through.
func (m *Model) footerView() string {
	hint := func(text string, enabled bool) string {
		if !enabled {
			return render(styles.Disabled, text)
		}
		return render(styles.Footer, text)
	}
	gap := render(styles.Footer, "  ")
	return strings.Join([]string{
		hint("↑/↓ move", true),
		hint("enter open", true),
		hint("esc back", true),
		hint("ctrl+n new", m.canCreate.enabled),
		hint("ctrl+d delete", m.canDelete.enabled),
		hint("ctrl+g go to", true),
		hint("alt+← history", true),
		hint("ctrl+c quit", true),
	}, gap)
}
