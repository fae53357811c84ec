package ui

import (
	"strings"

	"github.com/atomicstack/drilldown/internal/drilldown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	crumbSeparator = "›"
	crumbEllipsis  = "…"
)

var _ drilldown.BreadcrumbBar = (*breadcrumbBar)(nil)

// breadcrumbBar is the header row shown once the user has drilled below the
// first list. Every entry is a button; the root button is never shrunk.
type breadcrumbBar struct {
	entries []drilldown.Entry
	// widths overrides the natural width of entries[1:] after a reduction.
	widths []int
	hidden bool
}

func newBreadcrumbBar() *breadcrumbBar {
	return &breadcrumbBar{hidden: true}
}

func (b *breadcrumbBar) Hide() {
	b.hidden = true
	b.entries = nil
	b.widths = nil
}

func (b *breadcrumbBar) Show(entries []drilldown.Entry) {
	b.hidden = false
	b.entries = entries
	b.widths = nil
}

func (b *breadcrumbBar) Hidden() bool {
	return b.hidden || len(b.entries) == 0
}

func (b *breadcrumbBar) Entries() []drilldown.Entry {
	return append([]drilldown.Entry(nil), b.entries...)
}

// Width is the rendered width of the whole bar.
func (b *breadcrumbBar) Width() int {
	if b.Hidden() {
		return 0
	}
	total := 0
	for i := range b.entries {
		total += b.buttonWidth(i)
	}
	return total + lipgloss.Width(crumbSeparator)*(len(b.entries)-1)
}

func (b *breadcrumbBar) ButtonWidths() []int {
	if len(b.entries) < 2 {
		return nil
	}
	out := make([]int, 0, len(b.entries)-1)
	for i := 1; i < len(b.entries); i++ {
		out = append(out, b.buttonWidth(i))
	}
	return out
}

func (b *breadcrumbBar) SetButtonWidths(widths []int) {
	b.widths = append([]int(nil), widths...)
}

func (b *breadcrumbBar) buttonWidth(i int) int {
	if i > 0 && i-1 < len(b.widths) {
		return b.widths[i-1]
	}
	return naturalButtonWidth(b.entries[i])
}

func naturalButtonWidth(e drilldown.Entry) int {
	return lipgloss.Width(crumbLabel(e)) + 2
}

func crumbLabel(e drilldown.Entry) string {
	if label := strings.TrimSpace(e.Label); label != "" {
		return label
	}
	return crumbEllipsis
}

// buttonText returns the padded label of entry i, shortened to its width.
func (b *breadcrumbBar) buttonText(i int) string {
	label := crumbLabel(b.entries[i])
	inner := b.buttonWidth(i) - 2
	if inner < lipgloss.Width(label) {
		if inner <= 0 {
			return strings.Repeat(" ", max(b.buttonWidth(i), 0))
		}
		label = truncate.StringWithTail(label, uint(inner), crumbEllipsis)
	}
	text := " " + label + " "
	if pad := b.buttonWidth(i) - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func (b *breadcrumbBar) View() string {
	if b.Hidden() {
		return ""
	}
	var sb strings.Builder
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteString(render(styles.CrumbSeparator, crumbSeparator))
		}
		text := b.buttonText(i)
		switch {
		case e.Root:
			sb.WriteString(render(styles.CrumbRoot, text))
		case e.Terminal:
			sb.WriteString(render(styles.CrumbTerminal, text))
		default:
			sb.WriteString(render(styles.Crumb, text))
		}
	}
	return sb.String()
}

// EntryAt returns the index of the button under column x.
func (b *breadcrumbBar) EntryAt(x int) (int, bool) {
	if b.Hidden() || x < 0 {
		return 0, false
	}
	sep := lipgloss.Width(crumbSeparator)
	left := 0
	for i := range b.entries {
		w := b.buttonWidth(i)
		if x >= left && x < left+w {
			return i, true
		}
		left += w + sep
	}
	return 0, false
}

func (m *Model) clickBreadcrumb(i int) {
	_, err := m.ctrl.OnBreadcrumbClick(i)
	m.reportError(err)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft || mouse.Y != 0 {
		return nil
	}
	if i, ok := m.crumbs.EntryAt(mouse.X); ok {
		m.clickBreadcrumb(i)
	}
	return nil
}
