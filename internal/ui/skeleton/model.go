package skeleton

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
)

// FrameInterval is the shimmer frame rate. It matches StaggerStep so a
// block's delay is a whole number of frames.
const FrameInterval = StaggerStep

// shimmerWidth is the width of the moving highlight band in cells.
const shimmerWidth = 6

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the shimmer of the skeleton with the matching id.
type TickMsg struct {
	id  int
	tag int
}

// Model animates a set of placeholder blocks while content loads.
type Model struct {
	id      int
	tag     int
	frame   int
	req     model.PlaceholderRequest
	blocks  []Block
	width   int
	columns int
}

// New creates a skeleton for req at the given width.
func New(req model.PlaceholderRequest, width int) Model {
	columns := req.Columns
	if columns <= 0 {
		columns = 1
	}
	return Model{
		id:      nextID(),
		req:     req,
		blocks:  Generate(req),
		width:   width,
		columns: columns,
	}
}

// Init starts the shimmer.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update advances the shimmer on its own ticks and ignores everything
// else, including ticks from earlier incarnations of the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != m.id || tick.tag != m.tag {
		return m, nil
	}
	m.frame++
	m.tag++
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return TickMsg{id: id, tag: tag}
	})
}

// Blocks returns the generated blocks.
func (m Model) Blocks() []Block {
	return m.blocks
}

// SetSize updates the render width.
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// View renders the blocks in a grid.
func (m Model) View() string {
	if len(m.blocks) == 0 {
		return ""
	}

	gap := 2
	cellWidth := (m.width - gap*(m.columns-1)) / m.columns
	if cellWidth < 4 {
		cellWidth = 4
	}

	var rows []string
	for start := 0; start < len(m.blocks); start += m.columns {
		end := min(start+m.columns, len(m.blocks))

		var cells []string
		for i, b := range m.blocks[start:end] {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", gap))
			}
			cells = append(cells, m.renderBlock(b, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderBlock draws one placeholder. The shimmer band starts moving once
// the block's delay has elapsed.
func (m Model) renderBlock(b Block, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	band := -shimmerWidth
	if started := m.frame - int(b.Delay/FrameInterval); started >= 0 {
		band = started%(inner+shimmerWidth) - shimmerWidth
	}

	base := lipgloss.NewStyle().Foreground(theme.Color(theme.TokenSkeleton))
	hi := lipgloss.NewStyle().Foreground(theme.Color(theme.TokenShimmer))

	var lines []string
	for _, pct := range b.Rows() {
		n := inner * pct / 100
		if pct > 0 && n == 0 {
			n = 1
		}

		var sb strings.Builder
		for x := 0; x < n; x++ {
			if x >= band && x < band+shimmerWidth {
				sb.WriteString(hi.Render("▒"))
			} else {
				sb.WriteString(base.Render("░"))
			}
		}
		lines = append(lines, sb.String())
	}

	return lipgloss.NewStyle().
		Width(inner).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(theme.TokenBorder)).
		Render(strings.Join(lines, "\n"))
}
