package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yogabind/pkg/document"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginLeft(2)
)

// inspectCommand creates the inspect command for browsing a layout interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "inspect [document]",
		Short:             "Browse a document's computed layout interactively",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.layoutFile(args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewInspectModel(res), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// InspectModel - Interactive layout browser
// =============================================================================

// inspectRow is one node of the flattened result tree.
type inspectRow struct {
	node  *document.Result
	depth int
	x, y  float32
}

// InspectModel is the bubbletea model for browsing computed boxes.
type InspectModel struct {
	Rows   []inspectRow
	Cursor int
	Height int
	Offset int
}

// NewInspectModel flattens res depth-first for browsing.
func NewInspectModel(res *document.Result) InspectModel {
	m := InspectModel{Height: 15}
	res.Walk(func(n *document.Result, depth int, x, y float32) {
		m.Rows = append(m.Rows, inspectRow{node: n, depth: depth, x: x, y: y})
	})
	return m
}

// Selected returns the node under the cursor.
func (m InspectModel) Selected() *document.Result {
	if len(m.Rows) == 0 {
		return nil
	}
	return m.Rows[m.Cursor].node
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(m.Cursor - 1)
		case "down", "j":
			m.move(m.Cursor + 1)
		case "home", "g":
			m.move(0)
		case "end", "G":
			m.move(len(m.Rows) - 1)
		case "p":
			m.move(m.parentOf(m.Cursor))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(m.Cursor)
	}
	return m, nil
}

// move places the cursor at i, clamped, and scrolls it into view.
func (m *InspectModel) move(i int) {
	m.Cursor = max(0, min(i, len(m.Rows)-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// parentOf returns the row index of the parent of row i, or i for the root.
func (m InspectModel) parentOf(i int) int {
	if i <= 0 || i >= len(m.Rows) {
		return i
	}
	depth := m.Rows[i].depth
	for j := i - 1; j >= 0; j-- {
		if m.Rows[j].depth < depth {
			return j
		}
	}
	return i
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  p parent  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", r.depth) + r.node.Name
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), m.detail()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// detail renders the geometry of the selected node.
func (m InspectModel) detail() string {
	if len(m.Rows) == 0 {
		return ""
	}
	r := m.Rows[m.Cursor]
	n := r.node
	lines := []string{
		StyleTitle.Render(n.Name),
		fmt.Sprintf("position  %s, %s", num(n.Left), num(n.Top)),
		fmt.Sprintf("absolute  %s, %s", num(r.x), num(r.y)),
		fmt.Sprintf("size      %s x %s", num(n.Width), num(n.Height)),
		fmt.Sprintf("margin    %s", edges(n.Margin)),
		fmt.Sprintf("border    %s", edges(n.Border)),
		fmt.Sprintf("padding   %s", edges(n.Padding)),
		fmt.Sprintf("children  %d", len(n.Children)),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}
