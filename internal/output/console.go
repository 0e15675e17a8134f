package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/CooperTran2196/scenetree/internal/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ruleWidth is the width of the plain-text header rule
const ruleWidth = 80

// Console writes the human-readable scene report. When styled is false the
// output is plain text and tree lines are written exactly as rendered.
type Console struct {
	w      io.Writer
	styled bool

	// titleStyle for the scene name
	titleStyle lipgloss.Style
	// dimStyle for labels and tree connectors
	dimStyle lipgloss.Style
	// activeStyle for the active marker
	activeStyle lipgloss.Style
	// inactiveStyle for the inactive marker and name
	inactiveStyle lipgloss.Style
	// headerBoxStyle for the header
	headerBoxStyle lipgloss.Style
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, styled bool) *Console {
	r := lipgloss.NewRenderer(w)
	if styled {
		// Colour was requested explicitly or w is a terminal.
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Console{
		w:      w,
		styled: styled,
		titleStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		activeStyle: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		inactiveStyle: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		headerBoxStyle: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1),
	}
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.styled || s == "" {
		return s
	}
	return style.Render(s)
}

// FormatHeader renders the scene banner
func (c *Console) FormatHeader(sceneName string) {
	if !c.styled {
		rule := strings.Repeat("=", ruleWidth)
		fmt.Fprintf(c.w, "\n%s\nScene Hierarchy: %s\n%s\n\n", rule, sceneName, rule)
		return
	}
	content := fmt.Sprintf("%s %s", c.dimStyle.Render("Scene Hierarchy:"), c.titleStyle.Render(sceneName))
	fmt.Fprintln(c.w, c.headerBoxStyle.Render(content))
	fmt.Fprintln(c.w)
}

// FormatSummary renders the object counts
func (c *Console) FormatSummary(st scene.Stats) {
	fmt.Fprintf(c.w, "%s %d\n", c.paint(c.dimStyle, "Total GameObjects:"), st.Objects)
	fmt.Fprintf(c.w, "%s %d\n\n", c.paint(c.dimStyle, "Root Objects:"), st.Roots)
}

// FormatLegend renders the marker legend
func (c *Console) FormatLegend(g scene.Glyphs) {
	fmt.Fprintf(c.w, "Legend: %s = Active, %s = Inactive\n\n",
		c.paint(c.activeStyle, g.Active),
		c.paint(c.inactiveStyle, g.Inactive))
}

// FormatTree writes each root block followed by a blank line
func (c *Console) FormatTree(blocks [][]scene.Line) {
	for _, block := range blocks {
		for _, line := range block {
			fmt.Fprintln(c.w, c.formatLine(line))
		}
		fmt.Fprintln(c.w)
	}
}

func (c *Console) formatLine(l scene.Line) string {
	if !c.styled {
		return l.String()
	}
	marker := c.activeStyle.Render(l.Marker)
	name := l.Name
	if !l.Active {
		marker = c.inactiveStyle.Render(l.Marker)
		name = c.dimStyle.Render(l.Name)
	}
	return c.paint(c.dimStyle, l.Prefix) + marker + " " + name
}

// FormatSceneList renders the scenes found in dir
func (c *Console) FormatSceneList(dir string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(c.w, "No scenes found in %s\n", dir)
		return
	}
	fmt.Fprintln(c.w, c.paint(c.titleStyle, "Available scenes:"))
	for _, name := range names {
		fmt.Fprintf(c.w, "  - %s\n", name)
	}
}

// FormatWatching renders the watch-mode notice
func (c *Console) FormatWatching(path string) {
	fmt.Fprintln(c.w, c.paint(c.dimStyle, fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path)))
}
