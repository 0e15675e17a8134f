package scene

import "strings"

// Connector tokens. All four are four cells wide.
const (
	BranchToken = "├── "
	LastToken   = "└── "
	PipeToken   = "│   "
	BlankToken  = "    "
)

// Glyphs are the markers printed in front of active and inactive objects.
type Glyphs struct {
	Active   string `yaml:"active"`
	Inactive string `yaml:"inactive"`
}

// DefaultGlyphs is the ✓/✗ marker pair.
var DefaultGlyphs = Glyphs{Active: "✓", Inactive: "✗"}

// Line is one rendered row of a hierarchy tree.
type Line struct {
	Prefix string
	Marker string
	Name   string
	Active bool
	Depth  int
}

// String returns the line exactly as it is printed.
func (l Line) String() string {
	return l.Prefix + l.Marker + " " + l.Name
}

// Renderer turns hierarchy trees into box-drawing lines.
type Renderer struct {
	glyphs Glyphs
}

// NewRenderer creates a Renderer. Empty glyphs fall back to DefaultGlyphs.
func NewRenderer(g Glyphs) *Renderer {
	if g.Active == "" {
		g.Active = DefaultGlyphs.Active
	}
	if g.Inactive == "" {
		g.Inactive = DefaultGlyphs.Inactive
	}
	return &Renderer{glyphs: g}
}

// Render returns the lines for root and all of its descendants in pre-order.
// The root line has no prefix.
func (r *Renderer) Render(root *Node) []Line {
	if root == nil {
		return nil
	}
	var lines []Line
	r.render(root, nil, &lines)
	return lines
}

// render emits n and recurses. lastStack holds, for every ancestor between
// the root and n (inclusive of n, exclusive of the root), whether that node
// was the last of its siblings.
func (r *Renderer) render(n *Node, lastStack []bool, lines *[]Line) {
	*lines = append(*lines, Line{
		Prefix: prefix(lastStack),
		Marker: r.marker(n.Active),
		Name:   n.Name,
		Active: n.Active,
		Depth:  len(lastStack),
	})

	for i, child := range n.Children {
		isLast := i == len(n.Children)-1
		r.render(child, append(lastStack[:len(lastStack):len(lastStack)], isLast), lines)
	}
}

func (r *Renderer) marker(active bool) string {
	if active {
		return r.glyphs.Active
	}
	return r.glyphs.Inactive
}

func prefix(lastStack []bool) string {
	if len(lastStack) == 0 {
		return ""
	}
	var b strings.Builder
	for _, last := range lastStack[:len(lastStack)-1] {
		if last {
			b.WriteString(BlankToken)
		} else {
			b.WriteString(PipeToken)
		}
	}
	if lastStack[len(lastStack)-1] {
		b.WriteString(LastToken)
	} else {
		b.WriteString(BranchToken)
	}
	return b.String()
}

// RenderObject renders the subtree of the given object in h. It returns nil
// if the object does not exist.
func (r *Renderer) RenderObject(h *Hierarchy, objectID string) []Line {
	return r.Render(h.Tree(objectID))
}

// RenderHierarchy renders every root of h, one block of lines per root.
func (r *Renderer) RenderHierarchy(h *Hierarchy) [][]Line {
	forest := h.Forest()
	blocks := make([][]Line, 0, len(forest))
	for _, root := range forest {
		blocks = append(blocks, r.Render(root))
	}
	return blocks
}
