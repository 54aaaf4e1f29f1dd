package render

import "github.com/tsawler/xpsdoc/model"

// Stats counts the nodes of the trees rendered through it. A single Stats
// can be passed to several pages to accumulate totals.
type Stats struct {
	Groups   int            `json:"groups" yaml:"groups" toml:"groups"`
	Paths    int            `json:"paths" yaml:"paths" toml:"paths"`
	TextRuns int            `json:"text_runs" yaml:"text_runs" toml:"text_runs"`
	MaxDepth int            `json:"max_depth" yaml:"max_depth" toml:"max_depth"`
	Brushes  map[string]int `json:"brushes,omitempty" yaml:"brushes,omitempty" toml:"brushes,omitempty"`

	depth int
}

// RenderGroup counts the group and its subtree.
func (s *Stats) RenderGroup(g *model.Group) error {
	s.Groups++
	s.brush(g.OpacityMask)

	s.depth++
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}
	defer func() { s.depth-- }()
	return model.RenderChildren(s, g.Children())
}

// RenderPath counts the path.
func (s *Stats) RenderPath(p *model.Path) error {
	s.Paths++
	s.brush(p.Fill)
	s.brush(p.Stroke)
	s.brush(p.OpacityMask)
	return nil
}

// RenderTextRun counts the text run.
func (s *Stats) RenderTextRun(t *model.TextRun) error {
	s.TextRuns++
	s.brush(t.Fill)
	s.brush(t.OpacityMask)
	return nil
}

// Nodes returns the total number of nodes counted.
func (s *Stats) Nodes() int {
	return s.Groups + s.Paths + s.TextRuns
}

func (s *Stats) brush(b model.Brush) {
	if b == nil {
		return
	}
	if s.Brushes == nil {
		s.Brushes = make(map[string]int)
	}
	s.Brushes[b.Kind().String()]++
}
