package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/xpsdoc/model"
)

// Dumper writes one indented line per node. Text runs placed under a
// transform also get their origin in page coordinates.
type Dumper struct {
	w      io.Writer
	indent string
	depth  int
	ctm    model.Matrix
}

// NewDumper creates a Dumper writing to w with two-space indentation.
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w, indent: "  ", ctm: model.Identity()}
}

// RenderGroup writes the group and its subtree.
func (d *Dumper) RenderGroup(g *model.Group) error {
	var attrs []string
	attrs = appendString(attrs, "name", g.Name)
	attrs = appendMatrix(attrs, "transform", g.Transform)
	attrs = appendGeometry(attrs, "clip", g.Clip)
	attrs = appendFloat(attrs, "opacity", g.Opacity)
	attrs = appendBrush(attrs, "mask", g.OpacityMask)
	attrs = appendString(attrs, "link", g.NavigateURI)

	if err := d.line("Group", attrs); err != nil {
		return err
	}

	saved := d.ctm
	if g.Transform != nil {
		d.ctm = g.Transform.Multiply(d.ctm)
	}
	d.depth++
	defer func() {
		d.depth--
		d.ctm = saved
	}()
	return model.RenderChildren(d, g.Children())
}

// RenderPath writes the path.
func (d *Dumper) RenderPath(p *model.Path) error {
	var attrs []string
	attrs = appendString(attrs, "name", p.Name)
	attrs = appendGeometry(attrs, "data", p.Data)
	attrs = appendBrush(attrs, "fill", p.Fill)
	attrs = appendBrush(attrs, "stroke", p.Stroke)
	attrs = appendFloat(attrs, "thickness", p.StrokeThickness)
	attrs = appendMatrix(attrs, "transform", p.Transform)
	attrs = appendGeometry(attrs, "clip", p.Clip)
	attrs = appendFloat(attrs, "opacity", p.Opacity)
	attrs = appendString(attrs, "link", p.NavigateURI)

	return d.line("Path", attrs)
}

// RenderTextRun writes the text run.
func (d *Dumper) RenderTextRun(t *model.TextRun) error {
	attrs := []string{fmt.Sprintf("origin=%g,%g", t.Origin.X, t.Origin.Y)}

	m := d.ctm
	if t.Transform != nil {
		m = t.Transform.Multiply(m)
	}
	if m != model.Identity() {
		p := m.Transform(t.Origin)
		attrs = append(attrs, fmt.Sprintf("page=%g,%g", p.X, p.Y))
	}
	attrs = append(attrs, fmt.Sprintf("size=%g", t.FontSize))
	attrs = appendString(attrs, "font", t.FontURI)
	if t.UnicodeString != "" {
		attrs = append(attrs, fmt.Sprintf("text=%q", t.UnicodeString))
	}
	attrs = appendBrush(attrs, "fill", t.Fill)
	attrs = appendMatrix(attrs, "transform", t.Transform)
	attrs = appendString(attrs, "link", t.NavigateURI)

	return d.line("TextRun", attrs)
}

func (d *Dumper) line(kind string, attrs []string) error {
	s := strings.Repeat(d.indent, d.depth) + kind
	if len(attrs) > 0 {
		s += " " + strings.Join(attrs, " ")
	}
	_, err := fmt.Fprintln(d.w, s)
	return err
}

func appendString(attrs []string, key, v string) []string {
	if v == "" {
		return attrs
	}
	return append(attrs, key+"="+v)
}

func appendFloat(attrs []string, key string, v *float64) []string {
	if v == nil {
		return attrs
	}
	return append(attrs, fmt.Sprintf("%s=%g", key, *v))
}

func appendMatrix(attrs []string, key string, m *model.Matrix) []string {
	if m == nil {
		return attrs
	}
	return append(attrs, fmt.Sprintf("%s=%g,%g,%g,%g,%g,%g", key, m[0], m[1], m[2], m[3], m[4], m[5]))
}

func appendGeometry(attrs []string, key string, g *model.Geometry) []string {
	if g == nil {
		return attrs
	}
	return append(attrs, fmt.Sprintf("%s=%q", key, g.Data))
}

func appendBrush(attrs []string, key string, b model.Brush) []string {
	if b == nil {
		return attrs
	}
	return append(attrs, key+"="+describeBrush(b))
}

func describeBrush(b model.Brush) string {
	switch b := b.(type) {
	case *model.SolidColorBrush:
		return b.Color.Raw
	case *model.LinearGradientBrush:
		return fmt.Sprintf("%s(%d stops)", b.Kind(), len(b.Stops))
	case *model.RadialGradientBrush:
		return fmt.Sprintf("%s(%d stops)", b.Kind(), len(b.Stops))
	case *model.ImageBrush:
		return fmt.Sprintf("%s(%s)", b.Kind(), b.ImageSource)
	}
	return b.Kind().String()
}
