package markup

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/tsawler/xpsdoc/model"
)

// transform decodes a RenderTransform or Transform property: the attribute
// key (a matrix literal or a resource reference), else the property element
// of the same name holding a MatrixTransform.
func (pd *pageDecoder) transform(e *etree.Element, key string, sc *scope) *model.Matrix {
	if v, ok := attr(e, key); ok {
		if ref, ok := staticResource(v); ok {
			res, found := sc.lookup(ref)
			if !found || res.matrix == nil {
				pd.log.Trace().Str("key", ref).Msg("Unresolved transform resource")
				return nil
			}
			return res.matrix
		}

		m, ok := model.ParseMatrix(v)
		if !ok {
			pd.log.Trace().Str("attr", key).Str("value", v).Msg("Ignoring malformed transform")
			return nil
		}
		return &m
	}

	prop := propertyElement(e, key)
	if prop == nil {
		return nil
	}
	mt := firstXPS(prop, "MatrixTransform")
	if mt == nil {
		return nil
	}
	m, _ := pd.matrixTransform(mt, sc)
	return m
}

func (pd *pageDecoder) matrixTransform(e *etree.Element, sc *scope) (*model.Matrix, bool) {
	v, ok := attr(e, "Matrix")
	if !ok {
		return nil, false
	}
	if ref, ok := staticResource(v); ok {
		res, found := sc.lookup(ref)
		return res.matrix, found && res.matrix != nil
	}
	m, ok := model.ParseMatrix(v)
	if !ok {
		return nil, false
	}
	return &m, true
}

// geometry decodes a Data or Clip property: the attribute key (abbreviated
// syntax or a resource reference), else a PathGeometry inside the property
// element.
func (pd *pageDecoder) geometry(e *etree.Element, key string, sc *scope) *model.Geometry {
	if v, ok := attr(e, key); ok {
		if ref, ok := staticResource(v); ok {
			res, found := sc.lookup(ref)
			if !found || res.geometry == nil {
				pd.log.Trace().Str("key", ref).Msg("Unresolved geometry resource")
				return nil
			}
			return res.geometry
		}

		data := strings.TrimSpace(v)
		return &model.Geometry{Data: data, FillRule: fillRuleOf(data)}
	}

	prop := propertyElement(e, key)
	if prop == nil {
		return nil
	}
	pg := firstXPS(prop, "PathGeometry")
	if pg == nil {
		return nil
	}
	return pd.pathGeometry(pg, sc)
}

// pathGeometry converts a PathGeometry element to abbreviated syntax. The
// Figures attribute wins over PathFigure children.
func (pd *pageDecoder) pathGeometry(e *etree.Element, sc *scope) *model.Geometry {
	g := &model.Geometry{
		Transform: pd.transform(e, "Transform", sc),
	}

	if figures, ok := attr(e, "Figures"); ok {
		g.Data = strings.TrimSpace(figures)
		g.FillRule = fillRuleOf(g.Data)
	} else {
		var parts []string
		for _, f := range childrenXPS(e, "PathFigure") {
			if s := pd.pathFigure(f); s != "" {
				parts = append(parts, s)
			}
		}
		g.Data = strings.Join(parts, " ")
	}

	if v, ok := attr(e, "FillRule"); ok {
		if fr, ok := model.ParseFillRule(v); ok {
			g.FillRule = fr
		}
	}
	return g
}

// pathFigure serializes one PathFigure. Abbreviated syntax has no notion of
// unstroked segments, so IsStroked is not carried over.
func (pd *pageDecoder) pathFigure(e *etree.Element) string {
	start, ok := pointAttr(e, "StartPoint")
	if !ok {
		pd.log.Trace().Msg("Skipping path figure without start point")
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, start)

	for _, seg := range e.ChildElements() {
		switch {
		case isXPS(seg, "PolyLineSegment"):
			pd.polySegment(&b, seg, "L", 1)
		case isXPS(seg, "PolyBezierSegment"):
			pd.polySegment(&b, seg, "C", 3)
		case isXPS(seg, "PolyQuadraticBezierSegment"):
			pd.polySegment(&b, seg, "Q", 2)
		case isXPS(seg, "ArcSegment"):
			pd.arcSegment(&b, seg)
		}
	}

	if closed, ok := parseBool(attrString(e, "IsClosed")); ok && closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// polySegment writes a segment whose Points attribute holds a multiple of
// group points.
func (pd *pageDecoder) polySegment(b *strings.Builder, e *etree.Element, cmd string, group int) {
	pts, ok := parsePoints(attrString(e, "Points"))
	if !ok || len(pts)%group != 0 {
		pd.log.Trace().Str("segment", e.Tag).Msg("Skipping segment with malformed points")
		return
	}

	b.WriteString(" " + cmd)
	for _, p := range pts {
		b.WriteByte(' ')
		writePoint(b, p)
	}
}

func (pd *pageDecoder) arcSegment(b *strings.Builder, e *etree.Element) {
	end, ok := pointAttr(e, "Point")
	if !ok {
		pd.log.Trace().Msg("Skipping arc segment without end point")
		return
	}
	size, ok := pointAttr(e, "Size")
	if !ok {
		pd.log.Trace().Msg("Skipping arc segment without size")
		return
	}

	large := "0"
	if v, _ := parseBool(attrString(e, "IsLargeArc")); v {
		large = "1"
	}
	sweep := "0"
	if attrString(e, "SweepDirection") == "Clockwise" {
		sweep = "1"
	}

	b.WriteString(" A ")
	writePoint(b, size)
	b.WriteString(" " + formatFloat(floatOr(e, "RotationAngle", 0)) + " " + large + " " + sweep + " ")
	writePoint(b, end)
}

func writePoint(b *strings.Builder, p model.Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(p.Y))
}

// fillRuleOf reads the optional fill rule prefix of abbreviated syntax
// ("F 0" even-odd, "F 1" non-zero).
func fillRuleOf(data string) model.FillRule {
	if !strings.HasPrefix(data, "F") {
		return model.FillRuleEvenOdd
	}
	if strings.HasPrefix(strings.TrimSpace(data[1:]), "1") {
		return model.FillRuleNonZero
	}
	return model.FillRuleEvenOdd
}
