package model

// LineCap is the shape at the end of a stroked line or dash.
type LineCap int

const (
	LineCapFlat LineCap = iota
	LineCapSquare
	LineCapRound
	LineCapTriangle
)

// ParseLineCap parses a Stroke*LineCap attribute value.
func ParseLineCap(s string) (LineCap, bool) {
	switch s {
	case "Flat":
		return LineCapFlat, true
	case "Square":
		return LineCapSquare, true
	case "Round":
		return LineCapRound, true
	case "Triangle":
		return LineCapTriangle, true
	}
	return LineCapFlat, false
}

// LineJoin is the shape used where two stroked segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

// ParseLineJoin parses a StrokeLineJoin attribute value.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch s {
	case "Miter":
		return LineJoinMiter, true
	case "Bevel":
		return LineJoinBevel, true
	case "Round":
		return LineJoinRound, true
	}
	return LineJoinMiter, false
}

// EdgeMode controls anti-aliasing of a subtree.
type EdgeMode int

const (
	EdgeModeAliased EdgeMode = iota
)

// ParseEdgeMode parses a RenderOptions.EdgeMode attribute value.
func ParseEdgeMode(s string) (EdgeMode, bool) {
	if s == "Aliased" {
		return EdgeModeAliased, true
	}
	return EdgeModeAliased, false
}

// StyleSimulations are synthetic font styles applied to a text run.
type StyleSimulations int

const (
	SimulationNone StyleSimulations = iota
	SimulationItalic
	SimulationBold
	SimulationBoldItalic
)

// ParseStyleSimulations parses a StyleSimulations attribute value.
func ParseStyleSimulations(s string) (StyleSimulations, bool) {
	switch s {
	case "None":
		return SimulationNone, true
	case "ItalicSimulation":
		return SimulationItalic, true
	case "BoldSimulation":
		return SimulationBold, true
	case "BoldItalicSimulation":
		return SimulationBoldItalic, true
	}
	return SimulationNone, false
}

// FillRule decides which areas of a self-intersecting geometry are inside.
type FillRule int

const (
	FillRuleEvenOdd FillRule = iota
	FillRuleNonZero
)

// ParseFillRule parses a FillRule attribute value.
func ParseFillRule(s string) (FillRule, bool) {
	switch s {
	case "EvenOdd":
		return FillRuleEvenOdd, true
	case "NonZero":
		return FillRuleNonZero, true
	}
	return FillRuleEvenOdd, false
}

// Geometry is a path outline in abbreviated path syntax ("M 0,0 L 10,0 Z").
// Geometry given as PathGeometry/PathFigure elements is converted to the
// same syntax.
type Geometry struct {
	Data      string
	FillRule  FillRule
	Transform *Matrix
}
