package model

// Child is a node that can appear inside a Root or Group: *Group, *Path or
// *TextRun. The set is closed.
type Child interface {
	child()
}

// Branch is a node that accepts children: *Root and *Group. Path and
// TextRun are leaves and do not implement it.
type Branch interface {
	Append(c Child)
	Children() []Child
}

// Root is the entry point of a page's render tree. It is never nested.
type Root struct {
	children []Child
}

// NewRoot returns an empty render tree.
func NewRoot() *Root {
	return &Root{}
}

// Append adds a top-level node.
func (r *Root) Append(c Child) {
	r.children = append(r.children, c)
}

// Children returns the top-level nodes in document order.
func (r *Root) Children() []Child {
	return r.children
}

// Len returns the number of top-level nodes.
func (r *Root) Len() int {
	return len(r.children)
}

// Group (a Canvas in markup) groups nodes that share a transform, clip and
// opacity.
type Group struct {
	Name string
	Lang string

	Transform   *Matrix
	Clip        *Geometry
	Opacity     *float64
	OpacityMask Brush
	EdgeMode    *EdgeMode
	NavigateURI string

	children []Child
}

// Append adds a child node.
func (g *Group) Append(c Child) {
	g.children = append(g.children, c)
}

// Children returns the group's nodes in document order.
func (g *Group) Children() []Child {
	return g.children
}

// Path is a filled and/or stroked geometry.
type Path struct {
	Name string
	Lang string

	Fill               Brush
	Stroke             Brush
	Transform          *Matrix
	Clip               *Geometry
	Opacity            *float64
	OpacityMask        Brush
	StrokeDashArray    []float64
	StrokeDashOffset   *float64
	StrokeDashCap      *LineCap
	StrokeStartLineCap *LineCap
	StrokeEndLineCap   *LineCap
	StrokeLineJoin     *LineJoin
	StrokeMiterLimit   *float64
	StrokeThickness    *float64
	NavigateURI        string

	Data *Geometry
}

// TextRun (Glyphs in markup) is a run of glyphs from one font. FontURI is an
// opaque reference to a font part.
type TextRun struct {
	Name string
	Lang string

	Origin   Point
	FontURI  string
	FontSize float64

	Fill             Brush
	Transform        *Matrix
	Clip             *Geometry
	Opacity          *float64
	OpacityMask      Brush
	IsSideways       *bool
	Indices          string
	UnicodeString    string
	StyleSimulations *StyleSimulations
	BidiLevel        *int
	CaretStops       string
	DeviceFontName   string
	EdgeMode         *EdgeMode
	NavigateURI      string
}

func (*Group) child()   {}
func (*Path) child()    {}
func (*TextRun) child() {}
