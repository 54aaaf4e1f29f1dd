package markup

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/tsawler/xpsdoc/model"
)

// FixedPage is a decoded FixedPage part. Width and Height are nil when the
// page does not declare them, so that the caller can fall back to the
// PageContent values. Name is nil when absent.
type FixedPage struct {
	Name       *string
	Lang       string
	Width      *float64
	Height     *float64
	ContentBox *model.Rect
	BleedBox   *model.Rect
	Root       *model.Root
}

// pageDecoder carries the state of a single page decode.
type pageDecoder struct {
	*Decoder
	part string
}

// DecodePage decodes a FixedPage part into its render tree. part is the
// name of the page in the package and is the base for remote resource
// references.
func (d *Decoder) DecodePage(part, text string) (*FixedPage, error) {
	root, err := d.root(text)
	if err != nil {
		return nil, err
	}

	page := &FixedPage{Root: model.NewRoot()}
	if !isXPS(root, "FixedPage") {
		d.log.Debug().Str("part", part).Str("root", root.FullTag()).Msg("Not a fixed page")
		return page, nil
	}

	page.Name = optionalAttr(root, "Name")
	page.Lang = lang(root)
	page.Width = sizeAttr(root, "Width")
	page.Height = sizeAttr(root, "Height")
	page.ContentBox = rectAttr(root, "ContentBox")
	page.BleedBox = rectAttr(root, "BleedBox")

	pd := &pageDecoder{Decoder: d, part: part}

	sc, err := pd.resources(root, nil)
	if err != nil {
		return nil, err
	}
	if err := pd.buildTree(root, page.Root, sc); err != nil {
		return nil, err
	}
	return page, nil
}

// buildTree appends the Canvas, Path and Glyphs children of e to parent,
// depth first.
func (pd *pageDecoder) buildTree(e *etree.Element, parent model.Branch, sc *scope) error {
	for _, c := range e.ChildElements() {
		if isPropertyElement(c) {
			continue
		}

		node, err := pd.node(c, sc)
		if err != nil {
			return err
		}
		if node == nil {
			pd.log.Debug().Str("part", pd.part).Str("element", c.FullTag()).Msg("Skipping unknown element")
			continue
		}
		parent.Append(node)
	}
	return nil
}

// node decodes a render tree element. It returns nil for anything else.
func (pd *pageDecoder) node(e *etree.Element, sc *scope) (model.Child, error) {
	switch {
	case isXPS(e, "Canvas"):
		g, err := pd.canvas(e, sc)
		if err != nil {
			return nil, err
		}
		return g, nil
	case isXPS(e, "Path"):
		p, err := pd.path(e, sc)
		if err != nil {
			return nil, err
		}
		return p, nil
	case isXPS(e, "Glyphs"):
		t, err := pd.glyphs(e, sc)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, nil
}

func (pd *pageDecoder) canvas(e *etree.Element, outer *scope) (*model.Group, error) {
	sc, err := pd.resources(e, outer)
	if err != nil {
		return nil, err
	}

	g := &model.Group{
		Name:        attrString(e, "Name"),
		Lang:        lang(e),
		Transform:   pd.transform(e, "RenderTransform", sc),
		Clip:        pd.geometry(e, "Clip", sc),
		Opacity:     opacityAttr(e, "Opacity"),
		EdgeMode:    edgeModeAttr(e),
		NavigateURI: attrString(e, "FixedPage.NavigateUri"),
	}

	if g.OpacityMask, err = pd.brush(e, "OpacityMask", sc); err != nil {
		return nil, err
	}

	if err := pd.buildTree(e, g, sc); err != nil {
		return nil, err
	}
	return g, nil
}

func (pd *pageDecoder) path(e *etree.Element, sc *scope) (*model.Path, error) {
	p := &model.Path{
		Name:               attrString(e, "Name"),
		Lang:               lang(e),
		Transform:          pd.transform(e, "RenderTransform", sc),
		Clip:               pd.geometry(e, "Clip", sc),
		Opacity:            opacityAttr(e, "Opacity"),
		StrokeDashOffset:   floatAttr(e, "StrokeDashOffset"),
		StrokeDashCap:      lineCapAttr(e, "StrokeDashCap"),
		StrokeStartLineCap: lineCapAttr(e, "StrokeStartLineCap"),
		StrokeEndLineCap:   lineCapAttr(e, "StrokeEndLineCap"),
		StrokeLineJoin:     lineJoinAttr(e, "StrokeLineJoin"),
		StrokeMiterLimit:   nonNegativeAttr(e, "StrokeMiterLimit"),
		StrokeThickness:    nonNegativeAttr(e, "StrokeThickness"),
		NavigateURI:        attrString(e, "FixedPage.NavigateUri"),
		Data:               pd.geometry(e, "Data", sc),
	}

	if v, ok := attr(e, "StrokeDashArray"); ok {
		p.StrokeDashArray, _ = parseDashArray(v)
	}

	var err error
	if p.Fill, err = pd.brush(e, "Fill", sc); err != nil {
		return nil, err
	}
	if p.Stroke, err = pd.brush(e, "Stroke", sc); err != nil {
		return nil, err
	}
	if p.OpacityMask, err = pd.brush(e, "OpacityMask", sc); err != nil {
		return nil, err
	}
	return p, nil
}

func (pd *pageDecoder) glyphs(e *etree.Element, sc *scope) (*model.TextRun, error) {
	t := &model.TextRun{
		Name: attrString(e, "Name"),
		Lang: lang(e),
		Origin: model.Point{
			X: floatOr(e, "OriginX", 0),
			Y: floatOr(e, "OriginY", 0),
		},
		FontURI:          attrString(e, "FontUri"),
		FontSize:         parseSize(attrString(e, "FontRenderingEmSize")),
		Transform:        pd.transform(e, "RenderTransform", sc),
		Clip:             pd.geometry(e, "Clip", sc),
		Opacity:          opacityAttr(e, "Opacity"),
		IsSideways:       boolAttr(e, "IsSideways"),
		Indices:          attrString(e, "Indices"),
		UnicodeString:    unescapeUnicodeString(attrString(e, "UnicodeString")),
		StyleSimulations: styleSimulationsAttr(e),
		BidiLevel:        intAttr(e, "BidiLevel", 0, 61),
		CaretStops:       attrString(e, "CaretStops"),
		DeviceFontName:   attrString(e, "DeviceFontName"),
		EdgeMode:         edgeModeAttr(e),
		NavigateURI:      attrString(e, "FixedPage.NavigateUri"),
	}

	var err error
	if t.Fill, err = pd.brush(e, "Fill", sc); err != nil {
		return nil, err
	}
	if t.OpacityMask, err = pd.brush(e, "OpacityMask", sc); err != nil {
		return nil, err
	}
	return t, nil
}

// unescapeUnicodeString removes the "{}" escape that lets a UnicodeString
// start with an opening brace.
func unescapeUnicodeString(s string) string {
	return strings.TrimPrefix(s, "{}")
}

func lineCapAttr(e *etree.Element, key string) *model.LineCap {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	lc, ok := model.ParseLineCap(v)
	if !ok {
		return nil
	}
	return &lc
}

func lineJoinAttr(e *etree.Element, key string) *model.LineJoin {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	lj, ok := model.ParseLineJoin(v)
	if !ok {
		return nil
	}
	return &lj
}

func edgeModeAttr(e *etree.Element) *model.EdgeMode {
	v, ok := attr(e, "RenderOptions.EdgeMode")
	if !ok {
		return nil
	}
	em, ok := model.ParseEdgeMode(v)
	if !ok {
		return nil
	}
	return &em
}

func styleSimulationsAttr(e *etree.Element) *model.StyleSimulations {
	v, ok := attr(e, "StyleSimulations")
	if !ok {
		return nil
	}
	s, ok := model.ParseStyleSimulations(v)
	if !ok {
		return nil
	}
	return &s
}
