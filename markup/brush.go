package markup

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/tsawler/xpsdoc/model"
)

var brushTags = []string{
	"ImageBrush",
	"LinearGradientBrush",
	"RadialGradientBrush",
	"SolidColorBrush",
	"VisualBrush",
}

func isBrushElement(e *etree.Element) bool {
	for _, tag := range brushTags {
		if isXPS(e, tag) {
			return true
		}
	}
	return false
}

// brush decodes a Fill, Stroke or OpacityMask property of e. The attribute
// form holds a color literal or a resource reference; unusable values leave
// the property unset. The property element form must contain a brush
// element, otherwise ErrMissingBrush is returned.
func (pd *pageDecoder) brush(e *etree.Element, key string, sc *scope) (model.Brush, error) {
	if v, ok := attr(e, key); ok {
		return pd.brushAttr(key, v, sc), nil
	}

	prop := propertyElement(e, key)
	if prop == nil {
		return nil, nil
	}

	for _, c := range prop.ChildElements() {
		if isBrushElement(c) {
			return pd.brushElement(c, sc)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingBrush, prop.Tag)
}

func (pd *pageDecoder) brushAttr(key, v string, sc *scope) model.Brush {
	if ref, ok := staticResource(v); ok {
		res, found := sc.lookup(ref)
		if !found || res.brush == nil {
			pd.log.Trace().Str("attr", key).Str("key", ref).Msg("Unresolved brush resource")
			return nil
		}
		return res.brush
	}

	c, ok := model.ParseColor(v)
	if !ok {
		pd.log.Trace().Str("attr", key).Str("value", v).Msg("Ignoring malformed color")
		return nil
	}
	return &model.SolidColorBrush{Opacity: 1, Color: c}
}

// brushElement decodes one of the five brush elements.
func (pd *pageDecoder) brushElement(e *etree.Element, sc *scope) (model.Brush, error) {
	opacity := clamp01(floatOr(e, "Opacity", 1))

	switch e.Tag {
	case "SolidColorBrush":
		c, _ := model.ParseColor(attrString(e, "Color"))
		return &model.SolidColorBrush{Opacity: opacity, Color: c}, nil

	case "LinearGradientBrush":
		b := &model.LinearGradientBrush{
			Opacity:   opacity,
			Transform: pd.transform(e, "Transform", sc),
			Stops:     pd.gradientStops(e),
		}
		b.MappingMode, b.SpreadMethod, b.ColorInterpolationMode = gradientModes(e)
		b.StartPoint, _ = pointAttr(e, "StartPoint")
		b.EndPoint, _ = pointAttr(e, "EndPoint")
		return b, nil

	case "RadialGradientBrush":
		b := &model.RadialGradientBrush{
			Opacity:   opacity,
			Transform: pd.transform(e, "Transform", sc),
			RadiusX:   floatOr(e, "RadiusX", 0),
			RadiusY:   floatOr(e, "RadiusY", 0),
			Stops:     pd.gradientStops(e),
		}
		b.MappingMode, b.SpreadMethod, b.ColorInterpolationMode = gradientModes(e)
		b.Center, _ = pointAttr(e, "Center")
		b.GradientOrigin, _ = pointAttr(e, "GradientOrigin")
		return b, nil

	case "ImageBrush":
		return &model.ImageBrush{
			Opacity:     opacity,
			Transform:   pd.transform(e, "Transform", sc),
			ImageSource: attrString(e, "ImageSource"),
			Tile:        tileAttrs(e),
		}, nil

	case "VisualBrush":
		visual, err := pd.visual(e, sc)
		if err != nil {
			return nil, err
		}
		return &model.VisualBrush{
			Opacity:   opacity,
			Transform: pd.transform(e, "Transform", sc),
			Visual:    visual,
			Tile:      tileAttrs(e),
		}, nil
	}
	return nil, nil
}

// visual resolves the content of a VisualBrush: the Visual attribute
// (a resource reference), else the VisualBrush.Visual property element.
func (pd *pageDecoder) visual(e *etree.Element, sc *scope) (*model.Root, error) {
	if v, ok := attr(e, "Visual"); ok {
		ref, ok := staticResource(v)
		if !ok {
			return nil, nil
		}
		res, found := sc.lookup(ref)
		if !found || res.visual == nil {
			pd.log.Trace().Str("key", ref).Msg("Unresolved visual resource")
			return nil, nil
		}
		node, err := pd.instantiate(res)
		if err != nil || node == nil {
			return nil, err
		}
		root := model.NewRoot()
		root.Append(node)
		return root, nil
	}

	prop := propertyElement(e, "Visual")
	if prop == nil {
		return nil, nil
	}

	root := model.NewRoot()
	if err := pd.buildTree(prop, root, sc); err != nil {
		return nil, err
	}
	return root, nil
}

func gradientModes(e *etree.Element) (mapping string, spread model.SpreadMethod, interpolation string) {
	mapping = attrString(e, "MappingMode")
	if mapping == "" {
		mapping = "Absolute"
	}
	spread, _ = model.ParseSpreadMethod(attrString(e, "SpreadMethod"))
	interpolation = attrString(e, "ColorInterpolationMode")
	if interpolation == "" {
		interpolation = "SRgbLinearInterpolation"
	}
	return mapping, spread, interpolation
}

// gradientStops reads the <Brush>.GradientStops property element. Stops
// with an unusable color are dropped.
func (pd *pageDecoder) gradientStops(e *etree.Element) []model.GradientStop {
	prop := propertyElement(e, "GradientStops")
	if prop == nil {
		return nil
	}

	var stops []model.GradientStop
	for _, s := range childrenXPS(prop, "GradientStop") {
		c, ok := model.ParseColor(attrString(s, "Color"))
		if !ok {
			pd.log.Trace().Str("value", attrString(s, "Color")).Msg("Dropping gradient stop with malformed color")
			continue
		}
		stops = append(stops, model.GradientStop{
			Color:  c,
			Offset: floatOr(s, "Offset", 0),
		})
	}
	return stops
}

func tileAttrs(e *etree.Element) model.Tile {
	t := model.Tile{
		ViewboxUnits:  attrString(e, "ViewboxUnits"),
		ViewportUnits: attrString(e, "ViewportUnits"),
	}
	if r := rectAttr(e, "Viewbox"); r != nil {
		t.Viewbox = *r
	}
	if r := rectAttr(e, "Viewport"); r != nil {
		t.Viewport = *r
	}
	if t.ViewboxUnits == "" {
		t.ViewboxUnits = "Absolute"
	}
	if t.ViewportUnits == "" {
		t.ViewportUnits = "Absolute"
	}
	t.TileMode, _ = model.ParseTileMode(attrString(e, "TileMode"))
	return t
}
