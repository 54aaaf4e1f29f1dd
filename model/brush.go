package model

// BrushKind identifies the concrete type of a Brush.
type BrushKind int

const (
	BrushImage BrushKind = iota
	BrushLinearGradient
	BrushRadialGradient
	BrushSolidColor
	BrushVisual
)

func (k BrushKind) String() string {
	switch k {
	case BrushImage:
		return "ImageBrush"
	case BrushLinearGradient:
		return "LinearGradientBrush"
	case BrushRadialGradient:
		return "RadialGradientBrush"
	case BrushSolidColor:
		return "SolidColorBrush"
	case BrushVisual:
		return "VisualBrush"
	default:
		return "Unknown"
	}
}

// Brush is a paint source used for fills, strokes and opacity masks.
// The concrete types are *SolidColorBrush, *LinearGradientBrush,
// *RadialGradientBrush, *ImageBrush and *VisualBrush.
type Brush interface {
	Kind() BrushKind
}

// SpreadMethod controls how a gradient paints outside its vector.
type SpreadMethod int

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// ParseSpreadMethod parses a SpreadMethod attribute value.
func ParseSpreadMethod(s string) (SpreadMethod, bool) {
	switch s {
	case "Pad":
		return SpreadPad, true
	case "Reflect":
		return SpreadReflect, true
	case "Repeat":
		return SpreadRepeat, true
	}
	return SpreadPad, false
}

// TileMode controls how image and visual brushes repeat.
type TileMode int

const (
	TileNone TileMode = iota
	TileTile
	TileFlipX
	TileFlipY
	TileFlipXY
)

// ParseTileMode parses a TileMode attribute value.
func ParseTileMode(s string) (TileMode, bool) {
	switch s {
	case "None":
		return TileNone, true
	case "Tile":
		return TileTile, true
	case "FlipX":
		return TileFlipX, true
	case "FlipY":
		return TileFlipY, true
	case "FlipXY":
		return TileFlipXY, true
	}
	return TileNone, false
}

// GradientStop is one color stop of a gradient brush.
type GradientStop struct {
	Color  Color
	Offset float64
}

// SolidColorBrush paints with a single color.
type SolidColorBrush struct {
	Opacity float64
	Color   Color
}

func (*SolidColorBrush) Kind() BrushKind { return BrushSolidColor }

// LinearGradientBrush paints a gradient along the StartPoint-EndPoint vector.
type LinearGradientBrush struct {
	Opacity                float64
	Transform              *Matrix
	MappingMode            string
	SpreadMethod           SpreadMethod
	ColorInterpolationMode string
	StartPoint             Point
	EndPoint               Point
	Stops                  []GradientStop
}

func (*LinearGradientBrush) Kind() BrushKind { return BrushLinearGradient }

// RadialGradientBrush paints an elliptical gradient.
type RadialGradientBrush struct {
	Opacity                float64
	Transform              *Matrix
	MappingMode            string
	SpreadMethod           SpreadMethod
	ColorInterpolationMode string
	Center                 Point
	GradientOrigin         Point
	RadiusX                float64
	RadiusY                float64
	Stops                  []GradientStop
}

func (*RadialGradientBrush) Kind() BrushKind { return BrushRadialGradient }

// Tile holds the tiling parameters shared by image and visual brushes.
type Tile struct {
	Viewbox       Rect
	Viewport      Rect
	ViewboxUnits  string
	ViewportUnits string
	TileMode      TileMode
}

// ImageBrush paints with an image part. ImageSource is the opaque URI of
// the image; decoding it is up to the renderer.
type ImageBrush struct {
	Opacity     float64
	Transform   *Matrix
	ImageSource string
	Tile
}

func (*ImageBrush) Kind() BrushKind { return BrushImage }

// VisualBrush paints with nested page content. Visual is nil when the
// visual could not be resolved.
type VisualBrush struct {
	Opacity   float64
	Transform *Matrix
	Visual    *Root
	Tile
}

func (*VisualBrush) Kind() BrushKind { return BrushVisual }
