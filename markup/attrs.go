package markup

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/tsawler/xpsdoc/model"
)

// parseSize parses a width, height or font size. Negative, NaN and
// unparsable values are 0.
func parseSize(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(f >= 0) {
		return 0
	}
	return f
}

// sizeAttr returns the size attribute key, or nil when it is absent.
func sizeAttr(e *etree.Element, key string) *float64 {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	f := parseSize(v)
	return &f
}

// floatAttr returns the attribute key as a float, or nil when it is absent
// or unparsable.
func floatAttr(e *etree.Element, key string) *float64 {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &f
}

// nonNegativeAttr is floatAttr that also rejects negative values.
func nonNegativeAttr(e *etree.Element, key string) *float64 {
	f := floatAttr(e, key)
	if f == nil || *f < 0 {
		return nil
	}
	return f
}

// floatOr returns the attribute key as a float, or dflt.
func floatOr(e *etree.Element, key string, dflt float64) float64 {
	if f := floatAttr(e, key); f != nil {
		return *f
	}
	return dflt
}

// opacityAttr returns the opacity attribute key clamped to [0, 1].
func opacityAttr(e *etree.Element, key string) *float64 {
	f := floatAttr(e, key)
	if f == nil {
		return nil
	}
	v := clamp01(*f)
	return &v
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// parseBool accepts the xs:boolean literals.
func parseBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

func boolAttr(e *etree.Element, key string) *bool {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	b, ok := parseBool(v)
	if !ok {
		return nil
	}
	return &b
}

// intAttr returns the attribute key as an integer within [lo, hi].
func intAttr(e *etree.Element, key string, lo, hi int) *int {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < lo || n > hi {
		return nil
	}
	return &n
}

// parseDashArray parses a whitespace separated list of non-negative numbers.
func parseDashArray(s string) ([]float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}

	res := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil, false
		}
		res[i] = v
	}
	return res, true
}

// parsePoints parses a list of "x,y" pairs separated by whitespace.
func parsePoints(s string) ([]model.Point, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 || len(fields)%2 != 0 {
		return nil, false
	}

	pts := make([]model.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, false
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, false
		}
		pts = append(pts, model.Point{X: x, Y: y})
	}
	return pts, true
}

func pointAttr(e *etree.Element, key string) (model.Point, bool) {
	v, ok := attr(e, key)
	if !ok {
		return model.Point{}, false
	}
	return model.ParsePoint(v)
}

func rectAttr(e *etree.Element, key string) *model.Rect {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	r, ok := model.ParseRect(v)
	if !ok {
		return nil
	}
	return &r
}

// staticResource extracts the key from a "{StaticResource key}" reference.
func staticResource(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", false
	}

	fields := strings.Fields(s[1 : len(s)-1])
	if len(fields) != 2 || fields[0] != "StaticResource" {
		return "", false
	}
	return fields[1], true
}

// formatFloat formats numbers for abbreviated path syntax.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
