package model

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// Point represents a 2D point in page units (1/96 inch).
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle. The origin is the top-left
// corner of the page and Y grows downwards.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Matrix represents a 2D affine transformation matrix laid out as
// (xx, yx, xy, yy, x0, y0):
//
//	x' = xx*x + xy*y + x0
//	y' = yx*x + yy*y + y0
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m followed by other. A node's transform composed with
// the transform of its parent is node.Multiply(parent).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Aff3 converts the matrix to the row-major layout used by
// golang.org/x/image (x/image/vector, x/image/draw).
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}

// ParseMatrix parses a transform literal of exactly six comma-separated
// numbers "xx,yx,xy,yy,x0,y0".
func ParseMatrix(s string) (Matrix, bool) {
	var m Matrix
	if !parseFloatList(s, m[:]) {
		return Matrix{}, false
	}
	return m, true
}

// ParsePoint parses a point literal "x,y".
func ParsePoint(s string) (Point, bool) {
	var v [2]float64
	if !parseFloatList(s, v[:]) {
		return Point{}, false
	}
	return Point{X: v[0], Y: v[1]}, true
}

// ParseRect parses a rectangle literal "x,y,width,height".
func ParseRect(s string) (Rect, bool) {
	var v [4]float64
	if !parseFloatList(s, v[:]) {
		return Rect{}, false
	}
	return Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, true
}

// parseFloatList fills dst from a comma-separated list that must have
// exactly len(dst) fields.
func parseFloatList(s string, dst []float64) bool {
	fields := strings.Split(s, ",")
	if len(fields) != len(dst) {
		return false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return false
		}
		dst[i] = v
	}
	return true
}
