// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Distance returns the euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Wrap maps v into [0, size) so that leaving one edge re-enters at the other.
// A non-positive size returns v unchanged.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	w := math.Mod(v, size)
	if w < 0 {
		w += size
	}
	return w
}

// Except returns the elements of a whose key does not appear among the keys of b.
// Order of a is preserved and a is never modified.
func Except[T any](a, b []T, key func(T) string) []T {
	if len(b) == 0 {
		out := make([]T, len(a))
		copy(out, a)
		return out
	}

	drop := make(map[string]struct{}, len(b))
	for _, e := range b {
		drop[key(e)] = struct{}{}
	}

	out := make([]T, 0, len(a))
	for _, e := range a {
		if _, ok := drop[key(e)]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
