package geometry

import "math"

// SnapToGrid rounds v to the nearest multiple of gridSize. Exact halves round
// toward positive infinity. A non-positive grid size disables snapping.
func SnapToGrid(v, gridSize float64) float64 {
	if gridSize <= 0 || math.IsNaN(gridSize) {
		return v
	}
	return math.Floor(v/gridSize+0.5) * gridSize
}

// CeilToGrid rounds v up to the next multiple of gridSize.
func CeilToGrid(v, gridSize float64) float64 {
	if gridSize <= 0 || math.IsNaN(gridSize) {
		return v
	}
	return math.Ceil(v/gridSize) * gridSize
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
