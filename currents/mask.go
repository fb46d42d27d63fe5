package currents

import "math"

// WaterQuery reports whether a canvas pixel lies over water. Implemented by
// the basemap; anything that can answer the question per pixel will do.
type WaterQuery interface {
	WaterAt(x, y float64) (bool, error)
}

// Mask is a coarse water/land classification of the canvas, quantized to
// square cells. It is built once per map or viewport change and discarded
// wholesale; cells are never patched in place.
type Mask struct {
	cells    map[maskCell]struct{}
	cellSize int
}

type maskCell struct {
	cx, cy int
}

// BuildMask samples the map at every cell center over a width x height
// canvas and records which cells are water. A query that fails marks its
// cell as land and the build carries on; per-cell failures never abort a
// build.
func BuildMask(q WaterQuery, width, height, cellSize int) *Mask {
	if cellSize < 1 {
		cellSize = 1
	}
	m := &Mask{
		cells:    make(map[maskCell]struct{}),
		cellSize: cellSize,
	}
	if q == nil {
		return m
	}

	half := float64(cellSize) * 0.5
	for cy := 0; cy*cellSize < height; cy++ {
		for cx := 0; cx*cellSize < width; cx++ {
			px := float64(cx*cellSize) + half
			py := float64(cy*cellSize) + half
			water, err := q.WaterAt(px, py)
			if err != nil || !water {
				continue
			}
			m.cells[maskCell{cx, cy}] = struct{}{}
		}
	}
	return m
}

// IsWater reports whether the pixel's cell was classified as water. A nil or
// empty mask fails open: with no map to consult everything counts as water,
// so the particles keep animating.
func (m *Mask) IsWater(x, y float64) bool {
	if m == nil || len(m.cells) == 0 {
		return true
	}
	cx := int(math.Floor(x / float64(m.cellSize)))
	cy := int(math.Floor(y / float64(m.cellSize)))
	_, ok := m.cells[maskCell{cx, cy}]
	return ok
}

// WaterCells returns the number of cells classified as water.
func (m *Mask) WaterCells() int {
	if m == nil {
		return 0
	}
	return len(m.cells)
}
