package core

// ROI describes the spatial window a field is viewed or recorded at: the
// world-unit size of one cell and the affine field-to-world mapping. A live
// ROI and a stored replay frame's ROI may differ; replay frames always carry
// their own.
type ROI struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
}

// CellToWorld returns the world position of the center of cell (x, y).
func (r ROI) CellToWorld(x, y int) (float64, float64) {
	wx := r.OriginX + (float64(x)+0.5)*r.CellSize
	wy := r.OriginY + (float64(y)+0.5)*r.CellSize
	return wx, wy
}

// WorldToCell maps a world position to the containing cell coordinates.
// Results may lie outside [0, N) for positions outside the field.
func (r ROI) WorldToCell(wx, wy float64) (int, int) {
	if r.CellSize <= 0 {
		return 0, 0
	}
	x := int((wx - r.OriginX) / r.CellSize)
	y := int((wy - r.OriginY) / r.CellSize)
	return x, y
}
