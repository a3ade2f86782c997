package overlay

import "gridlock/internal/core"

// Visible reports whether a world position falls inside the viewport grown
// by pad on every side. The padded boundary is inclusive, so cells whose
// footprint straddles the viewport edge are not clipped prematurely;
// callers typically pass a pad of 2–4 cell sizes.
func Visible(wx, wy float64, vp core.Rect, pad float64) bool {
	if wx < vp.MinX-pad || wx > vp.MaxX+pad {
		return false
	}
	if wy < vp.MinY-pad || wy > vp.MaxY+pad {
		return false
	}
	return true
}
