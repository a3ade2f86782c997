package overlay

import "image/color"

// Surface is the raster the overlays paint onto. FillRect fills an
// axis-aligned square of the given side length centered at (cx, cy) screen
// pixels, blending col at the given fractional alpha (0 transparent,
// 1 opaque). Implementations clamp to their own bounds.
type Surface interface {
	FillRect(cx, cy, size float64, col color.RGBA, alpha float64)
}

// Logf is the diagnostic sink the overlays write throttled debug lines to.
// Fire-and-forget; nil disables logging.
type Logf func(format string, args ...any)
