package core

// Frame is an immutable record of road occupancy for one captured tick.
// It is self-describing: coordinates are recovered with the frame's own N
// and converted to world space with the frame's own ROI, so replay stays
// correct even if the live grid has since changed resolution.
type Frame struct {
	N         int
	ROI       ROI
	RoadCells []int
	// Presence holds one occupancy count per entry of RoadCells.
	Presence []float64
}

// Recorder captures road-occupancy frames at a fixed tick cadence. Frames
// are deep-copied on capture and never modified afterwards.
type Recorder struct {
	every  int
	tick   int
	frames []*Frame
}

// NewRecorder creates a recorder that keeps every n-th observed tick.
func NewRecorder(every int) *Recorder {
	if every <= 0 {
		every = 1
	}
	return &Recorder{every: every}
}

// Observe offers one tick's occupancy to the recorder. presence must be
// index-aligned with roadCells; ticks between capture points are dropped.
func (r *Recorder) Observe(roadCells []int, presence []float64, roi ROI, n int) {
	due := r.tick%r.every == 0
	r.tick++
	if !due || len(roadCells) != len(presence) {
		return
	}
	f := &Frame{
		N:         n,
		ROI:       roi,
		RoadCells: append([]int(nil), roadCells...),
		Presence:  append([]float64(nil), presence...),
	}
	r.frames = append(r.frames, f)
}

// Len reports how many frames have been captured.
func (r *Recorder) Len() int { return len(r.frames) }

// Frame returns the i-th captured frame, or nil when out of range.
func (r *Recorder) Frame(i int) *Frame {
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i]
}
