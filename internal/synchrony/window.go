package synchrony

// Window downsamples per-timestep synchrony vectors by averaging fixed-size
// blocks. Every size pushes emit one row of block means; a trailing partial
// block is dropped.
type Window struct {
	size  int
	dims  int
	acc   []float64
	count int
	rows  [][]float64
}

func NewWindow(size, dims int) *Window {
	return &Window{
		size: size,
		dims: dims,
		acc:  make([]float64, dims),
	}
}

// Push accumulates one timestep's synchrony vector.
func (w *Window) Push(vals []float64) {
	for i := 0; i < w.dims; i++ {
		w.acc[i] += vals[i]
	}
	w.count++

	if w.count == w.size {
		row := make([]float64, w.dims)
		for i := range row {
			row[i] = w.acc[i] / float64(w.size)
			w.acc[i] = 0
		}
		w.rows = append(w.rows, row)
		w.count = 0
	}
}

// Rows returns the downsampled series accumulated so far. The returned
// slice is shared with the window; callers must not mutate it.
func (w *Window) Rows() [][]float64 {
	return w.rows
}

// Reset discards all accumulated state.
func (w *Window) Reset() {
	for i := range w.acc {
		w.acc[i] = 0
	}
	w.count = 0
	w.rows = nil
}
