package scrubline

// Reveal decides per-letter visibility for a sweep position. Letter i is
// Visible when sweep >= left+offsets[i] and Hidden otherwise. Each letter is
// tested on its own with no hysteresis, so driving the sweep back below a
// threshold hides the letter again.
//
// Results are written into dst, which is grown if needed and returned. Passing
// a dst with enough capacity makes Reveal allocation-free.
func Reveal(sweep, left float64, offsets []float64, dst []RevealState) []RevealState {
	if cap(dst) < len(offsets) {
		dst = make([]RevealState, len(offsets))
	}
	dst = dst[:len(offsets)]
	for i, off := range offsets {
		if sweep >= left+off {
			dst[i] = Visible
		} else {
			dst[i] = Hidden
		}
	}
	return dst
}

// CountVisible returns how many states are Visible.
func CountVisible(states []RevealState) int {
	n := 0
	for _, s := range states {
		if s == Visible {
			n++
		}
	}
	return n
}
