package sonify

import "github.com/faiface/beep"

// fadeOut wraps a beep.Streamer and ramps its gain linearly down to
// zero over total samples, so parameter-change blips end without a
// click.
type fadeOut struct {
	Source beep.Streamer
	total  int
	pos    int
}

func newFadeOut(src beep.Streamer, total int) *fadeOut {
	return &fadeOut{Source: src, total: total}
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Source.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.pos+i)/float64(f.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	f.pos += n
	return n, ok
}

func (f *fadeOut) Err() error { return f.Source.Err() }
