package sonify

import (
	"math"
	"testing"
)

// constant emits a fixed sample forever.
type constant struct{ v float64 }

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = c.v
		samples[i][1] = c.v
	}
	return len(samples), true
}

func (c constant) Err() error { return nil }

func TestFadeOutRampsToSilence(t *testing.T) {
	const total = 100
	f := newFadeOut(constant{v: 1}, total)

	buf := make([][2]float64, total)
	n, ok := f.Stream(buf)
	if !ok || n != total {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, total)
	}

	if buf[0][0] != 1 {
		t.Errorf("first sample %v, want full gain", buf[0][0])
	}
	for i := 1; i < total; i++ {
		if buf[i][0] > buf[i-1][0] {
			t.Fatalf("gain rose at sample %d: %v > %v", i, buf[i][0], buf[i-1][0])
		}
		want := 1 - float64(i)/total
		if math.Abs(buf[i][0]-want) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, buf[i][0], want)
		}
	}

	// past the total, output is fully silent
	n, _ = f.Stream(buf[:10])
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d after fade end is %v, want 0", i, buf[i])
		}
	}
}

func TestFadeOutBothChannels(t *testing.T) {
	f := newFadeOut(constant{v: 0.5}, 10)
	buf := make([][2]float64, 4)
	f.Stream(buf)
	for i, s := range buf {
		if s[0] != s[1] {
			t.Errorf("sample %d: channels diverge (%v, %v)", i, s[0], s[1])
		}
	}
}
