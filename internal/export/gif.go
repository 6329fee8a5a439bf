// Package export writes a rotating animation of the current complex as
// an animated GIF, rendered by the software canvas so export does not
// touch the GPU-backed frame.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"

	"crystalviz/internal/logutil"
	"crystalviz/internal/scene"
)

var background = color.RGBA{R: 14, G: 16, B: 24, A: 255}

// RotatingGIF renders the scene over one full yaw revolution and
// encodes it as an animated GIF at path. delay is in hundredths of a
// second per frame.
func RotatingGIF(path string, s scene.Scene, cam scene.Camera, size, frames, delay int) error {
	if size < 16 || frames < 1 {
		return fmt.Errorf("export: bad parameters size=%d frames=%d", size, frames)
	}

	out := &gif.GIF{LoopCount: 0}
	baseYaw := cam.Yaw
	for f := 0; f < frames; f++ {
		cam.Yaw = baseYaw + 2*math.Pi*float64(f)/float64(frames)

		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Rect, &image.Uniform{C: background}, image.Point{}, draw.Src)
		scene.Render(&scene.ImageCanvas{Img: img}, s, cam, float64(size), float64(size))

		pal := image.NewPaletted(img.Rect, palette.Plan9)
		draw.Draw(pal, pal.Rect, img, image.Point{}, draw.Src)
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)

		if (f+1)%8 == 0 {
			logutil.Debugf("export: rendered frame %d/%d", f+1, frames)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, out); err != nil {
		return fmt.Errorf("export: encode %q: %w", path, err)
	}
	logutil.Infof("export: wrote %q (%d frames)", path, frames)
	return nil
}
