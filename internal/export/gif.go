// Package export serializes a finished frame sequence to a looping GIF
// or to a standalone interactive HTML document.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// GIF encodes the frames as an infinitely looping animation at the
// given frame rate. The per-frame delay is 100/fps centiseconds,
// clamped to the format minimum of 1.
func GIF(w io.Writer, frames []image.Image, fps int, progress Progress) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for i, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
		if progress != nil {
			progress(i, len(frames))
		}
	}

	return gif.EncodeAll(w, out)
}

// WriteGIF encodes the animation to a file.
func WriteGIF(path string, frames []image.Image, fps int, progress Progress) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := GIF(f, frames, fps, progress); err != nil {
		return err
	}
	return f.Close()
}
