package export_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tweenplot/internal/export"
)

func makeFrames(n int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.Set(x, y, color.RGBA{R: uint8(i * 40), G: 0x80, B: 0x40, A: 0xff})
			}
		}
		frames[i] = img
	}
	return frames
}

var _ = Describe("GIF", func() {
	It("encodes every frame with the fps-derived delay", func() {
		var buf bytes.Buffer
		err := export.GIF(&buf, makeFrames(3), 10, nil)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Image).To(HaveLen(3))
		Expect(decoded.LoopCount).To(Equal(0), "animation should loop forever")
		for _, d := range decoded.Delay {
			Expect(d).To(Equal(10), "100/fps centiseconds at 10 fps")
		}
	})

	It("clamps the delay to the format minimum at high fps", func() {
		var buf bytes.Buffer
		err := export.GIF(&buf, makeFrames(1), 500, nil)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Delay[0]).To(Equal(1))
	})

	It("reports progress once per frame", func() {
		var calls []int
		progress := func(frame, total int) {
			Expect(total).To(Equal(4))
			calls = append(calls, frame)
		}
		var buf bytes.Buffer
		Expect(export.GIF(&buf, makeFrames(4), 10, progress)).To(Succeed())
		Expect(calls).To(Equal([]int{0, 1, 2, 3}))
	})

	It("rejects empty input and bad frame rates", func() {
		var buf bytes.Buffer
		Expect(export.GIF(&buf, nil, 10, nil)).To(HaveOccurred())
		Expect(export.GIF(&buf, makeFrames(1), 0, nil)).To(HaveOccurred())
	})
})

var _ = Describe("HTML", func() {
	It("embeds every frame as a data URI with playback controls", func() {
		var buf bytes.Buffer
		err := export.HTML(&buf, makeFrames(2), 30, "demo", nil)
		Expect(err).NotTo(HaveOccurred())

		// The template escapes "/" inside the script block, so count a
		// slash-free marker: initial img plus one array entry per frame.
		doc := buf.String()
		Expect(strings.Count(doc, "base64,")).To(Equal(3))
		Expect(doc).To(ContainSubstring("<title>demo</title>"))
		Expect(doc).To(ContainSubstring("setInterval"))
		Expect(doc).To(ContainSubstring(`type="range"`))
	})

	It("derives the playback interval from the frame rate", func() {
		var buf bytes.Buffer
		Expect(export.HTML(&buf, makeFrames(1), 25, "", nil)).To(Succeed())
		// The template escaper pads the interpolated number with spaces.
		Expect(buf.String()).To(MatchRegexp(`\},\s*40\s*\);`))
	})

	It("rejects empty input and bad frame rates", func() {
		var buf bytes.Buffer
		Expect(export.HTML(&buf, nil, 30, "", nil)).To(HaveOccurred())
		Expect(export.HTML(&buf, makeFrames(1), -1, "", nil)).To(HaveOccurred())
	})
})
