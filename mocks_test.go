package insertlogo

import (
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/opd-ai/insertlogo/av/video"
	"github.com/opd-ai/insertlogo/config"
)

// countingDecoder serves in-memory logos and records every decode.
type countingDecoder struct {
	mu     sync.Mutex
	images []*image.NRGBA
	err    error
	calls  int
	paths  []string
}

func newCountingDecoder(images ...*image.NRGBA) *countingDecoder {
	return &countingDecoder{images: images}
}

// Decode returns the next queued image; the last one repeats.
func (d *countingDecoder) Decode(path string) (*image.NRGBA, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls++
	d.paths = append(d.paths, path)
	if d.err != nil {
		return nil, d.err
	}

	img := d.images[0]
	if len(d.images) > 1 {
		d.images = d.images[1:]
	}
	return img, nil
}

func (d *countingDecoder) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func solidLogo(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createTestFrame returns a black frame in studio range.
func createTestFrame(w, h int) *video.Frame {
	frame := video.NewFrame(w, h)
	frame.Fill(16, 128, 128)
	return frame
}

// testOptions returns defaults pointing at a logo path the mock decoder
// serves, so no file needs to exist.
func testOptions() *config.Options {
	opts := config.NewOptions()
	opts.DefaultLogoFile = "test-logo.png"
	return opts
}

func newTestFilter(t testing.TB, opts *config.Options, dec *countingDecoder) (*Filter, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(opts, WithDecoder(dec), WithLogger(logger)), hook
}

// entries returns the logged messages at level containing substr.
func entries(hook *test.Hook, level logrus.Level, substr string) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			out = append(out, e)
		}
	}
	return out
}

func countLevel(hook *test.Hook, level logrus.Level) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
