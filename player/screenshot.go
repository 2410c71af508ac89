package player

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Cadiac/leipae"
)

// DefaultScreenshotDir is where screenshots go unless RunConfig says
// otherwise.
const DefaultScreenshotDir = "screenshots"

// shot is a capture request, stamped with the show position at the moment
// it was made.
type shot struct {
	label   string
	scene   leipae.Scene
	index   int
	dayTime float64
}

// fileName orders captures by scene index and day time:
// "02-forward-to-top_0015.25s_after_skip.png". The label is left out when
// empty or equal to the scene name.
func (s shot) fileName() string {
	name := fmt.Sprintf("%02d-%s_%07.2fs", s.index, s.scene, s.dayTime)
	if label := sanitizeLabel(s.label); label != "" && label != s.scene.String() {
		name += "_" + label
	}
	return name + ".png"
}

// screenshotter queues captures and writes them at the end of Draw.
type screenshotter struct {
	dir   string
	queue []shot
}

// enqueue requests a capture of the frame being drawn for d.
func (s *screenshotter) enqueue(d *leipae.Demo, label string) {
	s.queue = append(s.queue, shot{
		label:   label,
		scene:   d.Scene(),
		index:   d.SceneIndex(),
		dayTime: d.DayTime(),
	})
}

// flush reads screen back once and writes it under every queued name.
func (s *screenshotter) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	defer func() { s.queue = s.queue[:0] }()

	bounds := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	screen.ReadPixels(frame.Pix)
	data, err := encodeFrame(frame)
	if err != nil {
		logf("screenshot: %v", err)
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logf("screenshot: %v", err)
		return
	}
	for _, sh := range s.queue {
		path := filepath.Join(s.dir, sh.fileName())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logf("screenshot: %v", err)
			continue
		}
		logf("screenshot: %s", path)
	}
}

// encodeFrame encodes premultiplied RGBA pixels, the layout ReadPixels
// produces, as PNG. The encoder converts to straight alpha.
func encodeFrame(frame *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeLabel keeps letters, digits, dashes and dots and turns everything
// else into underscores.
func sanitizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
}
