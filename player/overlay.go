package player

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Cadiac/leipae"
)

// overlay renders show state and frame rates in the top-left corner. The
// text is rebuilt every ~0.25 seconds of wall time.
type overlay struct {
	img     *ebiten.Image
	visible bool
	since   float64
	text    string
	op      ebiten.DrawImageOptions
}

func newOverlay(visible bool) *overlay {
	return &overlay{visible: visible, since: overlayRefresh}
}

const overlayRefresh = 0.25

// overlayText formats the show state.
func overlayText(d *leipae.Demo, fps, tps float64) string {
	state := "playing"
	switch {
	case d.ShouldExit():
		state = "ended"
	case d.IsPaused():
		state = "paused"
	}
	return fmt.Sprintf("%s [%d] %5.2f / %.0fs\nday %7.2fs  %s\nFPS %.1f  TPS %.1f",
		d.Scene(), d.SceneIndex(), d.Time(), d.Duration(), d.DayTime(), state, fps, tps)
}

func (o *overlay) update(d *leipae.Demo, dt float64) {
	if !o.visible {
		return
	}
	o.since += dt
	if o.since < overlayRefresh && o.text != "" {
		return
	}
	o.since = 0
	o.text = overlayText(d, ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *overlay) draw(screen *ebiten.Image) {
	if !o.visible || o.text == "" {
		return
	}
	if o.img == nil {
		// 220x52 fits three lines of debug font.
		o.img = ebiten.NewImage(220, 52)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	o.op.GeoM.Reset()
	o.op.GeoM.Translate(8, 8)
	screen.DrawImage(o.img, &o.op)
}
