package player

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Cadiac/leipae"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size in logical pixels.
	Width, Height int
	// Fullscreen starts the window borderless fullscreen.
	Fullscreen bool
	// ShowCursor keeps the mouse cursor visible over the window.
	ShowCursor bool
	// Debug logs scene transitions, reloads and screenshots to stderr and
	// shows the overlay at start.
	Debug bool
	// ShaderPath is a Kage shader template to load and hot reload. Empty
	// uses the built-in shader.
	ShaderPath string
	// SoundtrackPath is an optional MP3 played in step with the show.
	SoundtrackPath string
	// ScreenshotDir receives screenshots. Defaults to DefaultScreenshotDir.
	ScreenshotDir string
	// FadeDuration is the fade-in after each scene change in seconds.
	// Zero uses leipae.DefaultFadeDuration; negative disables fading.
	FadeDuration float32
	// Keys overrides the key bindings. Nil uses DefaultKeyMap.
	Keys KeyMap
	// Autopilot, when set, issues commands from a script each frame.
	Autopilot *leipae.Autopilot
	// Sinks receive scene events after every frame.
	Sinks []leipae.EventSink
}

// Game adapts a Demo to ebiten.Game: input dispatch, the per-frame update
// and drawing.
type Game struct {
	demo       *leipae.Demo
	renderer   *Renderer
	fader      *leipae.SceneFader
	soundtrack *Soundtrack
	autopilot  *leipae.Autopilot
	overlay    *overlay
	shots      screenshotter
	keys       KeyMap
	sink       leipae.EventSink
	debug      bool

	actions   []Action
	shotReqs  []string // screenshot labels, stamped after the frame's update
	lastFrame time.Time
	quit      bool
}

// NewGame builds the host for demo. The renderer's particle array is sized
// from the demo so the shader and the core always agree on the count.
func NewGame(demo *leipae.Demo, cfg RunConfig) (*Game, error) {
	r, err := NewRenderer(cfg.ShaderPath, demo.Particles().Len())
	if err != nil {
		return nil, err
	}
	g := newGame(demo, cfg)
	g.renderer = r
	if cfg.SoundtrackPath != "" {
		st, err := LoadSoundtrack(cfg.SoundtrackPath)
		if err != nil {
			return nil, err
		}
		g.soundtrack = st
	}
	return g, nil
}

// newGame wires everything except the GPU and audio resources.
func newGame(demo *leipae.Demo, cfg RunConfig) *Game {
	fade := cfg.FadeDuration
	if fade == 0 {
		fade = leipae.DefaultFadeDuration
	}
	keys := cfg.Keys
	if keys == nil {
		keys = DefaultKeyMap()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	var sinks multiSink
	if cfg.Debug {
		sinks = append(sinks, LogSink{})
	}
	sinks = append(sinks, cfg.Sinks...)

	return &Game{
		demo:      demo,
		fader:     leipae.NewSceneFader(fade, nil),
		autopilot: cfg.Autopilot,
		overlay:   newOverlay(cfg.Debug),
		shots:     screenshotter{dir: dir},
		keys:      keys,
		sink:      sinks,
		debug:     cfg.Debug,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := time.Now()
	var hostDt float64
	if !g.lastFrame.IsZero() {
		hostDt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	g.actions = g.keys.pressed(g.actions[:0])
	for _, a := range g.actions {
		g.apply(a)
	}
	if g.quit {
		return ebiten.Termination
	}

	if g.autopilot != nil {
		if label := g.autopilot.Step(g.demo); label != "" {
			g.shotReqs = append(g.shotReqs, label)
		}
	}

	g.demo.Update()
	for _, label := range g.shotReqs {
		g.shots.enqueue(g.demo, label)
	}
	g.shotReqs = g.shotReqs[:0]
	g.demo.FlushEvents(g.sink)
	g.fader.Update(g.demo)
	g.soundtrack.Sync(g.demo)
	g.overlay.update(g.demo, hostDt)

	if g.demo.ShouldExit() {
		return ebiten.Termination
	}
	return nil
}

// apply executes one bound action.
func (g *Game) apply(a Action) {
	switch a {
	case ActionQuit:
		g.quit = true
	case ActionTogglePause:
		g.demo.TogglePause()
	case ActionPause:
		g.demo.Pause()
	case ActionResume:
		g.demo.Resume()
	case ActionReset:
		g.demo.Reset()
	case ActionSkip:
		g.demo.SkipToNext()
	case ActionReload:
		g.reload()
	case ActionFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case ActionScreenshot:
		g.shotReqs = append(g.shotReqs, "")
	case ActionOverlay:
		g.overlay.visible = !g.overlay.visible
	}
	if g.debug && a != ActionNone {
		logf("action %s", a)
	}
}

// reload recompiles the shader. Failures keep the old shader running.
func (g *Game) reload() {
	if g.renderer == nil {
		return
	}
	src := g.renderer.Path()
	if src == "" {
		src = "built-in shader"
	}
	if err := g.renderer.Reload(); err != nil {
		logf("reload %s: %v", src, err)
		return
	}
	logf("reload: recompiled %s", src)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.demo, g.fader.Value())
	g.overlay.draw(screen)
	g.shots.flush(screen)
}

// Layout implements ebiten.Game. The shader renders at the window's
// native resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and plays demo until it ends or the user quits.
func Run(demo *leipae.Demo, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Leipae"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1920, 1080
	}

	g, err := NewGame(demo, cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if !cfg.ShowCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	return ebiten.RunGame(g)
}
