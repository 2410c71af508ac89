package leipae

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script validation errors.
var (
	ErrEmptyOrder       = errors.New("scene order is empty")
	ErrDuplicateScene   = errors.New("scene appears more than once in the order")
	ErrNoPlayableScene  = errors.New("scene order has no playable scene")
	ErrBadDuration      = errors.New("playable scene needs a positive duration")
	ErrBadParticleCount = errors.New("particle count must be positive")
	ErrUnknownScene     = errors.New("unknown scene")
)

// SceneSpec is the per-scene configuration applied at scene entry.
type SceneSpec struct {
	// Duration is the scene budget in seconds.
	Duration float64
	// Target, when set, replaces the look-at position on entry. Scenes
	// whose target program is a no-op rely on it.
	Target *Vec3
}

// LeipaeSpec configures the particle population.
type LeipaeSpec struct {
	Count   int
	X, Y, Z Range
	// Seeds fixes the first len(Seeds) particles instead of randomizing.
	Seeds []Particle
}

// Script is the full show configuration: playback order, per-scene data and
// the particle population.
type Script struct {
	Order  []Scene
	Scenes map[Scene]SceneSpec
	Leipae LeipaeSpec
}

// DefaultScript returns the stock show.
func DefaultScript() *Script {
	return &Script{
		Order: []Scene{
			SceneInit,
			SceneMovingForward,
			SceneForwardToTop,
			SceneTopToForward,
			SceneIntro,
			SceneBackwardsCircle,
			SceneMovingUp,
			SceneEnding,
		},
		Scenes: map[Scene]SceneSpec{
			SceneIntro:           {Duration: 30},
			SceneCloseup:         {Duration: 5, Target: &Vec3{0, 0, 0}},
			SceneTopToForward:    {Duration: 15},
			SceneForwardToTop:    {Duration: 15},
			SceneMovingForward:   {Duration: 15, Target: &Vec3{3, 0.8, -100}},
			SceneMovingUp:        {Duration: 20, Target: &Vec3{3, 0, -50}},
			SceneBackwardsCircle: {Duration: 10},
		},
		Leipae: LeipaeSpec{
			Count: DefaultLeipaeCount,
			X:     Range{-10, 10},
			Y:     Range{1, 10},
			Z:     Range{-10, 10},
		},
	}
}

// Validate checks the script for states the Director cannot run.
func (s *Script) Validate() error {
	if len(s.Order) == 0 {
		return ErrEmptyOrder
	}
	seen := make(map[Scene]bool, len(s.Order))
	playable := false
	for i, sc := range s.Order {
		if sc >= sceneCount {
			return fmt.Errorf("order[%d]: %w: %d", i, ErrUnknownScene, uint8(sc))
		}
		if seen[sc] {
			return fmt.Errorf("order[%d]: %w: %s", i, ErrDuplicateScene, sc)
		}
		seen[sc] = true
		if !sc.Playable() {
			continue
		}
		playable = true
		if spec, ok := s.Scenes[sc]; !ok || spec.Duration <= 0 {
			return fmt.Errorf("%s: %w", sc, ErrBadDuration)
		}
	}
	if !playable {
		return ErrNoPlayableScene
	}
	if s.Leipae.Count <= 0 {
		return ErrBadParticleCount
	}
	if len(s.Leipae.Seeds) > s.Leipae.Count {
		return fmt.Errorf("%d seeds for %d particles: %w", len(s.Leipae.Seeds), s.Leipae.Count, ErrBadParticleCount)
	}
	return nil
}

// TotalDuration returns the sum of the durations of the scenes in the
// order, the advertised length of one pass through the show.
func (s *Script) TotalDuration() float64 {
	var total float64
	for _, sc := range s.Order {
		if sc.Playable() {
			total += s.Scenes[sc].Duration
		}
	}
	return total
}

// --- YAML form ---

type scriptFile struct {
	Order  []string             `yaml:"order"`
	Scenes map[string]sceneFile `yaml:"scenes"`
	Leipae leipaeFile           `yaml:"leipae"`
}

type sceneFile struct {
	Duration float64   `yaml:"duration"`
	Target   []float64 `yaml:"target,omitempty,flow"`
}

type leipaeFile struct {
	Count int         `yaml:"count"`
	X     rangeFile   `yaml:"x"`
	Y     rangeFile   `yaml:"y"`
	Z     rangeFile   `yaml:"z"`
	Seeds [][]float64 `yaml:"seeds,omitempty,flow"`
}

type rangeFile struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ParseScript decodes a YAML script and validates it. Missing sections fall
// back to DefaultScript.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	s := DefaultScript()
	if len(f.Order) > 0 {
		s.Order = s.Order[:0]
		for _, name := range f.Order {
			sc, err := ParseScene(name)
			if err != nil {
				return nil, fmt.Errorf("parse script: order: %w", err)
			}
			s.Order = append(s.Order, sc)
		}
	}
	for name, sf := range f.Scenes {
		sc, err := ParseScene(name)
		if err != nil {
			return nil, fmt.Errorf("parse script: scenes: %w", err)
		}
		spec := s.Scenes[sc]
		if sf.Duration != 0 {
			spec.Duration = sf.Duration
		}
		if sf.Target != nil {
			if len(sf.Target) != 3 {
				return nil, fmt.Errorf("parse script: scenes: %s: target needs 3 components, got %d", sc, len(sf.Target))
			}
			spec.Target = &Vec3{sf.Target[0], sf.Target[1], sf.Target[2]}
		}
		s.Scenes[sc] = spec
	}

	lf := f.Leipae
	if lf.Count != 0 {
		s.Leipae.Count = lf.Count
	}
	if lf.X != (rangeFile{}) {
		s.Leipae.X = Range(lf.X)
	}
	if lf.Y != (rangeFile{}) {
		s.Leipae.Y = Range(lf.Y)
	}
	if lf.Z != (rangeFile{}) {
		s.Leipae.Z = Range(lf.Z)
	}
	for i, seed := range lf.Seeds {
		if len(seed) != 4 {
			return nil, fmt.Errorf("parse script: leipae: seed %d needs x, y, z, scale", i)
		}
		s.Leipae.Seeds = append(s.Leipae.Seeds, Particle{X: seed[0], Y: seed[1], Z: seed[2], Scale: seed[3]})
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

// LoadScript reads and parses a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// MarshalScript encodes s in the YAML form ParseScript reads.
func MarshalScript(s *Script) ([]byte, error) {
	f := scriptFile{
		Scenes: make(map[string]sceneFile, len(s.Scenes)),
		Leipae: leipaeFile{
			Count: s.Leipae.Count,
			X:     rangeFile(s.Leipae.X),
			Y:     rangeFile(s.Leipae.Y),
			Z:     rangeFile(s.Leipae.Z),
		},
	}
	for _, sc := range s.Order {
		f.Order = append(f.Order, sc.String())
	}
	for sc, spec := range s.Scenes {
		sf := sceneFile{Duration: spec.Duration}
		if spec.Target != nil {
			sf.Target = []float64{spec.Target.X, spec.Target.Y, spec.Target.Z}
		}
		f.Scenes[sc.String()] = sf
	}
	for _, p := range s.Leipae.Seeds {
		f.Leipae.Seeds = append(f.Leipae.Seeds, []float64{p.X, p.Y, p.Z, p.Scale})
	}
	return yaml.Marshal(&f)
}

// WriteScript writes s to path as YAML.
func WriteScript(s *Script, path string) error {
	data, err := MarshalScript(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
