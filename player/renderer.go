package player

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Cadiac/leipae"
)

// defaultShaderSrc is the Kage fragment shader template used when no shader
// file is configured. {{.Count}} is replaced by the particle count.
//
//go:embed shaders/leipae.kage
var defaultShaderSrc []byte

// ShaderSource expands a shader template so that its particle uniform array
// length matches count. Templates without actions pass through unchanged.
func ShaderSource(tmpl []byte, count int) ([]byte, error) {
	t, err := template.New("shader").Parse(string(tmpl))
	if err != nil {
		return nil, fmt.Errorf("shader template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ Count int }{count}); err != nil {
		return nil, fmt.Errorf("shader template: %w", err)
	}
	return buf.Bytes(), nil
}

// Renderer draws a full-screen quad with the show's fragment shader and
// binds the Demo's outputs as uniforms:
//
//	Time       float          day time in seconds
//	Resolution vec2           target size in pixels
//	Camera     vec3           view position
//	Target     vec3           look-at position
//	Leipae     [N]vec4        particle (x, y, z, scale)
//	Fade       float          scene fade-in, 0..1
type Renderer struct {
	path   string
	count  int
	shader *ebiten.Shader

	uniforms   map[string]any
	resolution []float32
	camera     []float32
	target     []float32
	leipae     []float32
	shaderOp   ebiten.DrawRectShaderOptions
}

// NewRenderer compiles the shader at path, or the built-in shader when path
// is empty, for a population of count particles.
func NewRenderer(path string, count int) (*Renderer, error) {
	r := &Renderer{
		path:       path,
		count:      count,
		uniforms:   make(map[string]any, 6),
		resolution: make([]float32, 2),
		camera:     make([]float32, 3),
		target:     make([]float32, 3),
		leipae:     make([]float32, 0, 4*count),
	}
	r.uniforms["Resolution"] = r.resolution
	r.uniforms["Camera"] = r.camera
	r.uniforms["Target"] = r.target
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload recompiles the shader from its source. On failure the previously
// compiled shader stays bound and the error is returned.
func (r *Renderer) Reload() error {
	tmpl := defaultShaderSrc
	if r.path != "" {
		data, err := os.ReadFile(r.path)
		if err != nil {
			return fmt.Errorf("read shader: %w", err)
		}
		tmpl = data
	}
	src, err := ShaderSource(tmpl, r.count)
	if err != nil {
		return err
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile shader: %w", err)
	}
	if r.shader != nil {
		r.shader.Deallocate()
	}
	r.shader = s
	return nil
}

// Path returns the shader file the renderer reloads from, or "" for the
// built-in shader.
func (r *Renderer) Path() string {
	return r.path
}

// Draw renders the current frame of d into screen.
func (r *Renderer) Draw(screen *ebiten.Image, d *leipae.Demo, fade float64) {
	bounds := screen.Bounds()
	r.bind(d, bounds.Dx(), bounds.Dy(), fade)
	r.shaderOp.Uniforms = r.uniforms
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), r.shader, &r.shaderOp)
}

// bind refreshes the uniform buffers in place.
func (r *Renderer) bind(d *leipae.Demo, w, h int, fade float64) {
	r.resolution[0], r.resolution[1] = float32(w), float32(h)
	cam := d.Camera().Float32()
	copy(r.camera, cam[:])
	tgt := d.Target().Float32()
	copy(r.target, tgt[:])
	r.leipae = d.Particles().AppendFlat(r.leipae[:0])

	r.uniforms["Time"] = float32(d.DayTime())
	r.uniforms["Leipae"] = r.leipae
	r.uniforms["Fade"] = float32(fade)
}
