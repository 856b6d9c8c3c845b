// Package term renders 3D scenes as braille art in the terminal. It is
// the default rendering engine: importing the package registers it
// under the name "terminal".
package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

// Name is the registry name of the terminal engine.
const Name = "terminal"

func init() {
	render.Register(Name, func() (render.Backend, error) {
		return New(), nil
	})
}

// A terminal cell stands in for roughly this many figure pixels, so an
// 800×600 figure lands near 80×30 cells.
const (
	cellPixelsX = 10
	cellPixelsY = 20

	minCols, maxCols = 20, 160
	minRows, maxRows = 10, 48
)

// Backend is the terminal engine. It tracks the scenes it created so
// CloseAll can invalidate them.
type Backend struct {
	scenes []*Scene
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return Name }

// Scene is one terminal figure: wireframe geometry, an orbital camera,
// and a text frame around the braille viewport.
type Scene struct {
	owner         *Backend
	width, height int
	cols, rows    int
	bg            geom.Color
	handle        int
	camera        *geom.Camera
	wires         []*geom.Wireframe
	title         string
	titleSize     int
	closed        bool
}

func (s *Scene) BackendName() string { return Name }

func (s *Scene) Size() (int, int) { return s.width, s.height }

// Handle returns the caller-supplied identifier, zero when unset.
func (s *Scene) Handle() int { return s.handle }

func (b *Backend) NewScene(cfg render.FigureConfig) (render.Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("term: invalid figure size %dx%d", cfg.Width, cfg.Height)
	}
	s := &Scene{
		owner:     b,
		width:     cfg.Width,
		height:    cfg.Height,
		cols:      clamp(cfg.Width/cellPixelsX, minCols, maxCols),
		rows:      clamp(cfg.Height/cellPixelsY, minRows, maxRows),
		bg:        cfg.Background,
		handle:    cfg.Handle,
		camera:    geom.NewCamera(),
		titleSize: render.DefaultTitleSize,
	}
	b.scenes = append(b.scenes, s)
	return s, nil
}

// checked narrows a facade scene to one of ours, rejecting scenes
// created by other engines or already closed.
func (b *Backend) checked(s render.Scene) (*Scene, error) {
	ts, ok := s.(*Scene)
	if !ok || ts.owner != b {
		return nil, fmt.Errorf("%w: terminal engine got %T", render.ErrForeignScene, s)
	}
	if ts.closed {
		return nil, fmt.Errorf("%w: terminal scene", render.ErrClosedScene)
	}
	return ts, nil
}

func (b *Backend) CheckScene(s render.Scene) error {
	_, err := b.checked(s)
	return err
}

func (b *Backend) Draw(s render.Scene, w *geom.Wireframe) error {
	ts, err := b.checked(s)
	if err != nil {
		return err
	}
	ts.wires = append(ts.wires, w)
	return nil
}

func (b *Backend) SetView(s render.Scene, v render.View) error {
	ts, err := b.checked(s)
	if err != nil {
		return err
	}
	if v.Azimuth != nil {
		ts.camera.Azimuth = *v.Azimuth
	}
	if v.Elevation != nil {
		ts.camera.Elevation = *v.Elevation
	}
	if v.FocalPoint != nil {
		ts.camera.FocalPoint = *v.FocalPoint
	}
	if v.Distance != nil {
		ts.camera.Distance = *v.Distance
	}
	return nil
}

// SetTitle records the title. The terminal renders it as a single
// styled header line; size is kept for engines with scalable text.
func (b *Backend) SetTitle(s render.Scene, title string, size int) error {
	ts, err := b.checked(s)
	if err != nil {
		return err
	}
	ts.title = title
	ts.titleSize = size
	return nil
}

func (b *Backend) Project(s render.Scene, pts []geom.Vec3) (render.Projection, error) {
	ts, err := b.checked(s)
	if err != nil {
		return nil, err
	}
	pw, ph := ts.pixelSize()
	proj := make(render.Projection, len(pts))
	for i, p := range pts {
		x, y, depth, visible := ts.camera.Project(p, pw, ph)
		proj[i] = render.ProjectedPoint{X: x, Y: y, Depth: depth, Visible: visible}
	}
	return proj, nil
}

func (b *Backend) Snapshot(s render.Scene, w io.Writer) error {
	ts, err := b.checked(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, ts.render()+"\n")
	return err
}

// CloseAll invalidates every scene this engine has created. Callers
// invoke it explicitly; nothing in the facade triggers it.
func (b *Backend) CloseAll() error {
	for _, s := range b.scenes {
		s.closed = true
	}
	b.scenes = nil
	return nil
}

// pixelSize is the braille sub-pixel resolution of the viewport.
func (s *Scene) pixelSize() (int, int) {
	return s.cols * 2, s.rows * 4
}

// render rasterizes the wireframes and wraps the viewport in a styled
// frame.
func (s *Scene) render() string {
	cv := newCanvas(s.cols, s.rows)
	pw, ph := s.pixelSize()
	for _, wf := range s.wires {
		for _, e := range wf.Edges {
			x0, y0, _, v0 := s.camera.Project(e.A, pw, ph)
			x1, y1, _, v1 := s.camera.Project(e.B, pw, ph)
			if !v0 && !v1 {
				continue
			}
			if x0 == x1 && y0 == y1 {
				cv.set(x0, y0)
				continue
			}
			cv.line(x0, y0, x1, y1)
		}
	}

	viewport := lipgloss.NewStyle().
		Background(lipgloss.Color(s.bg.Hex())).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(cv.String())

	if s.title == "" {
		return viewport
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Width(s.cols+2).
		Align(lipgloss.Center).
		Render(s.title)
	return header + "\n" + viewport
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
