// Package svg renders 3D scenes to standalone SVG documents. Importing
// the package registers the engine under the name "svg".
package svg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

// Name is the registry name of the SVG engine.
const Name = "svg"

func init() {
	render.Register(Name, func() (render.Backend, error) {
		return New(), nil
	})
}

const strokeColor = "#00ff00"

// Backend is the SVG vector engine.
type Backend struct {
	scenes []*Scene
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return Name }

// Scene is one SVG figure. Geometry renders lazily: Snapshot projects
// the current wireframes through the current camera, so the same scene
// can be written repeatedly under different views.
type Scene struct {
	owner         *Backend
	width, height int
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

func (b *Backend) NewScene(cfg render.FigureConfig) (render.Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("svg: invalid figure size %dx%d", cfg.Width, cfg.Height)
	}
	s := &Scene{
		owner:     b,
		width:     cfg.Width,
		height:    cfg.Height,
		bg:        cfg.Background,
		handle:    cfg.Handle,
		camera:    geom.NewCamera(),
		titleSize: render.DefaultTitleSize,
	}
	b.scenes = append(b.scenes, s)
	return s, nil
}

func (b *Backend) checked(s render.Scene) (*Scene, error) {
	vs, ok := s.(*Scene)
	if !ok || vs.owner != b {
		return nil, fmt.Errorf("%w: svg engine got %T", render.ErrForeignScene, s)
	}
	if vs.closed {
		return nil, fmt.Errorf("%w: svg scene", render.ErrClosedScene)
	}
	return vs, nil
}

func (b *Backend) CheckScene(s render.Scene) error {
	_, err := b.checked(s)
	return err
}

func (b *Backend) Draw(s render.Scene, w *geom.Wireframe) error {
	vs, err := b.checked(s)
	if err != nil {
		return err
	}
	vs.wires = append(vs.wires, w)
	return nil
}

func (b *Backend) SetView(s render.Scene, v render.View) error {
	vs, err := b.checked(s)
	if err != nil {
		return err
	}
	if v.Azimuth != nil {
		vs.camera.Azimuth = *v.Azimuth
	}
	if v.Elevation != nil {
		vs.camera.Elevation = *v.Elevation
	}
	if v.FocalPoint != nil {
		vs.camera.FocalPoint = *v.FocalPoint
	}
	if v.Distance != nil {
		vs.camera.Distance = *v.Distance
	}
	return nil
}

func (b *Backend) SetTitle(s render.Scene, title string, size int) error {
	vs, err := b.checked(s)
	if err != nil {
		return err
	}
	vs.title = title
	vs.titleSize = size
	return nil
}

func (b *Backend) Project(s render.Scene, pts []geom.Vec3) (render.Projection, error) {
	vs, err := b.checked(s)
	if err != nil {
		return nil, err
	}
	proj := make(render.Projection, len(pts))
	for i, p := range pts {
		x, y, depth, visible := vs.camera.Project(p, vs.width, vs.height)
		proj[i] = render.ProjectedPoint{X: x, Y: y, Depth: depth, Visible: visible}
	}
	return proj, nil
}

func (b *Backend) Snapshot(s render.Scene, w io.Writer) error {
	vs, err := b.checked(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, vs.document())
	return err
}

func (b *Backend) CloseAll() error {
	for _, s := range b.scenes {
		s.closed = true
	}
	b.scenes = nil
	return nil
}

type segment struct {
	x0, y0, x1, y1 int
	depth          float64
}

// document serializes the scene: background rect, depth-sorted edge
// lines far to near, then the title.
func (s *Scene) document() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, s.bg.Hex())

	segs := make([]segment, 0, 64)
	for _, wf := range s.wires {
		for _, e := range wf.Edges {
			x0, y0, d0, v0 := s.camera.Project(e.A, s.width, s.height)
			x1, y1, d1, v1 := s.camera.Project(e.B, s.width, s.height)
			if !v0 && !v1 {
				continue
			}
			segs = append(segs, segment{x0, y0, x1, y1, (d0 + d1) / 2})
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].depth > segs[j].depth })

	fmt.Fprintf(&sb, `<g stroke="%s" stroke-width="1.5" stroke-linecap="round">
`, strokeColor)
	for _, seg := range segs {
		if seg.x0 == seg.x1 && seg.y0 == seg.y1 {
			fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="1.5" fill="%s"/>
`, seg.x0, seg.y0, strokeColor)
			continue
		}
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, seg.x0, seg.y0, seg.x1, seg.y1)
	}
	sb.WriteString("</g>\n")

	if s.title != "" {
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="%d" fill="#ffffff" text-anchor="middle" font-family="monospace">%s</text>
`, s.width/2, s.titleSize+8, s.titleSize, escape(s.title))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
