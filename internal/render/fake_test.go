package render_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

// fakeBackend is a minimal engine with a distinguishing marker, enough
// to observe which binding a facade call was delegated to.
type fakeBackend struct {
	name   string
	scenes []*fakeScene
	closes int
}

type fakeScene struct {
	owner     *fakeBackend
	marker    string
	width     int
	height    int
	bg        geom.Color
	handle    int
	wires     int
	lastView  render.View
	title     string
	titleSize int
	closed    bool
}

func newFake(name string) *fakeBackend { return &fakeBackend{name: name} }

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) NewScene(cfg render.FigureConfig) (render.Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("fake %s: invalid size", b.name)
	}
	s := &fakeScene{
		owner:  b,
		marker: b.name,
		width:  cfg.Width,
		height: cfg.Height,
		bg:     cfg.Background,
		handle: cfg.Handle,
	}
	b.scenes = append(b.scenes, s)
	return s, nil
}

func (b *fakeBackend) checked(s render.Scene) (*fakeScene, error) {
	fs, ok := s.(*fakeScene)
	if !ok || fs.owner != b {
		return nil, fmt.Errorf("%w: fake %s got %T", render.ErrForeignScene, b.name, s)
	}
	if fs.closed {
		return nil, render.ErrClosedScene
	}
	return fs, nil
}

func (b *fakeBackend) CheckScene(s render.Scene) error {
	_, err := b.checked(s)
	return err
}

func (b *fakeBackend) Draw(s render.Scene, w *geom.Wireframe) error {
	fs, err := b.checked(s)
	if err != nil {
		return err
	}
	fs.wires++
	return nil
}

func (b *fakeBackend) SetView(s render.Scene, v render.View) error {
	fs, err := b.checked(s)
	if err != nil {
		return err
	}
	fs.lastView = v
	return nil
}

func (b *fakeBackend) SetTitle(s render.Scene, title string, size int) error {
	fs, err := b.checked(s)
	if err != nil {
		return err
	}
	fs.title = title
	fs.titleSize = size
	return nil
}

func (b *fakeBackend) Project(s render.Scene, pts []geom.Vec3) (render.Projection, error) {
	if _, err := b.checked(s); err != nil {
		return nil, err
	}
	return make(render.Projection, len(pts)), nil
}

func (b *fakeBackend) Snapshot(s render.Scene, w io.Writer) error {
	fs, err := b.checked(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, fs.marker)
	return err
}

func (b *fakeBackend) CloseAll() error {
	for _, s := range b.scenes {
		s.closed = true
	}
	b.scenes = nil
	b.closes++
	return nil
}

var (
	errBrokenLoad = errors.New("broken engine dependency missing")

	// flakyBinds counts factory calls for the restoration-failure
	// specs; reset it before arming the fault.
	flakyBinds int
)

func (s *fakeScene) BackendName() string { return s.marker }
func (s *fakeScene) Size() (int, int)    { return s.width, s.height }

func init() {
	render.Register("fake-alpha", func() (render.Backend, error) {
		return newFake("fake-alpha"), nil
	})
	render.Register("fake-beta", func() (render.Backend, error) {
		return newFake("fake-beta"), nil
	})
	render.Register("broken", func() (render.Backend, error) {
		return nil, errBrokenLoad
	})
	render.Register("flaky", func() (render.Backend, error) {
		flakyBinds++
		if flakyBinds > 1 {
			return nil, errors.New("flaky engine refused to rebind")
		}
		return newFake("flaky"), nil
	})
}
