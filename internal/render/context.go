package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/scene3d/internal/geom"
)

// Context owns one active backend binding. The name and the bound
// engine are replaced together, never separately, so the pair stays
// consistent through any sequence of switches. A mutex guards the slot;
// engines themselves make no concurrency promises beyond that.
type Context struct {
	mu       sync.Mutex
	name     string
	active   Backend
	testMode bool
}

// NewContext returns a context that binds lazily on first use. An empty
// name resolves the default backend via the environment.
func NewContext(name string) *Context {
	return &Context{name: name}
}

// ensureLocked performs the one-time initial resolve-and-bind. It is a
// no-op once a binding exists; a failed attempt leaves the context
// unbound so a later call can retry (e.g. after more backends
// register). Callers must hold c.mu.
func (c *Context) ensureLocked() error {
	if c.active != nil {
		return nil
	}
	name := c.name
	if name == "" {
		resolved, err := resolveDefault()
		if err != nil {
			return err
		}
		name = resolved
	}
	b, err := bind(name)
	if err != nil {
		return err
	}
	c.name, c.active = name, b
	return nil
}

// Backend returns the active backend name, resolving and binding the
// default on first use. It returns "" only when nothing is registered.
func (c *Context) Backend() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLocked(); err != nil {
		return ""
	}
	return c.name
}

// SetBackend switches the context to the named engine. The switch is
// all-or-nothing: on any failure the previous name and binding stay
// active and the error reports why.
func (c *Context) SetBackend(name string) error {
	b, err := bind(name)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.name, c.active = name, b
	c.mu.Unlock()
	return nil
}

// With runs fn with the named backend active, then restores the
// previous backend on every exit path, including a panic in fn. A
// failed switch means fn never runs. fn's error propagates unchanged
// unless restoring the previous backend itself fails; that failure
// supersedes. Only one override may be in flight per context.
func (c *Context) With(name string, fn func() error) (err error) {
	c.mu.Lock()
	if err := c.ensureLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	previous := c.name
	c.mu.Unlock()

	if err := c.SetBackend(name); err != nil {
		return err
	}
	defer func() {
		if rerr := c.SetBackend(previous); rerr != nil {
			err = rerr
		}
	}()
	return fn()
}

// WithTest is With plus a test-mode flag observable through TestMode
// for the duration of the scope. The flag clears on exit regardless of
// how the scope ends.
func (c *Context) WithTest(name string, fn func() error) error {
	return c.With(name, func() error {
		c.setTestMode(true)
		defer c.setTestMode(false)
		return fn()
	})
}

// TestMode reports whether a WithTest scope is active.
func (c *Context) TestMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.testMode
}

func (c *Context) setTestMode(v bool) {
	c.mu.Lock()
	c.testMode = v
	c.mu.Unlock()
}

// binding returns the active engine, performing the first-use bind if
// needed. Delegation reads it at call time, so a switch between two
// facade calls changes which engine the second call hits.
func (c *Context) binding() (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLocked(); err != nil {
		return nil, err
	}
	return c.active, nil
}

// CreateFigure creates an empty scene on the active backend.
func (c *Context) CreateFigure(cfg FigureConfig) (Scene, error) {
	b, err := c.binding()
	if err != nil {
		return nil, err
	}
	return b.NewScene(cfg)
}

// SetView applies the set fields of v to the scene's camera; unset
// fields leave the view untouched.
func (c *Context) SetView(s Scene, v View) error {
	b, err := c.binding()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrForeignScene)
	}
	return b.SetView(s, v)
}

// SetTitle sets the scene title. A non-positive size means
// DefaultTitleSize.
func (c *Context) SetTitle(s Scene, title string, size int) error {
	b, err := c.binding()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrForeignScene)
	}
	if size <= 0 {
		size = DefaultTitleSize
	}
	return b.SetTitle(s, title, size)
}

// Draw adds wireframe geometry to the scene.
func (c *Context) Draw(s Scene, w *geom.Wireframe) error {
	b, err := c.binding()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrForeignScene)
	}
	return b.Draw(s, w)
}

// Project maps world points to viewport pixels through the scene's
// camera.
func (c *Context) Project(s Scene, pts []geom.Vec3) (Projection, error) {
	b, err := c.binding()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrForeignScene)
	}
	return b.Project(s, pts)
}

// Snapshot renders the scene to w in the active engine's output format.
func (c *Context) Snapshot(s Scene, w io.Writer) error {
	b, err := c.binding()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrForeignScene)
	}
	return b.Snapshot(s, w)
}

// CloseAll closes every scene of the active backend. It is the caller's
// cleanup hook; the facade never closes scenes on its own.
func (c *Context) CloseAll() error {
	b, err := c.binding()
	if err != nil {
		return err
	}
	return b.CloseAll()
}
