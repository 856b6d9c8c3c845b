package render

import (
	"io"

	"github.com/san-kum/scene3d/internal/geom"
)

// std backs the package-level facade. Applications that prefer explicit
// dependency injection can construct their own Context instead.
var std = NewContext("")

// Default returns the process-wide context the package-level functions
// delegate to.
func Default() *Context { return std }

// GetBackend returns the active backend name, resolving the default on
// first use.
func GetBackend() string { return std.Backend() }

// SetBackend switches the process-wide context to the named engine.
func SetBackend(name string) error { return std.SetBackend(name) }

// With runs fn with the named backend active and restores the previous
// backend afterwards.
func With(name string, fn func() error) error { return std.With(name, fn) }

// WithTest is With plus the test-mode flag.
func WithTest(name string, fn func() error) error { return std.WithTest(name, fn) }

// TestMode reports whether a WithTest scope is active on the
// process-wide context.
func TestMode() bool { return std.TestMode() }

// CreateFigure creates an empty scene on the active backend.
func CreateFigure(cfg FigureConfig) (Scene, error) { return std.CreateFigure(cfg) }

// SetView applies the set fields of v to the scene's camera.
func SetView(s Scene, v View) error { return std.SetView(s, v) }

// SetTitle sets the scene title.
func SetTitle(s Scene, title string, size int) error { return std.SetTitle(s, title, size) }

// Draw adds wireframe geometry to the scene.
func Draw(s Scene, w *geom.Wireframe) error { return std.Draw(s, w) }

// Project maps world points to viewport pixels through the scene's
// camera.
func Project(s Scene, pts []geom.Vec3) (Projection, error) { return std.Project(s, pts) }

// Snapshot renders the scene to w.
func Snapshot(s Scene, w io.Writer) error { return std.Snapshot(s, w) }

// CloseAll closes every scene of the active backend.
func CloseAll() error { return std.CloseAll() }
