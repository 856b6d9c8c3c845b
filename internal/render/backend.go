package render

import (
	"io"

	"github.com/san-kum/scene3d/internal/geom"
)

// DefaultTitleSize is the title font size used when a caller does not
// specify one.
const DefaultTitleSize = 40

// Scene is an opaque handle for one created 3D scene. The concrete type
// belongs to the engine that created it; BackendName identifies the
// owner so a binding can reject scenes it did not create.
type Scene interface {
	BackendName() string
	Size() (width, height int)
}

// FigureConfig describes a scene to create. Width and Height are in
// pixels; engines with coarser output map them down. The zero
// Background is black. Handle is an optional caller-supplied
// identifier, zero when unset.
type FigureConfig struct {
	Width      int
	Height     int
	Background geom.Color
	Handle     int
}

// View is a partial camera configuration. Nil fields mean "leave that
// aspect of the view unchanged"; they are passed through to the engine
// as unset, not as defaults.
type View struct {
	Azimuth    *float64
	Elevation  *float64
	FocalPoint *geom.Vec3
	Distance   *float64
}

// Float returns a pointer to v, for building View literals.
func Float(v float64) *float64 { return &v }

// Vec returns a pointer to v, for View focal points.
func Vec(v geom.Vec3) *geom.Vec3 { return &v }

// ProjectedPoint is one world point mapped to viewport pixels.
type ProjectedPoint struct {
	X, Y    int
	Depth   float64
	Visible bool
}

// Projection is the result of projecting world points through a
// scene's camera.
type Projection []ProjectedPoint

// Backend is the capability contract a rendering engine must satisfy.
// All scene-taking operations must reject scenes created by another
// backend with an error wrapping ErrForeignScene.
type Backend interface {
	// Name returns the registry name of the engine.
	Name() string

	// NewScene creates an empty scene.
	NewScene(cfg FigureConfig) (Scene, error)

	// Draw adds wireframe geometry to a scene.
	Draw(s Scene, w *geom.Wireframe) error

	// SetView applies the set fields of v to the scene's camera.
	SetView(s Scene, v View) error

	// SetTitle sets the scene title. size is a font size in points.
	SetTitle(s Scene, title string, size int) error

	// Project maps world points to viewport pixels through the
	// scene's current camera.
	Project(s Scene, pts []geom.Vec3) (Projection, error)

	// Snapshot renders the scene to w in the engine's native output
	// format.
	Snapshot(s Scene, w io.Writer) error

	// CheckScene reports whether the scene belongs to this backend
	// and is still open.
	CheckScene(s Scene) error

	// CloseAll closes every scene the engine has created. Closed
	// scenes fail CheckScene afterwards.
	CloseAll() error
}

// Factory produces a bound engine instance. It is invoked on every
// backend switch; a failure means the engine could not initialize and
// surfaces as ErrBackendLoad.
type Factory func() (Backend, error)
