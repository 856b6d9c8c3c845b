// Package render is a facade over interchangeable 3D rendering engines.
//
// Callers create scenes, set camera views, and set titles without
// knowing which engine is active:
//
//   - [Backend]: the capability contract every engine satisfies
//   - [Register]: engine packages register a factory from init()
//   - [Context]: one active backend binding, swappable at runtime
//   - [With]: scoped backend override with guaranteed restoration
//
// # Selecting a backend
//
// The default backend resolves once, on first use: an explicit
// [SetBackend] call wins, then the SCENE3D_3D_BACKEND environment
// variable, then the terminal engine. Switching backends replaces the
// whole binding atomically; on a failed switch the previous binding
// stays active.
//
//	fig, err := render.CreateFigure(render.FigureConfig{Width: 800, Height: 600})
//	render.SetView(fig, render.View{Azimuth: render.Float(45)})
//
// Scenes belong to the backend that created them. Handing a scene to a
// different backend fails with [ErrForeignScene].
package render
