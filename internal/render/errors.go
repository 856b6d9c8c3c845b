package render

import "errors"

// Error taxonomy for backend binding and delegation. Errors raised by
// an engine's own operations pass through the facade verbatim.
var (
	// ErrUnknownBackend indicates a name outside the registered set.
	ErrUnknownBackend = errors.New("render: unknown 3d backend")

	// ErrBackendLoad indicates a registered engine failed to
	// initialize. The previous binding stays active.
	ErrBackendLoad = errors.New("render: 3d backend failed to load")

	// ErrNoBackend indicates no engine is registered at all.
	ErrNoBackend = errors.New("render: no 3d backend registered")

	// ErrForeignScene indicates a scene handed to a backend that did
	// not create it.
	ErrForeignScene = errors.New("render: scene does not belong to the active backend")

	// ErrClosedScene indicates a scene used after CloseAll.
	ErrClosedScene = errors.New("render: scene is closed")
)
