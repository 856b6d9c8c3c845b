package render

import (
	"fmt"
	"os"
)

// EnvBackend names the environment variable consulted when no backend
// was chosen explicitly.
const EnvBackend = "SCENE3D_3D_BACKEND"

const fallbackBackend = "terminal"

// resolveDefault computes the initial backend name: the environment
// variable wins, then the terminal engine, then any registered engine.
// A set but unregistered environment value is a configuration error,
// not something to silently fall through.
func resolveDefault() (string, error) {
	if v := os.Getenv(EnvBackend); v != "" {
		if Registered(v) {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q (from %s)", ErrUnknownBackend, v, EnvBackend)
	}
	if Registered(fallbackBackend) {
		return fallbackBackend, nil
	}
	if names := Names(); len(names) > 0 {
		return names[0], nil
	}
	return "", ErrNoBackend
}
