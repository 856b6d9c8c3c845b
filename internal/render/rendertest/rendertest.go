// Package rendertest verifies an engine against the behavior every
// render.Backend must share: scene ownership, close semantics, and
// non-empty snapshots. Engine test suites call Run with a factory for a
// fresh backend.
package rendertest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

var cfg = render.FigureConfig{Width: 800, Height: 600}

// Run exercises the backend contract. factory must return a fresh,
// independent engine instance on each call.
func Run(t *testing.T, factory func() render.Backend) {
	t.Run("scene lifecycle", func(t *testing.T) {
		b := factory()
		s, err := b.NewScene(cfg)
		if err != nil {
			t.Fatalf("NewScene: %v", err)
		}
		if err := b.CheckScene(s); err != nil {
			t.Errorf("fresh scene should pass CheckScene: %v", err)
		}
		if err := b.Draw(s, geom.Cube(2)); err != nil {
			t.Errorf("Draw: %v", err)
		}
		if err := b.SetView(s, render.View{Azimuth: render.Float(45)}); err != nil {
			t.Errorf("SetView: %v", err)
		}
		if err := b.SetTitle(s, "t", render.DefaultTitleSize); err != nil {
			t.Errorf("SetTitle: %v", err)
		}

		var buf bytes.Buffer
		if err := b.Snapshot(s, &buf); err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if buf.Len() == 0 {
			t.Error("snapshot should produce output")
		}
	})

	t.Run("rejects foreign scenes", func(t *testing.T) {
		b, other := factory(), factory()
		s, err := other.NewScene(cfg)
		if err != nil {
			t.Fatalf("NewScene: %v", err)
		}
		if err := b.CheckScene(s); !errors.Is(err, render.ErrForeignScene) {
			t.Errorf("expected ErrForeignScene for another instance's scene, got %v", err)
		}
		if err := b.SetView(s, render.View{}); !errors.Is(err, render.ErrForeignScene) {
			t.Errorf("SetView should reject a foreign scene, got %v", err)
		}
	})

	t.Run("close all invalidates scenes", func(t *testing.T) {
		b := factory()
		s, err := b.NewScene(cfg)
		if err != nil {
			t.Fatalf("NewScene: %v", err)
		}
		if err := b.CloseAll(); err != nil {
			t.Fatalf("CloseAll: %v", err)
		}
		if err := b.CheckScene(s); !errors.Is(err, render.ErrClosedScene) {
			t.Errorf("expected ErrClosedScene after CloseAll, got %v", err)
		}
	})
}
