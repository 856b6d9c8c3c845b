package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
	"github.com/san-kum/scene3d/internal/render/rendertest"
)

var cfg = render.FigureConfig{Width: 800, Height: 600}

func TestRegistered(t *testing.T) {
	if !render.Registered(Name) {
		t.Fatalf("importing the package should register %q", Name)
	}
}

func TestContract(t *testing.T) {
	rendertest.Run(t, func() render.Backend { return New() })
}

func TestDocumentStructure(t *testing.T) {
	b := New()
	s, err := b.NewScene(render.FigureConfig{Width: 640, Height: 480, Background: geom.Black})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Draw(s, geom.Cube(2)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := b.Snapshot(s, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()

	if !strings.Contains(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480"`) {
		t.Error("document should declare the figure size")
	}
	if !strings.Contains(doc, `fill="#000000"`) {
		t.Error("document should paint the background color")
	}
	if !strings.Contains(doc, "<line ") {
		t.Error("a cube should produce line elements")
	}
	if !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Error("document should be closed")
	}
}

func TestTitleEscaped(t *testing.T) {
	b := New()
	s, err := b.NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetTitle(s, "a<b & c", 28); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := b.Snapshot(s, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, "a&lt;b &amp; c") {
		t.Error("title should be XML-escaped")
	}
	if !strings.Contains(doc, `font-size="28"`) {
		t.Error("title should use the requested size")
	}
}

func TestSnapshotFollowsView(t *testing.T) {
	b := New()
	s, err := b.NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Draw(s, geom.Cube(2)); err != nil {
		t.Fatal(err)
	}

	var before bytes.Buffer
	if err := b.Snapshot(s, &before); err != nil {
		t.Fatal(err)
	}
	if err := b.SetView(s, render.View{Azimuth: render.Float(10), Elevation: render.Float(60)}); err != nil {
		t.Fatal(err)
	}
	var after bytes.Buffer
	if err := b.Snapshot(s, &after); err != nil {
		t.Fatal(err)
	}
	if before.String() == after.String() {
		t.Error("changing the view should change the rendered document")
	}
}
