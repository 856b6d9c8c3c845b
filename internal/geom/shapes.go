package geom

import (
	"fmt"
	"math"
)

// ShapeNames lists the stock wireframes, in menu order.
func ShapeNames() []string {
	return []string{"cube", "sphere", "axes", "grid"}
}

// Shape builds a stock wireframe by name.
func Shape(name string) (*Wireframe, error) {
	switch name {
	case "cube":
		return Cube(2), nil
	case "sphere":
		return Sphere(1.5, 8, 12), nil
	case "axes":
		return Axes(2), nil
	case "grid":
		return Grid(8, 0.5), nil
	}
	return nil, fmt.Errorf("geom: unknown shape %q (have %v)", name, ShapeNames())
}

// Cube returns the 12 edges of an axis-aligned cube centered on the
// origin.
func Cube(size float64) *Wireframe {
	w, s := NewWireframe(), size/2
	v := []Vec3{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
	}
	idx := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range idx {
		w.AddEdge(v[e[0]], v[e[1]])
	}
	return w
}

// Axes returns the three coordinate axes from the origin.
func Axes(length float64) *Wireframe {
	w, o := NewWireframe(), Vec3{}
	w.AddEdge(o, Vec3{X: length})
	w.AddEdge(o, Vec3{Y: length})
	w.AddEdge(o, Vec3{Z: length})
	return w
}

// Sphere returns a latitude/longitude wireframe sphere centered on the
// origin. rings and segments control mesh density.
func Sphere(radius float64, rings, segments int) *Wireframe {
	w := NewWireframe()
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	at := func(ring, seg int) Vec3 {
		phi := math.Pi * float64(ring) / float64(rings)
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		return Vec3{
			X: radius * math.Sin(phi) * math.Cos(theta),
			Y: radius * math.Cos(phi),
			Z: radius * math.Sin(phi) * math.Sin(theta),
		}
	}
	for ring := 0; ring <= rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			if ring < rings {
				w.AddEdge(at(ring, seg), at(ring+1, seg))
			}
			if ring > 0 && ring < rings {
				w.AddEdge(at(ring, seg), at(ring, (seg+1)%segments))
			}
		}
	}
	return w
}

// Grid returns an n×n line grid on the horizontal plane.
func Grid(n int, spacing float64) *Wireframe {
	w := NewWireframe()
	half := float64(n) * spacing / 2
	for i := 0; i <= n; i++ {
		d := -half + float64(i)*spacing
		w.AddEdge(Vec3{X: -half, Z: d}, Vec3{X: half, Z: d})
		w.AddEdge(Vec3{X: d, Z: -half}, Vec3{X: d, Z: half})
	}
	return w
}
