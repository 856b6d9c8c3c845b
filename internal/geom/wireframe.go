package geom

// Edge is a line segment between two world-space points. A degenerate
// edge (A == B) renders as a single point.
type Edge struct {
	A, B Vec3
}

// Wireframe is an edge list, the unit of geometry backends draw.
type Wireframe struct {
	Edges []Edge
}

func NewWireframe() *Wireframe {
	return &Wireframe{Edges: make([]Edge, 0)}
}

func (w *Wireframe) AddEdge(a, b Vec3) { w.Edges = append(w.Edges, Edge{a, b}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Clear()            { w.Edges = w.Edges[:0] }
