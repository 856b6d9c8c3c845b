package geom

import "math"

// Camera is an orbital camera parameterized the way callers describe a
// view: an azimuth/elevation orbit around a focal point at a given
// distance. Angles are in degrees; azimuth rotates about the vertical
// axis, elevation is measured up from the horizontal plane.
type Camera struct {
	Azimuth    float64
	Elevation  float64
	FocalPoint Vec3
	Distance   float64
	Near       float64
}

func NewCamera() *Camera {
	return &Camera{Azimuth: 45, Elevation: 30, Distance: 6, Near: 0.1}
}

// Position returns the camera's location in world space.
func (c *Camera) Position() Vec3 {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	dir := Vec3{
		X: math.Cos(el) * math.Sin(az),
		Y: math.Sin(el),
		Z: math.Cos(el) * math.Cos(az),
	}
	return c.FocalPoint.Add(dir.Scale(c.Distance))
}

// basis returns the view-space axes: forward toward the focal point,
// right, and up.
func (c *Camera) basis() (forward, right, up Vec3) {
	forward = c.FocalPoint.Sub(c.Position()).Normalize()
	worldUp := Vec3{0, 1, 0}
	if math.Abs(forward.Dot(worldUp)) > 0.999 {
		// Looking straight up or down; pick another up reference.
		worldUp = Vec3{0, 0, 1}
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Project converts a world-space point to pixel coordinates on a w×h
// viewport. It returns the pixel position, the view-space depth, and
// whether the point lands inside the viewport. Points at or behind the
// near plane are reported as not visible with their depth preserved.
func (c *Camera) Project(p Vec3, w, h int) (x, y int, depth float64, visible bool) {
	forward, right, up := c.basis()
	rel := p.Sub(c.Position())
	depth = rel.Dot(forward)
	if depth <= c.Near {
		return 0, 0, depth, false
	}
	focal := float64(h)
	if w < h {
		focal = float64(w)
	}
	x = w/2 + int(rel.Dot(right)/depth*focal)
	y = h/2 - int(rel.Dot(up)/depth*focal)
	return x, y, depth, x >= 0 && x < w && y >= 0 && y < h
}
