package term

import "strings"

// Braille cells pack a 2×4 dot grid per character, so a cols×rows
// canvas offers (cols*2)×(rows*4) addressable pixels. Dot-to-bit
// layout (Unicode offset 0x2800):
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a monochrome braille pixel buffer.
type canvas struct {
	cols, rows int
	cells      []rune
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = 0x2800
	}
}

// pixelSize returns the addressable resolution in sub-pixels.
func (c *canvas) pixelSize() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// set turns on the sub-pixel at (x, y). Out-of-range coordinates are
// ignored so line clipping stays trivial.
func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] |= dotBits[y%4][x%2]
}

// line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.rows * (c.cols + 1))
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(c.cells[row*c.cols+col])
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
