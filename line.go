package pixedit

import "image"

// Line visits every integer point on the segment from (x0, y0) to (x1, y1)
// using Bresenham's algorithm. Both endpoints are included and visit is
// called exactly once per point, starting at (x0, y0). On an exact tie
// the step stays on the major axis, so (0,0)-(4,2) visits (1,0), not (1,1).
func Line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > dy {
			err += dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// LinePoints returns the points visited by Line from p0 to p1.
func LinePoints(p0, p1 image.Point) []image.Point {
	n := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
	pts := make([]image.Point, 0, n)
	Line(p0.X, p0.Y, p1.X, p1.Y, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
