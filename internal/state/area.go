package state

// Area represents a rectangular area on the canvas
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// CanvasArea returns the area of a width×height canvas anchored at the origin.
func CanvasArea(width, height float32) Area {
	return Area{Width: width, Height: height}
}

// Contains reports whether p lies inside the area, edges included.
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Overlaps reports whether the two areas share any point.
func (a Area) Overlaps(b Area) bool {
	return !(a.X+a.Width < b.X || b.X+b.Width < a.X ||
		a.Y+a.Height < b.Y || b.Y+b.Height < a.Y)
}

// Inset grows the area by pad on every side. A negative pad shrinks it.
func (a Area) Inset(pad float32) Area {
	return Area{
		X:      a.X - pad,
		Y:      a.Y - pad,
		Width:  a.Width + 2*pad,
		Height: a.Height + 2*pad,
	}
}

// BoundsOf calculates the bounding box of a point set.
func BoundsOf(points []Point) Area {
	if len(points) == 0 {
		return Area{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y

	for _, point := range points {
		if point.X < minX {
			minX = point.X
		}
		if point.X > maxX {
			maxX = point.X
		}
		if point.Y < minY {
			minY = point.Y
		}
		if point.Y > maxY {
			maxY = point.Y
		}
	}

	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
