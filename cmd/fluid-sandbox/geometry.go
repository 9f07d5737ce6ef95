package main

// Minimal float rect for hit testing; scenes build these per tick
// from the container size.
type rect struct {
	x, y, width, height float64
}

func (self rect) contains(px, py float64) bool {
	return px >= self.x && px < self.x+self.width &&
		py >= self.y && py < self.y+self.height
}
