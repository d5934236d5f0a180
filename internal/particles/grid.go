package particles

// grid buckets particle indices into square cells of the link radius so a
// pair can only link across neighbouring cells.
type grid struct {
	cell       float64
	cols, rows int
	buckets    [][]int
}

func (g *grid) rebuild(ps []Particle, w, h, cell float64) {
	g.cell = cell
	g.cols = int(w/cell) + 1
	g.rows = int(h/cell) + 1
	n := g.cols * g.rows
	if cap(g.buckets) < n {
		g.buckets = make([][]int, n)
	}
	g.buckets = g.buckets[:n]
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
	for i, p := range ps {
		cx, cy := g.cellOf(p)
		g.buckets[cy*g.cols+cx] = append(g.buckets[cy*g.cols+cx], i)
	}
}

func (g *grid) cellOf(p Particle) (int, int) {
	cx := int(p.X / g.cell)
	cy := int(p.Y / g.cell)
	if cx < 0 {
		cx = 0
	}
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}

// pairs visits each unordered pair closer than radius exactly once (j > i).
func (g *grid) pairs(ps []Particle, radius float64, fn func(a, b Particle, d float64)) {
	for i, a := range ps {
		cx, cy := g.cellOf(a)
		for y := cy - 1; y <= cy+1; y++ {
			if y < 0 || y >= g.rows {
				continue
			}
			for x := cx - 1; x <= cx+1; x++ {
				if x < 0 || x >= g.cols {
					continue
				}
				for _, j := range g.buckets[y*g.cols+x] {
					if j <= i {
						continue
					}
					if d := Distance(a, ps[j]); d < radius {
						fn(a, ps[j], d)
					}
				}
			}
		}
	}
}
