package scene

// Op is one recorded draw call.
type Op struct {
	Kind   string // "clear", "circle" or "line"
	X0, Y0 float64
	X1, Y1 float64
	Radius float64
	Width  float64
	Color  Color
}

// Recorder is a Surface that keeps every call. Headless runs and tests use
// it in place of a real canvas.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: "clear"})
}

func (r *Recorder) FillCircle(x, y, rad float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X0: x, Y0: y, Radius: rad, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

type tee []Surface

// Tee returns a Surface that repeats every call on each of surfaces in order.
func Tee(surfaces ...Surface) Surface { return tee(surfaces) }

func (t tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}

func (t tee) FillCircle(x, y, r float64, c Color) {
	for _, s := range t {
		s.FillCircle(x, y, r, c)
	}
}

func (t tee) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	for _, s := range t {
		s.StrokeLine(x0, y0, x1, y1, width, c)
	}
}
