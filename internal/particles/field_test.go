package particles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/coreforge/internal/scene"
)

const (
	testW = 1280.0
	testH = 720.0
)

func newTestField(seed int64, ptr *scene.Pointer) *Field {
	f := New(DefaultParams(), ptr, rand.New(rand.NewSource(seed)))
	f.Initialize(testW, testH)
	return f
}

// nextReset replays the field's random stream to predict where the next
// reset will place a particle.
func nextReset(seed int64, consumed int, w, h float64) Particle {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < consumed; i++ {
		r.Float64()
	}
	p := DefaultParams()
	return Particle{
		X:     r.Float64() * w,
		Y:     r.Float64() * h,
		VX:    (r.Float64() - 0.5) * 2 * p.Speed,
		VY:    (r.Float64() - 0.5) * 2 * p.Speed,
		Alpha: r.Float64()*p.AlphaSpan + p.AlphaMin,
	}
}

func TestInitialize_Count(t *testing.T) {
	f := newTestField(1, &scene.Pointer{})
	if f.Len() != DefaultCount {
		t.Fatalf("expected %d particles, got %d", DefaultCount, f.Len())
	}

	sizes := [][2]float64{{800, 600}, {1, 1}, {0, 0}, {3840, 2160}}
	for _, sz := range sizes {
		f.Resize(sz[0], sz[1])
		if f.Len() != DefaultCount {
			t.Errorf("resize %v: expected %d particles, got %d", sz, DefaultCount, f.Len())
		}
		w, h := f.Size()
		if w != sz[0] || h != sz[1] {
			t.Errorf("resize %v: size = %v x %v", sz, w, h)
		}
	}
}

func TestInitialize_Ranges(t *testing.T) {
	f := newTestField(7, nil)
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= testW || p.Y < 0 || p.Y >= testH {
			t.Errorf("particle %d out of [0,W)x[0,H): %+v", i, p)
		}
		if math.Abs(p.VX) > DefaultSpeed || math.Abs(p.VY) > DefaultSpeed {
			t.Errorf("particle %d velocity too large: %+v", i, p)
		}
		if p.Alpha < DefaultAlphaMin || p.Alpha >= DefaultAlphaMin+DefaultAlphaSpan {
			t.Errorf("particle %d alpha out of range: %f", i, p.Alpha)
		}
	}
}

func TestResize_DiscardsOldBatch(t *testing.T) {
	f := newTestField(3, nil)
	before := f.Particles()
	f.Resize(200, 100)
	for i, p := range f.Particles() {
		if p.X >= 200 || p.Y >= 100 {
			t.Fatalf("particle %d not reinitialized inside new bounds: %+v", i, p)
		}
		if p == before[i] {
			t.Errorf("particle %d survived the resize unchanged", i)
		}
	}
}

func TestStep_BoundsInvariant(t *testing.T) {
	ptr := &scene.Pointer{}
	f := newTestField(42, ptr)

	corners := []scene.Vec2{{X: 0, Y: 0}, {X: testW, Y: 0}, {X: testW, Y: testH}, {X: 0, Y: testH}, {X: testW / 2, Y: testH / 2}}
	for step := 0; step < 3000; step++ {
		c := corners[(step/200)%len(corners)]
		ptr.MoveTo(c.X, c.Y)
		f.Step()
		for i, p := range f.particles {
			if p.X < 0 || p.X > testW || p.Y < 0 || p.Y > testH {
				t.Fatalf("step %d: particle %d out of bounds: %+v", step, i, p)
			}
		}
	}
	if f.Len() != DefaultCount {
		t.Errorf("count changed to %d", f.Len())
	}
}

func TestStep_ZeroDistanceRepulsion(t *testing.T) {
	ptr := &scene.Pointer{X: 400, Y: 300}
	f := newTestField(5, ptr)
	f.particles[0] = Particle{X: 400, Y: 300, Alpha: 0.1}

	f.Step()

	p := f.particles[0]
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		t.Fatalf("zero distance produced invalid position %+v", p)
	}
	if p.X != 400 || p.Y != 300 {
		t.Errorf("expected no displacement, got %+v", p)
	}
}

func TestStep_RepulsionImpulse(t *testing.T) {
	tests := []struct {
		name   string
		ptr    scene.Vec2
		wantX  float64
		wantY  float64
		pushed bool
	}{
		{"inside radius", scene.Vec2{X: 103, Y: 104}, 99.4, 99.2, true},
		{"at radius", scene.Vec2{X: 190, Y: 100}, 100, 100, false},
		{"far away", scene.Vec2{X: 900, Y: 600}, 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := &scene.Pointer{X: tt.ptr.X, Y: tt.ptr.Y}
			f := newTestField(9, ptr)
			f.particles = []Particle{{X: 100, Y: 100, Alpha: 0.1}}

			st := f.Step()

			p := f.particles[0]
			if math.Abs(p.X-tt.wantX) > 1e-9 || math.Abs(p.Y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%f, %f), want (%f, %f)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if (st.Repelled == 1) != tt.pushed {
				t.Errorf("repelled = %d, pushed = %v", st.Repelled, tt.pushed)
			}
		})
	}
}

func TestStep_ResetInsteadOfBounce(t *testing.T) {
	const seed = 11
	f := newTestField(seed, &scene.Pointer{X: -1000, Y: -1000})
	f.particles = []Particle{{X: testW - 0.05, Y: 10, VX: 0.1, VY: 0, Alpha: 0.1}}

	st := f.Step()

	want := nextReset(seed, 5*DefaultCount, testW, testH)
	got := f.particles[0]
	if st.Resets != 1 {
		t.Fatalf("expected 1 reset, got %d", st.Resets)
	}
	if got != want {
		t.Errorf("particle = %+v, want fresh reset %+v", got, want)
	}
}

// A particle that leaves the surface is reset first, then repelled from its
// new position in the same frame.
func TestStep_ResetThenRepelSameFrame(t *testing.T) {
	const seed = 21
	ptr := &scene.Pointer{}
	f := newTestField(seed, ptr)
	f.particles = []Particle{{X: 0.01, Y: 50, VX: -0.1, VY: 0, Alpha: 0.1}}

	spawn := nextReset(seed, 5*DefaultCount, testW, testH)
	ptr.MoveTo(spawn.X+3, spawn.Y+4)

	st := f.Step()

	got := f.particles[0]
	if st.Resets != 1 || st.Repelled != 1 {
		t.Fatalf("expected one reset and one repel, got %+v", st)
	}
	wantX := clamp(spawn.X-0.6, 0, testW)
	wantY := clamp(spawn.Y-0.8, 0, testH)
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
		t.Errorf("position = (%f, %f), want (%f, %f)", got.X, got.Y, wantX, wantY)
	}
	if got.Alpha != spawn.Alpha || got.VX != spawn.VX {
		t.Errorf("reset attributes not kept: %+v vs %+v", got, spawn)
	}
}

func TestConnected(t *testing.T) {
	f := newTestField(1, nil)
	tests := []struct {
		name string
		a, b Particle
		want bool
	}{
		{"same point", Particle{X: 5, Y: 5}, Particle{X: 5, Y: 5}, true},
		{"just inside", Particle{X: 0, Y: 0}, Particle{X: 129.9, Y: 0}, true},
		{"at threshold", Particle{X: 0, Y: 0}, Particle{X: 78, Y: 104}, false},
		{"far", Particle{X: 0, Y: 0}, Particle{X: 500, Y: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, ba := f.Connected(tt.a, tt.b), f.Connected(tt.b, tt.a)
			if ab != ba {
				t.Fatalf("asymmetric: a-b=%v b-a=%v", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("Connected = %v, want %v", ab, tt.want)
			}
		})
	}
}

func TestLinkAlpha(t *testing.T) {
	f := newTestField(1, nil)
	tests := []struct {
		d, want float64
	}{
		{0, 0.07},
		{65, 0.035},
		{130, 0},
		{500, 0},
	}
	for _, tt := range tests {
		if got := f.LinkAlpha(tt.d); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LinkAlpha(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	f := newTestField(1, nil)
	f.particles = []Particle{
		{X: 10, Y: 10, Alpha: 0.1},
		{X: 10, Y: 75, Alpha: 0.2},
		{X: 400, Y: 400, Alpha: 0.15},
	}

	var rec scene.Recorder
	links := f.Render(&rec)

	if links != 1 {
		t.Fatalf("expected 1 link, got %d", links)
	}
	if rec.Count("circle") != 3 || rec.Count("line") != 1 {
		t.Fatalf("unexpected ops: %d circles, %d lines", rec.Count("circle"), rec.Count("line"))
	}
	for _, op := range rec.Ops {
		switch op.Kind {
		case "circle":
			if op.Radius != DefaultRadius {
				t.Errorf("circle radius %f", op.Radius)
			}
		case "line":
			if op.Width != DefaultLineWidth {
				t.Errorf("line width %f", op.Width)
			}
			if math.Abs(op.Color.A-0.035) > 1e-9 {
				t.Errorf("line alpha = %f, want 0.035", op.Color.A)
			}
		}
	}
	if f.Last().Links != 1 {
		t.Errorf("Last().Links = %d", f.Last().Links)
	}
}

func TestGridMatchesPairwise(t *testing.T) {
	params := DefaultParams()
	params.Count = 900
	params.GridThreshold = 1

	grid := New(params, nil, rand.New(rand.NewSource(99)))
	grid.Initialize(testW, testH)

	params.GridThreshold = 0
	pairwise := New(params, nil, rand.New(rand.NewSource(99)))
	pairwise.Initialize(testW, testH)

	collect := func(f *Field) map[[4]float64]float64 {
		out := make(map[[4]float64]float64)
		f.ForEachLink(func(a, b Particle, d float64) {
			if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
				a, b = b, a
			}
			out[[4]float64{a.X, a.Y, b.X, b.Y}] = d
		})
		return out
	}

	g, p := collect(grid), collect(pairwise)
	if len(g) == 0 {
		t.Fatal("expected some links")
	}
	if len(g) != len(p) {
		t.Fatalf("grid found %d links, pairwise %d", len(g), len(p))
	}
	for k, d := range p {
		if gd, ok := g[k]; !ok || gd != d {
			t.Errorf("pair %v missing from grid pass", k)
		}
	}
}

func BenchmarkStepRender(b *testing.B) {
	f := newTestField(1, &scene.Pointer{X: testW / 2, Y: testH / 2})
	var rec scene.Recorder
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.Clear()
		f.Step()
		f.Render(&rec)
	}
}
