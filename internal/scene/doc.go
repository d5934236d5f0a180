// Package scene provides the primitives shared by every page effect.
//
// The package defines the small vocabulary the effects and the frontends
// agree on:
//
//   - [Vec2]: a point or displacement in page pixels
//   - [Color]: an RGB color with a separate [0,1] alpha
//   - [Surface]: a 2D drawable target (Braille canvas, raylib, ebiten)
//   - [Pointer]: the single pointer cell written by the input handler
//   - [Rect]: an axis aligned region used for hover and hit tests
//
// # Example
//
//	ptr := &scene.Pointer{}
//	field := particles.New(particles.DefaultParams(), ptr, rng)
//	field.Initialize(1280, 720)
//	ptr.MoveTo(640, 360)
//	field.Step()
//	field.Render(surface)
//
// # Thread Safety
//
// Nothing in this package is synchronized. A frontend owns one frame loop and
// every read and write of a [Pointer] happens on that loop.
package scene
