// Package particles implements the drifting particle background and its
// proximity links.
//
// A [Field] holds a fixed batch of particles over a W×H surface. Every frame
// the owner calls [Field.Step] and then [Field.Render]:
//
//   - particles drift by their velocity and respawn at a random position once
//     they leave the surface (no bouncing)
//   - particles within 90px of the pointer are nudged one pixel away from it
//   - pairs closer than 130px are joined by a line whose alpha fades to zero
//     at 130px
//
// The link pass is pairwise. Large batches switch to a bucket grid with the
// same output, see [Params.GridThreshold].
package particles
