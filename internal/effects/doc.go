// Package effects holds the small page behaviours around the particle field
// and the slider: the trailing cursor and spotlight, scroll progress and nav
// state, the typing loop, scroll reveal and card tilt.
//
// Everything here is a pure state machine fed with pointer positions, scroll
// offsets or elapsed time. Nothing draws.
package effects
