// Package carousel implements the certificate slider: a track of slides
// shown a few at a time, with prev/next stepping, page dots and an
// auto-advance that pauses while the pointer hovers the slider.
//
// The controller never creates slides. Frontends read [Controller.Offset]
// to translate the track and [Controller.Dots] to highlight the page dot.
package carousel
