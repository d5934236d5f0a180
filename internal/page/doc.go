// Package page assembles the portfolio page: particle background, cursor,
// typing hero, scroll state, reveal, tilted project cards, certificate
// slider and contact form, all driven from one frame loop.
package page
