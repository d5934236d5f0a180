// Package viz renders the page into a terminal.
//
//   - [Canvas]: braille dot grid that implements scene.Surface, shading each
//     cell by the strongest alpha drawn into it
//   - [Theme]: palettes shared with the window frontends
//   - [Styles], [ProgressBar], [SparklineChart], [Dots]: lipgloss helpers for
//     the header, slider and stats panels
package viz
