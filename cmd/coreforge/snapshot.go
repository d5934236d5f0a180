package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/coreforge/internal/experiment"
	"github.com/san-kum/coreforge/internal/export"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

// snapshot plays the page headless along a pointer path, then writes the
// last frame as SVG. With --gif every frame is also recorded.
func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := experiment.NewRegistry().GetPath(snapPointer)
	if err != nil {
		return err
	}

	s := page.New(cfg, nil)
	s.Resize(snapW, snapH)
	th := viz.GetTheme(cfg.Theme)

	var rec *export.GIFRecorder
	if gifPath != "" {
		bgR, bgG, bgB := viz.RGB(th.Background)
		fgR, fgG, fgB := viz.RGB(th.Primary)
		rec = export.NewGIFRecorder(int(snapW/2), int(snapH/2), snapW, snapH,
			color.RGBA{R: bgR, G: bgG, B: bgB, A: 255},
			color.RGBA{R: fgR, G: fgG, B: fgB, A: 255})
	}

	for i := 0; i < snapFrames; i++ {
		if x, y, inside := path(i, snapW, snapH); inside {
			s.MovePointer(x, y)
		} else {
			s.LeavePointer()
		}
		s.Frame(cfg.FrameDuration())
		if rec != nil {
			s.Draw(rec)
			s.DrawOverlay(rec)
		}
	}

	last := &scene.Recorder{}
	links := s.Draw(last)
	s.DrawOverlay(last)
	svg := export.SceneToSVG(last, snapW, snapH, th)
	if err := os.WriteFile(snapOutput, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d particles, %d links)\n", snapOutput, s.Field.Len(), links)

	if rec != nil {
		if err := rec.Save(gifPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames)\n", gifPath, rec.Frames())
	}
	return nil
}
