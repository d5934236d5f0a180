package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/coreforge/internal/experiment"
	"github.com/san-kum/coreforge/internal/particles"
	"github.com/san-kum/coreforge/internal/storage"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, st, err := setup(cmd)
	if err != nil {
		return err
	}

	var sc *experiment.Scenario
	label := pointer
	if scenario != "" {
		sc, err = experiment.LoadScenario(scenario)
		if err != nil {
			return err
		}
		width, height = sc.Width, sc.Height
		frames = sc.Frames()
		label = "scenario"
		if runName == "" {
			runName = sc.Name
		}
	}
	if runName == "" {
		runName = pointer
	}

	reg := experiment.NewRegistry()
	expCfg := experiment.Config{
		Name:    runName,
		Params:  cfg.Particles.Params(),
		Width:   width,
		Height:  height,
		Frames:  frames,
		Seed:    cfg.Seed,
		Pointer: pointer,
	}
	exp, err := experiment.New(expCfg, reg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runs > 1 && sc == nil {
		return runEnsemble(ctx, st, expCfg, label)
	}

	fmt.Printf("running %s for %d frames...\n", runName, frames)
	start := time.Now()
	if step := frames / 10; step > 0 {
		exp.OnFrame = func(i int, _ particles.FrameStats) {
			if (i+1)%step == 0 {
				fmt.Printf("  %3d%%\n", (i+1)*100/frames)
			}
		}
	}

	var result *experiment.Result
	if sc != nil {
		result, err = exp.RunScenario(ctx, sc, reg)
	} else {
		result, err = exp.Run(ctx)
	}
	if err != nil && !errors.Is(err, experiment.ErrCanceled) {
		return err
	}
	if result.Canceled {
		fmt.Printf("interrupted after %d frames, saving partial run\n", len(result.Frames))
	}

	runID, err := st.Save(storage.RunMetadata{
		Name:      runName,
		Seed:      cfg.Seed,
		Width:     result.Width,
		Height:    result.Height,
		Pointer:   label,
		Particles: cfg.Particles.Count,
		Canceled:  result.Canceled,
		Metrics:   result.Metrics,
	}, result.Frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, m[name])
	}
}

// runEnsemble runs one experiment per seed concurrently and stores each.
func runEnsemble(ctx context.Context, st *storage.Store, cfg experiment.Config, label string) error {
	fmt.Printf("running %d x %s for %d frames...\n", runs, cfg.Name, cfg.Frames)
	start := time.Now()

	results, err := experiment.NewEnsemble(cfg, runs).Run(ctx)
	if err != nil && !errors.Is(err, experiment.ErrCanceled) {
		return err
	}
	for i, res := range results {
		if res == nil {
			continue
		}
		id, err := st.Save(storage.RunMetadata{
			Name:      fmt.Sprintf("%s-s%d", cfg.Name, cfg.Seed+int64(i)),
			Seed:      cfg.Seed + int64(i),
			Width:     res.Width,
			Height:    res.Height,
			Pointer:   label,
			Particles: cfg.Params.Count,
			Canceled:  res.Canceled,
			Metrics:   res.Metrics,
		}, res.Frames)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	fmt.Printf("completed in %v\n", time.Since(start))
	printMetrics(experiment.MeanMetrics(results))
	return nil
}

func sweepRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points, best, err := experiment.Sweep(ctx, experiment.Config{
		Name:    "sweep",
		Params:  cfg.Particles.Params(),
		Width:   sweepW,
		Height:  sweepH,
		Frames:  sweepFrames,
		Seed:    cfg.Seed,
		Pointer: sweepPtr,
	}, sweepParam, sweepValues, sweepMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(sweepParam), strings.ToUpper(sweepMetric))
	data := make([]float64, len(points))
	for i, p := range points {
		mark := ""
		if p.Value == best {
			mark = "  <- lowest"
		}
		fmt.Fprintf(w, "%.2f\t%.4f%s\n", p.Value, p.Metric, mark)
		data[i] = p.Metric
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(data) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(data, asciigraph.Height(8), asciigraph.Caption(sweepMetric+" by "+sweepParam)))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tSIZE\tPOINTER\tPARTICLES\tMEAN LINKS")

	for _, run := range runs {
		id := run.ID
		if run.Canceled {
			id += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0fx%.0f\t%s\t%d\t%.1f\n",
			id,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Width, run.Height,
			run.Pointer,
			run.Particles,
			run.Metrics["mean_links"],
		)
	}

	return w.Flush()
}

func frameSeries(frames []particles.FrameStats, name string) ([]float64, error) {
	out := make([]float64, len(frames))
	for i, f := range frames {
		switch name {
		case "links":
			out[i] = float64(f.Links)
		case "resets":
			out[i] = float64(f.Resets)
		case "repelled":
			out[i] = float64(f.Repelled)
		case "alpha":
			out[i] = f.MeanAlpha
		default:
			return nil, fmt.Errorf("unknown series: %s (available: links, resets, repelled, alpha)", name)
		}
	}
	return out, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no frames", meta.ID)
	}
	data, err := frameSeries(frames, series)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: %s per frame", meta.ID, series)),
	)
	fmt.Println(graph)

	fmt.Println()
	fmt.Println(strings.Repeat("─", 40))
	names := make([]string, 0, len(meta.Metrics))
	for name := range meta.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-14s %.4f\n", name, meta.Metrics[name])
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if output == "" {
		return st.ExportJSON(os.Stdout, args[0])
	}
	if err := st.ExportJSONFile(output, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", output)
	return nil
}
