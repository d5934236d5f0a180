package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/experiment"
	"github.com/san-kum/coreforge/internal/gui"
	"github.com/san-kum/coreforge/internal/storage"
	"github.com/san-kum/coreforge/internal/tui"
	"github.com/san-kum/coreforge/internal/viz"
	"github.com/san-kum/coreforge/internal/web"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	seed       int64
	debug      bool

	// run
	frames   int
	width    float64
	height   float64
	pointer  string
	scenario string
	runName  string
	runs     int
	output   string

	// snapshot
	snapFrames  int
	snapPointer string
	snapW       float64
	snapH       float64
	snapOutput  string
	gifPath     string

	// plot
	series string

	// sweep
	sweepParam  string
	sweepValues []float64
	sweepMetric string
	sweepFrames int
	sweepW      float64
	sweepH      float64
	sweepPtr    string

	// send
	fromName  string
	fromEmail string
	subject   string
	message   string
	printLink bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coreforge",
		Short: "interactive portfolio page with a reactive particle field",
		RunE:  runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".coreforge", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "particle preset ("+fmt.Sprint(config.ListPresets())+")")
	pf.StringVar(&theme, "theme", "", "colour theme ("+fmt.Sprint(viz.ThemeNames())+")")
	pf.Int64Var(&seed, "seed", 0, "random seed")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log to debug.log")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the particle field headless and record frame stats",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to run")
	runCmd.Flags().Float64Var(&width, "width", 1280, "viewport width in px")
	runCmd.Flags().Float64Var(&height, "height", 800, "viewport height in px")
	runCmd.Flags().StringVar(&pointer, "pointer", "none", "pointer path")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "scenario file (yaml), overrides --frames and --pointer")
	runCmd.Flags().StringVar(&runName, "name", "", "run name")
	runCmd.Flags().IntVar(&runs, "runs", 1, "run an ensemble over consecutive seeds")

	sweepCmd := newSweepCmd()

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "links", "links, resets, repelled or alpha")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the page to SVG and optionally record a GIF",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 120, "frames to simulate before the snapshot")
	snapshotCmd.Flags().Float64Var(&snapW, "width", 1280, "viewport width in px")
	snapshotCmd.Flags().Float64Var(&snapH, "height", 800, "viewport height in px")
	snapshotCmd.Flags().StringVar(&snapPointer, "pointer", "orbit", "pointer path")
	snapshotCmd.Flags().StringVarP(&snapOutput, "output", "o", "coreforge.svg", "svg output file")
	snapshotCmd.Flags().StringVar(&gifPath, "gif", "", "also record every frame to this GIF")

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "submit a contact message",
		RunE:  sendMessage,
	}
	sendCmd.Flags().StringVar(&fromName, "name", "", "your name")
	sendCmd.Flags().StringVar(&fromEmail, "email", "", "your email")
	sendCmd.Flags().StringVar(&subject, "subject", "", "subject")
	sendCmd.Flags().StringVar(&message, "message", "", "message")
	sendCmd.Flags().BoolVar(&printLink, "print", false, "print the mailto link instead of opening a mail client")

	outboxCmd := &cobra.Command{
		Use:   "outbox",
		Short: "list contact submissions",
		RunE:  listOutbox,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the page in a raylib window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := setup(cmd)
			if err != nil {
				return err
			}
			form, err := newForm(cfg, st, contact.SystemOpener{})
			if err != nil {
				return err
			}
			gui.Run(cfg, form)
			return nil
		},
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "open the page in an ebiten window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := setup(cmd)
			if err != nil {
				return err
			}
			form, err := newForm(cfg, st, contact.SystemOpener{})
			if err != nil {
				return err
			}
			return web.Run(cfg, form)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list particle presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s count=%d speed=%.2f link=%.0fpx repel=%.0fpx\n",
					name, p.Count, p.Speed, p.LinkRadius, p.RepelRadius)
			}
		},
	}

	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "list pointer paths for run and snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range experiment.NewRegistry().ListPaths() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "config-init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "coreforge.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, snapshotCmd, sendCmd, outboxCmd,
		guiCmd, playCmd, presetsCmd, pathsCmd, configInitCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one particle parameter and compare a metric",
		RunE:  sweepRuns,
	}
	f := cmd.Flags()
	f.StringVar(&sweepParam, "param", "link_radius", "count, speed, link_radius or repel_radius")
	f.Float64SliceVar(&sweepValues, "values", []float64{60, 90, 130, 170}, "parameter values")
	f.StringVar(&sweepMetric, "metric", "mean_links", "metric to compare")
	f.IntVar(&sweepFrames, "frames", 300, "frames per run")
	f.Float64Var(&sweepW, "width", 1280, "viewport width in px")
	f.Float64Var(&sweepH, "height", 800, "viewport height in px")
	f.StringVar(&sweepPtr, "pointer", "orbit", "pointer path")
	return cmd
}

// loadConfig builds the config: defaults or a preset, then the config file,
// then any flag the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			loaded.Particles = cfg.Particles
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*config.Config, *storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

// newForm wires the live mail service, the opener for the fallback and the
// outbox under the data directory.
func newForm(cfg *config.Config, st *storage.Store, opener contact.Opener) (*contact.Form, error) {
	client, err := contact.NewClient(cfg.Contact.Service(), nil)
	if err != nil {
		return nil, err
	}
	form := contact.NewForm(cfg.Contact.To, cfg.Contact.Owner, client, opener)
	form.Outbox = st.Outbox()
	return form, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, st, err := setup(cmd)
	if err != nil {
		return err
	}
	if debug {
		f, err := tea.LogToFile("debug.log", "coreforge")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	form, err := newForm(cfg, st, contact.SystemOpener{})
	if err != nil {
		return err
	}
	return tui.Run(cfg, form)
}
