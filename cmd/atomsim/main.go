package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomsim/internal/analysis"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/export"
	"github.com/san-kum/atomsim/internal/gui"
	"github.com/san-kum/atomsim/internal/logutil"
	"github.com/san-kum/atomsim/internal/scene"
	"github.com/san-kum/atomsim/internal/storage"
	"github.com/san-kum/atomsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Config sources
	configFile string
	preset     string
	isotope    string
	logLevel   string
	envFile    string
	// Live views
	frameRate int
	theme     string
	// Sampling
	atTime   float64
	dt       float64
	duration float64
	periods  float64
	samples  int
	window   float64
	// Output
	outFile   string
	svgWidth  int
	svgHeight int
	braille   bool
	gifFrames int
	gifOut    string
	// Run archive
	runsDir string
)

// main registers commands and flags, opens the interactive window when no
// subcommand is given, and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "atomsim",
		Short:        "interactive 3D model of a carbon atom",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				logutil.SetLevel(logutil.ParseLevel(logLevel))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Default to the interactive window when no command given
			gui.RunInteractive(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&isotope, "isotope", "", "isotope: 12, 13 or 14")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with ATOMSIM_* overrides")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "theme: "+strings.Join(viz.ThemeNames(), ", "))

	nucleusCmd := &cobra.Command{
		Use:   "nucleus [isotope]",
		Short: "list nucleon positions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listNucleus,
	}

	orbitCmd := &cobra.Command{
		Use:   "orbit [electron]",
		Short: "plot one electron's coordinates over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotOrbit,
	}
	orbitCmd.Flags().Float64Var(&periods, "periods", 2, "number of revolutions to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of electron motion",
		RunE:  analyzeOrbits,
	}
	analyzeCmd.Flags().IntVar(&samples, "samples", 1024, "samples per electron")
	analyzeCmd.Flags().Float64Var(&window, "time", analysis.DefaultWindow, "sampling window in seconds")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export scene snapshot to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadComposer(cmd)
			if err != nil {
				return err
			}
			return export.WriteSnapshot(os.Stdout, c, atTime)
		},
	}
	exportJSONCmd.Flags().Float64Var(&atTime, "t", 0, "scene time in seconds")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export electron trajectories to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadComposer(cmd)
			if err != nil {
				return err
			}
			return export.WriteTrajectories(os.Stdout, c, dt, duration)
		},
	}
	exportCSVCmd.Flags().Float64Var(&dt, "dt", 0.05, "sample interval")
	exportCSVCmd.Flags().Float64Var(&duration, "time", 2*math.Pi, "duration")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export projected scene to SVG",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().Float64Var(&atTime, "t", 0, "scene time in seconds")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render the terminal canvas instead of vectors")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	exportGIFCmd := &cobra.Command{
		Use:   "export-gif",
		Short: "export one animated loop to GIF",
		RunE:  exportGIF,
	}
	exportGIFCmd.Flags().StringVar(&gifOut, "out", "atom.gif", "output file")
	exportGIFCmd.Flags().IntVar(&gifFrames, "frames", export.DefaultGIFFrames, "frames per loop")
	exportGIFCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "save trajectories, snapshot and measured periods as a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadComposer(cmd)
			if err != nil {
				return err
			}
			st := storage.New(runsDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.Save(c, dt, duration)
			if err != nil {
				return err
			}
			fmt.Printf("run saved: %s\n", runID)
			return nil
		},
	}
	recordCmd.Flags().StringVar(&runsDir, "dir", "runs", "run archive directory")
	recordCmd.Flags().Float64Var(&dt, "dt", 0.05, "sample interval")
	recordCmd.Flags().Float64Var(&duration, "time", 2*math.Pi, "duration")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&runsDir, "dir", "runs", "run archive directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tISOTOPE\tELECTRONS")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, atom.Isotope(cfg.Isotope).Name(), len(cfg.Electrons))
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, nucleusCmd, orbitCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, exportGIFCmd, recordCmd, runsCmd, presetsCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: preset, then config file (overrides
// preset), then ATOMSIM_* environment, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	// LOG_LEVEL from the environment must not win over the flag
	if cmd.Flags().Changed("log-level") {
		logutil.SetLevel(logutil.ParseLevel(logLevel))
	}
	if cmd.Flags().Changed("isotope") {
		iso, err := atom.ParseIsotope(isotope)
		if err != nil {
			return nil, err
		}
		cfg.Isotope = int(iso)
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.FPS = frameRate
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logutil.Debugf("config: %s, %d electrons, theme %s", atom.Isotope(cfg.Isotope).Name(), len(cfg.Electrons), cfg.Theme)
	return cfg, nil
}

func loadComposer(cmd *cobra.Command) (*scene.Composer, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	return scene.New(opts), cfg, nil
}

func listNucleus(cmd *cobra.Command, args []string) error {
	c, _, err := loadComposer(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		iso, err := atom.ParseIsotope(args[0])
		if err != nil {
			return err
		}
		c.SelectIsotope(iso)
	}

	protons, neutrons := 0, 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tKIND\tX\tY\tZ\t|R|")
	for i, n := range c.Nucleons() {
		if n.Kind == atom.Proton {
			protons++
		} else {
			neutrons++
		}
		p := n.Position
		fmt.Fprintf(w, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n", i, n.Kind, p.X(), p.Y(), p.Z(), p.Len())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%s: %d protons, %d neutrons\n", c.Isotope().Name(), protons, neutrons)
	return nil
}

// findElectron resolves an index or a case-insensitive label.
func findElectron(c *scene.Composer, key string) (int, error) {
	if i, err := strconv.Atoi(key); err == nil {
		if _, err := c.Electron(i); err != nil {
			return 0, err
		}
		return i, nil
	}
	for i, o := range c.Electrons() {
		if strings.EqualFold(o.Label, key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no electron labelled %q", key)
}

func plotOrbit(cmd *cobra.Command, args []string) error {
	c, _, err := loadComposer(cmd)
	if err != nil {
		return err
	}
	idx := 0
	if len(args) > 0 {
		if idx, err = findElectron(c, args[0]); err != nil {
			return err
		}
	}
	o, err := c.Electron(idx)
	if err != nil {
		return err
	}
	period := o.Period()
	if math.IsInf(period, 1) {
		return fmt.Errorf("electron %d is at rest", idx)
	}
	if o.Radius == 0 {
		return fmt.Errorf("electron %d has zero radius", idx)
	}

	const points = 160
	step := periods * period / points
	xs, ys, zs := make([]float64, points), make([]float64, points), make([]float64, points)
	for i, p := range o.Sample(0, step, points) {
		xs[i], ys[i], zs[i] = p.X(), p.Y(), p.Z()
	}

	fmt.Printf("electron: %d %s\n", idx, o.Label)
	fmt.Printf("radius: %.2f  speed: %.2f rad/s  plane: %s  period: %.3fs\n\n", o.Radius, o.Speed, o.Plane, period)
	graph := asciigraph.PlotMany([][]float64{xs, ys, zs},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("x (red), y (green), z (blue) over %.1f periods", periods)),
	)
	fmt.Println(graph)
	return nil
}

func analyzeOrbits(cmd *cobra.Command, args []string) error {
	c, _, err := loadComposer(cmd)
	if err != nil {
		return err
	}
	reports := analysis.MeasurePeriods(c, window, samples)
	if len(reports) == 0 {
		return fmt.Errorf("nothing to analyze")
	}

	fmt.Printf("frequency analysis: %s\n", c.Isotope().Name())
	fmt.Printf("window: %.2fs  samples: %d\n\n", window, samples)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tLABEL\tSPEED\tEXPECTED\tMEASURED\tREL ERR")
	for _, r := range reports {
		o, _ := c.Electron(r.Index)
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%.4fs\t%.4fs\t%.2e\n", r.Index, r.Label, o.Speed, r.Expected, r.Measured, r.RelError())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	first := c.Electrons()[0]
	xs := make([]float64, samples)
	for i, p := range first.Sample(0, window/float64(samples), samples) {
		xs[i] = p.X()
	}
	ps := analysis.PowerSpectrum(xs)
	if len(ps) > 128 {
		ps = ps[:128]
	}
	if len(ps) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(ps,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (%s, x)", first.Label)),
		))
	}
	return nil
}

// output opens path for writing; empty or "-" means stdout.
func output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadComposer(cmd)
	if err != nil {
		return err
	}
	w, closeOut, err := output(outFile)
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Theme)

	if braille {
		canvas := viz.NewCanvas(80, 24)
		viz.DrawScene(canvas, viz.NewCamera(), c, c.FrameTick(atTime), th, false)
		_, err = io.WriteString(w, export.CanvasToSVG(canvas, 4))
	} else {
		err = export.WriteSceneSVG(w, c, atTime, th, svgWidth, svgHeight)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err == nil && outFile != "" {
		logutil.Infof("svg written to %s", outFile)
	}
	return err
}

func exportGIF(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadComposer(cmd)
	if err != nil {
		return err
	}
	w, closeOut, err := output(gifOut)
	if err != nil {
		return err
	}
	err = export.WriteLoopGIF(w, c, viz.GetTheme(cfg.Theme), gifFrames)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logutil.Infof("wrote %d frames (%.2fs loop) to %s", gifFrames, export.LoopDuration(c), gifOut)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(runsDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tISOTOPE\tELECTRONS\tDT\tDURATION\tMAX PERIOD ERR")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%.2f\t%.2e\n", r.ID, r.Isotope, len(r.Electrons), r.Dt, r.Duration, r.Metrics["period_rel_err_max"])
	}
	return w.Flush()
}
