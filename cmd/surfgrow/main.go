package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/surfgrow/internal/analysis"
	"github.com/san-kum/surfgrow/internal/config"
	"github.com/san-kum/surfgrow/internal/export"
	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/metrics"
	"github.com/san-kum/surfgrow/internal/sim"
	"github.com/san-kum/surfgrow/internal/storage"
	"github.com/san-kum/surfgrow/internal/sweep"
	"github.com/san-kum/surfgrow/internal/tui"
	"github.com/san-kum/surfgrow/internal/viz"
)

var (
	dataDir    string
	size       int
	steps      int
	nu         float64
	lambda     float64
	noiseKind  string
	noiseSeed  int64
	initKind   string
	initHeight float64
	initBound  float64
	initSeed   int64
	limit      float64
	configFile string
	preset     string
	frameRate  int
	profileRow int
	svgPath    string
	svgScale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surfgrow",
		Short: "stochastic surface growth lab (EW/KPZ on a periodic lattice)",
		Long: fmt.Sprintf("surfgrow simulates stochastic surface growth on a periodic 2D lattice.\n"+
			"available models: %v", growth.ModelNames()),
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".surfgrow", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a growth simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot interface width history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [run_id]",
		Short: "plot a cross-section of the final surface",
		Args:  cobra.ExactArgs(1),
		RunE:  profileRun,
	}
	profileCmd.Flags().IntVar(&profileRow, "row", -1, "row index (default: center)")

	heatmapCmd := &cobra.Command{
		Use:   "heatmap [run_id]",
		Short: "render the final surface as a heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  heatmapRun,
	}
	heatmapCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG heatmap to this path")
	heatmapCmd.Flags().Float64Var(&svgScale, "scale", 8, "SVG cell size in pixels")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "scaling analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario.yaml]",
		Short: "run a scripted parameter sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, profileCmd,
		heatmapCmd, analyzeCmd, exportCmd, exportJSONCmd, presetsCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "grid size L (field is LxL)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&nu, "nu", config.DefaultNu, "surface tension")
	cmd.Flags().Float64Var(&lambda, "lambda", config.DefaultLambda, "non-linearity coefficient (kpz)")
	cmd.Flags().StringVar(&noiseKind, "noise", config.DefaultNoise, "noise kind: zero, signed, gaussian")
	cmd.Flags().Int64Var(&noiseSeed, "seed", time.Now().UnixNano(), "noise seed")
	cmd.Flags().StringVar(&initKind, "init", "random", "initial surface: flat, random")
	cmd.Flags().Float64Var(&initHeight, "height", 0, "initial height (flat)")
	cmd.Flags().Float64Var(&initBound, "bound", config.DefaultInitBound, "initial height bound (random)")
	cmd.Flags().Int64Var(&initSeed, "init-seed", 0, "initial surface seed")
	cmd.Flags().Float64Var(&limit, "limit", config.DefaultLimit, "divergence limit (0 disables)")
}

// buildConfig resolves preset, config file, and flags into one Config,
// with CLI flags taking precedence over the file and the file over the
// preset.
func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
		if cfg.Limit == 0 {
			cfg.Limit = config.DefaultLimit
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("nu") {
		cfg.Nu = nu
	}
	if cmd.Flags().Changed("lambda") {
		cfg.Lambda = lambda
	}
	if cmd.Flags().Changed("noise") {
		cfg.Noise.Kind = noiseKind
	}
	if cmd.Flags().Changed("seed") || cfg.Noise.Seed == 0 {
		cfg.Noise.Seed = noiseSeed
	}
	if cmd.Flags().Changed("init") {
		cfg.Init.Kind = initKind
	}
	if cmd.Flags().Changed("height") {
		cfg.Init.Height = initHeight
	}
	if cmd.Flags().Changed("bound") {
		cfg.Init.Bound = initBound
	}
	if cmd.Flags().Changed("init-seed") {
		cfg.Init.Seed = initSeed
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = limit
	}
	cfg.KeepHistory = true

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	model, f0, runCfg, err := sim.FromConfig(cfg)
	if err != nil {
		return err
	}

	runner := sim.New(model)
	runner.AddMetric(metrics.NewMass())
	runner.AddMetric(metrics.NewMassDrift())
	runner.AddMetric(metrics.NewRoughness())
	runner.AddMetric(metrics.NewExtrema())

	fmt.Printf("running %s simulation (L=%d, %d steps)...\n", cfg.Model, cfg.Size, cfg.Steps)
	start := time.Now()

	result, err := runner.Run(context.Background(), f0, runCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Model:     cfg.Model,
		Size:      cfg.Size,
		Nu:        cfg.Nu,
		Lambda:    cfg.Lambda,
		NoiseKind: cfg.Noise.Kind,
		NoiseSeed: cfg.Noise.Seed,
		InitSeed:  cfg.Init.Seed,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, stepErr := range result.Errors {
		fmt.Printf("halted: %v\n", stepErr)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	model, f0, runCfg, err := sim.FromConfig(cfg)
	if err != nil {
		return err
	}

	return tui.Run(model, f0, runCfg.NoiseKind, runCfg.NoiseSeed, frameRate)
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSIZE\tSTEPS\tNU\tLAMBDA\tNOISE\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.3f\t%s\t%s\n",
			r.ID, r.Model, r.Size, r.Steps, r.Nu, r.Lambda, r.NoiseKind,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	widths, err := st.LoadWidths(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("model: %s (nu=%.3f lambda=%.3f)\n", meta.Model, meta.Nu, meta.Lambda)
	fmt.Printf("samples: %d\n\n", len(widths))
	fmt.Println(viz.WidthPlot(widths))
	return nil
}

func profileRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	row := profileRow
	if row < 0 {
		row = field.L / 2
	}
	fmt.Println(viz.ProfilePlot(field.Row(row), row))
	return nil
}

func heatmapRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.FieldToSVG(field, svgScale)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	min, max := field.MinMax()
	fmt.Printf("final surface (min=%.3f max=%.3f)\n\n", min, max)
	fmt.Println(viz.Heatmap(field))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	widths, err := st.LoadWidths(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("model: %s (nu=%.3f lambda=%.3f, %d steps)\n\n", meta.Model, meta.Nu, meta.Lambda, meta.Steps)

	if beta, err := analysis.GrowthExponent(widths, 0.5); err == nil {
		fmt.Printf("growth exponent beta: %.4f\n", beta)
	} else {
		fmt.Printf("growth exponent: %v\n", err)
	}
	if sat, err := analysis.SaturationWidth(widths); err == nil {
		fmt.Printf("saturation width: %.4f\n", sat)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	widths, err := st.LoadWidths(args[0])
	if err != nil {
		return err
	}
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	result := &sim.Result{Widths: widths, StepsTaken: meta.Steps, Metrics: meta.Metrics}
	result.Fields = append(result.Fields, field)
	return export.JSON(os.Stdout, meta, result)
}

func runSweep(cmd *cobra.Command, args []string) error {
	scenario, err := sweep.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%d runs)\n", scenario.Name, len(scenario.Runs))
	if scenario.Description != "" {
		fmt.Println(scenario.Description)
	}
	fmt.Println()

	summaries, err := sweep.RunScenario(context.Background(), scenario)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tMODEL\tNU\tLAMBDA\tBETA\tWIDTH\tMASS DRIFT\tSTEPS")
	for _, s := range summaries {
		beta := "n/a"
		if s.BetaOK {
			beta = fmt.Sprintf("%.4f", s.Beta)
		}
		stepsCol := fmt.Sprintf("%d", s.StepsTaken)
		if s.Halted {
			stepsCol += " (halted)"
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%s\t%.4f\t%.3g\t%s\n",
			s.Label, s.Model, s.Nu, s.Lambda, beta, s.FinalWidth, s.MassDrift, stepsCol)
	}
	return w.Flush()
}
