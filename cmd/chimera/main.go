package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"chimera/internal/config"
	"chimera/internal/dynamo"
	"chimera/internal/kuramoto"
	"chimera/internal/sim"
	"chimera/internal/storage"
	"chimera/internal/viz"
)

var (
	dataDir     string
	beta        float64
	coupling    float64
	n0          int
	n1          int
	d0          float64
	d1          float64
	tTot        int
	ws          int
	subStep     float64
	seed        int64
	omega       float64
	omegaSpread float64
	scheme      string
	reportEvery int
	configFile  string
	preset      string
	noSave      bool

	sweepBetas string
	sweepKs    string

	dialStep   int
	dialPerRow int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chimera",
		Short: "metastable chimera states in community-structured oscillator networks",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chimera", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset configuration ("+strings.Join(config.ListPresets(), ", ")+")")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing run artifacts")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a beta x k parameter grid",
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepBetas, "betas", "0.0,0.05,0.1,0.15,0.2", "comma-separated beta values")
	sweepCmd.Flags().StringVar(&sweepKs, "ks", "0.0,0.2,0.4", "comma-separated k values")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with interactive live visualization",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's synchrony series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	dialCmd := &cobra.Command{
		Use:   "dial [run_id]",
		Short: "render per-community phase dials at one timestep",
		Args:  cobra.ExactArgs(1),
		RunE:  dialRun,
	}
	dialCmd.Flags().IntVar(&dialStep, "step", -1, "timestep to render (-1 = last)")
	dialCmd.Flags().IntVar(&dialPerRow, "per-row", 4, "dials per text row")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a run's synchrony series as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, liveCmd, plotCmd, dialCmd, listCmd, presetsCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&beta, "beta", kuramoto.DefaultBeta, "phase-lag base (alpha = pi/2 - beta)")
	cmd.Flags().Float64Var(&coupling, "k", kuramoto.DefaultK, "coupling fraction (k1 = (1-k)/2)")
	cmd.Flags().IntVar(&n0, "n0", kuramoto.DefaultN0, "oscillators per community")
	cmd.Flags().IntVar(&n1, "n1", kuramoto.DefaultN1, "number of communities")
	cmd.Flags().Float64Var(&d0, "d0", kuramoto.DefaultD0, "expected intra-community degree")
	cmd.Flags().Float64Var(&d1, "d1", kuramoto.DefaultD1, "expected inter-community degree")
	cmd.Flags().IntVar(&tTot, "t-tot", kuramoto.DefaultTTot, "simulated timesteps")
	cmd.Flags().IntVar(&ws, "ws", kuramoto.DefaultWS, "synchrony downsampling window")
	cmd.Flags().Float64Var(&subStep, "h", kuramoto.DefaultH, "RK4 sub-step size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-derived)")
	cmd.Flags().Float64Var(&omega, "omega", 0, "natural frequency mean")
	cmd.Flags().Float64Var(&omegaSpread, "omega-spread", 0, "natural frequency half-width")
	cmd.Flags().StringVar(&scheme, "scheme", "sequential", "integration scheme (sequential|synchronized)")
	cmd.Flags().IntVar(&reportEvery, "report-every", sim.DefaultReportEvery, "observation interval in timesteps")
}

// resolveConfig layers preset, config file and CLI flags: flags win over
// the file, the file wins over the preset, the preset over defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("beta") {
		cfg.Beta = beta
	}
	if flags.Changed("k") {
		cfg.K = coupling
	}
	if flags.Changed("n0") {
		cfg.N0 = n0
	}
	if flags.Changed("n1") {
		cfg.N1 = n1
	}
	if flags.Changed("d0") {
		cfg.D0 = d0
	}
	if flags.Changed("d1") {
		cfg.D1 = d1
	}
	if flags.Changed("t-tot") {
		cfg.TTot = tTot
	}
	if flags.Changed("ws") {
		cfg.WS = ws
	}
	if flags.Changed("h") {
		cfg.H = subStep
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("omega") {
		cfg.Omega = omega
	}
	if flags.Changed("omega-spread") {
		cfg.OmegaSpread = omegaSpread
	}
	if flags.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if flags.Changed("report-every") {
		cfg.ReportEvery = reportEvery
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	schemeVal, err := kuramoto.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}

	p := cfg.Params()
	s := sim.New(p)
	s.SetScheme(schemeVal)
	s.SetReportEvery(cfg.ReportEvery)
	s.AddObserver(sim.ObserverFunc(func(step int, phases dynamo.Phases, rows [][]float64) {
		last := 0.0
		if len(rows) > 0 {
			row := rows[len(rows)-1]
			for _, v := range row {
				last += v
			}
			last /= float64(len(row))
		}
		fmt.Printf("step %5d / %d  mean synchrony %.3f\n", step, p.TTot-1, last)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d oscillators (%d communities of %d), %d steps, %s scheme...\n",
		p.NTot(), p.N1, p.N0, p.TTot, schemeVal)
	start := time.Now()

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (seed %d)\n\n", time.Since(start).Round(time.Millisecond), result.Seed)
	fmt.Println(viz.StatsSummary(result.Stats.Lambda, result.Stats.Chi, result.Stats.Phi))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	schemeVal, err := kuramoto.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}

	betas, err := parseFloats(sweepBetas)
	if err != nil {
		return fmt.Errorf("bad --betas: %w", err)
	}
	ks, err := parseFloats(sweepKs)
	if err != nil {
		return fmt.Errorf("bad --ks: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %d cells...\n", len(betas)*len(ks))
	start := time.Now()
	points, err := sim.Sweep(ctx, cfg.Params(), betas, ks, schemeVal)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "beta\tk\tlambda\tchi\tphi")
	for _, pt := range points {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			pt.Beta, pt.K, pt.Stats.Lambda, pt.Stats.Chi, pt.Stats.Phi)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	schemeVal, err := kuramoto.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	p := cfg.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	return viz.RunLive(p, schemeVal)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadSynchrony(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("beta=%.3f k=%.3f n0=%d n1=%d seed=%d\n\n",
		meta.Params.Beta, meta.Params.K, meta.Params.N0, meta.Params.N1, meta.Seed)
	fmt.Println(viz.SynchronyChart(rows, 14, 80))
	fmt.Println()
	fmt.Println(viz.StatsSummary(meta.Stats.Lambda, meta.Stats.Chi, meta.Stats.Phi))
	return nil
}

func dialRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	phases, err := st.LoadPhases(args[0])
	if err != nil {
		return err
	}
	if len(phases) == 0 {
		return fmt.Errorf("run %s has no phase data", args[0])
	}

	step := dialStep
	if step < 0 || step >= len(phases) {
		step = len(phases) - 1
	}

	fmt.Printf("run: %s  step: %d\n\n", meta.ID, step)
	fmt.Print(viz.DialPlot(phases[step], meta.Params.N0, meta.Params.N1, dialPerRow))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	ids, err := st.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tbeta\tk\tn\tsteps\tlambda\tchi\tphi")
	for _, id := range ids {
		meta, err := st.Load(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%d\t%d\t%.3f\t%.3f\t%.3f\n",
			meta.ID, meta.Params.Beta, meta.Params.K, meta.Params.NTot(),
			meta.Params.TTot, meta.Stats.Lambda, meta.Stats.Chi, meta.Stats.Phi)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rows, err := st.LoadSynchrony(args[0])
	if err != nil {
		return err
	}
	for i, row := range rows {
		fields := make([]string, 0, len(row)+1)
		fields = append(fields, strconv.Itoa(i))
		for _, v := range row {
			fields = append(fields, strconv.FormatFloat(v, 'f', 6, 64))
		}
		fmt.Println(strings.Join(fields, ","))
	}
	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
