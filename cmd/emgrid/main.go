package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/emgrid/internal/config"
	"github.com/san-kum/emgrid/internal/em"
	"github.com/san-kum/emgrid/internal/field"
	"github.com/san-kum/emgrid/internal/storage"
	"github.com/san-kum/emgrid/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	iterations int
	outDir     string
	hideWires  bool
	row        int
	fieldName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emgrid",
		Short: "static electromagnetic field lab",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".emgrid", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute all fields and store the run",
		RunE:  runWorld,
	}
	addWorldFlags(runCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "compute fields and render them as images",
		RunE:  renderFields,
	}
	addWorldFlags(renderCmd)
	renderCmd.Flags().StringVar(&outDir, "out", "plots", "output directory for images")
	renderCmd.Flags().BoolVar(&hideWires, "hide-wires", true, "blank wire cells in the electric field plot")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "compute fields and print a terminal cross-section",
		RunE:  plotSection,
	}
	addWorldFlags(plotCmd)
	plotCmd.Flags().IntVar(&row, "row", -1, "grid row to section (default: center)")
	plotCmd.Flags().StringVar(&fieldName, "field", "potential", "field to plot (potential|magnetic_z)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the relaxation with a live progress view",
		RunE:  runLive,
	}
	addWorldFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in circuits",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-12s %dx%d, %d wires\n", name, p.Shape[0], p.Shape[1], len(p.Wires))
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write one stored field to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCmd.Flags().StringVar(&fieldName, "field", "potential", "stored field name")

	rootCmd.AddCommand(runCmd, renderCmd, plotCmd, liveCmd, presetsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "world config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "loop", "built-in circuit preset")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "relaxation iterations (0: config value)")
}

// buildConfig resolves the world description: an explicit config file
// wins over the preset; the --iterations flag overrides both.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	return cfg, nil
}

func computeWorld(cmd *cobra.Command) (*em.World, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	world, err := cfg.BuildWorld()
	if err != nil {
		return nil, nil, err
	}

	fmt.Printf("computing %dx%d world, %d wires, %d iterations...\n",
		cfg.Shape[0], cfg.Shape[1], len(world.Wires()), cfg.Iterations)
	start := time.Now()
	if err := world.ComputeWith(em.ComputeConfig{Iterations: cfg.Iterations}); err != nil {
		return nil, nil, err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))
	return world, cfg, nil
}

func runWorld(cmd *cobra.Command, args []string) error {
	world, cfg, err := computeWorld(cmd)
	if err != nil {
		return err
	}

	if err := printSummary(world); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := preset
	if configFile != "" {
		name = filepath.Base(configFile)
	}
	runID, err := st.Save(name, world, cfg.Iterations)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func printSummary(world *em.World) error {
	potential, err := world.Potential()
	if err != nil {
		return err
	}
	electric, _ := world.ElectricField()
	magnetic, _ := world.MagneticField()
	flux, _ := world.EnergyFlux()
	voltage, _ := world.WiresVoltage()

	w, h := world.Shape()
	cx, cy := (w-1)/2, (h-1)/2

	fmt.Println(viz.HeaderStyle.Render("field summary"))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tMIN\tMAX\tCENTER")
	scalars := []struct {
		name string
		f    *field.ScalarField
	}{
		{"voltage", voltage},
		{"potential", potential},
		{"magnetic_z", magnetic.Z()},
		{"electric_x", electric.X()},
		{"electric_y", electric.Y()},
		{"flux_x", flux.X()},
		{"flux_y", flux.Y()},
	}
	for _, s := range scalars {
		min, max := s.f.MinMax()
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\n", s.name, min, max, s.f.At(cx, cy))
	}
	return tw.Flush()
}

func renderFields(cmd *cobra.Command, args []string) error {
	world, _, err := computeWorld(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	voltage, _ := world.WiresVoltage()
	potential, _ := world.Potential()
	electric, _ := world.ElectricField()
	magnetic, _ := world.MagneticField()
	flux, _ := world.EnergyFlux()

	var mask []bool
	if hideWires {
		mask, _ = world.WireMask()
	}

	images := []struct {
		render func(string) error
		file   string
	}{
		{func(p string) error {
			return viz.SaveHeatMap(voltage, viz.PlotOptions{Title: "Initial voltage"}, p)
		}, "voltage.png"},
		{func(p string) error {
			return viz.SaveHeatMap(potential, viz.PlotOptions{Title: "Potential"}, p)
		}, "potential.png"},
		{func(p string) error {
			return viz.SaveHeatMap(magnetic.Z(), viz.PlotOptions{Title: "Magnetic field (z component)"}, p)
		}, "magnetic_z.png"},
		{func(p string) error {
			return viz.SaveFieldPlot(electric, mask, viz.PlotOptions{Title: "Electric field"}, p)
		}, "electric.png"},
		{func(p string) error {
			return viz.SaveFieldPlot(flux, nil, viz.PlotOptions{Title: "Energy flux"}, p)
		}, "energy_flux.png"},
	}
	for _, img := range images {
		path := filepath.Join(outDir, img.file)
		if err := img.render(path); err != nil {
			return fmt.Errorf("rendering %s: %w", img.file, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func plotSection(cmd *cobra.Command, args []string) error {
	world, _, err := computeWorld(cmd)
	if err != nil {
		return err
	}

	var f *field.ScalarField
	switch fieldName {
	case "potential":
		f, err = world.Potential()
	case "magnetic_z":
		var b *field.VectorField
		b, err = world.MagneticField()
		if err == nil {
			f = b.Z()
		}
	default:
		return fmt.Errorf("unknown field: %s (want potential or magnetic_z)", fieldName)
	}
	if err != nil {
		return err
	}

	_, h := world.Shape()
	y := row
	if y < 0 || y >= h {
		y = (h - 1) / 2
	}
	caption := fmt.Sprintf("%s along y=%d", fieldName, y)
	fmt.Println(viz.CrossSection(f, y, caption))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	world, err := cfg.BuildWorld()
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(world, cfg.Iterations)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	if err := m.Err(); err != nil {
		return err
	}
	return printSummary(world)
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

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tSHAPE\tWIRES\tITER")
	for _, run := range runs {
		shape := ""
		if len(run.Shape) == 2 {
			shape = fmt.Sprintf("%dx%d", run.Shape[0], run.Shape[1])
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			shape,
			run.WireCount,
			run.Iterations,
		)
	}
	return tw.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := st.LoadField(args[0], fieldName)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	width, height := f.Dims()
	record := make([]string, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			record[x] = strconv.FormatFloat(f.At(x, y), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
