package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/scene3d/internal/config"
	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
	"github.com/san-kum/scene3d/internal/tui"

	// Rendering engines register themselves on import.
	_ "github.com/san-kum/scene3d/internal/svg"
	_ "github.com/san-kum/scene3d/internal/term"
)

var (
	backendName string
	configFile  string
	width       int
	height      int
	background  string
	azimuth     float64
	elevation   float64
	distance    float64
	focal       string
	title       string
	titleSize   int
	output      string
	frames      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scene3d",
		Short: "render 3d scenes in the terminal or as svg",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "rendering backend")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list rendering backends",
		RunE:  listBackends,
	}

	renderCmd := &cobra.Command{
		Use:   "render [shape]",
		Short: "render a scene once",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScene,
	}
	renderCmd.Flags().IntVar(&width, "width", 0, "figure width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 0, "figure height in pixels")
	renderCmd.Flags().StringVar(&background, "bg", "", "background color (#rrggbb)")
	renderCmd.Flags().Float64Var(&azimuth, "azimuth", 0, "camera azimuth (degrees)")
	renderCmd.Flags().Float64Var(&elevation, "elevation", 0, "camera elevation (degrees)")
	renderCmd.Flags().Float64Var(&distance, "distance", 0, "camera distance")
	renderCmd.Flags().StringVar(&focal, "focal", "", "focal point x,y,z")
	renderCmd.Flags().StringVar(&title, "title", "", "scene title")
	renderCmd.Flags().IntVar(&titleSize, "title-size", 0, "title font size")
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	viewCmd := &cobra.Command{
		Use:   "view [shape]",
		Short: "interactive scene viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewScene,
	}
	viewCmd.Flags().IntVar(&width, "width", 0, "figure width in pixels")
	viewCmd.Flags().IntVar(&height, "height", 0, "figure height in pixels")
	viewCmd.Flags().StringVar(&background, "bg", "", "background color (#rrggbb)")

	benchCmd := &cobra.Command{
		Use:   "bench [shape]",
		Short: "benchmark frame rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	benchCmd.Flags().IntVar(&width, "width", 0, "figure width in pixels")
	benchCmd.Flags().IntVar(&height, "height", 0, "figure height in pixels")

	rootCmd.AddCommand(backendsCmd, renderCmd, viewCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file and applies the backend precedence:
// --backend flag, then the config file, then the facade's own
// environment-based default.
func setup() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	name := backendName
	if name == "" {
		name = cfg.Backend
	}
	if name != "" {
		if err := render.SetBackend(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func figureConfig(cfg *config.Config) (render.FigureConfig, error) {
	fig := render.FigureConfig{Width: cfg.Width, Height: cfg.Height}
	if width > 0 {
		fig.Width = width
	}
	if height > 0 {
		fig.Height = height
	}
	bg := cfg.Background
	if background != "" {
		bg = background
	}
	if bg != "" {
		color, err := config.ParseColor(bg)
		if err != nil {
			return fig, err
		}
		fig.Background = color
	}
	return fig, nil
}

func shapeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "cube"
}

func listBackends(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	active := render.GetBackend()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tACTIVE")
	for _, name := range render.Names() {
		mark := ""
		if name == active {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, mark)
	}
	return w.Flush()
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	fig, err := figureConfig(cfg)
	if err != nil {
		return err
	}
	scene, err := render.CreateFigure(fig)
	if err != nil {
		return err
	}
	wf, err := geom.Shape(shapeArg(args))
	if err != nil {
		return err
	}
	if err := render.Draw(scene, wf); err != nil {
		return err
	}

	view := render.View{}
	if cmd.Flags().Changed("azimuth") {
		view.Azimuth = render.Float(azimuth)
	} else {
		view.Azimuth = render.Float(cfg.View.Azimuth)
	}
	if cmd.Flags().Changed("elevation") {
		view.Elevation = render.Float(elevation)
	} else {
		view.Elevation = render.Float(cfg.View.Elevation)
	}
	if cmd.Flags().Changed("distance") {
		view.Distance = render.Float(distance)
	} else if cfg.View.Distance > 0 {
		view.Distance = render.Float(cfg.View.Distance)
	}
	if focal != "" {
		fp, err := parseFocal(focal)
		if err != nil {
			return err
		}
		view.FocalPoint = render.Vec(fp)
	}
	if err := render.SetView(scene, view); err != nil {
		return err
	}

	if title != "" {
		size := titleSize
		if size == 0 {
			size = cfg.TitleSize
		}
		if err := render.SetTitle(scene, title, size); err != nil {
			return err
		}
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return render.Snapshot(scene, out)
}

func viewScene(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	fig, err := figureConfig(cfg)
	if err != nil {
		return err
	}
	model, err := tui.NewModel(shapeArg(args), fig)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func benchScene(cmd *cobra.Command, args []string) error {
	if frames < 1 {
		frames = 1
	}
	cfg, err := setup()
	if err != nil {
		return err
	}
	fig, err := figureConfig(cfg)
	if err != nil {
		return err
	}
	scene, err := render.CreateFigure(fig)
	if err != nil {
		return err
	}
	wf, err := geom.Shape(shapeArg(args))
	if err != nil {
		return err
	}
	if err := render.Draw(scene, wf); err != nil {
		return err
	}

	times := make([]float64, 0, frames)
	total := time.Duration(0)
	for i := 0; i < frames; i++ {
		az := float64(i) * 360 / float64(frames)
		if err := render.SetView(scene, render.View{Azimuth: render.Float(az)}); err != nil {
			return err
		}
		start := time.Now()
		if err := render.Snapshot(scene, io.Discard); err != nil {
			return err
		}
		elapsed := time.Since(start)
		total += elapsed
		times = append(times, float64(elapsed.Microseconds())/1000)
	}

	graph := asciigraph.Plot(times,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("frame time ms (%s backend)", render.GetBackend())),
	)
	fmt.Println(graph)
	fmt.Println()

	minT, maxT := times[0], times[0]
	for _, t := range times {
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}
	avg := float64(total.Microseconds()) / 1000 / float64(frames)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", frames)
	fmt.Fprintf(w, "min\t%.3f ms\n", minT)
	fmt.Fprintf(w, "avg\t%.3f ms\n", avg)
	fmt.Fprintf(w, "max\t%.3f ms\n", maxT)
	if avg > 0 {
		fmt.Fprintf(w, "fps\t%.0f\n", 1000/avg)
	}
	return w.Flush()
}

func parseFocal(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("focal point must be x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("focal point %q: %v", s, err)
		}
		v[i] = f
	}
	return geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
