// Headless noise generation CLI: loads a layer config, generates every
// layer, combines them, and writes the result as a grayscale PNG plus
// per-layer stats CSV.
//
// Usage: go run ./cmd/noisegen -config params.yaml -out ./out
package main

import (
	"flag"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/noisefield/config"
	"github.com/pthm-cable/noisefield/field"
	"github.com/pthm-cable/noisefield/generator"
	"github.com/pthm-cable/noisefield/render"
	"github.com/pthm-cable/noisefield/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outDir := flag.String("out", "", "Output directory (overrides config output.dir)")
	seed := flag.Uint("seed", 0, "Seed override applied to every layer (0 = use per-layer seeds)")
	width := flag.Int("width", 0, "Grid width override (0 = use config)")
	height := flag.Int("height", 0, "Grid height override (0 = use config)")
	normalize := flag.Bool("normalize", true, "Min-max normalize the PNG output")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	w := cfg.Output.Width
	if *width > 0 {
		w = *width
	}
	h := cfg.Output.Height
	if *height > 0 {
		h = *height
	}

	dir := cfg.Output.Dir
	if *outDir != "" {
		dir = *outDir
	}
	if dir == "" {
		dir = "."
	}

	method, err := field.ParseCombineMethod(cfg.Combine)
	if err != nil {
		slog.Error("bad combine method", "error", err)
		os.Exit(1)
	}

	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	slog.Info("generating", "layers", len(cfg.Layers), "width", w, "height", h, "combine", method.String())

	fields := make([]*field.Field, 0, len(cfg.Layers))
	for _, layer := range cfg.Layers {
		params, err := layer.Params(w, h)
		if err != nil {
			slog.Error("bad layer config", "layer", layer.Name, "error", err)
			os.Exit(1)
		}
		if *seed != 0 {
			params.Seed = uint32(*seed)
		}

		start := time.Now()
		f, err := generator.Generate(params)
		if err != nil {
			slog.Error("generation failed", "layer", layer.Name, "error", err)
			os.Exit(1)
		}
		elapsed := time.Since(start)

		stats := telemetry.ComputeFieldStats(f.Data)
		slog.Info("layer done",
			"layer", layer.Name,
			"type", params.Type.String(),
			"seed", params.Seed,
			"duration", elapsed.Round(time.Microsecond).String(),
			"min", stats.Min,
			"max", stats.Max,
			"mean", stats.Mean,
		)

		if err := om.WriteLayer(telemetry.LayerRecord{
			Layer:      layer.Name,
			Type:       params.Type.String(),
			Seed:       params.Seed,
			Width:      w,
			Height:     h,
			DurationMs: float64(elapsed.Microseconds()) / 1000,
			Min:        stats.Min,
			Max:        stats.Max,
			Mean:       stats.Mean,
			StdDev:     stats.StdDev,
			P10:        stats.P10,
			P50:        stats.P50,
			P90:        stats.P90,
		}); err != nil {
			slog.Error("failed to write stats", "error", err)
		}

		fields = append(fields, f)
	}

	combined, err := field.Combine(method, fields...)
	if err != nil {
		slog.Error("combine failed", "error", err)
		os.Exit(1)
	}

	var img image.Image
	if *normalize {
		img = render.GrayNormalized(combined)
	} else {
		img = render.Gray(combined)
	}

	pngPath := filepath.Join(dir, "noise.png")
	if err := render.WritePNG(pngPath, img); err != nil {
		slog.Error("failed to write png", "error", err)
		os.Exit(1)
	}

	slog.Info("done", "png", pngPath, "stats", filepath.Join(dir, "stats.csv"))
}
