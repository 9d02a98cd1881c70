package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"hangar-service/internal/generator/builder"
	"hangar-service/internal/generator/mapper"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/normalizer"
	"hangar-service/internal/generator/presets"
	"hangar-service/internal/generator/schema"

	"gopkg.in/yaml.v3"
)

// ============================================================
// generate
// ============================================================

type GenerateCommand struct {
	Config string  `help:"Path to a YAML or JSON building configuration." short:"c" type:"existingfile" xor:"source"`
	Preset string  `help:"Name of a built-in preset." short:"p" xor:"source"`
	Format string  `help:"Output format." short:"f" enum:"json,svg,summary" default:"json"`
	Output string  `help:"Write to file instead of stdout." short:"o"`
	Scale  float64 `help:"SVG scale in pixels per metre." default:"10"`
}

func (r *GenerateCommand) Run(app *App) error {
	cfg, err := loadConfig(r.Config, r.Preset)
	if err != nil {
		return err
	}

	scene, err := builder.Generate(cfg)
	if err != nil {
		return err
	}
	if app.Verbose {
		log.Printf("[HANGARCTL] scene %s: %d frames, %d elements", scene.Hash, scene.FrameCount, len(scene.Elements))
	}

	out, closeOut, err := openOutput(r.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	switch r.Format {
	case "svg":
		svg, err := mapper.NewRenderer().WithScale(r.Scale).Render(scene)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, svg+"\n")
		return err
	case "summary":
		return writeSummary(out, scene)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scene)
	}
}

// ============================================================
// validate
// ============================================================

type ValidateCommand struct {
	Config string `arg:"" help:"Path to a YAML or JSON building configuration." type:"existingfile"`
}

// Run печатает нормализованную конфигурацию в YAML, если она корректна.
func (r *ValidateCommand) Run(app *App) error {
	cfg, err := loadConfig(r.Config, "")
	if err != nil {
		return err
	}
	b, err := normalizer.Normalize(cfg)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(b)
}

// ============================================================
// presets
// ============================================================

type PresetsCommand struct {
	Show string `help:"Print the named preset as YAML." short:"s"`
}

func (r *PresetsCommand) Run(app *App) error {
	if r.Show != "" {
		data, err := presets.Raw(r.Show)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	for _, name := range presets.Names() {
		fmt.Println(name)
	}
	return nil
}

// ============================================================
// Helpers
// ============================================================

func loadConfig(path, preset string) (models.BuildingConfig, error) {
	switch {
	case preset != "":
		return presets.Load(preset)
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return models.BuildingConfig{}, fmt.Errorf("read config: %w", err)
		}
		return schema.Decode(data, schema.FormatFromPath(path))
	default:
		return presets.Load("default")
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func writeSummary(out io.Writer, scene *models.Scene) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "hash\t%s\n", scene.Hash)
	fmt.Fprintf(w, "frames\t%d\n", scene.FrameCount)
	fmt.Fprintf(w, "roof\t%s (rafter %.3f m, ridge y %.3f m)\n", scene.Roof.Type, scene.Roof.RafterLength, scene.Roof.RidgeY)

	categories := make([]string, 0, len(scene.Counts))
	for c := range scene.Counts {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%d\n", c, scene.Counts[models.Category(c)])
	}
	fmt.Fprintf(w, "total\t%d\n", len(scene.Elements))
	return w.Flush()
}
