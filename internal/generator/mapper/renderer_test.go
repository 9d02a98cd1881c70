package mapper

import (
	"math"
	"strings"
	"testing"

	"hangar-service/internal/generator/builder"
	"hangar-service/internal/generator/models"
)

func TestRenderWorkshop(t *testing.T) {
	scene, err := builder.Generate(models.BuildingConfig{
		Visualization: map[string]bool{"faces": true, "mainParts": true, "basePlate": true, "dimensions": true},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svg, err := NewRenderer().Render(scene)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %.80s", svg)
	}
	for _, id := range []string{`<g id="foundation">`, `<g id="frames">`, `<g id="roof">`, `<g id="dimensions">`} {
		if strings.Count(svg, id) != 1 {
			t.Fatalf("expected exactly one %s group", id)
		}
	}
	if strings.Contains(svg, `<g id="walls">`) {
		t.Fatalf("walls are off but rendered")
	}
	if n := strings.Count(svg, `class="column"`); n != 2*scene.FrameCount {
		t.Fatalf("columns rendered = %d", n)
	}
	if n := strings.Count(svg, "<polyline"); n != 2 {
		t.Fatalf("dimension lines rendered = %d", n)
	}
}

func TestRenderEmptyScene(t *testing.T) {
	svg, err := NewRenderer().Render(&models.Scene{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(svg, "<g ") {
		t.Fatalf("empty scene rendered groups")
	}
	if !strings.Contains(svg, `viewBox="0 0 40 40"`) {
		t.Fatalf("empty scene should be just the margins: %s", svg)
	}

	if _, err := NewRenderer().Render(nil); err == nil {
		t.Fatalf("nil scene must fail")
	}
}

func TestBoxFootprintRotation(t *testing.T) {
	size := models.Vec3{X: 2, Y: 1, Z: 4}

	flat := boxFootprint(size, models.Vec3{X: 10}, models.Vec3{})
	if flat[0] != (point{X: 9, Z: -2}) || flat[2] != (point{X: 11, Z: 2}) {
		t.Fatalf("unrotated footprint = %v", flat)
	}

	// поворот на π/2 вокруг y меняет местами x и z
	turned := boxFootprint(size, models.Vec3{}, models.Vec3{Y: math.Pi / 2})
	if math.Abs(turned[0].X+2) > 1e-9 || math.Abs(turned[0].Z+1) > 1e-9 {
		t.Fatalf("rotated footprint = %v", turned)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		1:         "1",
		0.5:       "0.5",
		1.23456:   "1.235",
		-0.0004:   "0",
		1e-10 + 3: "3",
	}
	for in, want := range cases {
		if got := formatFloat(in); got != want {
			t.Fatalf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
