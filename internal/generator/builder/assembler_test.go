package builder

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"hangar-service/internal/generator/models"

	"github.com/bsthun/gut"
)

const tolerance = 1e-9

func allOn() map[string]bool {
	return map[string]bool{
		models.ToggleEdges:      true,
		models.ToggleFaces:      true,
		models.ToggleMainParts:  true,
		models.ToggleBracing:    true,
		models.TogglePurlins:    true,
		models.ToggleGirts:      true,
		models.ToggleBasePlate:  true,
		models.TogglePanels:     true,
		models.ToggleSolidWalls: true,
		models.ToggleOpenings:   true,
		models.ToggleDimensions: true,
	}
}

// workshop: ширина 52, глубина 36, шаг 6, двускатная крыша с коньком 2.5.
func workshop(vis map[string]bool) models.BuildingConfig {
	return models.BuildingConfig{
		Dimensions: models.DimensionsConfig{Width: gut.Ptr(52.0), Depth: gut.Ptr(36.0)},
		Roof:       models.RoofConfig{Type: "duo-pitch", RidgeHeight: gut.Ptr(2.5)},
		Structure:  models.StructureConfig{FrameSpacing: gut.Ptr(6.0)},
		Openings: models.OpeningsConfig{Door: models.DoorConfig{
			Enabled: true, Width: gut.Ptr(4.0), Height: gut.Ptr(4.5),
		}},
		Visualization: vis,
	}
}

func generate(t *testing.T, cfg models.BuildingConfig) *models.Scene {
	t.Helper()

	scene, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return scene
}

func ofKind(scene *models.Scene, kind models.ElementKind) []models.StructuralElement {
	var out []models.StructuralElement
	for _, e := range scene.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestGenerateWorkshop(t *testing.T) {
	scene := generate(t, workshop(allOn()))

	if scene.FrameCount != 7 {
		t.Fatalf("frame count = %d, want 7", scene.FrameCount)
	}
	want := []float64{-18, -12, -6, 0, 6, 12, 18}
	if !reflect.DeepEqual(scene.FramePositions, want) {
		t.Fatalf("frame positions = %v", scene.FramePositions)
	}

	counts := map[models.Category]int{
		models.CategoryFoundation: 1 + 2*7,
		models.CategoryFrames:     7 * 6,
		models.CategoryBracing:    6 * 4,
		models.CategoryGirts:      6,
		models.CategoryPurlins:    2*8 + 1,
		models.CategoryRoof:       2,
		models.CategoryGables:     2,
		models.CategoryWalls:      2 + 2*31 + 2*16,
		models.CategoryOpenings:   1,
		models.CategoryDimensions: 2,
	}
	if !reflect.DeepEqual(scene.Counts, counts) {
		t.Fatalf("counts = %v\nwant     %v", scene.Counts, counts)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if len(scene.Elements) != total {
		t.Fatalf("elements = %d, want %d", len(scene.Elements), total)
	}
}

func TestElementsFollowCategoryOrder(t *testing.T) {
	scene := generate(t, workshop(allOn()))

	rank := make(map[models.Category]int, len(Categories))
	for i, c := range Categories {
		rank[c] = i
	}
	for i := 1; i < len(scene.Elements); i++ {
		if rank[scene.Elements[i].Category] < rank[scene.Elements[i-1].Category] {
			t.Fatalf("element %d (%s) after %s", i, scene.Elements[i].Category, scene.Elements[i-1].Category)
		}
	}
}

func TestColumnsMirrorSymmetric(t *testing.T) {
	scene := generate(t, workshop(allOn()))

	columns := ofKind(scene, models.KindColumn)
	if len(columns) != 2*scene.FrameCount {
		t.Fatalf("columns = %d", len(columns))
	}
	for i := 0; i < len(columns); i += 2 {
		l, r := columns[i].Position, columns[i+1].Position
		if l.X != -r.X || l.Y != r.Y || l.Z != r.Z {
			t.Fatalf("columns %v and %v are not mirrored", l, r)
		}
		if math.Abs(math.Abs(l.X)-26) > tolerance {
			t.Fatalf("column at x=%v, want ±26", l.X)
		}
		if math.Abs(l.Y-(5.5/2+0.3)) > tolerance {
			t.Fatalf("column center y = %v", l.Y)
		}
	}
}

func TestRafterLength(t *testing.T) {
	for _, tc := range []struct{ width, ridge float64 }{{10, 2.5}, {52, 2.5}, {24, 6}, {18.49, 1.2}} {
		cfg := workshop(allOn())
		cfg.Dimensions.Width = gut.Ptr(tc.width)
		cfg.Roof.RidgeHeight = gut.Ptr(tc.ridge)
		cfg.Openings.Door.Enabled = false

		scene := generate(t, cfg)
		want := math.Sqrt(tc.width*tc.width/4 + tc.ridge*tc.ridge)
		if math.Abs(scene.Roof.RafterLength-want) > tolerance {
			t.Fatalf("width=%v: rafter length %v, want %v", tc.width, scene.Roof.RafterLength, want)
		}

		rafters := ofKind(scene, models.KindRafter)
		if len(rafters) != 2*scene.FrameCount {
			t.Fatalf("rafters = %d", len(rafters))
		}
		left, right := rafters[0], rafters[1]
		if math.Abs(left.Geometry.Size.X-want) > tolerance {
			t.Fatalf("rafter box length = %v, want %v", left.Geometry.Size.X, want)
		}
		if left.Position.X != -right.Position.X || left.Rotation.Z != -right.Rotation.Z {
			t.Fatalf("rafters not mirrored: %+v / %+v", left, right)
		}
		if left.Geometry.Size == right.Geometry.Size {
			t.Fatalf("rafters share a size pointer")
		}
	}
}

func TestPurlinPlacement(t *testing.T) {
	scene := generate(t, workshop(allOn()))

	L := scene.Roof.RafterLength
	n := PurlinsPerSide(L)
	if n != 8 {
		t.Fatalf("purlins per side = %d, want 8", n)
	}

	purlins := ofKind(scene, models.KindPurlin)
	if len(purlins) != 2*n {
		t.Fatalf("purlins = %d", len(purlins))
	}

	along := L / float64(n+1)
	wantX := -26 + along*math.Cos(scene.Roof.RafterAngle)
	wantY := scene.Roof.EaveY + along*math.Sin(scene.Roof.RafterAngle)
	first := purlins[0].Position
	if math.Abs(first.X-wantX) > tolerance || math.Abs(first.Y-wantY) > tolerance {
		t.Fatalf("first purlin at %+v, want x=%v y=%v", first, wantX, wantY)
	}
	for i := 0; i < n; i++ {
		l, r := purlins[i].Position, purlins[n+i].Position
		if math.Abs(l.X+r.X) > tolerance || math.Abs(l.Y-r.Y) > tolerance {
			t.Fatalf("purlin %d not mirrored: %+v / %+v", i, l, r)
		}
	}

	ridge := ofKind(scene, models.KindRidgePurlin)
	if len(ridge) != 1 || ridge[0].Position.Y != scene.Roof.RidgeY {
		t.Fatalf("ridge purlin = %+v", ridge)
	}
}

func TestIdempotent(t *testing.T) {
	a := generate(t, workshop(allOn()))
	b := generate(t, workshop(allOn()))

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two runs over the same config differ")
	}
}

func TestToggleIndependence(t *testing.T) {
	cases := []struct {
		toggle   string
		affected []models.Category
	}{
		{models.ToggleBracing, []models.Category{models.CategoryBracing}},
		{models.ToggleGirts, []models.Category{models.CategoryGirts}},
		{models.TogglePurlins, []models.Category{models.CategoryPurlins}},
		{models.ToggleBasePlate, []models.Category{models.CategoryFoundation}},
		{models.ToggleOpenings, []models.Category{models.CategoryOpenings}},
		{models.ToggleDimensions, []models.Category{models.CategoryDimensions}},
		{models.ToggleMainParts, []models.Category{models.CategoryFrames, models.CategoryRoof}},
	}

	full := generate(t, workshop(allOn()))
	for _, tc := range cases {
		t.Run(tc.toggle, func(t *testing.T) {
			vis := allOn()
			vis[tc.toggle] = false
			scene := generate(t, workshop(vis))

			removed := 0
			for _, c := range tc.affected {
				if scene.Counts[c] != 0 {
					t.Fatalf("%s still has %d elements", c, scene.Counts[c])
				}
				removed += full.Counts[c]
			}
			for _, c := range Categories {
				affected := false
				for _, a := range tc.affected {
					affected = affected || a == c
				}
				if !affected && scene.Counts[c] != full.Counts[c] {
					t.Fatalf("%s changed: %d -> %d", c, full.Counts[c], scene.Counts[c])
				}
			}
			if len(scene.Elements) != len(full.Elements)-removed {
				t.Fatalf("elements = %d, want %d", len(scene.Elements), len(full.Elements)-removed)
			}
		})
	}
}

func TestWallsGatedByPanelsOrSolidWalls(t *testing.T) {
	vis := allOn()
	vis[models.TogglePanels] = false
	scene := generate(t, workshop(vis))

	if scene.Counts[models.CategoryGables] != 0 {
		t.Fatalf("gables must follow panels")
	}
	if len(ofKind(scene, models.KindPanelStrip)) != 0 {
		t.Fatalf("panel strips must follow panels")
	}
	if len(ofKind(scene, models.KindWallPanel)) != 2 {
		t.Fatalf("solidWalls alone should still emit side walls")
	}

	vis[models.ToggleSolidWalls] = false
	scene = generate(t, workshop(vis))
	if scene.Counts[models.CategoryWalls] != 0 {
		t.Fatalf("walls emitted with panels and solidWalls off")
	}
}

func TestAllTogglesOffIsEmpty(t *testing.T) {
	vis := allOn()
	for k := range vis {
		vis[k] = false
	}
	scene := generate(t, workshop(vis))

	if scene.Elements == nil || len(scene.Elements) != 0 {
		t.Fatalf("expected empty non-nil list, got %d elements", len(scene.Elements))
	}
	if scene.FrameCount != 7 {
		t.Fatalf("plan should still be reported, frame count = %d", scene.FrameCount)
	}
}

func TestReservedAndUnknownToggles(t *testing.T) {
	vis := map[string]bool{
		models.ToggleFlashing:    true,
		models.ToggleAccessories: true,
		models.ToggleVolumes:     true,
		models.ToggleRoads:       true,
		models.ToggleDecorations: true,
		"somethingNew":           true,
	}
	scene := generate(t, workshop(vis))
	if len(scene.Elements) != 0 {
		t.Fatalf("reserved toggles produced %d elements", len(scene.Elements))
	}
}

func TestFlatRoof(t *testing.T) {
	cfg := workshop(allOn())
	cfg.Roof = models.RoofConfig{Type: "flat"}
	scene := generate(t, cfg)

	for _, kind := range []models.ElementKind{models.KindRafter, models.KindRidgeBeam, models.KindPurlin, models.KindGableEnd, models.KindRoofSurface} {
		if n := len(ofKind(scene, kind)); n != 0 {
			t.Fatalf("flat roof emitted %d %s", n, kind)
		}
	}

	roof := ofKind(scene, models.KindFlatRoof)
	if len(roof) != 1 || math.Abs(roof[0].Position.Y-(scene.Roof.EaveY+0.1)) > tolerance {
		t.Fatalf("flat roof slab = %+v", roof)
	}
	if ties := ofKind(scene, models.KindTieBeam); len(ties) != scene.FrameCount {
		t.Fatalf("tie beams = %d, want one per frame", len(ties))
	}
	walls := ofKind(scene, models.KindWallPanel)
	if walls[0].Geometry.Size.Y != 5.5 {
		t.Fatalf("flat roof wall height = %v, want eave height", walls[0].Geometry.Size.Y)
	}
}

func TestDoorPlacement(t *testing.T) {
	cfg := workshop(allOn())
	cfg.Openings.Door.X = gut.Ptr(-6.0)
	scene := generate(t, cfg)

	doors := ofKind(scene, models.KindDoor)
	if len(doors) != 1 {
		t.Fatalf("doors = %d", len(doors))
	}
	d := doors[0]
	if d.Geometry.Kind != models.GeometryPlane || d.Geometry.Width != 4 || d.Geometry.Height != 4.5 {
		t.Fatalf("door geometry = %+v", d.Geometry)
	}
	if d.Position.X != -6 || math.Abs(d.Position.Y-(2.25+0.3)) > tolerance || !(d.Position.Z > 18) {
		t.Fatalf("door position = %+v", d.Position)
	}

	cfg.Openings.Door.Enabled = false
	if n := generate(t, cfg).Counts[models.CategoryOpenings]; n != 0 {
		t.Fatalf("disabled door emitted %d openings", n)
	}
}

func TestMaterialsFollowFacesAndEdges(t *testing.T) {
	vis := allOn()
	vis[models.ToggleFaces] = false
	scene := generate(t, workshop(vis))

	for _, e := range scene.Elements {
		if e.Material.Shading != models.ShadingWireframe {
			t.Fatalf("%s has shading %s with faces off", e.Kind, e.Material.Shading)
		}
	}

	scene = generate(t, workshop(allOn()))
	if col := ofKind(scene, models.KindColumn)[0]; col.Material.Shading != models.ShadingSolid || col.Material.Opacity != 1 {
		t.Fatalf("column material = %+v", col.Material)
	}
	if wall := ofKind(scene, models.KindWallPanel)[0]; wall.Material.Shading != models.ShadingSolid || wall.Material.Opacity != 0.9 || !wall.Material.Transparent {
		t.Fatalf("wall material = %+v", wall.Material)
	}
}

func TestGenerateErrors(t *testing.T) {
	cfg := workshop(allOn())
	cfg.Roof.Type = "mono-pitch"
	scene, err := Generate(cfg)
	if !errors.Is(err, models.ErrUnsupportedRoofType) || scene != nil {
		t.Fatalf("mono-pitch: scene=%v err=%v", scene, err)
	}

	cfg = workshop(allOn())
	cfg.Dimensions.Width = gut.Ptr(-1.0)
	scene, err = Generate(cfg)
	if !errors.Is(err, models.ErrInvalidConfig) || scene != nil {
		t.Fatalf("negative width: scene=%v err=%v", scene, err)
	}
}

func TestGenerateRejectsUnboundedSizes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BuildingConfig)
	}{
		{"spacing 1e-300", func(c *models.BuildingConfig) { c.Structure.FrameSpacing = gut.Ptr(1e-300) }},
		{"spacing 1e-7", func(c *models.BuildingConfig) { c.Structure.FrameSpacing = gut.Ptr(1e-7) }},
		{"panel count 1<<62", func(c *models.BuildingConfig) { c.Panels.Count = gut.Ptr(1 << 62) }},
		{"panel count 1e8", func(c *models.BuildingConfig) { c.Panels.Count = gut.Ptr(100_000_000) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := workshop(allOn())
			tc.mutate(&cfg)
			scene, err := Generate(cfg)
			if !errors.Is(err, models.ErrInvalidConfig) || scene != nil {
				t.Fatalf("scene=%v err=%v, want ErrInvalidConfig", scene, err)
			}
		})
	}
}

func TestBracingDiagonals(t *testing.T) {
	scene := generate(t, workshop(allOn()))

	braces := ofKind(scene, models.KindBrace)
	want := math.Hypot(6, 5.5)
	for _, b := range braces {
		if math.Abs(b.Geometry.Size.Z-want) > tolerance {
			t.Fatalf("brace length = %v, want %v", b.Geometry.Size.Z, want)
		}
		if math.Abs(math.Abs(b.Position.X)-26) > tolerance {
			t.Fatalf("brace off the side wall: %+v", b.Position)
		}
	}
	if braces[0].Rotation.X != -braces[1].Rotation.X {
		t.Fatalf("diagonals in a bay should cross")
	}
}
