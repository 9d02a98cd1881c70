package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"hangar-service/internal/generator/models"
)

// ============================================================
// Renderer
// ============================================================

const (
	defaultScale  = 10.0 // px на метр
	defaultMargin = 20.0
)

// Renderer проецирует сцену на план (плоскость XZ) и собирает SVG.
// Это отладочный вид сверху, а не визуализация сцены.
type Renderer struct {
	scale  float64
	margin float64
}

func NewRenderer() *Renderer {
	return &Renderer{scale: defaultScale, margin: defaultMargin}
}

// WithScale задаёт масштаб в пикселях на метр.
func (r *Renderer) WithScale(scale float64) *Renderer {
	if scale > 0 {
		r.scale = scale
	}
	return r
}

// Render собирает SVG плана из сцены.
func (r *Renderer) Render(scene *models.Scene) (string, error) {
	if scene == nil {
		return "", fmt.Errorf("scene is nil")
	}

	shapes := make([]shape, 0, len(scene.Elements))
	for _, e := range scene.Elements {
		if s, ok := project(e); ok {
			shapes = append(shapes, s)
		}
	}

	minX, minZ, maxX, maxZ := bounds(shapes)
	width := (maxX-minX)*r.scale + 2*r.margin
	height := (maxZ-minZ)*r.scale + 2*r.margin

	toPx := func(p point) point {
		return point{
			X: (p.X-minX)*r.scale + r.margin,
			Z: (p.Z-minZ)*r.scale + r.margin,
		}
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	var current models.Category
	open := false
	for _, s := range shapes {
		if !open || s.category != current {
			if open {
				builder.WriteString("  </g>\n")
			}
			builder.WriteString(fmt.Sprintf(`  <g id="%s">`, s.category))
			builder.WriteString("\n")
			current, open = s.category, true
		}
		builder.WriteString("    ")
		builder.WriteString(r.renderShape(s, toPx))
		builder.WriteString("\n")
	}
	if open {
		builder.WriteString("  </g>\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Projection
// ============================================================

type point struct {
	X float64
	Z float64
}

type shape struct {
	category models.Category
	kind     models.ElementKind
	closed   bool
	points   []point
	color    string
	opacity  float64
}

func project(e models.StructuralElement) (shape, bool) {
	s := shape{
		category: e.Category,
		kind:     e.Kind,
		color:    e.Material.Color,
		opacity:  e.Material.Opacity,
	}

	switch e.Geometry.Kind {
	case models.GeometryBox:
		if e.Geometry.Size == nil {
			return s, false
		}
		s.points = boxFootprint(*e.Geometry.Size, e.Position, e.Rotation)
		s.closed = true
	case models.GeometryMesh:
		s.points = meshOutline(e.Geometry, e.Position, e.Rotation)
		s.closed = true
	case models.GeometryPlane:
		half := e.Geometry.Width / 2
		s.points = transformAll([]models.Vec3{{X: -half}, {X: half}}, e.Position, e.Rotation)
	case models.GeometryLine:
		s.points = transformAll(e.Geometry.Vertices, e.Position, e.Rotation)
	default:
		return s, false
	}

	return s, len(s.points) > 0
}

// boxFootprint: прямоугольник, охватывающий проекцию всех восьми углов бокса.
func boxFootprint(size, pos, rot models.Vec3) []point {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	var corners []models.Vec3
	for _, x := range []float64{-hx, hx} {
		for _, y := range []float64{-hy, hy} {
			for _, z := range []float64{-hz, hz} {
				corners = append(corners, models.Vec3{X: x, Y: y, Z: z})
			}
		}
	}

	projected := transformAll(corners, pos, rot)
	minX, minZ, maxX, maxZ := extent(projected)
	return []point{{minX, minZ}, {maxX, minZ}, {maxX, maxZ}, {minX, maxZ}}
}

// meshOutline: проекция каждого треугольника сетки подряд.
func meshOutline(g models.Geometry, pos, rot models.Vec3) []point {
	world := transformAll(g.Vertices, pos, rot)

	var out []point
	for i := 0; i+2 < len(g.Indices); i += 3 {
		for _, idx := range g.Indices[i : i+3] {
			if idx >= 0 && idx < len(world) {
				out = append(out, world[idx])
			}
		}
	}
	return out
}

func transformAll(vs []models.Vec3, pos, rot models.Vec3) []point {
	out := make([]point, 0, len(vs))
	for _, v := range vs {
		w := rotate(v, rot)
		out = append(out, point{X: w.X + pos.X, Z: w.Z + pos.Z})
	}
	return out
}

// rotate применяет эйлеровы углы в порядке XYZ: v' = Rx·Ry·Rz·v.
func rotate(v, r models.Vec3) models.Vec3 {
	if r.Z != 0 {
		sin, cos := math.Sincos(r.Z)
		v = models.Vec3{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
	}
	if r.Y != 0 {
		sin, cos := math.Sincos(r.Y)
		v = models.Vec3{X: v.X*cos + v.Z*sin, Y: v.Y, Z: -v.X*sin + v.Z*cos}
	}
	if r.X != 0 {
		sin, cos := math.Sincos(r.X)
		v = models.Vec3{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}
	}
	return v
}

func extent(points []point) (minX, minZ, maxX, maxZ float64) {
	minX, minZ = math.MaxFloat64, math.MaxFloat64
	maxX, maxZ = -math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	return minX, minZ, maxX, maxZ
}

func bounds(shapes []shape) (minX, minZ, maxX, maxZ float64) {
	var all []point
	for _, s := range shapes {
		all = append(all, s.points...)
	}
	if len(all) == 0 {
		return 0, 0, 0, 0
	}
	return extent(all)
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderShape(s shape, toPx func(point) point) string {
	stroke := s.color
	if stroke == "" {
		stroke = "#000"
	}
	opacity := formatFloat(clamp(s.opacity, 0, 1))

	if !s.closed {
		var path strings.Builder
		path.WriteString(`<polyline class="`)
		path.WriteString(string(s.kind))
		path.WriteString(`" points="`)
		for i, p := range s.points {
			if i > 0 {
				path.WriteString(" ")
			}
			path.WriteString(formatPoint(toPx(p), ","))
		}
		path.WriteString(`" fill="none" stroke="` + stroke + `" stroke-opacity="` + opacity + `" />`)
		return path.String()
	}

	var path strings.Builder
	path.WriteString(`<path class="`)
	path.WriteString(string(s.kind))
	path.WriteString(`" d="M `)
	path.WriteString(formatPoint(toPx(s.points[0]), " "))
	for _, p := range s.points[1:] {
		path.WriteString(" L ")
		path.WriteString(formatPoint(toPx(p), " "))
	}
	path.WriteString(` Z" fill="none" stroke="` + stroke + `" stroke-opacity="` + opacity + `" />`)
	return path.String()
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ============================================================
// Formatting helpers
// ============================================================

// formatFloat округляет до миллиметра и не печатает "-0".
func formatFloat(val float64) string {
	rounded := math.Round(val*1000) / 1000
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func formatPoint(p point, sep string) string {
	return formatFloat(p.X) + sep + formatFloat(p.Z)
}
