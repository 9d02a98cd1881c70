package material

import "hangar-service/internal/generator/models"

// ============================================================
// Material selector
// ============================================================

// Select: единая таблица выбора материала для всех билдеров:
//
//	faces=false, edges=true  -> wireframe, 0.8
//	faces=true               -> solid 1.0 (несущие) / solid 0.9, прозрачный
//	faces=false, edges=false -> solid-basic, 0.3
func Select(faces, edges, structural bool, color string) models.MaterialStyle {
	switch {
	case faces:
		if structural {
			return models.MaterialStyle{Shading: models.ShadingSolid, Color: color, Opacity: 1.0}
		}
		return models.MaterialStyle{Shading: models.ShadingSolid, Color: color, Opacity: 0.9, Transparent: true}
	case edges:
		return models.MaterialStyle{Shading: models.ShadingWireframe, Color: color, Opacity: 0.8, Transparent: true}
	default:
		return models.MaterialStyle{Shading: models.ShadingBasic, Color: color, Opacity: 0.3, Transparent: true}
	}
}

// For читает faces/edges из набора флажков.
func For(v models.Visualization, structural bool, color string) models.MaterialStyle {
	return Select(v.On(models.ToggleFaces), v.On(models.ToggleEdges), structural, color)
}
