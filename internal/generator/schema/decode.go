package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"hangar-service/internal/generator/models"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Decoding
// ============================================================

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromContentType: yaml для application/yaml, text/yaml и x-yaml, иначе json.
func FormatFromContentType(contentType string) Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// FormatFromPath определяет формат файла конфигурации по расширению.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Decode проверяет тело по схеме и декодирует его в BuildingConfig.
// YAML сначала переводится в JSON, чтобы у обоих форматов был один путь проверки.
func Decode(body []byte, format Format) (models.BuildingConfig, error) {
	var cfg models.BuildingConfig

	raw := body
	if format == FormatYAML {
		var v any
		if err := yaml.Unmarshal(body, &v); err != nil {
			return cfg, fmt.Errorf("%w: invalid yaml: %w", models.ErrInvalidConfig, err)
		}
		if v == nil {
			v = map[string]any{}
		}
		converted, err := json.Marshal(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: yaml is not representable as json: %w", models.ErrInvalidConfig, err)
		}
		raw = converted
	}

	if err := Validate(raw); err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", models.ErrInvalidConfig, err)
	}
	return cfg, nil
}
