package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"hangar-service/internal/generator/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ============================================================
// Building config schema
// ============================================================

const schemaURL = "https://hangar.local/schemas/building.schema.json"

//go:embed building.schema.json
var buildingSchema string

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func building() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = jsonschema.CompileString(schemaURL, buildingSchema)
	})
	return compiled, compileErr
}

// Validate проверяет сырой JSON конфигурации до декодирования в BuildingConfig.
func Validate(raw []byte) error {
	s, err := building()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: invalid json: %w", models.ErrInvalidConfig, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidConfig, err)
	}
	return nil
}
