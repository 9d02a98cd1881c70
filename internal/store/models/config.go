package models

import (
	genmodels "hangar-service/internal/generator/models"
)

// ============================================================
// Saved Config Model
// ============================================================

type SavedConfig struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Config    genmodels.BuildingConfig `json:"config"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

// SceneBlob: закешированная сцена, payload сжат zstd.
type SceneBlob struct {
	Hash      string
	Payload   []byte
	CreatedAt string
}
