package repository

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	genmodels "hangar-service/internal/generator/models"
	"hangar-service/internal/store/models"

	"github.com/klauspost/compress/zstd"
)

// ============================================================
// Scene cache (zstd blobs)
// ============================================================

// GetScene достаёт сцену по хешу нормализованной конфигурации.
func (r *Repository) GetScene(ctx context.Context, hash string) (*genmodels.Scene, error) {
	var blob models.SceneBlob
	err := r.db.QueryRowContext(ctx, `
        SELECT hash, payload, created_at FROM scenes WHERE hash = ?
    `, hash).Scan(&blob.Hash, &blob.Payload, &blob.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeScene(blob.Payload)
}

// PutScene сохраняет сцену. Повторная запись того же хеша ничего не меняет.
func (r *Repository) PutScene(ctx context.Context, scene *genmodels.Scene) error {
	payload, err := encodeScene(scene)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO scenes (hash, payload, created_at)
        VALUES (?, ?, ?)
        ON CONFLICT(hash) DO NOTHING
    `, scene.Hash, payload, r.timestamp())
	if err != nil {
		return fmt.Errorf("insert scene: %w", err)
	}
	return nil
}

func (r *Repository) CountScenes(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenes`).Scan(&n)
	return n, err
}

func encodeScene(scene *genmodels.Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	if err := json.NewEncoder(enc).Encode(scene); err != nil {
		enc.Close()
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeScene(payload []byte) (*genmodels.Scene, error) {
	dec, err := zstd.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decompress scene: %w", err)
	}
	var scene genmodels.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &scene, nil
}
