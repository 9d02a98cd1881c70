package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	genmodels "hangar-service/internal/generator/models"
	"hangar-service/internal/store/models"

	"github.com/google/uuid"
)

// ============================================================
// Saved configs
// ============================================================

func (r *Repository) CreateConfig(ctx context.Context, name string, cfg genmodels.BuildingConfig) (*models.SavedConfig, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	now := r.timestamp()
	saved := &models.SavedConfig{
		ID:        uuid.NewString(),
		Name:      name,
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO configs (id, name, config, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, saved.ID, saved.Name, string(payload), saved.CreatedAt, saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert config: %w", err)
	}
	return saved, nil
}

func (r *Repository) GetConfig(ctx context.Context, id string) (*models.SavedConfig, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, config, created_at, updated_at
        FROM configs
        WHERE id = ?
    `, id)

	saved, err := scanConfig(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

// ListConfigs возвращает сохранённые конфигурации, новые первыми.
func (r *Repository) ListConfigs(ctx context.Context) ([]models.SavedConfig, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, config, created_at, updated_at
        FROM configs
        ORDER BY created_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SavedConfig{}
	for rows.Next() {
		saved, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *saved)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateConfig(ctx context.Context, id, name string, cfg genmodels.BuildingConfig) (*models.SavedConfig, error) {
	existing, err := r.GetConfig(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	existing.Name = name
	existing.Config = cfg
	existing.UpdatedAt = r.timestamp()

	_, err = r.db.ExecContext(ctx, `
        UPDATE configs SET name = ?, config = ?, updated_at = ?
        WHERE id = ?
    `, existing.Name, string(payload), existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("update config: %w", err)
	}
	return existing, nil
}

func (r *Repository) DeleteConfig(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM configs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(s scanner) (*models.SavedConfig, error) {
	var (
		saved   models.SavedConfig
		payload string
	)
	if err := s.Scan(&saved.ID, &saved.Name, &payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &saved.Config); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", saved.ID, err)
	}
	return &saved, nil
}
