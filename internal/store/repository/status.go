package repository

import (
	"context"
	"fmt"

	"hangar-service/internal/store/models"

	"github.com/google/uuid"
)

// ============================================================
// Status checks
// ============================================================

func (r *Repository) CreateStatusCheck(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  r.timestamp(),
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO status_checks (id, client_name, timestamp)
        VALUES (?, ?, ?)
    `, check.ID, check.ClientName, check.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert status check: %w", err)
	}
	return check, nil
}

// ListStatusChecks отдаёт не больше limit последних проверок в порядке создания.
func (r *Repository) ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, client_name, timestamp
        FROM status_checks
        ORDER BY timestamp, id
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.StatusCheck{}
	for rows.Next() {
		var s models.StatusCheck
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
