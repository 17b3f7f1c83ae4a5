package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Insert appends one event. Activities are never updated or deleted; the
// table-level CHECK keeps at least one actor reference present.
func (r *ActivityRepository) Insert(ctx context.Context, a *entity.Activity) error {
	var metadata []byte
	if a.Metadata != nil {
		var err error
		metadata, err = json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode activity metadata: %w", err)
		}
	}

	query := `
		INSERT INTO activities (id, user_id, session_id, activity_type, metadata, created_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.SessionID,
		a.Type,
		nullBytes(metadata),
		a.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// CountServiceViews groups service_view events by the well-known service_id
// metadata key. Events without it (old clients) are skipped.
func (r *ActivityRepository) CountServiceViews(ctx context.Context) ([]entity.ServiceCount, error) {
	query := `
		SELECT metadata->>'service_id',
		       MAX(COALESCE(metadata->>'service_name', '')),
		       COUNT(*)
		FROM activities
		WHERE activity_type = 'service_view'
		  AND metadata->>'service_id' IS NOT NULL
		GROUP BY metadata->>'service_id'
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []entity.ServiceCount{}
	for rows.Next() {
		var c entity.ServiceCount
		if err := rows.Scan(&c.ServiceID, &c.ServiceName, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return b
}
