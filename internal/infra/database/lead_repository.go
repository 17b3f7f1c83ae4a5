package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, project_brief, budget,
			service_id, service_name, status, user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.ProjectBrief,
		lead.Budget,
		lead.ServiceID,
		lead.ServiceName,
		lead.Status,
		lead.UserID,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// List returns leads newest-first. Empty filter returns everything; the
// ordering is an admin-usability decision, keep it.
func (r *LeadRepository) List(ctx context.Context, statusFilter string) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, phone, project_brief, budget,
		       service_id, service_name, status, COALESCE(user_id, ''), created_at, updated_at
		FROM leads
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, statusFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Email,
			&l.Phone,
			&l.ProjectBrief,
			&l.Budget,
			&l.ServiceID,
			&l.ServiceName,
			&l.Status,
			&l.UserID,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}

	return leads, rows.Err()
}

// UpdateStatus is a plain UPDATE: concurrent updates on the same id race and
// the last write wins, which is the accepted semantics here.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, email, phone, project_brief, budget,
		          service_id, service_name, status, COALESCE(user_id, ''), created_at, updated_at
	`

	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, query, status, id).Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&l.Phone,
		&l.ProjectBrief,
		&l.Budget,
		&l.ServiceID,
		&l.ServiceName,
		&l.Status,
		&l.UserID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM leads GROUP BY status`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}

	return counts, rows.Err()
}

// CountByService counts every lead row per service, regardless of status.
func (r *LeadRepository) CountByService(ctx context.Context) ([]entity.ServiceCount, error) {
	query := `
		SELECT service_id, MAX(service_name), COUNT(*)
		FROM leads
		GROUP BY service_id
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
