package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

// CatalogRepository is the read-only storefront browse surface. The catalog
// is seeded out of band; this service never writes it.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, slug, name, COALESCE(icon, ''), position
		FROM categories
		ORDER BY position, name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*entity.Category{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Icon, &c.Position); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *CatalogRepository) ListServicesByCategory(ctx context.Context, categorySlug string) ([]*entity.Service, error) {
	query := `
		SELECT s.id, s.category_id, s.name, COALESCE(s.description, ''), s.starting_price, s.position
		FROM services s
		JOIN categories c ON c.id = s.category_id
		WHERE c.slug = $1
		ORDER BY s.position, s.name
	`

	rows, err := r.DB.QueryContext(ctx, query, categorySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.StartingPrice, &s.Position); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}

	return services, rows.Err()
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `
		SELECT id, category_id, name, COALESCE(description, ''), starting_price, position
		FROM services
		WHERE id = $1
	`

	var s entity.Service
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.StartingPrice, &s.Position,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
