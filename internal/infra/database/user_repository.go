package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, is_guest, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.IsGuest, u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		// 23505 = unique_violation on the email index
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("users: insert failed: %v", err)
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, COALESCE(email, ''), name, is_guest, created_at
		FROM users
		WHERE id = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.IsGuest, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, COALESCE(email, ''), name, is_guest, created_at
		FROM users
		WHERE email = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.IsGuest, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
