package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rangggase/Holy-Grail/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SearchUsersByName is the fuzzy member lookup behind the cashier's
// customer field. An empty result is a normal outcome, not an error: it
// just means the customer is new.
func (r *Repository) SearchUsersByName(ctx context.Context, name string, limit int) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, name FROM users WHERE name ILIKE $1 LIMIT $2`,
		"%"+name+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search users %q: %w", name, err)
	}
	defer rows.Close()

	var found []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		c.Returning = true
		found = append(found, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return found, nil
}

// GetUserByID fetches a single customer record.
func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*domain.Customer, error) {
	c := &domain.Customer{Returning: true}

	err := r.pool.QueryRow(ctx,
		`SELECT user_id, name, favorite_category FROM users WHERE user_id = $1`,
		userID,
	).Scan(&c.ID, &c.Name, &c.FavoriteCategory)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query user id=%d: %w", userID, err)
	}

	return c, nil
}

// CreateUser registers a new customer at first checkout.
func (r *Repository) CreateUser(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, favorite_category) VALUES ($1, 'Umum') RETURNING user_id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", name, err)
	}
	return id, nil
}
