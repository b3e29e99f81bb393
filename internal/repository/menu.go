package repository

import (
	"context"
	"fmt"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// ListMenu returns the full catalog in stable id order. Catalog order is
// load order for the pipeline, so ranking tie-breaks depend on it.
func (r *Repository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT menu_id, menu_name, price, category
		 FROM menu
		 ORDER BY menu_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over menu: %w", err)
	}
	return items, nil
}

// GetMenuItems fetches the named items, used to price a checkout cart from
// the store rather than from client input.
func (r *Repository) GetMenuItems(ctx context.Context, ids []int64) (map[int64]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT menu_id, menu_name, price, category
		 FROM menu
		 WHERE menu_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64]domain.MenuItem, len(ids))
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items[m.ID] = m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over menu items: %w", err)
	}
	return items, nil
}
