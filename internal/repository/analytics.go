package repository

import (
	"context"
	"fmt"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// GetSummary aggregates the headline dashboard metrics. Revenue counts the
// menu price of every order row; the best seller is the most ordered name.
func (r *Repository) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	s := &domain.DashboardSummary{}

	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(m.price), 0), COUNT(o.order_id)
		 FROM orders o
		 JOIN menu m ON o.menu_id = m.menu_id`,
	).Scan(&s.TotalRevenue, &s.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("query summary totals: %w", err)
	}

	if s.TotalOrders > 0 {
		s.AverageOrder = float64(s.TotalRevenue) / float64(s.TotalOrders)

		err = r.pool.QueryRow(ctx,
			`SELECT m.menu_name
			 FROM orders o
			 JOIN menu m ON o.menu_id = m.menu_id
			 GROUP BY m.menu_name
			 ORDER BY COUNT(*) DESC, m.menu_name
			 LIMIT 1`,
		).Scan(&s.BestSeller)
		if err != nil {
			return nil, fmt.Errorf("query best seller: %w", err)
		}
	} else {
		s.BestSeller = "-"
	}

	return s, nil
}

// GetCustomerSpend aggregates per-customer spend and order counts for the
// segmentation chart. Tier assignment happens in the service layer.
func (r *Repository) GetCustomerSpend(ctx context.Context) ([]domain.CustomerSpend, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.name, COALESCE(SUM(m.price), 0), COUNT(o.order_id)
		 FROM orders o
		 JOIN menu m ON o.menu_id = m.menu_id
		 JOIN users u ON o.user_id = u.user_id
		 GROUP BY u.name
		 ORDER BY SUM(m.price) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query customer spend: %w", err)
	}
	defer rows.Close()

	var spend []domain.CustomerSpend
	for rows.Next() {
		var c domain.CustomerSpend
		if err := rows.Scan(&c.Name, &c.TotalSpend, &c.OrderCount); err != nil {
			return nil, fmt.Errorf("scan customer spend: %w", err)
		}
		spend = append(spend, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer spend: %w", err)
	}
	return spend, nil
}

// GetHourlyRevenue returns revenue grouped by order hour. Quiet hours are
// absent here; the service zero-fills the full 24-hour series.
func (r *Repository) GetHourlyRevenue(ctx context.Context) (map[int]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT EXTRACT(HOUR FROM o.timestamp)::int, COALESCE(SUM(m.price), 0)
		 FROM orders o
		 JOIN menu m ON o.menu_id = m.menu_id
		 GROUP BY 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("query hourly revenue: %w", err)
	}
	defer rows.Close()

	revenue := make(map[int]int64)
	for rows.Next() {
		var hour int
		var total int64
		if err := rows.Scan(&hour, &total); err != nil {
			return nil, fmt.Errorf("scan hourly revenue: %w", err)
		}
		revenue[hour] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hourly revenue: %w", err)
	}
	return revenue, nil
}

// GetTopMenu returns the most sold items in one display bucket.
// beverages=true selects drinks, false everything else.
func (r *Repository) GetTopMenu(ctx context.Context, beverages bool, limit int) ([]domain.MenuSales, error) {
	op := "!="
	if beverages {
		op = "="
	}
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(
			`SELECT m.menu_name, COUNT(*)
			 FROM orders o
			 JOIN menu m ON o.menu_id = m.menu_id
			 WHERE m.category %s $1
			 GROUP BY m.menu_name
			 ORDER BY COUNT(*) DESC, m.menu_name
			 LIMIT $2`, op),
		domain.BeverageCategory, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top menu: %w", err)
	}
	defer rows.Close()

	var sales []domain.MenuSales
	for rows.Next() {
		var s domain.MenuSales
		if err := rows.Scan(&s.Name, &s.Sold); err != nil {
			return nil, fmt.Errorf("scan top menu row: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top menu: %w", err)
	}
	return sales, nil
}

// GetTransactions lists joined order rows newest first, optionally
// restricted to one category.
func (r *Repository) GetTransactions(ctx context.Context, category string, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT o.timestamp, m.menu_name, m.price, m.category, u.name
		 FROM orders o
		 JOIN menu m ON o.menu_id = m.menu_id
		 JOIN users u ON o.user_id = u.user_id`
	args := []any{}
	if category != "" {
		query += ` WHERE m.category = $1`
		args = append(args, category)
	}
	query += fmt.Sprintf(` ORDER BY o.timestamp DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var trx []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.OrderedAt, &t.MenuName, &t.Price, &t.Category, &t.CustomerName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		trx = append(trx, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return trx, nil
}
