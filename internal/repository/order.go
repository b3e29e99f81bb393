package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// Implicit purchase rating written with every order line. The trained model
// consumed ratings; the POS only ever records a purchase as full approval.
const purchaseRating = 5

// InsertOrders appends one row per cart line in a single batched insert.
// Orders are append-only: nothing here updates or deletes.
func (r *Repository) InsertOrders(ctx context.Context, userID int64, lines []domain.OrderLine, rctx domain.Context, ts time.Time) error {
	if len(lines) == 0 {
		return nil
	}

	rows := []string{}
	args := []any{}
	for _, line := range lines {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, userID, line.MenuID, purchaseRating,
			string(rctx.Weather), string(rctx.GroupSize), string(rctx.TimeOfDay), ts)
	}

	query := "INSERT INTO orders (user_id, menu_id, rating, weather, group_size, time_of_day, timestamp) VALUES " +
		strings.Join(rows, ", ")

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert orders for user %d: %w", userID, err)
	}
	return nil
}
