package jobs

import (
	"context"
	"fmt"
	"time"

	"camrent-backend/internal/logger"
)

// FlagOverdueOrders notifies staff about CONFIRMED orders whose return date
// has passed without the order being completed.
func (jr *JobRunner) FlagOverdueOrders() {
	jr.runWithRecovery("FlagOverdueOrders", func() {
		ctx := context.Background()

		query := `
			SELECT id, reference, customer_name, return_date
			FROM orders
			WHERE status = 'CONFIRMED'
			  AND return_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to query overdue orders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id           int32
				reference    string
				customerName string
				returnDate   string
			)
			if err := rows.Scan(&id, &reference, &customerName, &returnDate); err != nil {
				logger.Error("Failed to scan overdue order", "error", err)
				continue
			}
			count++

			err := jr.services.Notifications.NotifyStaff(ctx,
				"Rental overdue",
				fmt.Sprintf("Order %s for %s was due back on %s.", reference, customerName, returnDate),
				map[string]string{"order_id": fmt.Sprintf("%d", id)})
			if err != nil {
				logger.Error("Failed to notify staff about overdue order", "order_id", id, "error", err)
			}
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue orders", "error", err)
			return
		}

		logger.Info("Flagged overdue orders", "count", count)
	})
}

// CancelStaleOrders cancels PENDING orders that were never confirmed within
// the grace window.
func (jr *JobRunner) CancelStaleOrders() {
	jr.runWithRecovery("CancelStaleOrders", func() {
		ctx := context.Background()

		query := `
			UPDATE orders
			SET status = 'CANCELLED',
			    updated_on = NOW()
			WHERE status = 'PENDING'
			  AND created_on < NOW() - INTERVAL '7 days'
		`

		result, err := jr.db.ExecContext(ctx, query)
		if err != nil {
			logger.Error("Failed to cancel stale orders", "error", err)
			return
		}

		count, err := result.RowsAffected()
		if err != nil {
			logger.Error("Failed to count cancelled orders", "error", err)
			return
		}

		logger.Info("Cancelled stale pending orders", "count", count)
	})
}
