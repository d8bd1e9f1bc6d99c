package jobs

import (
	"context"
	"time"

	"camrent-backend/internal/logger"
)

// PurgeStaleCartSnapshots deletes cart snapshots that have not been touched
// in 30 days. Live sessions rewrite their snapshot on every mutation, so
// anything that old belongs to an abandoned cart.
func (jr *JobRunner) PurgeStaleCartSnapshots() {
	jr.runWithRecovery("PurgeStaleCartSnapshots", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().AddDate(0, 0, -30)
		count, err := jr.store.CartSnapshotRepository.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge stale cart snapshots", "error", err)
			return
		}

		logger.Info("Purged stale cart snapshots", "count", count, "cutoff", cutoff.Format("2006-01-02"))
	})
}
