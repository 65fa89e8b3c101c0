package jobs

import (
	"context"

	"carlink-backend/internal/logger"
)

// DeriveCommissions creates a PENDING commission log for every completed
// booking that does not have one yet. The insert is idempotent, so re-running
// the job after a partial failure cannot double-charge a partner.
func (jr *JobRunner) DeriveCommissions() {
	jr.runWithRecovery("DeriveCommissions", func() {
		ctx := context.Background()

		created, err := jr.store.CommissionRepository.CreateMissingForCompleted(ctx)
		if err != nil {
			logger.Error("Failed to derive commissions", "error", err)
			return
		}
		if created == 0 {
			logger.Info("No completed bookings missing commission logs")
			return
		}
		logger.Info("Commission logs created", "count", created)
	})
}
