package jobs

import (
	"context"
	"time"

	"carlink-backend/internal/logger"
)

// ExpireStaleHolds notifies partners about NEW leads whose reservation hold
// has lapsed. The hold itself needs no write to expire: the public listing
// compares reserved_until against the clock at read time. The lead stays NEW
// and claimable; this job only surfaces it to the partner.
func (jr *JobRunner) ExpireStaleHolds() {
	jr.runWithRecovery("ExpireStaleHolds", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		bookings, err := jr.store.BookingRepository.ListExpiredHolds(ctx, now)
		if err != nil {
			logger.Error("Failed to list expired holds", "error", err)
			return
		}
		if len(bookings) == 0 {
			logger.Info("No expired holds found")
			return
		}
		logger.Info("Found expired holds", "count", len(bookings))

		for _, booking := range bookings {
			partner, err := jr.store.PartnerRepository.GetByID(ctx, booking.PartnerID)
			if err != nil {
				logger.Error("Failed to load partner for expired hold",
					"booking_id", booking.ID, "partner_id", booking.PartnerID, "error", err)
				continue
			}

			carName := ""
			if car, err := jr.store.CarRepository.GetByID(ctx, booking.CarID); err == nil {
				carName = car.Brand + " " + car.Model
			}

			if err := jr.services.Email.SendHoldLapsedNotification(ctx, partner.Email, booking.BookingNumber, carName); err != nil {
				logger.Error("Failed to send hold lapsed notification",
					"booking_id", booking.ID, "partner_email", partner.Email, "error", err)
			}
		}
	})
}
