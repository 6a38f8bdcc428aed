package jobs

import (
	"context"
	"time"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/logger"
)

// SendPendingReminders emails each landlord who has booking requests
// still waiting for a decision.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		appointments, err := jr.store.Appointments.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list appointments for reminders", "error", err)
			return
		}

		pendingByLandlord := make(map[string]int)
		for _, a := range appointments {
			if a.Status == domain.AppointmentStatusPending {
				pendingByLandlord[a.LandlordID]++
			}
		}

		sent := 0
		for landlordID, count := range pendingByLandlord {
			landlord, err := jr.store.Users.GetByID(ctx, landlordID)
			if err != nil {
				logger.Warn("Skipping reminder, landlord lookup failed",
					"landlord_id", landlordID, "error", err)
				continue
			}
			if err := jr.services.Email.SendPendingRequestsReminder(ctx, landlord.Email, count); err != nil {
				logger.Error("Failed to send pending reminder",
					"landlord_id", landlordID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent pending request reminders",
			"landlords_with_pending", len(pendingByLandlord), "sent", sent)
	})
}

// SweepOverduePending flags booking requests that have sat pending
// longer than the configured window. It only reports; stale requests
// are a landlord decision, not something to auto-reject.
func (jr *JobRunner) SweepOverduePending() {
	jr.runWithRecovery("SweepOverduePending", func() {
		ctx := context.Background()

		appointments, err := jr.store.Appointments.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list appointments for overdue sweep", "error", err)
			return
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Scheduler.PendingOverdueDays)
		count := 0
		for _, a := range appointments {
			if a.Status != domain.AppointmentStatusPending {
				continue
			}
			createdOn, err := time.Parse(time.RFC3339, a.CreatedOn)
			if err != nil {
				logger.Warn("Skipping appointment with unparseable created_on",
					"appointment_id", a.ID, "created_on", a.CreatedOn)
				continue
			}
			if createdOn.Before(cutoff) {
				logger.Warn("Booking request overdue for a decision",
					"appointment_id", a.ID,
					"landlord_id", a.LandlordID,
					"property_id", a.PropertyID,
					"requested_date", a.Date,
					"pending_since", a.CreatedOn)
				count++
			}
		}

		logger.Info("Overdue pending sweep finished", "overdue", count)
	})
}
