package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
)

// dayWindow returns the [start, end) bounds of the day offset days from today
// on the application clock.
func dayWindow(offset int) (time.Time, time.Time) {
	now := time.Now().In(domain.AppTimeZone)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, domain.AppTimeZone)
	start = start.AddDate(0, 0, offset)
	return start, start.AddDate(0, 0, 1)
}

// SendEventReminders notifies every seat-holding registrant of events
// starting tomorrow. Pending registrations are skipped until they are
// decided.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx := context.Background()
		start, end := dayWindow(1)

		query := `
			SELECT e.id, e.title, e.start_time, e.location, r.user_id
			FROM events e
			JOIN registrations r ON r.event_id = e.id
			WHERE e.status = 'published'
			  AND e.start_time >= $1 AND e.start_time < $2
			  AND r.status = ANY($3)
		`

		statuses := make([]string, 0, len(domain.SeatStatuses))
		for _, s := range domain.SeatStatuses {
			statuses = append(statuses, string(s))
		}

		rows, err := jr.db.QueryContext(ctx, query, start, end, pq.Array(statuses))
		if err != nil {
			logger.Error("Failed to query tomorrow's registrations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				eventID   int32
				title     string
				startTime time.Time
				location  string
				userID    int32
			)
			if err := rows.Scan(&eventID, &title, &startTime, &location, &userID); err != nil {
				logger.Error("Failed to scan reminder row", "error", err)
				continue
			}

			content := fmt.Sprintf("%s starts tomorrow at %s",
				title, startTime.In(domain.AppTimeZone).Format("15:04"))
			if location != "" {
				content += fmt.Sprintf(" (%s)", location)
			}
			jr.services.Notification.Notify(ctx, userID, "Event reminder", content,
				domain.NotificationEventReminder, &eventID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder rows", "error", err)
			return
		}

		logger.Info("Event reminders sent", "count", count)
	})
}

// SendReviewReminders asks confirmed attendees of events that ended yesterday
// to leave a review, skipping anyone who already reviewed or was already
// reminded. The notification pre-check keeps a same-day re-run from nagging
// twice.
func (jr *JobRunner) SendReviewReminders() {
	jr.runWithRecovery("SendReviewReminders", func() {
		ctx := context.Background()
		start, end := dayWindow(-1)

		query := `
			SELECT e.id, e.title, r.user_id
			FROM events e
			JOIN registrations r ON r.event_id = e.id
			WHERE e.status = 'published'
			  AND e.end_time >= $1 AND e.end_time < $2
			  AND r.status = ANY($3)
			  AND NOT EXISTS (
				SELECT 1 FROM reviews v
				WHERE v.event_id = e.id AND v.user_id = r.user_id
			  )
			  AND NOT EXISTS (
				SELECT 1 FROM notifications n
				WHERE n.event_id = e.id AND n.user_id = r.user_id AND n.type = $4
			  )
		`

		statuses := make([]string, 0, len(domain.ConfirmedStatuses))
		for _, s := range domain.ConfirmedStatuses {
			statuses = append(statuses, string(s))
		}

		rows, err := jr.db.QueryContext(ctx, query, start, end, pq.Array(statuses),
			string(domain.NotificationEventReviewReminder))
		if err != nil {
			logger.Error("Failed to query review candidates", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				eventID int32
				title   string
				userID  int32
			)
			if err := rows.Scan(&eventID, &title, &userID); err != nil {
				logger.Error("Failed to scan review reminder row", "error", err)
				continue
			}

			jr.services.Notification.Notify(ctx, userID, "How was the event?",
				fmt.Sprintf("Share your experience of %s by leaving a review", title),
				domain.NotificationEventReviewReminder, &eventID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating review reminder rows", "error", err)
			return
		}

		logger.Info("Review reminders sent", "count", count)
	})
}
