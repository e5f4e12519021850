package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus changes one row and refreshes its modification time.
func ApplyStatus(ap *models.Appointment, next Status, notes string, now time.Time) {
	ap.Status = string(next)
	ap.Notes = notes
	ap.CreatedAt = now
}

// PlanBlocks builds the unsaved rows of a booking: the first row carries
// the caller's notes, the rest the continuation marker.
func PlanBlocks(clientID uint, date string, times []string, notes string) []models.Appointment {
	rows := make([]models.Appointment, 0, len(times))
	for i, t := range times {
		n := ContinuationMarker
		if i == 0 {
			n = notes
		}
		rows = append(rows, models.Appointment{
			ClientID: clientID,
			Date:     date,
			Time:     t,
			Notes:    n,
			Status:   string(InitialStatus()),
		})
	}
	return rows
}
