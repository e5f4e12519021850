package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type AppointmentListDTO struct {
	ID         uint       `json:"id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	ClientID   uint       `json:"client_id"`
	ClientName string     `json:"client_name"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
}

func AppointmentList(rows []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(rows))
	for _, ap := range rows {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			BookingID:  ap.BookingID,
			ClientID:   ap.ClientID,
			ClientName: ap.ClientName,
			Date:       ap.Date,
			Time:       ap.Time,
			Status:     ap.Status,
			Notes:      ap.Notes,
		})
	}
	return out
}
