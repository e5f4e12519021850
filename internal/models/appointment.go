package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is one 15-minute block. A booking of N blocks is stored as
// N rows sharing a BookingID; legacy rows have no booking.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	BookingID *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`

	Date   string `gorm:"size:10;not null;index:idx_appointments_date_time" json:"date"`
	Time   string `gorm:"size:5;not null;index:idx_appointments_date_time" json:"time"`
	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	// filled by joined reads only
	ClientName string `gorm:"->;-:migration" json:"client_name,omitempty"`

	// CreatedAt is refreshed on every status change and doubles as
	// last-modified for ordering.
	CreatedAt time.Time `json:"created_at"`
}
