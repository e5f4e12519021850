package models

import "time"

// SettingsID is the primary key of the only settings row.
const SettingsID = 1

type Settings struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	WorkStart string    `gorm:"size:5;not null;default:'09:00'" json:"work_start"`
	WorkEnd   string    `gorm:"size:5;not null;default:'17:00'" json:"work_end"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "app_settings"
}
