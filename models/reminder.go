package models

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	ReminderTime time.Time  `gorm:"not null" json:"reminder_time"`
	IsCompleted  bool       `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`

	CategoryName  *string `gorm:"->;-:migration" json:"category_name"`
	CategoryColor *string `gorm:"->;-:migration" json:"category_color"`
}
