package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	IsPinned   bool       `gorm:"not null;default:false" json:"is_pinned"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`

	// Populated by the category join on reads, never stored.
	CategoryName  *string `gorm:"->;-:migration" json:"category_name"`
	CategoryColor *string `gorm:"->;-:migration" json:"category_color"`
}
