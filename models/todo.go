package models

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Task        string     `gorm:"not null" json:"task"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Priority    Priority   `gorm:"not null;default:'medium'" json:"priority"`
	DueDate     *string    `json:"due_date"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`

	CategoryName  *string `gorm:"->;-:migration" json:"category_name"`
	CategoryColor *string `gorm:"->;-:migration" json:"category_color"`
}
