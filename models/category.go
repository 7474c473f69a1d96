package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is used when a client omits the color field.
const DefaultCategoryColor = "#007bff"

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `gorm:"not null;default:'#007bff'" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// DefaultCategories is the starter set seeded for every new user at
// registration, in insertion order.
var DefaultCategories = []struct {
	Name  string
	Color string
}{
	{"Personal", "#007bff"},
	{"Work", "#8c00ff"},
	{"Study", "#00ff4c"},
	{"Important", "#ff0000"},
	{"Finance", "#225d29"},
	{"Travel", "#00ccff"},
	{"Others", "#ff00f7"},
}
