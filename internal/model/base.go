package model

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSessionID returns a fresh quiz session identifier.
func NewSessionID() string {
	return uuid.New().String()
}
