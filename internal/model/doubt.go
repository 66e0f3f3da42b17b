package model

import "time"

type DoubtStatus string

const (
	DoubtPending  DoubtStatus = "pending"
	DoubtAnswered DoubtStatus = "answered"
)

// swagger:model Doubt
type Doubt struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID    uint            `gorm:"not null;index" json:"studentId"`
	QuestionText string          `gorm:"type:text;not null" json:"questionText"`
	ImageURL     string          `gorm:"size:512" json:"imageUrl,omitempty"`
	Status       DoubtStatus     `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	Student      *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Responses    []DoubtResponse `gorm:"foreignKey:DoubtID" json:"responses,omitempty"`
}

func (Doubt) TableName() string {
	return "doubts"
}

// swagger:model DoubtResponse
type DoubtResponse struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoubtID          uint      `gorm:"not null;index" json:"doubtId"`
	TeacherID        uint      `gorm:"not null" json:"teacherId"`
	ResponseText     string    `gorm:"type:text" json:"responseText"`
	ResponseImageURL string    `gorm:"size:512" json:"responseImageUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (DoubtResponse) TableName() string {
	return "doubt_responses"
}
