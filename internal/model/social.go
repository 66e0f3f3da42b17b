package model

import "time"

const (
	BadgeFirstQuiz    = "First Quiz"
	BadgePerfectScore = "Perfect Score"
	BadgeSpeedStar    = "Speed Star"
)

// swagger:model Bookmark
type Bookmark struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID    uint      `gorm:"not null;uniqueIndex:idx_bookmark_once,priority:1" json:"studentId"`
	QuestionID   string    `gorm:"size:64;not null;uniqueIndex:idx_bookmark_once,priority:2" json:"questionId"`
	QuestionText string    `gorm:"type:text" json:"questionText"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// swagger:model DiscussionPost
type DiscussionPost struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID  string    `gorm:"size:64;not null;index" json:"questionId"`
	StudentID   uint      `gorm:"not null" json:"studentId"`
	StudentName string    `gorm:"size:100" json:"studentName"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PostedAt    time.Time `gorm:"index" json:"postedAt"`
}

func (DiscussionPost) TableName() string {
	return "discussion_posts"
}

// swagger:model Badge
type Badge struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID   uint      `gorm:"not null;uniqueIndex:idx_badge_once,priority:1" json:"studentId"`
	BadgeName   string    `gorm:"size:100;not null;uniqueIndex:idx_badge_once,priority:2" json:"badgeName"`
	Description string    `gorm:"size:255" json:"description"`
	AwardedAt   time.Time `json:"awardedAt"`
}

func (Badge) TableName() string {
	return "badges"
}
