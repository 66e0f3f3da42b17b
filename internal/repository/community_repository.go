package repository

import (
	"context"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

// Add is idempotent per (student, question).
func (r *BookmarkRepository) Add(ctx context.Context, b *model.Bookmark) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(b).Error
}

func (r *BookmarkRepository) Remove(ctx context.Context, studentID uint, questionID string) error {
	return r.DB.WithContext(ctx).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		Delete(&model.Bookmark{}).Error
}

func (r *BookmarkRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.Bookmark, error) {
	var list []model.Bookmark
	err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("bookmarked_at DESC").
		Find(&list).Error
	return list, err
}

func (r *BookmarkRepository) Exists(ctx context.Context, studentID uint, questionID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		Count(&n).Error
	return n > 0, err
}

type DiscussionRepository struct {
	DB *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) *DiscussionRepository {
	return &DiscussionRepository{DB: db}
}

func (r *DiscussionRepository) Create(ctx context.Context, p *model.DiscussionPost) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *DiscussionRepository) ListByQuestion(ctx context.Context, questionID string) ([]model.DiscussionPost, error) {
	var posts []model.DiscussionPost
	err := r.DB.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("posted_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}
