package repository

import (
	"context"
	"errors"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert replaces the user's snapshot, keyed by user_id.
func (r *ProgressRepository) Upsert(ctx context.Context, p *model.QuizProgress) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quiz_data", "current_answers", "answer_records", "current_question", "saved_at"}),
	}).Create(p).Error
}

// FindByUser returns nil, nil when the user has no snapshot.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID uint) (*model.QuizProgress, error) {
	var p model.QuizProgress
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.QuizProgress{}).Error
}
