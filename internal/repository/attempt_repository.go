package repository

import (
	"context"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository struct {
	DB *gorm.DB
	// Unique skips inserts that collide on (student, question, session).
	Unique bool
}

func NewAttemptRepository(db *gorm.DB, unique bool) *AttemptRepository {
	return &AttemptRepository{DB: db, Unique: unique}
}

// Record appends one attempt. With Unique set a repeated
// (student, question, session) triple is a silent no-op.
func (r *AttemptRepository) Record(ctx context.Context, attempt *model.QuizAttempt) error {
	tx := r.DB.WithContext(ctx)
	if r.Unique {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
	}
	return tx.Create(attempt).Error
}

func (r *AttemptRepository) FindByStudent(ctx context.Context, studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("attempted_at ASC, id ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindAll(ctx context.Context) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).Order("attempted_at ASC, id ASC").Find(&attempts).Error
	return attempts, err
}
