package repository

import (
	"context"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// Award inserts the badge unless the student already holds it. It reports
// whether a new row was written.
func (r *BadgeRepository) Award(ctx context.Context, b *model.Badge) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(b)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BadgeRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("awarded_at ASC").
		Find(&badges).Error
	return badges, err
}
