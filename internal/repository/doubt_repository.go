package repository

import (
	"context"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
)

type DoubtRepository struct {
	DB *gorm.DB
}

func NewDoubtRepository(db *gorm.DB) *DoubtRepository {
	return &DoubtRepository{DB: db}
}

func (r *DoubtRepository) Create(ctx context.Context, d *model.Doubt) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *DoubtRepository) FindByID(ctx context.Context, id uint) (*model.Doubt, error) {
	var d model.Doubt
	err := r.DB.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *DoubtRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.Doubt, error) {
	var list []model.Doubt
	err := r.DB.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DoubtRepository) ListPending(ctx context.Context) ([]model.Doubt, error) {
	var list []model.Doubt
	err := r.DB.WithContext(ctx).
		Preload("Student").
		Where("status = ?", model.DoubtPending).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// Answer stores the response and closes the doubt atomically. It returns
// gorm.ErrRecordNotFound when the doubt is missing and false when the doubt
// was no longer pending.
func (r *DoubtRepository) Answer(ctx context.Context, resp *model.DoubtResponse) (bool, error) {
	answered := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.Doubt
		if err := tx.First(&d, resp.DoubtID).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Doubt{}).
			Where("id = ? AND status = ?", resp.DoubtID, model.DoubtPending).
			Update("status", model.DoubtAnswered)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Create(resp).Error; err != nil {
			return err
		}
		answered = true
		return nil
	})
	return answered, err
}
