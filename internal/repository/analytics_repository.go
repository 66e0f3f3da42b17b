package repository

import (
	"context"
	"mathquiz_backend/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository runs grouped aggregates over quiz_attempts.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// LeaderboardRows returns per-student totals for every student with at least one attempt.
func (r *AnalyticsRepository) LeaderboardRows(ctx context.Context) ([]model.LeaderboardRow, error) {
	var rows []model.LeaderboardRow
	err := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Select("student_id, COUNT(*) AS attempts, " +
			"SUM(CASE WHEN is_correct THEN 1 ELSE 0 END) AS correct_count, " +
			"SUM(time_taken_seconds) AS total_time").
		Group("student_id").
		Scan(&rows).Error
	return rows, err
}
