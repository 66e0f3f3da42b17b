package service

import (
	"context"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"strings"
	"time"
)

var badgeDescriptions = map[string]string{
	model.BadgeFirstQuiz:    "Finished your first quiz",
	model.BadgePerfectScore: "Answered every question of a quiz correctly",
	model.BadgeSpeedStar:    "Scored 80% or more averaging 15 seconds or less per timed question",
}

const speedStarMaxAvgTime = 15

type BadgeService struct {
	Store BadgeStore
	now   func() time.Time
}

func NewBadgeService(store BadgeStore) *BadgeService {
	return &BadgeService{Store: store, now: time.Now}
}

// Award grants a badge once; repeats are no-ops. It reports whether the
// badge is new.
func (s *BadgeService) Award(ctx context.Context, studentID uint, name, description string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, util.Validation("badge name is required")
	}
	if description == "" {
		description = badgeDescriptions[name]
	}
	created, err := s.Store.Award(ctx, &model.Badge{
		StudentID:   studentID,
		BadgeName:   name,
		Description: description,
		AwardedAt:   s.now(),
	})
	if err != nil {
		return false, util.Internal("award badge", err)
	}
	return created, nil
}

func (s *BadgeService) List(ctx context.Context, studentID uint) ([]model.Badge, error) {
	badges, err := s.Store.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, util.Internal("list badges", err)
	}
	return badges, nil
}

// EarnedBadges names the automatic badges a finished quiz qualifies for.
func EarnedBadges(result *model.QuizResult) []string {
	names := []string{model.BadgeFirstQuiz}
	if result.Total == 0 {
		return names
	}
	if result.CorrectCount == result.Total {
		names = append(names, model.BadgePerfectScore)
	}
	if result.Accuracy >= 80 && result.UntimedAnswers == 0 && result.AvgTime <= speedStarMaxAvgTime {
		names = append(names, model.BadgeSpeedStar)
	}
	return names
}

// AwardForResult grants the automatic badges and returns the newly earned ones.
func (s *BadgeService) AwardForResult(ctx context.Context, studentID uint, result *model.QuizResult) ([]string, error) {
	var awarded []string
	for _, name := range EarnedBadges(result) {
		created, err := s.Award(ctx, studentID, name, "")
		if err != nil {
			return awarded, err
		}
		if created {
			awarded = append(awarded, name)
		}
	}
	return awarded, nil
}
