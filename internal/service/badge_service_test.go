package service

import (
	"context"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"reflect"
	"testing"
)

func TestEarnedBadges(t *testing.T) {
	tests := []struct {
		name   string
		result model.QuizResult
		want   []string
	}{
		{"empty quiz", model.QuizResult{}, []string{model.BadgeFirstQuiz}},
		{"perfect and fast", model.QuizResult{CorrectCount: 5, Total: 5, Accuracy: 100, AvgTime: 9},
			[]string{model.BadgeFirstQuiz, model.BadgePerfectScore, model.BadgeSpeedStar}},
		{"perfect but slow", model.QuizResult{CorrectCount: 3, Total: 3, Accuracy: 100, AvgTime: 40},
			[]string{model.BadgeFirstQuiz, model.BadgePerfectScore}},
		{"fast but inaccurate", model.QuizResult{CorrectCount: 2, Total: 5, Accuracy: 40, AvgTime: 5},
			[]string{model.BadgeFirstQuiz}},
		{"speed star boundary", model.QuizResult{CorrectCount: 4, Total: 5, Accuracy: 80, AvgTime: 15},
			[]string{model.BadgeFirstQuiz, model.BadgeSpeedStar}},
		{"fast with untimed restored answers", model.QuizResult{CorrectCount: 3, Total: 3, Accuracy: 100, AvgTime: 10, UntimedAnswers: 2},
			[]string{model.BadgeFirstQuiz, model.BadgePerfectScore}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EarnedBadges(&tt.result); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EarnedBadges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBadgeServiceAwardOnce(t *testing.T) {
	store := &fakeBadgeStore{}
	svc := NewBadgeService(store)
	ctx := context.Background()

	created, err := svc.Award(ctx, 1, "Helper", "Answered a classmate")
	if err != nil || !created {
		t.Fatalf("first Award() = %v, %v", created, err)
	}
	created, err = svc.Award(ctx, 1, "Helper", "again")
	if err != nil || created {
		t.Errorf("repeat Award() = %v, %v, want no-op", created, err)
	}
	if _, err := svc.Award(ctx, 1, "  ", ""); util.KindOf(err) != util.KindValidation {
		t.Errorf("blank name: got %v", err)
	}

	if _, err := svc.Award(ctx, 1, model.BadgeFirstQuiz, ""); err != nil {
		t.Fatal(err)
	}
	badges, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(badges) != 2 {
		t.Fatalf("badges = %+v", badges)
	}
	if badges[1].Description != badgeDescriptions[model.BadgeFirstQuiz] {
		t.Errorf("default description not applied: %q", badges[1].Description)
	}
}

func TestBadgeServiceAwardForResult(t *testing.T) {
	svc := NewBadgeService(&fakeBadgeStore{})
	ctx := context.Background()
	result := &model.QuizResult{CorrectCount: 2, Total: 2, Accuracy: 100, AvgTime: 30}

	first, err := svc.AwardForResult(ctx, 8, result)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, []string{model.BadgeFirstQuiz, model.BadgePerfectScore}) {
		t.Errorf("first quiz badges = %v", first)
	}

	second, err := svc.AwardForResult(ctx, 8, result)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Errorf("badges are awarded once, got %v", second)
	}
}
