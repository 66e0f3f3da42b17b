package service

import (
	"context"
	"mathquiz_backend/internal/model"
)

// Narrow views of the repositories, so services can be tested with fakes.

type QuestionSource interface {
	Filter(classLevel int, chapter, difficulty string) ([]model.Question, error)
	Sample(questions []model.Question, n int) []model.Question
}

type QuestionIndex interface {
	Index() (map[string]model.Question, error)
}

type AttemptRecorder interface {
	Record(ctx context.Context, attempt *model.QuizAttempt) error
}

type AttemptReader interface {
	FindByStudent(ctx context.Context, studentID uint) ([]model.QuizAttempt, error)
	FindAll(ctx context.Context) ([]model.QuizAttempt, error)
}

type ProgressStore interface {
	Upsert(ctx context.Context, p *model.QuizProgress) error
	FindByUser(ctx context.Context, userID uint) (*model.QuizProgress, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.User, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type BadgeStore interface {
	Award(ctx context.Context, b *model.Badge) (bool, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Badge, error)
}

// BadgeAwarder grants automatic badges after a finished quiz.
type BadgeAwarder interface {
	AwardForResult(ctx context.Context, studentID uint, result *model.QuizResult) ([]string, error)
}
