package service

import (
	"context"
	"errors"
	"fmt"
	"mathquiz_backend/internal/model"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func sampleQuestions(n int) []model.Question {
	out := make([]model.Question, n)
	for i := range out {
		out[i] = model.Question{
			ID:            model.QuestionID(fmt.Sprintf("q%d", i+1)),
			ClassLevel:    8,
			Chapter:       "Mensuration",
			Topic:         "Area",
			Difficulty:    model.DifficultyEasy,
			QuestionType:  model.QuestionTypeMCQ,
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			Options:       map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"},
			CorrectAnswer: "A",
		}
	}
	return out
}

// fakeQuestions returns its questions for any filter and samples in order.
type fakeQuestions struct {
	questions []model.Question
	err       error
}

func (f *fakeQuestions) Filter(classLevel int, chapter, difficulty string) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func (f *fakeQuestions) Sample(questions []model.Question, n int) []model.Question {
	if n > len(questions) {
		n = len(questions)
	}
	out := make([]model.Question, n)
	copy(out, questions[:n])
	return out
}

func (f *fakeQuestions) Index() (map[string]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	idx := make(map[string]model.Question, len(f.questions))
	for _, q := range f.questions {
		idx[string(q.ID)] = q
	}
	return idx, nil
}

type fakeAttempts struct {
	mu       sync.Mutex
	attempts []model.QuizAttempt
	failOn   map[string]bool
	err      error
}

func (f *fakeAttempts) Record(ctx context.Context, a *model.QuizAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[a.QuestionID] {
		return errors.New("connection reset")
	}
	a.ID = uint(len(f.attempts) + 1)
	f.attempts = append(f.attempts, *a)
	return nil
}

func (f *fakeAttempts) FindByStudent(ctx context.Context, studentID uint) ([]model.QuizAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttempts) FindAll(ctx context.Context) ([]model.QuizAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.QuizAttempt(nil), f.attempts...), nil
}

type fakeProgress struct {
	mu      sync.Mutex
	rows    map[uint]*model.QuizProgress
	deletes int
	err     error
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{rows: make(map[uint]*model.QuizProgress)}
}

func (f *fakeProgress) Upsert(ctx context.Context, p *model.QuizProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := *p
	f.rows[p.UserID] = &cp
	return nil
}

func (f *fakeProgress) FindByUser(ctx context.Context, userID uint) (*model.QuizProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[userID], nil
}

func (f *fakeProgress) DeleteByUser(ctx context.Context, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.rows, userID)
	return nil
}

type fakeBadgeStore struct {
	mu     sync.Mutex
	badges []model.Badge
}

func (f *fakeBadgeStore) Award(ctx context.Context, b *model.Badge) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.badges {
		if existing.StudentID == b.StudentID && existing.BadgeName == b.BadgeName {
			return false, nil
		}
	}
	f.badges = append(f.badges, *b)
	return true, nil
}

func (f *fakeBadgeStore) ListByStudent(ctx context.Context, studentID uint) ([]model.Badge, error) {
	var out []model.Badge
	for _, b := range f.badges {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[uint]*model.User
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{users: make(map[uint]*model.User)}
	for i := range users {
		u := users[i]
		f.users[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uint(len(f.users) + 1)
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uint]model.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (f *fakeUsers) ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func student(id uint, name string, class int) model.User {
	u := model.User{Email: fmt.Sprintf("s%d@example.com", id), FullName: name, Role: model.Student, Class: &class}
	u.ID = id
	return u
}
