package service

import (
	"context"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"time"

	"gorm.io/datatypes"
)

// SaveProgressRequest is a client-built snapshot of a quiz in progress.
type SaveProgressRequest struct {
	QuizData        []model.Question `json:"quizData" binding:"required"`
	CurrentAnswers  map[int]string   `json:"currentAnswers"`
	CurrentQuestion int              `json:"currentQuestion"`
}

// ProgressService keeps one resumable snapshot per user.
type ProgressService struct {
	Store    ProgressStore
	Sessions SessionStore
	Bank     QuestionIndex
	now      func() time.Time
}

func NewProgressService(store ProgressStore, sessions SessionStore, bank QuestionIndex) *ProgressService {
	return &ProgressService{Store: store, Sessions: sessions, Bank: bank, now: time.Now}
}

// Save upserts a client-built snapshot. Questions are replaced by their
// dataset versions so a client cannot supply its own answer key. Saving
// the same state twice leaves one row.
func (s *ProgressService) Save(ctx context.Context, userID uint, req SaveProgressRequest) (*model.ProgressView, error) {
	questions, err := s.canonical(req.QuizData)
	if err != nil {
		return nil, err
	}
	req.QuizData = questions
	p, err := s.save(ctx, userID, req, nil)
	if err != nil {
		return nil, err
	}
	return p.View(), nil
}

func (s *ProgressService) canonical(questions []model.Question) ([]model.Question, error) {
	if len(questions) == 0 {
		return nil, util.Validation("quizData must not be empty")
	}
	idx, err := s.Bank.Index()
	if err != nil {
		return nil, err
	}
	out := make([]model.Question, len(questions))
	for i, q := range questions {
		known, ok := idx[string(q.ID)]
		if !ok {
			return nil, util.Validation("quizData contains an unknown question id: " + string(q.ID))
		}
		out[i] = known
	}
	return out, nil
}

func (s *ProgressService) save(ctx context.Context, userID uint, req SaveProgressRequest, records map[int]model.AnswerRecord) (*model.QuizProgress, error) {
	if len(req.QuizData) == 0 {
		return nil, util.Validation("quizData must not be empty")
	}
	if req.CurrentQuestion < 0 || req.CurrentQuestion >= len(req.QuizData) {
		return nil, util.Validation("currentQuestion out of range")
	}
	answers := req.CurrentAnswers
	if answers == nil {
		answers = map[int]string{}
	}
	for i := range answers {
		if i < 0 || i >= len(req.QuizData) {
			return nil, util.Validation("currentAnswers refers to a question out of range")
		}
	}

	if records == nil {
		records = map[int]model.AnswerRecord{}
	}

	p := &model.QuizProgress{
		UserID:          userID,
		QuizData:        datatypes.NewJSONType(req.QuizData),
		CurrentAnswers:  datatypes.NewJSONType(answers),
		AnswerRecords:   datatypes.NewJSONType(records),
		CurrentQuestion: req.CurrentQuestion,
		SavedAt:         s.now(),
	}
	if err := s.Store.Upsert(ctx, p); err != nil {
		return nil, util.Internal("could not save progress", err)
	}
	return p, nil
}

// SaveFromSession snapshots a live session; only answered questions carry
// an answer, together with the time and write status the session measured.
func (s *ProgressService) SaveFromSession(ctx context.Context, userID uint, sessionID string, currentQuestion int) (*model.ProgressView, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrSessionNotOwned
	}
	p, err := s.save(ctx, userID, SaveProgressRequest{
		QuizData:        session.Questions,
		CurrentAnswers:  session.AnsweredLabels(),
		CurrentQuestion: currentQuestion,
	}, session.AnswerRecords())
	if err != nil {
		return nil, err
	}
	return p.View(), nil
}

// Load returns nil, nil when the user has nothing saved.
func (s *ProgressService) Load(ctx context.Context, userID uint) (*model.ProgressView, error) {
	p, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return nil, util.Internal("load quiz progress", err)
	}
	if p == nil {
		return nil, nil
	}
	return p.View(), nil
}

func (s *ProgressService) Clear(ctx context.Context, userID uint) error {
	if err := s.Store.DeleteByUser(ctx, userID); err != nil {
		return util.Internal("clear quiz progress", err)
	}
	return nil
}
