package service

import (
	"context"
	"fmt"
	"math"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"mathquiz_backend/pkg/monitoring"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

const (
	msgExcellent = "Excellent performance!"
	msgGood      = "Good job! Keep practicing!"
	msgReview    = "Consider reviewing the material and trying again."

	warnAttemptNotSaved = "your answer was graded but could not be saved"

	sessionLockStripes = 256
)

// CreateSessionRequest selects the questions of a new quiz.
type CreateSessionRequest struct {
	Class        int    `json:"class" binding:"required"`
	Chapter      string `json:"chapter" binding:"required"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

// QuizService drives quiz sessions: Hidden -> Started -> Answered per
// question, then Finish.
type QuizService struct {
	Questions QuestionSource
	Sessions  SessionStore
	Attempts  AttemptRecorder
	Progress  ProgressStore
	Badges    BadgeAwarder

	now   func() time.Time
	locks [sessionLockStripes]sync.Mutex

	mu               sync.RWMutex
	defaultQuestions int
	maxQuestions     int
}

func NewQuizService(questions QuestionSource, sessions SessionStore, attempts AttemptRecorder, progress ProgressStore, badges BadgeAwarder, cfg config.QuizConfig) *QuizService {
	return &QuizService{
		Questions:        questions,
		Sessions:         sessions,
		Attempts:         attempts,
		Progress:         progress,
		Badges:           badges,
		now:              time.Now,
		defaultQuestions: cfg.DefaultQuestions,
		maxQuestions:     cfg.MaxQuestions,
	}
}

// SetLimits updates the question count defaults on config reload.
func (s *QuizService) SetLimits(defaultQuestions, maxQuestions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultQuestions = defaultQuestions
	s.maxQuestions = maxQuestions
}

func (s *QuizService) limits() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultQuestions, s.maxQuestions
}

// lock serialises actions on one session within this process. Sessions
// share a fixed set of mutexes, so expired sessions leave nothing behind.
func (s *QuizService) lock(sessionID string) func() {
	m := s.lockFor(sessionID)
	m.Lock()
	return m.Unlock
}

func (s *QuizService) lockFor(sessionID string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(sessionID)%sessionLockStripes]
}

func (s *QuizService) load(ctx context.Context, userID uint, sessionID string) (*model.QuizSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrSessionNotOwned
	}
	return session, nil
}

func (s *QuizService) CreateSession(ctx context.Context, userID uint, req CreateSessionRequest) (*model.QuizSessionView, error) {
	if !model.IsValidClassLevel(req.Class) {
		return nil, util.Validation("class must be 8, 9 or 10")
	}
	chapter := strings.TrimSpace(req.Chapter)
	if chapter == "" {
		return nil, util.Validation("chapter is required")
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyAny
	}

	defaultN, maxN := s.limits()
	n := req.NumQuestions
	if n == 0 {
		n = defaultN
	}
	if n < 1 || n > maxN {
		return nil, util.Validation(fmt.Sprintf("numQuestions must be between 1 and %d", maxN))
	}

	filtered, err := s.Questions.Filter(req.Class, chapter, difficulty)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, util.ErrNoMatchingMCQs
	}

	picked := s.Questions.Sample(filtered, n)
	for i := range picked {
		if picked[i].ID == "" {
			picked[i].ID = model.QuestionID(strconv.Itoa(i + 1))
		}
	}

	session := &model.QuizSession{
		ID:         model.NewSessionID(),
		UserID:     userID,
		ClassLevel: req.Class,
		Chapter:    chapter,
		Difficulty: difficulty,
		Questions:  picked,
		States:     make([]model.QuestionState, len(picked)),
		CreatedAt:  s.now(),
	}
	for i := range session.States {
		session.States[i].Status = model.StatusHidden
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	// A new quiz replaces any saved snapshot.
	if err := s.Progress.DeleteByUser(ctx, userID); err != nil {
		logger.Log.Warn("Failed to clear quiz progress on new quiz",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}

	logger.Log.Info("Quiz session created",
		zap.Uint("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("questions", len(picked)),
	)
	return viewOf(session), nil
}

func (s *QuizService) Get(ctx context.Context, userID uint, sessionID string) (*model.QuizSessionView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// StartQuestion reveals a question and starts its timer. Starting an already
// started or answered question returns its state unchanged.
func (s *QuizService) StartQuestion(ctx context.Context, userID uint, sessionID string, index int) (*model.QuestionView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ValidIndex(index) {
		return nil, util.ErrQuestionIndex
	}

	st := &session.States[index]
	if st.Status == model.StatusHidden {
		now := s.now()
		st.Status = model.StatusStarted
		st.StartTime = &now
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	v := questionViewOf(session, index)
	return &v, nil
}

// Answer grades a started question and records the attempt right away. A
// failed write is reported in the feedback and does not block the quiz.
func (s *QuizService) Answer(ctx context.Context, userID uint, sessionID string, index int, label string) (*model.AnswerFeedback, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkAnswerable(session, index, label); err != nil {
		return nil, err
	}

	fb := s.answer(ctx, session, index, label)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return fb, nil
}

func checkAnswerable(session *model.QuizSession, index int, label string) error {
	if !session.ValidIndex(index) {
		return util.ErrQuestionIndex
	}
	switch session.States[index].Status {
	case model.StatusHidden:
		return util.ErrQuestionNotStarted
	case model.StatusAnswered:
		return util.ErrAlreadyAnswered
	}
	q := session.Questions[index]
	if !q.HasOption(label) {
		return util.Validation(fmt.Sprintf("answer must be one of %s", strings.Join(q.OptionLabels(), ", ")))
	}
	return nil
}

// answer applies Started -> Answered and writes the attempt. The caller
// holds the session lock and has run checkAnswerable.
func (s *QuizService) answer(ctx context.Context, session *model.QuizSession, index int, label string) *model.AnswerFeedback {
	q := session.Questions[index]
	st := &session.States[index]

	end := s.now()
	taken := 0
	if st.StartTime != nil {
		taken = int(math.Floor(end.Sub(*st.StartTime).Seconds()))
	}
	if taken < 0 {
		taken = 0
	}

	st.Status = model.StatusAnswered
	st.EndTime = &end
	st.SelectedAnswer = label
	st.IsCorrect = label == q.CorrectAnswer
	st.TimeTakenSeconds = taken

	fb := &model.AnswerFeedback{
		Index:            index,
		Correct:          st.IsCorrect,
		SelectedAnswer:   label,
		CorrectAnswer:    q.CorrectAnswer,
		TimeTakenSeconds: taken,
	}
	if s.record(ctx, session, index, end) {
		fb.Recorded = true
	} else {
		fb.Warning = warnAttemptNotSaved
	}

	monitoring.AnswersTotal.WithLabelValues(strconv.FormatBool(st.IsCorrect)).Inc()
	return fb
}

// record writes the attempt for an answered question and sets its Recorded
// flag. A failed write is logged and counted, never returned.
func (s *QuizService) record(ctx context.Context, session *model.QuizSession, index int, at time.Time) bool {
	st := &session.States[index]
	attempt := &model.QuizAttempt{
		StudentID:        session.UserID,
		QuestionID:       string(session.Questions[index].ID),
		SelectedAnswer:   st.SelectedAnswer,
		IsCorrect:        st.IsCorrect,
		TimeTakenSeconds: st.TimeTakenSeconds,
		QuizSessionID:    session.ID,
		AttemptedAt:      at,
	}
	if err := s.Attempts.Record(ctx, attempt); err != nil {
		monitoring.AttemptWriteFailures.Inc()
		logger.Log.Error("Failed to record quiz attempt",
			zap.Uint("user_id", session.UserID),
			zap.String("session_id", session.ID),
			zap.String("question_id", attempt.QuestionID),
			zap.Error(err),
		)
		st.Recorded = false
		return false
	}
	st.Recorded = true
	return true
}

// Finish grades any final answers for started questions, tallies the quiz,
// clears the session and the saved snapshot, and awards badges. Final
// answers for questions never started are skipped.
func (s *QuizService) Finish(ctx context.Context, userID uint, sessionID string, finalAnswers map[int]string) (*model.QuizResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	indexes := make([]int, 0, len(finalAnswers))
	for i := range finalAnswers {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var skipped []int
	var pending []int
	for _, i := range indexes {
		if !session.ValidIndex(i) {
			return nil, util.ErrQuestionIndex
		}
		switch session.States[i].Status {
		case model.StatusHidden:
			skipped = append(skipped, i)
			continue
		case model.StatusAnswered:
			continue
		}
		if err := checkAnswerable(session, i, finalAnswers[i]); err != nil {
			return nil, err
		}
		pending = append(pending, i)
	}

	result := &model.QuizResult{SessionID: session.ID, Skipped: skipped}
	for _, i := range pending {
		fb := s.answer(ctx, session, i, finalAnswers[i])
		if fb.Warning != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("question %d: %s", i+1, fb.Warning))
		}
	}

	tally(session, result)

	if err := s.Sessions.Delete(ctx, session.ID); err != nil {
		logger.Log.Warn("Failed to delete finished quiz session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	if err := s.Progress.DeleteByUser(ctx, userID); err != nil {
		logger.Log.Warn("Failed to clear quiz progress after finish",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}

	if s.Badges != nil {
		awarded, err := s.Badges.AwardForResult(ctx, userID, result)
		if err != nil {
			logger.Log.Warn("Failed to award badges",
				zap.Uint("user_id", userID),
				zap.String("session_id", session.ID),
				zap.Error(err),
			)
		}
		result.NewBadges = awarded
	}

	monitoring.QuizzesFinished.Inc()
	logger.Log.Info("Quiz finished",
		zap.Uint("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("correct", result.CorrectCount),
		zap.Int("total", result.Total),
	)
	return result, nil
}

// tally fills counts, accuracy, average time and review in question order.
// Answers without a measured time are counted but left out of the average.
func tally(session *model.QuizSession, result *model.QuizResult) {
	result.Total = len(session.Questions)
	timed, timeSum := 0, 0
	result.Review = make([]model.ReviewItem, 0, len(session.Questions))

	for i, q := range session.Questions {
		st := session.States[i]
		item := model.ReviewItem{
			Index:         i,
			QuestionID:    string(q.ID),
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
		}
		if st.Status == model.StatusAnswered {
			if st.TimeUnknown {
				result.UntimedAnswers++
			} else {
				timed++
				timeSum += st.TimeTakenSeconds
			}
			item.Answered = true
			item.SelectedAnswer = st.SelectedAnswer
			item.IsCorrect = st.IsCorrect
			item.TimeTakenSeconds = st.TimeTakenSeconds
			if st.IsCorrect {
				result.CorrectCount++
			}
		}
		result.Review = append(result.Review, item)
	}

	if result.Total > 0 {
		result.Accuracy = int(math.Round(util.Percent(result.CorrectCount, result.Total)))
	}
	if timed > 0 {
		result.AvgTime = timeSum / timed
	}
	result.Message = performanceMessage(result.Accuracy)
}

func performanceMessage(accuracy int) string {
	switch {
	case accuracy >= 80:
		return msgExcellent
	case accuracy >= 60:
		return msgGood
	default:
		return msgReview
	}
}

// Close abandons a session. Recorded attempts and any saved snapshot stay.
func (s *QuizService) Close(ctx context.Context, userID uint, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if _, err := s.load(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	return nil
}

// Resume rebuilds a live session from the user's saved snapshot. Questions
// with a saved answer come back Answered. Answers a session already wrote to
// the attempt log keep their time and are not written again. Any other
// answer is written now under the new session id. Client-built answers carry
// no measured time and are flagged TimeUnknown.
func (s *QuizService) Resume(ctx context.Context, userID uint) (*model.QuizSessionView, int, error) {
	snap, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		return nil, 0, util.Internal("load quiz progress", err)
	}
	if snap == nil {
		return nil, 0, util.ErrNoProgress
	}

	questions := snap.QuizData.Data()
	if len(questions) == 0 {
		return nil, 0, util.ErrNoProgress
	}
	answers := snap.CurrentAnswers.Data()
	records := snap.AnswerRecords.Data()
	now := s.now()

	session := &model.QuizSession{
		ID:         model.NewSessionID(),
		UserID:     userID,
		ClassLevel: questions[0].ClassLevel,
		Chapter:    questions[0].Chapter,
		Difficulty: model.DifficultyAny,
		Questions:  questions,
		States:     make([]model.QuestionState, len(questions)),
		CreatedAt:  now,
	}
	for i, q := range questions {
		st := &session.States[i]
		st.Status = model.StatusHidden
		label, ok := answers[i]
		if !ok || !q.HasOption(label) {
			continue
		}
		st.Status = model.StatusAnswered
		st.SelectedAnswer = label
		st.IsCorrect = label == q.CorrectAnswer

		rec, graded := records[i]
		st.TimeTakenSeconds = rec.TimeTakenSeconds
		st.TimeUnknown = !graded || rec.TimeUnknown
		if graded && rec.Recorded {
			st.Recorded = true
			continue
		}
		s.record(ctx, session, i, now)
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, 0, err
	}

	current := snap.CurrentQuestion
	if current < 0 || current >= len(questions) {
		current = 0
	}
	return viewOf(session), current, nil
}

// AnsweredQuestion returns a question the caller has already answered in
// the session, with the selected label.
func (s *QuizService) AnsweredQuestion(ctx context.Context, userID uint, sessionID string, index int) (*model.Question, string, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, "", err
	}
	if !session.ValidIndex(index) {
		return nil, "", util.ErrQuestionIndex
	}
	st := session.States[index]
	if st.Status != model.StatusAnswered {
		return nil, "", util.ErrNotAnsweredYet
	}
	q := session.Questions[index]
	return &q, st.SelectedAnswer, nil
}

func viewOf(session *model.QuizSession) *model.QuizSessionView {
	v := &model.QuizSessionView{
		ID:         session.ID,
		ClassLevel: session.ClassLevel,
		Chapter:    session.Chapter,
		Difficulty: session.Difficulty,
		Questions:  make([]model.QuestionView, len(session.Questions)),
		CreatedAt:  session.CreatedAt,
	}
	for i := range session.Questions {
		v.Questions[i] = questionViewOf(session, i)
	}
	return v
}

func questionViewOf(session *model.QuizSession, i int) model.QuestionView {
	st := session.States[i]
	q := session.Questions[i].Public()
	v := model.QuestionView{Index: i, Status: st.Status, Question: &q}
	if st.Status == model.StatusAnswered {
		correct := st.IsCorrect
		taken := st.TimeTakenSeconds
		v.SelectedAnswer = st.SelectedAnswer
		v.IsCorrect = &correct
		v.CorrectAnswer = session.Questions[i].CorrectAnswer
		v.TimeTakenSeconds = &taken
	}
	return v
}
