package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizAttempt is one answered question. (student_id, question_id,
// quiz_session_id) is unique when attempt uniqueness is enforced.
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID        uint      `gorm:"not null;index" json:"studentId"`
	QuestionID       string    `gorm:"size:64;not null" json:"questionId"`
	SelectedAnswer   string    `gorm:"size:16" json:"selectedAnswer"`
	IsCorrect        bool      `json:"isCorrect"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
	QuizSessionID    string    `gorm:"size:36;not null;index" json:"quizSessionId"`
	AttemptedAt      time.Time `gorm:"index" json:"attemptedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizProgress is the per-user resumable snapshot. At most one row per user.
// AnswerRecords holds the server-side grading of answers given inside a live
// session, keyed like CurrentAnswers. Client-built snapshots have none.
// swagger:model QuizProgress
type QuizProgress struct {
	ID              uint                                     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID          uint                                     `gorm:"uniqueIndex;not null" json:"userId"`
	QuizData        datatypes.JSONType[[]Question]           `json:"quizData" swaggertype:"array,object"`
	CurrentAnswers  datatypes.JSONType[map[int]string]       `json:"currentAnswers" swaggertype:"object"`
	AnswerRecords   datatypes.JSONType[map[int]AnswerRecord] `json:"-"`
	CurrentQuestion int                                      `json:"currentQuestion"`
	SavedAt         time.Time                                `json:"savedAt"`
}

func (QuizProgress) TableName() string {
	return "quiz_progress"
}

// AnswerRecord is what a session knew about one answer when it was saved.
type AnswerRecord struct {
	TimeTakenSeconds int  `json:"timeTakenSeconds"`
	TimeUnknown      bool `json:"timeUnknown,omitempty"`
	Recorded         bool `json:"recorded"`
}

// View returns the snapshot as its owner may see it. Correct answers are
// kept only for questions graded inside a session.
func (p *QuizProgress) View() *ProgressView {
	records := p.AnswerRecords.Data()
	questions := p.QuizData.Data()
	v := &ProgressView{
		QuizData:        make([]Question, len(questions)),
		CurrentAnswers:  p.CurrentAnswers.Data(),
		CurrentQuestion: p.CurrentQuestion,
		SavedAt:         p.SavedAt,
	}
	if v.CurrentAnswers == nil {
		v.CurrentAnswers = map[int]string{}
	}
	for i, q := range questions {
		if _, graded := records[i]; graded {
			v.QuizData[i] = q
			continue
		}
		v.QuizData[i] = q.Public()
	}
	return v
}

// ProgressView is the API shape of a saved snapshot.
// swagger:model ProgressView
type ProgressView struct {
	QuizData        []Question     `json:"quizData"`
	CurrentAnswers  map[int]string `json:"currentAnswers"`
	CurrentQuestion int            `json:"currentQuestion"`
	SavedAt         time.Time      `json:"savedAt"`
}

type QuestionStatus string

const (
	StatusHidden   QuestionStatus = "hidden"
	StatusStarted  QuestionStatus = "started"
	StatusAnswered QuestionStatus = "answered"
)

// QuestionState tracks one question inside a live quiz session. TimeUnknown
// marks answers restored without a measured time.
type QuestionState struct {
	Status           QuestionStatus `json:"status"`
	StartTime        *time.Time     `json:"startTime,omitempty"`
	EndTime          *time.Time     `json:"endTime,omitempty"`
	SelectedAnswer   string         `json:"selectedAnswer,omitempty"`
	IsCorrect        bool           `json:"isCorrect"`
	TimeTakenSeconds int            `json:"timeTakenSeconds"`
	TimeUnknown      bool           `json:"timeUnknown,omitempty"`
	Recorded         bool           `json:"recorded"`
}

// QuizSession is the in-flight state of one quiz. It lives in the session
// store, never in the relational database.
type QuizSession struct {
	ID         string          `json:"sessionId"`
	UserID     uint            `json:"userId"`
	ClassLevel int             `json:"classLevel"`
	Chapter    string          `json:"chapter"`
	Difficulty string          `json:"difficulty"`
	Questions  []Question      `json:"questions"`
	States     []QuestionState `json:"states"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (s *QuizSession) ValidIndex(i int) bool {
	return i >= 0 && i < len(s.Questions)
}

// AnsweredLabels returns index -> selected label for answered questions.
func (s *QuizSession) AnsweredLabels() map[int]string {
	out := make(map[int]string)
	for i, st := range s.States {
		if st.Status == StatusAnswered {
			out[i] = st.SelectedAnswer
		}
	}
	return out
}

// AnswerRecords returns index -> grading record for answered questions.
func (s *QuizSession) AnswerRecords() map[int]AnswerRecord {
	out := make(map[int]AnswerRecord)
	for i, st := range s.States {
		if st.Status == StatusAnswered {
			out[i] = AnswerRecord{
				TimeTakenSeconds: st.TimeTakenSeconds,
				TimeUnknown:      st.TimeUnknown,
				Recorded:         st.Recorded,
			}
		}
	}
	return out
}

// QuizSessionView is what a student sees of a session.
// swagger:model QuizSessionView
type QuizSessionView struct {
	ID         string         `json:"sessionId"`
	ClassLevel int            `json:"classLevel"`
	Chapter    string         `json:"chapter"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuestionView `json:"questions"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type QuestionView struct {
	Index            int            `json:"index"`
	Status           QuestionStatus `json:"status"`
	Question         *Question      `json:"question,omitempty"`
	SelectedAnswer   string         `json:"selectedAnswer,omitempty"`
	IsCorrect        *bool          `json:"isCorrect,omitempty"`
	CorrectAnswer    string         `json:"correctAnswer,omitempty"`
	TimeTakenSeconds *int           `json:"timeTakenSeconds,omitempty"`
}

// AnswerFeedback is returned right after a question is answered.
// swagger:model AnswerFeedback
type AnswerFeedback struct {
	Index            int    `json:"index"`
	Correct          bool   `json:"correct"`
	SelectedAnswer   string `json:"selectedAnswer"`
	CorrectAnswer    string `json:"correctAnswer"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
	Recorded         bool   `json:"recorded"`
	Warning          string `json:"warning,omitempty"`
}

type ReviewItem struct {
	Index            int    `json:"index"`
	QuestionID       string `json:"questionId"`
	QuestionText     string `json:"questionText"`
	SelectedAnswer   string `json:"selectedAnswer,omitempty"`
	CorrectAnswer    string `json:"correctAnswer"`
	IsCorrect        bool   `json:"isCorrect"`
	Answered         bool   `json:"answered"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
}

// QuizResult is the final tally of a finished session. UntimedAnswers counts
// answers left out of AvgTime.
// swagger:model QuizResult
type QuizResult struct {
	SessionID      string       `json:"sessionId"`
	CorrectCount   int          `json:"correctCount"`
	Total          int          `json:"total"`
	Accuracy       int          `json:"accuracy"`
	AvgTime        int          `json:"avgTime"`
	UntimedAnswers int          `json:"untimedAnswers,omitempty"`
	Message        string       `json:"message"`
	Review         []ReviewItem `json:"review"`
	Skipped        []int        `json:"skipped,omitempty"`
	Warnings       []string     `json:"warnings,omitempty"`
	NewBadges      []string     `json:"newBadges,omitempty"`
}
