package service

import (
	"context"
	"encoding/json"
	"errors"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"strings"
	"testing"
	"time"
)

func newProgressFixture() (*ProgressService, *fakeProgress, *MemorySessionStore) {
	store := newFakeProgress()
	sessions := NewMemorySessionStore(time.Hour)
	svc := NewProgressService(store, sessions, &fakeQuestions{questions: sampleQuestions(4)})
	return svc, store, sessions
}

func TestProgressServiceSave(t *testing.T) {
	svc, store, _ := newProgressFixture()
	ctx := context.Background()

	forged := sampleQuestions(2)
	forged[0].CorrectAnswer = "D"
	req := SaveProgressRequest{
		QuizData:        forged,
		CurrentAnswers:  map[int]string{0: "B"},
		CurrentQuestion: 1,
	}

	if _, err := svc.Save(ctx, 11, req); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := svc.Save(ctx, 11, req); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if len(store.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(store.rows))
	}

	if got := store.rows[11].QuizData.Data()[0].CorrectAnswer; got != "A" {
		t.Errorf("stored answer key = %q, want the dataset's A", got)
	}

	p, err := svc.Load(ctx, 11)
	if err != nil || p == nil {
		t.Fatalf("Load() = %v, %v", p, err)
	}
	if p.CurrentAnswers[0] != "B" || p.CurrentQuestion != 1 {
		t.Errorf("snapshot = %+v", p)
	}
	for i, q := range p.QuizData {
		if q.CorrectAnswer != "" {
			t.Errorf("client-built snapshot reveals the answer of question %d", i)
		}
	}

	if err := svc.Clear(ctx, 11); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if p, _ := svc.Load(ctx, 11); p != nil {
		t.Errorf("progress still present after Clear")
	}
}

func TestProgressServiceSaveValidation(t *testing.T) {
	svc, _, _ := newProgressFixture()
	unknown := sampleQuestions(1)
	unknown[0].ID = "nope"

	tests := []struct {
		name string
		req  SaveProgressRequest
	}{
		{"empty quiz", SaveProgressRequest{}},
		{"unknown question", SaveProgressRequest{QuizData: unknown}},
		{"current out of range", SaveProgressRequest{QuizData: sampleQuestions(2), CurrentQuestion: 2}},
		{"negative current", SaveProgressRequest{QuizData: sampleQuestions(2), CurrentQuestion: -1}},
		{"answer out of range", SaveProgressRequest{QuizData: sampleQuestions(2), CurrentAnswers: map[int]string{5: "A"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), 1, tt.req)
			if util.KindOf(err) != util.KindValidation {
				t.Errorf("err = %v, want validation", err)
			}
		})
	}
}

func TestProgressServiceSaveFromSession(t *testing.T) {
	svc, store, sessions := newProgressFixture()
	ctx := context.Background()

	session := &model.QuizSession{
		ID:        "sess-1",
		UserID:    4,
		Questions: sampleQuestions(3),
		States: []model.QuestionState{
			{Status: model.StatusAnswered, SelectedAnswer: "C"},
			{Status: model.StatusStarted},
			{Status: model.StatusHidden},
		},
	}
	if err := sessions.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SaveFromSession(ctx, 5, "sess-1", 0); !errors.Is(err, util.ErrSessionNotOwned) {
		t.Errorf("foreign session: got %v", err)
	}
	if _, err := svc.SaveFromSession(ctx, 4, "missing", 0); !errors.Is(err, util.ErrSessionNotFound) {
		t.Errorf("missing session: got %v", err)
	}

	p, err := svc.SaveFromSession(ctx, 4, "sess-1", 1)
	if err != nil {
		t.Fatalf("SaveFromSession() error = %v", err)
	}
	if len(p.CurrentAnswers) != 1 || p.CurrentAnswers[0] != "C" {
		t.Errorf("answers = %v, want only {0: C}", p.CurrentAnswers)
	}
	if store.rows[4] == nil {
		t.Fatalf("snapshot not stored")
	}
	wantKeys := []string{"A", "", ""}
	for i, q := range p.QuizData {
		if q.CorrectAnswer != wantKeys[i] {
			t.Errorf("question %d correct answer = %q, want %q", i, q.CorrectAnswer, wantKeys[i])
		}
	}
}

func TestProgressViewHidesUnansweredKeys(t *testing.T) {
	svc, _, sessions := newProgressFixture()
	ctx := context.Background()

	session := &model.QuizSession{
		ID:        "fresh",
		UserID:    3,
		Questions: sampleQuestions(3),
		States:    make([]model.QuestionState, 3),
	}
	if err := sessions.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() (*model.ProgressView, error)
	}{
		{"save from session", func() (*model.ProgressView, error) { return svc.SaveFromSession(ctx, 3, "fresh", 0) }},
		{"load", func() (*model.ProgressView, error) { return svc.Load(ctx, 3) }},
		{"client save", func() (*model.ProgressView, error) {
			return svc.Save(ctx, 3, SaveProgressRequest{
				QuizData:       sampleQuestions(3),
				CurrentAnswers: map[int]string{0: "A", 1: "A", 2: "A"},
			})
		}},
		{"load after client save", func() (*model.ProgressView, error) { return svc.Load(ctx, 3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.call()
			if err != nil || v == nil {
				t.Fatalf("got %v, %v", v, err)
			}
			body, err := json.Marshal(v)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Contains(string(body), "correct_answer") {
				t.Errorf("response reveals an answer key: %s", body)
			}
		})
	}
}

func TestProgressServiceStoreFailure(t *testing.T) {
	svc, store, _ := newProgressFixture()
	store.err = errors.New("db down")

	_, err := svc.Save(context.Background(), 1, SaveProgressRequest{QuizData: sampleQuestions(1)})
	if util.KindOf(err) != util.KindInternal {
		t.Errorf("err = %v, want internal", err)
	}
}
