package service

import (
	"context"
	"errors"
	"fmt"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const testDataset = `[
  {"id": 1, "class_level": 8, "chapter": "Mensuration", "topic": "Area", "difficulty": "Easy",
   "question_type": "MCQ", "question_text": "Area?", "options": {"A": "1", "B": "2"}, "correct_answer": "A"},
  {"id": "m2", "class_level": 8, "chapter": "Mensuration", "topic": "Volume", "difficulty": "Hard",
   "question_text": "Volume?", "options": {"A": "1", "B": "2"}, "correct_answer": "B"},
  {"id": 3, "class_level": 8, "chapter": "Data Handling", "topic": "Pie", "difficulty": "Easy",
   "question_type": "MCQ", "question_text": "Angle?", "options": {"A": "90", "B": "45"}, "correct_answer": "A"},
  {"id": 4, "class_level": 8, "chapter": "Algebra", "topic": "Terms", "difficulty": "Easy",
   "question_type": "Short Answer", "question_text": "Define a term.", "correct_answer": "..."},
  {"id": 5, "class_level": 9, "chapter": "Polynomials", "topic": "Zeroes", "difficulty": "Medium",
   "question_type": "MCQ", "question_text": "Zero?", "options": {"A": "3", "B": "2"}, "correct_answer": "A"}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestQuestionBankFilter(t *testing.T) {
	bank := NewQuestionBank(writeDataset(t, testDataset))

	tests := []struct {
		name       string
		class      int
		chapter    string
		difficulty string
		wantIDs    []model.QuestionID
		wantKind   util.Kind
		wantErr    bool
	}{
		{"any difficulty", 8, "Mensuration", "Any", []model.QuestionID{"1", "m2"}, 0, false},
		{"empty difficulty", 8, "Mensuration", "", []model.QuestionID{"1", "m2"}, 0, false},
		{"hard only", 8, "Mensuration", "Hard", []model.QuestionID{"m2"}, 0, false},
		{"skips non-MCQ", 8, "Algebra", "Any", nil, 0, false},
		{"other class", 9, "Mensuration", "Any", nil, 0, false},
		{"bad difficulty", 8, "Mensuration", "Brutal", nil, util.KindValidation, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bank.Filter(tt.class, tt.chapter, tt.difficulty)
			if tt.wantErr {
				if util.KindOf(err) != tt.wantKind {
					t.Fatalf("err = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			var ids []model.QuestionID
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestQuestionBankSample(t *testing.T) {
	bank := NewQuestionBank("")
	pool := sampleQuestions(6)

	got := bank.Sample(pool, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	seen := map[model.QuestionID]bool{}
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}

	if got := bank.Sample(pool, 10); len(got) != 6 {
		t.Errorf("oversized sample len = %d, want 6", len(got))
	}
	if got := bank.Sample(pool, 0); len(got) != 0 {
		t.Errorf("zero sample len = %d", len(got))
	}
	if pool[0].ID != "q1" || pool[5].ID != "q6" {
		t.Errorf("Sample must not reorder its input")
	}
}

func TestQuestionBankChapters(t *testing.T) {
	bank := NewQuestionBank(writeDataset(t, testDataset))

	chapters, fallback := bank.Chapters(8)
	if fallback {
		t.Fatalf("unexpected fallback")
	}
	want := []string{"Data Handling", "Mensuration"}
	if !reflect.DeepEqual(chapters, want) {
		t.Errorf("chapters = %v, want %v", chapters, want)
	}

	if chapters, _ := bank.Chapters(10); len(chapters) != 0 {
		t.Errorf("class 10 chapters = %v, want none", chapters)
	}

	bank.SetPath(filepath.Join(t.TempDir(), "missing.json"))
	chapters, fallback = bank.Chapters(8)
	if !fallback || !reflect.DeepEqual(chapters, FallbackChapters) {
		t.Errorf("missing dataset: chapters = %v fallback = %v", chapters, fallback)
	}
}

func TestQuestionBankErrors(t *testing.T) {
	missing := NewQuestionBank(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := missing.Index(); !errors.Is(err, util.ErrDatasetNotFound) {
		t.Errorf("missing file: got %v", err)
	}

	broken := NewQuestionBank(writeDataset(t, `{"not": "a list"`))
	if _, err := broken.Index(); util.KindOf(err) != util.KindInternal {
		t.Errorf("malformed file: got %v", err)
	}

	bank := NewQuestionBank(writeDataset(t, testDataset))
	q, err := bank.Find("m2")
	if err != nil || q.Topic != "Volume" {
		t.Errorf("Find(m2) = %+v, %v", q, err)
	}
	if _, err := bank.Find("404"); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Errorf("Find(404) err = %v", err)
	}
}

const mensurationDataset = `[
  {"id": "e1", "class_level": 8, "chapter": "Mensuration", "difficulty": "Easy", "question_type": "MCQ",
   "question_text": "E1", "options": {"A": "1", "B": "2"}, "correct_answer": "A"},
  {"id": "e2", "class_level": 8, "chapter": "Mensuration", "difficulty": "Easy", "question_type": "MCQ",
   "question_text": "E2", "options": {"A": "1", "B": "2"}, "correct_answer": "A"},
  {"id": "e3", "class_level": 8, "chapter": "Mensuration", "difficulty": "Easy", "question_type": "MCQ",
   "question_text": "E3", "options": {"A": "1", "B": "2"}, "correct_answer": "B"},
  {"id": "h1", "class_level": 8, "chapter": "Mensuration", "difficulty": "Hard", "question_type": "MCQ",
   "question_text": "H1", "options": {"A": "1", "B": "2"}, "correct_answer": "A"},
  {"id": "h2", "class_level": 8, "chapter": "Mensuration", "difficulty": "Hard", "question_type": "MCQ",
   "question_text": "H2", "options": {"A": "1", "B": "2"}, "correct_answer": "B"},
  {"id": "x1", "class_level": 9, "chapter": "Mensuration", "difficulty": "Easy", "question_type": "MCQ",
   "question_text": "X1", "options": {"A": "1", "B": "2"}, "correct_answer": "A"}
]`

func newBankQuizService(bank *QuestionBank) *QuizService {
	return NewQuizService(bank, NewMemorySessionStore(time.Hour), &fakeAttempts{}, newFakeProgress(), nil,
		config.QuizConfig{DefaultQuestions: 5, MaxQuestions: 50})
}

func TestQuestionBankCreateSession(t *testing.T) {
	svc := newBankQuizService(NewQuestionBank(writeDataset(t, mensurationDataset)))

	tests := []struct {
		difficulty string
		n          int
		want       int
	}{
		{"Easy", 5, 3},
		{"Hard", 5, 2},
		{"Any", 5, 5},
		{"Any", 10, 5},
		{"Easy", 2, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s n=%d", tt.difficulty, tt.n), func(t *testing.T) {
			view, err := svc.CreateSession(context.Background(), 1, CreateSessionRequest{
				Class: 8, Chapter: "Mensuration", Difficulty: tt.difficulty, NumQuestions: tt.n,
			})
			if err != nil {
				t.Fatalf("CreateSession() error = %v", err)
			}
			if len(view.Questions) != tt.want {
				t.Fatalf("questions = %d, want %d", len(view.Questions), tt.want)
			}
			seen := map[model.QuestionID]bool{}
			for _, qv := range view.Questions {
				q := qv.Question
				if seen[q.ID] {
					t.Errorf("question %s picked twice", q.ID)
				}
				seen[q.ID] = true
				if q.ClassLevel != 8 || q.Chapter != "Mensuration" {
					t.Errorf("question %s outside class 8 Mensuration", q.ID)
				}
				if tt.difficulty != "Any" && q.Difficulty != tt.difficulty {
					t.Errorf("question %s difficulty = %s, want %s", q.ID, q.Difficulty, tt.difficulty)
				}
			}
		})
	}
}

func TestQuestionBankAnyIncludesEveryDifficulty(t *testing.T) {
	bank := NewQuestionBank(writeDataset(t, mensurationDataset))

	anyQs, err := bank.Filter(8, "Mensuration", "Any")
	if err != nil {
		t.Fatalf("Filter(Any) error = %v", err)
	}
	all := map[model.QuestionID]bool{}
	for _, q := range anyQs {
		all[q.ID] = true
	}

	total := 0
	for _, d := range []string{"Easy", "Medium", "Hard"} {
		got, err := bank.Filter(8, "Mensuration", d)
		if err != nil {
			t.Fatalf("Filter(%s) error = %v", d, err)
		}
		total += len(got)
		for _, q := range got {
			if !all[q.ID] {
				t.Errorf("%s question %s missing from Any", d, q.ID)
			}
		}
	}
	if total != len(anyQs) {
		t.Errorf("Any has %d questions, difficulties sum to %d", len(anyQs), total)
	}
}

func TestQuestionBankMissingDataset(t *testing.T) {
	bank := NewQuestionBank(filepath.Join(t.TempDir(), "missing.json"))

	tests := []struct {
		name string
		call func() error
	}{
		{"filter", func() error {
			_, err := bank.Filter(8, "Mensuration", "Easy")
			return err
		}},
		{"create session", func() error {
			_, err := newBankQuizService(bank).CreateSession(context.Background(), 1, CreateSessionRequest{
				Class: 8, Chapter: "Mensuration", Difficulty: "Easy", NumQuestions: 5,
			})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, util.ErrDatasetNotFound) {
				t.Fatalf("err = %v, want dataset not found", err)
			}
			if util.KindOf(err) != util.KindNotFound {
				t.Errorf("kind = %v, want not found", util.KindOf(err))
			}
		})
	}
}
