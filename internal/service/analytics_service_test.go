package service

import (
	"context"
	"errors"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"reflect"
	"testing"
	"time"
)

func attempt(student uint, qid string, correct bool, secs int, session string, at time.Time) model.QuizAttempt {
	return model.QuizAttempt{
		StudentID:        student,
		QuestionID:       qid,
		SelectedAnswer:   "A",
		IsCorrect:        correct,
		TimeTakenSeconds: secs,
		QuizSessionID:    session,
		AttemptedAt:      at,
	}
}

func chapterIndexFixture() map[string]model.Question {
	return map[string]model.Question{
		"m1": {ID: "m1", Chapter: "Mensuration"},
		"m2": {ID: "m2", Chapter: "Mensuration"},
		"d1": {ID: "d1", Chapter: "Data Handling"},
	}
}

func TestSummarize(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC)
	attempts := []model.QuizAttempt{
		attempt(1, "m1", true, 10, "s1", t0),
		attempt(1, "m2", true, 20, "s1", t0.Add(5*time.Minute)),
		attempt(1, "d1", false, 30, "s1", t0.Add(10*time.Minute)),
		attempt(1, "gone", false, 40, "s2", t0.Add(2*time.Hour)),
	}

	a := Summarize(1, attempts, chapterIndexFixture())

	if a.Total != 4 || a.Correct != 2 || a.Accuracy != 50 {
		t.Errorf("totals = %d/%d %d%%", a.Correct, a.Total, a.Accuracy)
	}
	if a.AvgTime != 25 {
		t.Errorf("avg time = %d, want 25", a.AvgTime)
	}
	if a.QuizzesCompleted != 2 {
		t.Errorf("quizzes = %d, want 2", a.QuizzesCompleted)
	}

	wantChapters := []model.ChapterStat{
		{Chapter: "Data Handling", Correct: 0, Total: 1, Accuracy: 0},
		{Chapter: "Mensuration", Correct: 2, Total: 2, Accuracy: 100},
		{Chapter: UnknownChapter, Correct: 0, Total: 1, Accuracy: 0},
	}
	if !reflect.DeepEqual(a.PerChapter, wantChapters) {
		t.Errorf("per chapter = %+v", a.PerChapter)
	}
	if !reflect.DeepEqual(a.WeakChapters, []string{"Data Handling", UnknownChapter}) {
		t.Errorf("weak chapters = %v", a.WeakChapters)
	}

	if a.AvgTimeByCorrectness[labelCorrect] != 15 || a.AvgTimeByCorrectness[labelIncorrect] != 35 {
		t.Errorf("avg by correctness = %v", a.AvgTimeByCorrectness)
	}

	if len(a.AccuracyOverTime) != 2 {
		t.Fatalf("hourly points = %+v", a.AccuracyOverTime)
	}
	if a.AccuracyOverTime[0].Accuracy != 66.7 || a.AccuracyOverTime[0].Attempts != 3 {
		t.Errorf("first hour = %+v", a.AccuracyOverTime[0])
	}
	if !a.AccuracyOverTime[0].Hour.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("hour bucket = %v", a.AccuracyOverTime[0].Hour)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	a := Summarize(3, nil, nil)
	if a.Total != 0 || a.Accuracy != 0 || a.AvgTime != 0 {
		t.Errorf("empty summary = %+v", a)
	}
	if a.PerChapter == nil || a.WeakChapters == nil || a.TimeDistribution == nil {
		t.Errorf("empty summary must use empty slices, got %+v", a)
	}
}

func TestTimeHistogram(t *testing.T) {
	var attempts []model.QuizAttempt
	for _, secs := range []int{0, 5, 10, 15, 30} {
		attempts = append(attempts, model.QuizAttempt{TimeTakenSeconds: secs})
	}

	bins := timeHistogram(attempts, 15)
	if len(bins) != 15 {
		t.Fatalf("bins = %d", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 5 {
		t.Errorf("binned %d attempts, want 5", total)
	}
	if bins[0].Lower != 0 || bins[14].Upper != 30 {
		t.Errorf("range = [%v, %v]", bins[0].Lower, bins[14].Upper)
	}
	if bins[14].Count != 1 {
		t.Errorf("max value must land in the last bin, got %d", bins[14].Count)
	}

	same := timeHistogram([]model.QuizAttempt{{TimeTakenSeconds: 7}, {TimeTakenSeconds: 7}}, 15)
	if same[0].Count != 2 {
		t.Errorf("identical values should share the first bin, got %+v", same[0])
	}
}

func TestRankLeaderboard(t *testing.T) {
	users := map[uint]model.User{
		1: student(1, "Asha", 8),
		2: student(2, "Bilal", 9),
		3: student(3, "Chen", 8),
		4: {Role: model.Teacher, FullName: "Ms. Rao"},
	}
	rows := []model.LeaderboardRow{
		{StudentID: 1, Attempts: 10, CorrectCount: 8, TotalTime: 120},
		{StudentID: 2, Attempts: 5, CorrectCount: 4, TotalTime: 50},
		{StudentID: 3, Attempts: 4, CorrectCount: 4, TotalTime: 80},
		{StudentID: 4, Attempts: 3, CorrectCount: 3, TotalTime: 10},
		{StudentID: 9, Attempts: 3, CorrectCount: 3, TotalTime: 10},
	}

	got := rankLeaderboard(rows, users)
	if len(got) != 3 {
		t.Fatalf("entries = %+v", got)
	}
	wantOrder := []uint{3, 2, 1}
	for i, id := range wantOrder {
		if got[i].StudentID != id || got[i].Rank != i+1 {
			t.Errorf("position %d = student %d rank %d, want student %d", i, got[i].StudentID, got[i].Rank, id)
		}
	}
	if got[1].AvgTime != 10 || got[2].AvgTime != 12 {
		t.Errorf("avg times = %v, %v", got[1].AvgTime, got[2].AvgTime)
	}
}

func TestAnalyticsServiceClassOverview(t *testing.T) {
	t0 := time.Now()
	users := newFakeUsers(student(1, "Asha", 8), student(2, "Bilal", 8), student(3, "Chen", 9))
	attempts := &fakeAttempts{attempts: []model.QuizAttempt{
		attempt(1, "m1", true, 5, "s1", t0),
		attempt(1, "d1", true, 5, "s1", t0),
		attempt(2, "m1", false, 5, "s2", t0),
		attempt(2, "d1", true, 5, "s2", t0),
	}}
	svc := NewAnalyticsService(attempts, &fakeQuestions{questions: []model.Question{
		{ID: "m1", Chapter: "Mensuration"}, {ID: "d1", Chapter: "Data Handling"},
	}}, users, nil)

	ov, err := svc.ClassOverview(context.Background())
	if err != nil {
		t.Fatalf("ClassOverview() error = %v", err)
	}
	if ov.TotalAttempts != 4 || ov.ActiveStudents != 2 {
		t.Errorf("totals = %d attempts, %d active", ov.TotalAttempts, ov.ActiveStudents)
	}
	if ov.ChapterAccuracy[0].Chapter != "Mensuration" || ov.ChapterAccuracy[0].Accuracy != 50 {
		t.Errorf("weakest chapter first, got %+v", ov.ChapterAccuracy)
	}
	if ov.Students[0].StudentID != 1 || ov.Students[2].Total != 0 {
		t.Errorf("students = %+v", ov.Students)
	}
}

func TestAnalyticsServiceForStudent(t *testing.T) {
	teacher := model.User{FullName: "Ms. Rao", Role: model.Teacher}
	teacher.ID = 5
	users := newFakeUsers(student(1, "Asha", 8), teacher)
	svc := NewAnalyticsService(&fakeAttempts{}, &fakeQuestions{}, users, nil)

	if _, err := svc.ForStudent(context.Background(), 1); err != nil {
		t.Errorf("ForStudent(student) error = %v", err)
	}
	for _, id := range []uint{5, 42} {
		if _, err := svc.ForStudent(context.Background(), id); !errors.Is(err, util.ErrUserNotFound) {
			t.Errorf("ForStudent(%d) err = %v, want ErrUserNotFound", id, err)
		}
	}
}
