package service

import (
	"bytes"
	"context"
	"errors"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("report is not a valid workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReportServiceStudentReport(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	attempts := &fakeAttempts{attempts: []model.QuizAttempt{
		attempt(3, "q1", true, 12, "s1", t0),
		attempt(3, "lost", false, 40, "s1", t0.Add(time.Hour)),
		attempt(4, "q2", true, 5, "s2", t0),
	}}
	svc := NewReportService(attempts, &fakeQuestions{questions: sampleQuestions(2)}, newFakeUsers(student(3, "Asha", 8)))

	data, name, err := svc.StudentReport(context.Background(), 3)
	if err != nil {
		t.Fatalf("StudentReport() error = %v", err)
	}
	if name != "quiz_report_3.xlsx" {
		t.Errorf("filename = %q", name)
	}

	f := openWorkbook(t, data)
	rows, err := f.GetRows(historySheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Attempted At" || rows[0][6] != "Correctness" {
		t.Errorf("header = %v", rows[0])
	}
	newest := rows[1]
	if newest[1] != UnknownChapter || newest[4] != questionTextMissing || newest[6] != labelIncorrectCell {
		t.Errorf("newest row = %v", newest)
	}
	if rows[2][1] != "Mensuration" || rows[2][6] != labelCorrectCell || rows[2][7] != "12" {
		t.Errorf("oldest row = %v", rows[2])
	}

	if _, _, err := svc.StudentReport(context.Background(), 99); !errors.Is(err, util.ErrNoQuizData) {
		t.Errorf("no attempts: got %v", err)
	}
}

func TestReportServiceReportForStudent(t *testing.T) {
	svc := NewReportService(&fakeAttempts{}, &fakeQuestions{}, newFakeUsers())
	if _, _, err := svc.ReportForStudent(context.Background(), 5); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("unknown student: got %v", err)
	}
}

func TestReportServiceClassReport(t *testing.T) {
	t0 := time.Now()
	users := newFakeUsers(student(1, "Asha", 8), student(2, "Bilal", 9))
	attempts := &fakeAttempts{attempts: []model.QuizAttempt{
		attempt(1, "q1", true, 5, "s1", t0),
		attempt(1, "q2", false, 5, "s1", t0),
	}}
	svc := NewReportService(attempts, &fakeQuestions{questions: sampleQuestions(2)}, users)

	data, name, err := svc.ClassReport(context.Background())
	if err != nil {
		t.Fatalf("ClassReport() error = %v", err)
	}
	if name != "class_report.xlsx" {
		t.Errorf("filename = %q", name)
	}

	f := openWorkbook(t, data)
	summary, err := f.GetRows(studentSummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary) != 2 {
		t.Fatalf("summary rows = %v, want only students with attempts", summary)
	}
	if summary[1][0] != "Asha" || summary[1][2] != "2" || summary[1][4] != "50" {
		t.Errorf("summary row = %v", summary[1])
	}

	insights, err := f.GetRows(chapterInsightsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(insights) != 2 || insights[1][0] != "Mensuration" {
		t.Errorf("insights = %v", insights)
	}
}

func TestReportServiceClassReportEmpty(t *testing.T) {
	tests := []struct {
		name     string
		users    *fakeUsers
		attempts *fakeAttempts
	}{
		{"no students", newFakeUsers(), &fakeAttempts{}},
		{"no attempts", newFakeUsers(student(1, "Asha", 8)), &fakeAttempts{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReportService(tt.attempts, &fakeQuestions{}, tt.users)
			if _, _, err := svc.ClassReport(context.Background()); util.KindOf(err) != util.KindNotFound {
				t.Errorf("err = %v, want not found", err)
			}
		})
	}
}
