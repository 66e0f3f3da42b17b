package service

import (
	"context"
	"fmt"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	historySheet         = "Quiz History"
	studentSummarySheet  = "Student Summary"
	chapterInsightsSheet = "Chapter Insights"

	questionTextMissing = "Question text not available"
	labelCorrectCell    = "Correct"
	labelIncorrectCell  = "Incorrect"
)

// ReportService renders XLSX exports for students and teachers.
type ReportService struct {
	Attempts AttemptReader
	Bank     QuestionIndex
	Users    UserDirectory
}

func NewReportService(attempts AttemptReader, bank QuestionIndex, users UserDirectory) *ReportService {
	return &ReportService{Attempts: attempts, Bank: bank, Users: users}
}

func (s *ReportService) questionIndex() map[string]model.Question {
	idx, err := s.Bank.Index()
	if err != nil {
		return map[string]model.Question{}
	}
	return idx
}

// StudentReport returns one row per attempt, newest first.
func (s *ReportService) StudentReport(ctx context.Context, studentID uint) ([]byte, string, error) {
	attempts, err := s.Attempts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, "", util.Internal("load attempts", err)
	}
	if len(attempts) == 0 {
		return nil, "", util.ErrNoQuizData
	}
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].AttemptedAt.After(attempts[j].AttemptedAt)
	})

	data, err := buildStudentWorkbook(attempts, s.questionIndex())
	if err != nil {
		return nil, "", util.Internal("render student report", err)
	}
	return data, fmt.Sprintf("quiz_report_%d.xlsx", studentID), nil
}

func buildStudentWorkbook(attempts []model.QuizAttempt, idx map[string]model.Question) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D7E4BC"}, Pattern: 1},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return nil, err
	}

	columns := []string{"Attempted At", "Chapter", "Topic", "Difficulty", "Question", "Your Answer", "Correctness", "Time (s)"}
	if err := f.SetSheetRow(historySheet, "A1", &columns); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(historySheet, "A1", "H1", header); err != nil {
		return nil, err
	}

	for i, at := range attempts {
		chapter, topic, difficulty, text := UnknownChapter, UnknownChapter, UnknownChapter, questionTextMissing
		if q, ok := idx[at.QuestionID]; ok {
			chapter, topic, difficulty, text = q.Chapter, q.Topic, q.Difficulty, q.QuestionText
		}
		verdict := labelIncorrectCell
		if at.IsCorrect {
			verdict = labelCorrectCell
		}
		row := []interface{}{
			at.AttemptedAt.Format(util.TimeFormat),
			chapter,
			topic,
			difficulty,
			text,
			at.SelectedAnswer,
			verdict,
			at.TimeTakenSeconds,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 20}, {"B", 18}, {"C", 15}, {"D", 12}, {"E", 50}, {"F", 15}, {"G", 15}, {"H", 10},
	}
	for _, w := range widths {
		if err := f.SetColWidth(historySheet, w.col, w.col, w.width); err != nil {
			return nil, err
		}
	}
	if err := f.SetColStyle(historySheet, "E", wrap); err != nil {
		return nil, err
	}

	green, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	red, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	err = f.SetConditionalFormat(historySheet, "G2:G1000", []excelize.ConditionalFormatOptions{
		{Type: "formula", Criteria: fmt.Sprintf(`$G2="%s"`, labelCorrectCell), Format: green},
		{Type: "formula", Criteria: fmt.Sprintf(`$G2="%s"`, labelIncorrectCell), Format: red},
	})
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportForStudent is StudentReport for a teacher looking at one student.
func (s *ReportService) ReportForStudent(ctx context.Context, studentID uint) ([]byte, string, error) {
	if _, err := requireStudent(ctx, s.Users, studentID); err != nil {
		return nil, "", err
	}
	return s.StudentReport(ctx, studentID)
}

// ClassReport summarises every student with at least one attempt, plus
// per-chapter accuracy across the class.
func (s *ReportService) ClassReport(ctx context.Context) ([]byte, string, error) {
	students, err := s.Users.ListByRole(ctx, model.Student)
	if err != nil {
		return nil, "", util.Internal("list students", err)
	}
	if len(students) == 0 {
		return nil, "", util.NotFound("no students found")
	}
	attempts, err := s.Attempts.FindAll(ctx)
	if err != nil {
		return nil, "", util.Internal("load attempts", err)
	}
	if len(attempts) == 0 {
		return nil, "", util.NotFound("no quiz attempts yet")
	}

	ov := buildClassOverview(students, attempts, s.questionIndex())
	data, err := buildClassWorkbook(ov)
	if err != nil {
		return nil, "", util.Internal("render class report", err)
	}
	return data, "class_report.xlsx", nil
}

func buildClassWorkbook(ov *model.ClassOverview) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", studentSummarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(chapterInsightsSheet); err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	summary := []string{"student_name", "class", "total_questions", "correct", "accuracy"}
	if err := f.SetSheetRow(studentSummarySheet, "A1", &summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(studentSummarySheet, "A1", "E1", header); err != nil {
		return nil, err
	}
	row := 2
	for _, st := range ov.Students {
		if st.Total == 0 {
			continue
		}
		var class interface{}
		if st.Class != nil {
			class = *st.Class
		}
		values := []interface{}{st.FullName, class, st.Total, st.Correct, st.Accuracy}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(studentSummarySheet, cell, &values); err != nil {
			return nil, err
		}
		row++
	}
	if err := f.SetColWidth(studentSummarySheet, "A", "B", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(studentSummarySheet, "C", "E", 15); err != nil {
		return nil, err
	}

	insights := []string{"chapter", "avg_accuracy", "total_questions"}
	if err := f.SetSheetRow(chapterInsightsSheet, "A1", &insights); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(chapterInsightsSheet, "A1", "C1", header); err != nil {
		return nil, err
	}
	for i, c := range ov.ChapterAccuracy {
		values := []interface{}{c.Chapter, c.Accuracy, c.Total}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(chapterInsightsSheet, cell, &values); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(chapterInsightsSheet, "A", "A", 25); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(chapterInsightsSheet, "B", "C", 15); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
}
