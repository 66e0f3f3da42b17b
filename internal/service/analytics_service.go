package service

import (
	"context"
	"errors"
	"math"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	UnknownChapter    = "Unknown"
	weakChapterCutoff = 70.0
	timeHistogramBins = 15
	labelCorrect      = "correct"
	labelIncorrect    = "incorrect"
)

type LeaderboardSource interface {
	LeaderboardRows(ctx context.Context) ([]model.LeaderboardRow, error)
}

// AnalyticsService derives statistics from recorded attempts joined with
// the question dataset. Headline accuracies are rounded to integers,
// breakdowns to one decimal.
type AnalyticsService struct {
	Attempts    AttemptReader
	Bank        QuestionIndex
	Users       UserDirectory
	Leaderboard LeaderboardSource
}

func NewAnalyticsService(attempts AttemptReader, bank QuestionIndex, users UserDirectory, leaderboard LeaderboardSource) *AnalyticsService {
	return &AnalyticsService{
		Attempts:    attempts,
		Bank:        bank,
		Users:       users,
		Leaderboard: leaderboard,
	}
}

// chapterIndex returns id -> question, or an empty index when the dataset
// is unavailable so every attempt falls into the Unknown chapter.
func (s *AnalyticsService) chapterIndex() map[string]model.Question {
	idx, err := s.Bank.Index()
	if err != nil {
		logger.Log.Warn("Chapter details not available", zap.Error(err))
		return map[string]model.Question{}
	}
	return idx
}

func chapterOf(idx map[string]model.Question, questionID string) string {
	if q, ok := idx[questionID]; ok && q.Chapter != "" {
		return q.Chapter
	}
	return UnknownChapter
}

func (s *AnalyticsService) Aggregate(ctx context.Context, studentID uint) (*model.StudentAnalytics, error) {
	attempts, err := s.Attempts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, util.Internal("load attempts", err)
	}
	return Summarize(studentID, attempts, s.chapterIndex()), nil
}

// requireStudent fails with ErrUserNotFound unless id names a student.
func requireStudent(ctx context.Context, users UserDirectory, id uint) (*model.User, error) {
	u, err := users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, util.Internal("load student", err)
	}
	if u.Role != model.Student {
		return nil, util.ErrUserNotFound
	}
	return u, nil
}

// ForStudent is Aggregate for a teacher looking at one student.
func (s *AnalyticsService) ForStudent(ctx context.Context, studentID uint) (*model.StudentAnalytics, error) {
	if _, err := requireStudent(ctx, s.Users, studentID); err != nil {
		return nil, err
	}
	return s.Aggregate(ctx, studentID)
}

// Summarize is the pure aggregation behind Aggregate.
func Summarize(studentID uint, attempts []model.QuizAttempt, idx map[string]model.Question) *model.StudentAnalytics {
	a := &model.StudentAnalytics{
		StudentID:            studentID,
		PerChapter:           []model.ChapterStat{},
		WeakChapters:         []string{},
		TimeDistribution:     []model.HistogramBin{},
		AvgTimeByCorrectness: map[string]float64{},
		AccuracyOverTime:     []model.AccuracyPoint{},
	}
	if len(attempts) == 0 {
		return a
	}

	sessions := make(map[string]bool)
	timeSum := 0
	for _, at := range attempts {
		a.Total++
		if at.IsCorrect {
			a.Correct++
		}
		timeSum += at.TimeTakenSeconds
		sessions[at.QuizSessionID] = true
	}
	a.Accuracy = int(math.Round(util.Percent(a.Correct, a.Total)))
	a.AvgTime = timeSum / a.Total
	a.QuizzesCompleted = len(sessions)

	a.PerChapter = chapterStats(attempts, idx)
	sort.Slice(a.PerChapter, func(i, j int) bool {
		return a.PerChapter[i].Chapter < a.PerChapter[j].Chapter
	})
	for _, c := range a.PerChapter {
		if c.Accuracy < weakChapterCutoff {
			a.WeakChapters = append(a.WeakChapters, c.Chapter)
		}
	}

	a.TimeDistribution = timeHistogram(attempts, timeHistogramBins)
	a.AvgTimeByCorrectness = avgTimeByCorrectness(attempts)
	a.AccuracyOverTime = hourlyAccuracy(attempts)
	return a
}

func chapterStats(attempts []model.QuizAttempt, idx map[string]model.Question) []model.ChapterStat {
	byChapter := make(map[string]*model.ChapterStat)
	for _, at := range attempts {
		ch := chapterOf(idx, at.QuestionID)
		st, ok := byChapter[ch]
		if !ok {
			st = &model.ChapterStat{Chapter: ch}
			byChapter[ch] = st
		}
		st.Total++
		if at.IsCorrect {
			st.Correct++
		}
	}
	out := make([]model.ChapterStat, 0, len(byChapter))
	for _, st := range byChapter {
		st.Accuracy = util.Round1(util.Percent(st.Correct, st.Total))
		out = append(out, *st)
	}
	return out
}

// timeHistogram splits [min, max] of time taken into equal-width bins.
func timeHistogram(attempts []model.QuizAttempt, bins int) []model.HistogramBin {
	if len(attempts) == 0 || bins <= 0 {
		return []model.HistogramBin{}
	}
	lo, hi := attempts[0].TimeTakenSeconds, attempts[0].TimeTakenSeconds
	for _, at := range attempts {
		if at.TimeTakenSeconds < lo {
			lo = at.TimeTakenSeconds
		}
		if at.TimeTakenSeconds > hi {
			hi = at.TimeTakenSeconds
		}
	}
	lower, upper := float64(lo), float64(hi)
	if upper == lower {
		upper = lower + 1
	}
	width := (upper - lower) / float64(bins)

	out := make([]model.HistogramBin, bins)
	for i := range out {
		out[i].Lower = util.Round1(lower + float64(i)*width)
		out[i].Upper = util.Round1(lower + float64(i+1)*width)
	}
	for _, at := range attempts {
		i := int((float64(at.TimeTakenSeconds) - lower) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

func avgTimeByCorrectness(attempts []model.QuizAttempt) map[string]float64 {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, at := range attempts {
		key := labelIncorrect
		if at.IsCorrect {
			key = labelCorrect
		}
		sums[key] += at.TimeTakenSeconds
		counts[key]++
	}
	out := make(map[string]float64, len(counts))
	for k, n := range counts {
		out[k] = util.Round1(float64(sums[k]) / float64(n))
	}
	return out
}

func hourlyAccuracy(attempts []model.QuizAttempt) []model.AccuracyPoint {
	type bucket struct{ correct, total int }
	buckets := make(map[time.Time]*bucket)
	for _, at := range attempts {
		h := at.AttemptedAt.UTC().Truncate(time.Hour)
		b, ok := buckets[h]
		if !ok {
			b = &bucket{}
			buckets[h] = b
		}
		b.total++
		if at.IsCorrect {
			b.correct++
		}
	}
	out := make([]model.AccuracyPoint, 0, len(buckets))
	for h, b := range buckets {
		out = append(out, model.AccuracyPoint{
			Hour:     h,
			Accuracy: util.Round1(util.Percent(b.correct, b.total)),
			Attempts: b.total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour.Before(out[j].Hour) })
	return out
}

// StudentSummaries lists every student with their attempt totals, by name.
func (s *AnalyticsService) StudentSummaries(ctx context.Context) ([]model.StudentSummary, error) {
	students, err := s.Users.ListByRole(ctx, model.Student)
	if err != nil {
		return nil, util.Internal("list students", err)
	}
	attempts, err := s.Attempts.FindAll(ctx)
	if err != nil {
		return nil, util.Internal("load attempts", err)
	}
	return summarizeStudents(students, attempts), nil
}

func summarizeStudents(students []model.User, attempts []model.QuizAttempt) []model.StudentSummary {
	type totals struct{ correct, total int }
	byStudent := make(map[uint]*totals)
	for _, at := range attempts {
		t, ok := byStudent[at.StudentID]
		if !ok {
			t = &totals{}
			byStudent[at.StudentID] = t
		}
		t.total++
		if at.IsCorrect {
			t.correct++
		}
	}

	out := make([]model.StudentSummary, 0, len(students))
	for _, u := range students {
		sum := model.StudentSummary{
			StudentID: u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Class:     u.Class,
		}
		if t, ok := byStudent[u.ID]; ok {
			sum.Total = t.total
			sum.Correct = t.correct
			sum.Accuracy = util.Round1(util.Percent(t.correct, t.total))
		}
		out = append(out, sum)
	}
	return out
}

// ClassOverview aggregates every attempt for the teacher dashboard. Chapters
// are ordered weakest first, students strongest first.
func (s *AnalyticsService) ClassOverview(ctx context.Context) (*model.ClassOverview, error) {
	students, err := s.Users.ListByRole(ctx, model.Student)
	if err != nil {
		return nil, util.Internal("list students", err)
	}
	attempts, err := s.Attempts.FindAll(ctx)
	if err != nil {
		return nil, util.Internal("load attempts", err)
	}
	return buildClassOverview(students, attempts, s.chapterIndex()), nil
}

func buildClassOverview(students []model.User, attempts []model.QuizAttempt, idx map[string]model.Question) *model.ClassOverview {
	ov := &model.ClassOverview{
		Students:        summarizeStudents(students, attempts),
		ChapterAccuracy: chapterStats(attempts, idx),
		TotalAttempts:   len(attempts),
	}
	sort.Slice(ov.ChapterAccuracy, func(i, j int) bool {
		a, b := ov.ChapterAccuracy[i], ov.ChapterAccuracy[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		return a.Chapter < b.Chapter
	})
	sort.SliceStable(ov.Students, func(i, j int) bool {
		return ov.Students[i].Accuracy > ov.Students[j].Accuracy
	})
	for _, st := range ov.Students {
		if st.Total > 0 {
			ov.ActiveStudents++
		}
	}
	return ov
}

// GetLeaderboard ranks students with at least one attempt by accuracy, then
// by average time.
func (s *AnalyticsService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	rows, err := s.Leaderboard.LeaderboardRows(ctx)
	if err != nil {
		return nil, util.Internal("load leaderboard", err)
	}
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.StudentID)
	}
	users, err := s.Users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, util.Internal("load leaderboard users", err)
	}
	return rankLeaderboard(rows, users), nil
}

func rankLeaderboard(rows []model.LeaderboardRow, users map[uint]model.User) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		if r.Attempts == 0 {
			continue
		}
		u, ok := users[r.StudentID]
		if !ok || u.Role != model.Student {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			StudentID: r.StudentID,
			FullName:  u.FullName,
			Class:     u.Class,
			Attempts:  r.Attempts,
			Accuracy:  util.Round1(util.Percent(r.CorrectCount, r.Attempts)),
			AvgTime:   util.Round1(float64(r.TotalTime) / float64(r.Attempts)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Accuracy != entries[j].Accuracy {
			return entries[i].Accuracy > entries[j].Accuracy
		}
		if entries[i].AvgTime != entries[j].AvgTime {
			return entries[i].AvgTime < entries[j].AvgTime
		}
		return entries[i].StudentID < entries[j].StudentID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
