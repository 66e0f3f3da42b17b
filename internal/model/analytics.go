package model

import "time"

// swagger:model ChapterStat
type ChapterStat struct {
	Chapter  string  `json:"chapter"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type AccuracyPoint struct {
	Hour     time.Time `json:"hour"`
	Accuracy float64   `json:"accuracy"`
	Attempts int       `json:"attempts"`
}

// StudentAnalytics is the aggregate over all attempts of one student.
// swagger:model StudentAnalytics
type StudentAnalytics struct {
	StudentID            uint               `json:"studentId"`
	Total                int                `json:"total"`
	Correct              int                `json:"correct"`
	Accuracy             int                `json:"accuracy"`
	AvgTime              int                `json:"avgTime"`
	QuizzesCompleted     int                `json:"quizzesCompleted"`
	PerChapter           []ChapterStat      `json:"perChapter"`
	WeakChapters         []string           `json:"weakChapters"`
	TimeDistribution     []HistogramBin     `json:"timeDistribution"`
	AvgTimeByCorrectness map[string]float64 `json:"avgTimeByCorrectness"`
	AccuracyOverTime     []AccuracyPoint    `json:"accuracyOverTime"`
}

// swagger:model StudentSummary
type StudentSummary struct {
	StudentID uint    `json:"studentId"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Class     *int    `json:"class,omitempty"`
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// swagger:model ClassOverview
type ClassOverview struct {
	Students        []StudentSummary `json:"students"`
	ChapterAccuracy []ChapterStat    `json:"chapterAccuracy"`
	TotalAttempts   int              `json:"totalAttempts"`
	ActiveStudents  int              `json:"activeStudents"`
}

// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	StudentID uint    `json:"studentId"`
	FullName  string  `json:"fullName"`
	Class     *int    `json:"class,omitempty"`
	Attempts  int     `json:"attempts"`
	Accuracy  float64 `json:"accuracy"`
	AvgTime   float64 `json:"avgTime"`
}

// LeaderboardRow is the raw grouped aggregate read from quiz_attempts.
type LeaderboardRow struct {
	StudentID    uint
	Attempts     int
	CorrectCount int
	TotalTime    int
}
