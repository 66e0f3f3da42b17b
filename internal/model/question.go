package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyAny    = "Any"

	QuestionTypeMCQ = "MCQ"
)

// IsValidDifficulty reports whether d names a known difficulty filter.
// An empty filter behaves like Any.
func IsValidDifficulty(d string) bool {
	switch d {
	case "", DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionID accepts both numeric and string ids in the dataset.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = QuestionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("question id must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = QuestionID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = QuestionID(n.String())
	return nil
}

// swagger:model Question
type Question struct {
	ID            QuestionID        `json:"id"`
	ClassLevel    int               `json:"class_level"`
	Chapter       string            `json:"chapter"`
	Topic         string            `json:"topic"`
	Difficulty    string            `json:"difficulty"`
	QuestionType  string            `json:"question_type,omitempty"`
	QuestionText  string            `json:"question_text"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer,omitempty"`
}

// Type returns the question type, MCQ when the dataset omits it.
func (q Question) Type() string {
	if q.QuestionType == "" {
		return QuestionTypeMCQ
	}
	return q.QuestionType
}

// OptionLabels returns the option labels in display order.
func (q Question) OptionLabels() []string {
	labels := make([]string, 0, len(q.Options))
	for l := range q.Options {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func (q Question) HasOption(label string) bool {
	_, ok := q.Options[label]
	return ok
}

// Public strips the correct answer for clients that are still answering.
func (q Question) Public() Question {
	q.CorrectAnswer = ""
	return q
}
