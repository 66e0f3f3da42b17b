package service

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math/rand"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FallbackChapters is offered when the dataset cannot be read.
var FallbackChapters = []string{
	"Linear Equations in One Variable",
	"Mensuration",
	"Data Handling",
	"Exponents and Powers",
	"Playing with numbers",
}

// QuestionBank reads MCQs from a JSON dataset file. The file is re-read on
// every call so edits show up without a restart.
type QuestionBank struct {
	Path string

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionBank(path string) *QuestionBank {
	return &QuestionBank{
		Path: path,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetPath switches the dataset file, used on config reload.
func (b *QuestionBank) SetPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Path = path
}

func (b *QuestionBank) path() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Path
}

func (b *QuestionBank) load() ([]model.Question, error) {
	data, err := os.ReadFile(b.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, util.Wrap(util.ErrDatasetNotFound, err)
		}
		return nil, util.Internal("read dataset", err)
	}

	var all []model.Question
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, util.Internal("malformed dataset", err)
	}
	return all, nil
}

func (b *QuestionBank) mcqs() ([]model.Question, error) {
	all, err := b.load()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, q := range all {
		if q.Type() == model.QuestionTypeMCQ {
			out = append(out, q)
		}
	}
	return out, nil
}

// Filter returns the MCQs of one class and chapter. difficulty "Any" or ""
// keeps every difficulty. An empty result is not an error.
func (b *QuestionBank) Filter(classLevel int, chapter, difficulty string) ([]model.Question, error) {
	if !model.IsValidDifficulty(difficulty) {
		return nil, util.Validation("difficulty must be one of Any, Easy, Medium, Hard")
	}

	mcqs, err := b.mcqs()
	if err != nil {
		return nil, err
	}

	var out []model.Question
	for _, q := range mcqs {
		if q.ClassLevel != classLevel || q.Chapter != chapter {
			continue
		}
		if difficulty != "" && difficulty != model.DifficultyAny && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// Sample returns min(n, len(questions)) distinct questions in random order.
// The input slice is left untouched.
func (b *QuestionBank) Sample(questions []model.Question, n int) []model.Question {
	if n <= 0 || len(questions) == 0 {
		return []model.Question{}
	}

	shuffled := make([]model.Question, len(questions))
	copy(shuffled, questions)

	b.mu.Lock()
	b.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	b.mu.Unlock()

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Chapters lists the distinct MCQ chapters of a class in sorted order. When
// the dataset is unreadable it returns FallbackChapters and fallback=true.
func (b *QuestionBank) Chapters(classLevel int) (chapters []string, fallback bool) {
	mcqs, err := b.mcqs()
	if err != nil {
		logger.Log.Warn("Dataset unavailable, using fallback chapters",
			zap.String("path", b.path()),
			zap.Error(err),
		)
		out := make([]string, len(FallbackChapters))
		copy(out, FallbackChapters)
		return out, true
	}

	seen := make(map[string]bool)
	for _, q := range mcqs {
		if q.ClassLevel == classLevel && !seen[q.Chapter] {
			seen[q.Chapter] = true
			chapters = append(chapters, q.Chapter)
		}
	}
	sort.Strings(chapters)
	if chapters == nil {
		chapters = []string{}
	}
	return chapters, false
}

// Index maps question id to question over the whole dataset.
func (b *QuestionBank) Index() (map[string]model.Question, error) {
	all, err := b.load()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]model.Question, len(all))
	for _, q := range all {
		idx[string(q.ID)] = q
	}
	return idx, nil
}

func (b *QuestionBank) Find(id string) (*model.Question, error) {
	idx, err := b.Index()
	if err != nil {
		return nil, err
	}
	q, ok := idx[id]
	if !ok {
		return nil, util.ErrQuestionNotFound
	}
	return &q, nil
}
