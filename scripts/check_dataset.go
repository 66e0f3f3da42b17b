// Audits the MCQ dataset before it is deployed: counts questions per class
// and chapter and reports entries that the quiz would reject or mis-grade.
//
// Usage: go run scripts/check_dataset.go [-config configs/config.yaml]

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/service"
	"os"

	"gopkg.in/yaml.v3"
)

type datasetConfig struct {
	Quiz struct {
		DatasetPath string `yaml:"dataset_path"`
	} `yaml:"quiz"`
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config.yaml")
	flag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("Cannot read config file: %v", err)
	}
	var cfg datasetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Cannot parse config file: %v", err)
	}
	if cfg.Quiz.DatasetPath == "" {
		cfg.Quiz.DatasetPath = "data/ncert_maths_dataset.json"
	}

	raw, err := os.ReadFile(cfg.Quiz.DatasetPath)
	if err != nil {
		log.Fatalf("Cannot read dataset: %v", err)
	}
	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		log.Fatalf("Dataset is not valid JSON: %v", err)
	}

	problems := audit(questions)
	for _, p := range problems {
		fmt.Println("WARN", p)
	}

	bank := service.NewQuestionBank(cfg.Quiz.DatasetPath)
	for _, class := range model.ClassLevels {
		chapters, _ := bank.Chapters(class)
		fmt.Printf("Class %d\n", class)
		for _, ch := range chapters {
			mcqs, err := bank.Filter(class, ch, model.DifficultyAny)
			if err != nil {
				log.Fatalf("Filter class %d %q: %v", class, ch, err)
			}
			fmt.Printf("  %-45s %3d MCQs\n", ch, len(mcqs))
		}
	}

	fmt.Printf("%d questions, %d problems\n", len(questions), len(problems))
	if len(problems) > 0 {
		os.Exit(1)
	}
}

func audit(questions []model.Question) []string {
	var problems []string
	seen := make(map[model.QuestionID]bool, len(questions))
	for i, q := range questions {
		where := fmt.Sprintf("entry %d (id %q)", i, q.ID)
		if q.ID == "" {
			problems = append(problems, where+": missing id")
		} else if seen[q.ID] {
			problems = append(problems, where+": duplicate id")
		}
		seen[q.ID] = true

		if !model.IsValidClassLevel(q.ClassLevel) {
			problems = append(problems, fmt.Sprintf("%s: class_level %d is not offered", where, q.ClassLevel))
		}
		if q.Difficulty == "" || q.Difficulty == model.DifficultyAny || !model.IsValidDifficulty(q.Difficulty) {
			problems = append(problems, fmt.Sprintf("%s: difficulty %q", where, q.Difficulty))
		}
		if q.Type() != model.QuestionTypeMCQ {
			continue
		}
		if len(q.Options) < 2 {
			problems = append(problems, where+": MCQ with fewer than two options")
		}
		if !q.HasOption(q.CorrectAnswer) {
			problems = append(problems, fmt.Sprintf("%s: correct_answer %q not in options %v", where, q.CorrectAnswer, q.OptionLabels()))
		}
	}
	return problems
}
