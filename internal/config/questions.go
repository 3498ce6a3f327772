package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// QuestionBank is the fixed question list served to live sessions.
type QuestionBank struct {
	Questions []string `yaml:"questions"`
}

// DefaultQuestionBank is used when no bank file exists.
func DefaultQuestionBank() *QuestionBank {
	return &QuestionBank{Questions: []string{
		"Explain the use of VLOOKUP in Excel.",
		"How would you use conditional formatting?",
		"What is the purpose of pivot tables?",
		"How do you protect cells or a worksheet?",
		"Describe how to create a chart based on a dataset.",
	}}
}

// LoadQuestionBank reads a YAML question bank. A missing file yields the
// default bank; a present but invalid file is an error.
func LoadQuestionBank(filename string) (*QuestionBank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultQuestionBank(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}
	if err := validateQuestionBank(&bank); err != nil {
		return nil, fmt.Errorf("invalid question bank: %w", err)
	}
	return &bank, nil
}

func validateQuestionBank(bank *QuestionBank) error {
	if len(bank.Questions) == 0 {
		return fmt.Errorf("questions must not be empty")
	}
	for i, q := range bank.Questions {
		q = strings.TrimSpace(q)
		if q == "" {
			return fmt.Errorf("question %d is blank", i+1)
		}
		bank.Questions[i] = q
	}
	return nil
}
