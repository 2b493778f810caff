package models

import (
	"fmt"

	"github.com/julisunkan/LearnMan/internal/app_errors"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

// Question is a tagged variant: Type selects which of the answer fields is
// meaningful. Multiple choice carries Options plus CorrectIndex, true/false
// carries CorrectBool.
type Question struct {
	Type         string   `json:"type"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	CorrectBool  *bool    `json:"correct,omitempty"`
}

// Validate checks the structural invariants of a single question. The field
// parameter names the question in validation errors, e.g. "questions[2]".
func (q Question) Validate(field string) error {
	if q.Prompt == "" {
		return &app_errors.ValidationError{Field: field + ".question", Reason: "question text is required"}
	}
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return &app_errors.ValidationError{Field: field + ".options", Reason: "multiple choice needs at least 2 options"}
		}
		for i, opt := range q.Options {
			if opt == "" {
				return &app_errors.ValidationError{Field: fmt.Sprintf("%s.options[%d]", field, i), Reason: "option text is required"}
			}
		}
		if q.CorrectIndex == nil {
			return &app_errors.ValidationError{Field: field + ".correct_index", Reason: "correct_index is required"}
		}
		if *q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Options) {
			return &app_errors.ValidationError{Field: field + ".correct_index", Reason: "correct_index out of range"}
		}
	case QuestionTypeTrueFalse:
		if q.CorrectBool == nil {
			return &app_errors.ValidationError{Field: field + ".correct", Reason: "correct answer is required"}
		}
	default:
		return &app_errors.ValidationError{Field: field + ".type", Reason: "unknown question type"}
	}
	return nil
}

// Validate checks a quiz and every question in it.
func (qz Quiz) Validate() error {
	if qz.PassThreshold < 0 || qz.PassThreshold > 100 {
		return &app_errors.ValidationError{Field: "quiz.pass_threshold", Reason: "pass_threshold must be between 0 and 100"}
	}
	for i, q := range qz.Questions {
		if err := q.Validate(fmt.Sprintf("quiz.questions[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a full module payload before it is persisted. The same
// gate applies to import commits and manual authoring.
func (p ModulePayload) Validate() error {
	if p.Title == "" {
		return &app_errors.ValidationError{Field: "title", Reason: "title is required"}
	}
	if p.Description == "" {
		return &app_errors.ValidationError{Field: "description", Reason: "description is required"}
	}
	if p.Quiz != nil {
		if err := p.Quiz.Validate(); err != nil {
			return err
		}
	}
	return nil
}
