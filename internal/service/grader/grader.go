package grader

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type moduleStore interface {
	Load(ctx context.Context) (models.StoreDocument, error)
}

// Service evaluates learner-submitted answers against a module's stored
// quiz. Grading is a pure read: nothing is written back, the caller decides
// what to do with the result.
type Service struct {
	log   logger.Log
	store moduleStore
}

func NewService(log logger.Log, store moduleStore) *Service {
	return &Service{log: log, store: store}
}

// Grade compares answers, keyed by question position, against the stored
// correct answers. Unanswered or unparseable answers count as incorrect,
// never as errors. A quiz with no questions cannot be passed.
func (s *Service) Grade(ctx context.Context, moduleID uuid.UUID, answers map[string]any) (models.GradeResult, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return models.GradeResult{}, err
	}

	module := doc.ModuleByID(moduleID)
	if module == nil {
		return models.GradeResult{}, app_errors.ErrModuleNotFound
	}
	if module.Quiz == nil {
		return models.GradeResult{}, app_errors.ErrQuizNotFound
	}

	total := len(module.Quiz.Questions)
	if total == 0 {
		return models.GradeResult{Passed: false}, nil
	}

	correct := 0
	for i, question := range module.Quiz.Questions {
		answer, ok := answers[strconv.Itoa(i)]
		if !ok {
			continue
		}
		if answerMatches(question, answer) {
			correct++
		}
	}

	score := 100 * float64(correct) / float64(total)
	return models.GradeResult{
		ScorePercent: score,
		CorrectCount: correct,
		Total:        total,
		Passed:       score >= module.Quiz.PassThreshold,
	}, nil
}

func answerMatches(q models.Question, answer any) bool {
	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		idx, ok := answerIndex(answer)
		return ok && q.CorrectIndex != nil && idx == *q.CorrectIndex
	case models.QuestionTypeTrueFalse:
		b, ok := answer.(bool)
		return ok && q.CorrectBool != nil && b == *q.CorrectBool
	}
	return false
}

// answerIndex accepts the option index as a JSON number or a numeric string,
// which is what the quiz page submits.
func answerIndex(answer any) (int, bool) {
	switch v := answer.(type) {
	case float64:
		idx := int(v)
		return idx, float64(idx) == v
	case int:
		return v, true
	case string:
		idx, err := strconv.Atoi(v)
		return idx, err == nil
	}
	return 0, false
}
