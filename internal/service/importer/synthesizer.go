package importer

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/julisunkan/LearnMan/internal/models"
)

// Strategy produces quiz questions from extracted text. Implementations must
// never fail for content-quality reasons: poor input yields fewer (or zero)
// questions, not an error.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, text string) ([]models.Question, error)
}

const (
	minSentenceLen = 40
	maxSentenceLen = 250
)

// Heuristic builds questions directly from salient sentences without any
// external call. Deterministic: the same text always yields the same
// questions. Always available as the fallback strategy.
type Heuristic struct {
	maxQuestions int
}

func NewHeuristic(maxQuestions int) *Heuristic {
	return &Heuristic{maxQuestions: maxQuestions}
}

func (h *Heuristic) Name() string { return "heuristic" }

func (h *Heuristic) Generate(_ context.Context, text string) ([]models.Question, error) {
	questions := []models.Question{}
	for _, sentence := range splitSentences(text) {
		if len(questions) >= h.maxQuestions {
			break
		}
		if len(sentence) < minSentenceLen || len(sentence) > maxSentenceLen {
			continue
		}
		if q, ok := numberFillIn(sentence); ok {
			questions = append(questions, q)
			continue
		}
		if hasProperNoun(sentence) {
			questions = append(questions, trueFalse(sentence))
		}
	}
	return questions, nil
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// hasProperNoun reports whether the sentence contains a capitalized word
// after the first one, a cheap signal that it states a concrete fact.
func hasProperNoun(sentence string) bool {
	words := strings.Fields(sentence)
	for i, w := range words {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
		if len(trimmed) > 3 && unicode.IsUpper([]rune(trimmed)[0]) {
			return true
		}
	}
	return false
}

func trueFalse(sentence string) models.Question {
	correct := true
	return models.Question{
		Type:        models.QuestionTypeTrueFalse,
		Prompt:      "True or false: " + strings.TrimRight(sentence, ".!?"),
		CorrectBool: &correct,
	}
}

// numberFillIn blanks out the first number in the sentence and offers
// nearby numbers as distractors. The position of the correct option is
// derived from the sentence so the output stays deterministic.
func numberFillIn(sentence string) (models.Question, bool) {
	words := strings.Fields(sentence)
	for _, w := range words {
		token := strings.Trim(w, ".,;:!?()\"'")
		n, err := strconv.Atoi(strings.ReplaceAll(token, ",", ""))
		if err != nil {
			continue
		}

		distractors := distinctNumbers(n, 3)
		options := make([]string, 0, len(distractors)+1)
		pos := len(sentence) % (len(distractors) + 1)
		for _, d := range distractors {
			if len(options) == pos {
				options = append(options, token)
			}
			options = append(options, strconv.Itoa(d))
		}
		if len(options) == pos {
			options = append(options, token)
		}

		prompt := "Fill in the blank: " + strings.Replace(sentence, w, "____", 1)
		return models.Question{
			Type:         models.QuestionTypeMultipleChoice,
			Prompt:       prompt,
			Options:      options,
			CorrectIndex: &pos,
		}, true
	}
	return models.Question{}, false
}

// distinctNumbers returns count numbers near n, none equal to n.
func distinctNumbers(n, count int) []int {
	candidates := []int{n + 1, n - 1, n + 10, n * 2, n + 2, n - 2}
	seen := map[int]bool{n: true}
	var out []int
	for _, c := range candidates {
		if len(out) == count {
			break
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
