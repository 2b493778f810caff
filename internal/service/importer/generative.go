package importer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

const generativeSystemPrompt = `You write quiz questions for a learning platform. ` +
	`Given an article, produce multiple choice and true/false questions covering its key facts. ` +
	`Respond with a JSON object of this exact shape: ` +
	`{"questions":[{"type":"multiple_choice","question":"...","options":["...","...","...","..."],"correct_index":0},` +
	`{"type":"true_false","question":"...","correct":true}]}. ` +
	`Every multiple choice question must have 2 to 4 options and a correct_index inside the options range.`

// Generative asks an external text-completion model for questions. Every
// failure mode (missing credential, network, malformed reply) surfaces as a
// GenerationError so the orchestrator can fall back to the heuristic
// strategy; individual malformed questions are dropped instead of failing
// the batch.
type Generative struct {
	log            logger.Log
	client         *openai.Client
	model          string
	maxQuestions   int
	maxPromptChars int
}

func NewGenerative(log logger.Log, apiKey, model string, maxQuestions, maxPromptChars int) *Generative {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &Generative{
		log:            log,
		client:         client,
		model:          model,
		maxQuestions:   maxQuestions,
		maxPromptChars: maxPromptChars,
	}
}

func (g *Generative) Name() string { return "generative" }

func (g *Generative) Generate(ctx context.Context, text string) ([]models.Question, error) {
	if g.client == nil {
		return nil, &app_errors.GenerationError{Err: app_errors.ErrGenerationUnavailable}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []models.Question{}, nil
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generativeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Generate quiz questions for this content:\n\n" + truncateRunes(text, g.maxPromptChars)},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &app_errors.GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &app_errors.GenerationError{Err: errors.New("model returned no choices")}
	}

	var parsed struct {
		Questions []models.Question `json:"questions"`
	}
	raw := extractJSON(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &app_errors.GenerationError{Err: err}
	}

	valid := make([]models.Question, 0, len(parsed.Questions))
	for i, q := range parsed.Questions {
		if err := q.Validate("questions"); err != nil {
			g.log.Info("dropping malformed generated question", "index", i, "reason", err.Error())
			continue
		}
		valid = append(valid, q)
		if len(valid) == g.maxQuestions {
			break
		}
	}
	return valid, nil
}

// extractJSON strips markdown code fences and surrounding prose from a model
// reply, leaving the outermost JSON object.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		start := 3
		if i := strings.Index(content[start:], "\n"); i != -1 {
			start += i + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		} else {
			content = content[start:]
		}
	}
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start != -1 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}
	return strings.TrimSpace(content)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
