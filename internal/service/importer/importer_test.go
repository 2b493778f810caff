package importer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/internal/storage/jsonstore"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type stubFetcher struct {
	result FetchResult
	err    error
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) (FetchResult, error) {
	return f.result, f.err
}

type unavailableStrategy struct{}

func (unavailableStrategy) Name() string { return "generative" }

func (unavailableStrategy) Generate(_ context.Context, _ string) ([]models.Question, error) {
	return nil, &app_errors.GenerationError{Err: app_errors.ErrGenerationUnavailable}
}

func newTestService(t *testing.T, f fetcher) (*Service, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "courses.json"))
	strategies := []Strategy{unavailableStrategy{}, NewHeuristic(5)}
	svc := NewService(logger.New("local"), f, NewExtractor(), strategies, store, bluemonday.UGCPolicy(), 70)
	return svc, store
}

func TestImportFallsBackToHeuristicQuestions(t *testing.T) {
	page := `<html><head><title>Skeleton Facts</title></head><body>
<p>The adult human skeleton is normally made up of 206 distinct bones.</p>
</body></html>`
	svc, _ := newTestService(t, &stubFetcher{result: FetchResult{
		Body:        []byte(page),
		ContentType: "text/html",
	}})

	preview, err := svc.Import(context.Background(), "https://example.com/skeleton")
	require.NoError(t, err)

	assert.Equal(t, "Skeleton Facts", preview.SuggestedTitle)
	assert.Contains(t, preview.ExtractedContent, "206 distinct bones")
	require.Len(t, preview.GeneratedQuestions, 1)
	assert.Equal(t, models.QuestionTypeMultipleChoice, preview.GeneratedQuestions[0].Type)
}

func TestImportWrapsFetchFailures(t *testing.T) {
	svc, _ := newTestService(t, &stubFetcher{
		err: &app_errors.FetchError{Reason: app_errors.FetchPrivateAddressBlocked},
	})

	_, err := svc.Import(context.Background(), "https://internal.example.com")
	require.Error(t, err)

	var ie *app_errors.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, app_errors.StageFetch, ie.Stage)
	assert.Equal(t, app_errors.FetchPrivateAddressBlocked, app_errors.ReasonOf(err))
}

func TestImportWrapsExtractionFailures(t *testing.T) {
	svc, _ := newTestService(t, &stubFetcher{result: FetchResult{
		Body:        []byte("%PDF-1.7"),
		ContentType: "application/pdf",
	}})

	_, err := svc.Import(context.Background(), "https://example.com/report.pdf")
	require.Error(t, err)

	var ie *app_errors.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, app_errors.StageExtract, ie.Stage)
}

func TestCommitAssignsIdentityAndOrder(t *testing.T) {
	svc, store := newTestService(t, &stubFetcher{})

	first, err := svc.Commit(context.Background(), models.ModulePayload{
		Title:       "Photosynthesis",
		Description: "How plants make food",
		Content:     "<p>Light energy becomes chemical energy.</p>",
	})
	require.NoError(t, err)
	second, err := svc.Commit(context.Background(), models.ModulePayload{
		Title:       "Cell Division",
		Description: "Mitosis and meiosis",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.WithinDuration(t, time.Now().UTC(), first.CreatedAt, time.Minute)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Modules, 2)
	assert.Equal(t, first.ID, doc.Modules[0].ID)
}

func TestCommitSanitizesContent(t *testing.T) {
	svc, _ := newTestService(t, &stubFetcher{})

	m, err := svc.Commit(context.Background(), models.ModulePayload{
		Title:       "Safe Lesson",
		Description: "Markup is cleaned before storage",
		Content:     `<p>Keep this.</p><script>alert("xss")</script>`,
	})
	require.NoError(t, err)

	assert.Contains(t, m.Content, "<p>Keep this.</p>")
	assert.NotContains(t, m.Content, "<script>")
}

func TestCommitAppliesDefaultPassThreshold(t *testing.T) {
	svc, _ := newTestService(t, &stubFetcher{})

	correct := 0
	m, err := svc.Commit(context.Background(), models.ModulePayload{
		Title:       "Quizzed Lesson",
		Description: "Has a quiz without an explicit threshold",
		Quiz: &models.Quiz{
			Questions: []models.Question{{
				Type:         models.QuestionTypeMultipleChoice,
				Prompt:       "Pick the first option",
				Options:      []string{"first", "second"},
				CorrectIndex: &correct,
			}},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Quiz)
	assert.Equal(t, float64(70), m.Quiz.PassThreshold)
}

func TestCommitRejectsInvalidQuiz(t *testing.T) {
	svc, store := newTestService(t, &stubFetcher{})

	outOfRange := 5
	_, err := svc.Commit(context.Background(), models.ModulePayload{
		Title:       "Broken Quiz",
		Description: "Correct answer points outside the options",
		Quiz: &models.Quiz{
			PassThreshold: 70,
			Questions: []models.Question{{
				Type:         models.QuestionTypeMultipleChoice,
				Prompt:       "Pick one",
				Options:      []string{"a", "b"},
				CorrectIndex: &outOfRange,
			}},
		},
	})
	require.Error(t, err)

	var ve *app_errors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Field, "correct_index")

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Modules)
}

func TestCommitRejectsMissingTitle(t *testing.T) {
	svc, _ := newTestService(t, &stubFetcher{})

	_, err := svc.Commit(context.Background(), models.ModulePayload{Description: "no title"})
	require.Error(t, err)

	var ve *app_errors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)
}
