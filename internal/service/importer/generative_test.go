package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

func TestGenerativeUnavailableWithoutAPIKey(t *testing.T) {
	g := NewGenerative(logger.New("local"), "", "gpt-4o-mini", 5, 2000)

	_, err := g.Generate(context.Background(), "some article text")
	require.Error(t, err)

	var ge *app_errors.GenerationError
	require.True(t, errors.As(err, &ge))
	assert.ErrorIs(t, err, app_errors.ErrGenerationUnavailable)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"bare object", `{"questions":[]}`, `{"questions":[]}`},
		{"fenced", "```json\n{\"questions\":[]}\n```", `{"questions":[]}`},
		{"fenced no language", "```\n{\"questions\":[]}\n```", `{"questions":[]}`},
		{"surrounding prose", `Here you go: {"questions":[]} Hope that helps!`, `{"questions":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.content))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "hél", truncateRunes("héllo wörld", 3))
	assert.Equal(t, "unlimited", truncateRunes("unlimited", 0))
}
