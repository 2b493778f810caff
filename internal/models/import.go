package models

// ImportPreview is the ephemeral result of the import pipeline. It is never
// persisted; the admin edits it client-side and resubmits the full payload
// as a commit.
type ImportPreview struct {
	SuggestedTitle     string     `json:"suggested_title"`
	ExtractedContent   string     `json:"extracted_content"`
	GeneratedQuestions []Question `json:"generated_questions"`
}

// GradeResult is the outcome of evaluating a learner's submitted answers.
type GradeResult struct {
	ScorePercent float64 `json:"score_percent"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total"`
	Passed       bool    `json:"passed"`
}
