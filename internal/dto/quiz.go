package dto

// HealthResponse is the /health body.
type HealthResponse struct {
	Status string `json:"status"`
}

// CategoryResponse represents a category in the API response
type CategoryResponse struct {
	APIID int    `json:"apiId"`
	Name  string `json:"name"`
}

// CategoryMetaResponse adds the per-category availability set: the
// difficulty levels with at least one stored question.
type CategoryMetaResponse struct {
	APIID     int      `json:"apiId"`
	Name      string   `json:"name"`
	Available []string `json:"available"`
}

// QuizRequest carries the /quiz query parameters.
type QuizRequest struct {
	CategoryID int    `validate:"required,gt=0"`
	Difficulty string `validate:"required,oneof=easy medium hard"`
	Amount     int    `validate:"gte=1"`
}

// QuestionResponse is one question served to the client. The correct
// answer's digest never appears here.
type QuestionResponse struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	Choices      []string `json:"choices"`
}

// AnswerSubmission is one answered question in a scoring request.
type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// ScoreRequest is the /quiz/score body.
type ScoreRequest struct {
	Answers []AnswerSubmission `json:"answers"`
}

// SubmissionResultResponse grades a single submitted answer.
type SubmissionResultResponse struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

// ScoreResponse is the /quiz/score result, input-order preserving.
type ScoreResponse struct {
	TotalCorrect int                        `json:"totalCorrect"`
	Results      []SubmissionResultResponse `json:"results"`
}
