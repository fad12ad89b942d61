package service

import (
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/dto"
	"trivia-quiz/internal/util"
	"trivia-quiz/internal/validation"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GetCategories() ([]dto.CategoryResponse, error)
	GetCategoryMeta() ([]dto.CategoryMetaResponse, error)
	GetQuiz(req *dto.QuizRequest) ([]dto.QuestionResponse, error)
	ScoreSubmissions(req *dto.ScoreRequest) (*dto.ScoreResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	validator *validation.Validator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, validator *validation.Validator) QuizService {
	return &quizService{repo: repo, validator: validator}
}

// GetCategories returns only categories holding at least one question.
func (s *quizService) GetCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.repo.GetNonEmptyCategories()
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}

	resp := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = dto.CategoryResponse{APIID: c.APIID, Name: c.Name}
	}
	return resp, nil
}

// GetCategoryMeta returns every category with its availability set.
// Categories without questions are included with an empty set.
func (s *quizService) GetCategoryMeta() ([]dto.CategoryMetaResponse, error) {
	categories, err := s.repo.GetAllCategories()
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}
	breakdown, err := s.repo.GetDifficultyBreakdown()
	if err != nil {
		return nil, domain.NewInternalError("Failed to get difficulty breakdown", err)
	}

	populated := make(map[int]map[domain.Difficulty]bool)
	for _, row := range breakdown {
		if populated[row.CategoryID] == nil {
			populated[row.CategoryID] = make(map[domain.Difficulty]bool)
		}
		populated[row.CategoryID][row.Difficulty] = true
	}

	resp := make([]dto.CategoryMetaResponse, len(categories))
	for i, c := range categories {
		available := []string{}
		for _, d := range domain.Difficulties {
			if populated[c.APIID][d] {
				available = append(available, d.String())
			}
		}
		resp[i] = dto.CategoryMetaResponse{APIID: c.APIID, Name: c.Name, Available: available}
	}
	return resp, nil
}

// GetQuiz draws a random question set for a category and difficulty.
// Fewer matches than requested is not an error; zero matches is.
func (s *quizService) GetQuiz(req *dto.QuizRequest) ([]dto.QuestionResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); len(errs) > 0 {
		return nil, errs
	}
	difficulty, _ := domain.ParseDifficulty(req.Difficulty)

	questions, err := s.repo.SampleQuestions(req.CategoryID, difficulty, req.Amount)
	if err != nil {
		return nil, domain.NewInternalError("Failed to sample questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNoQuestionsError(req.CategoryID, difficulty)
	}

	resp := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		resp[i] = dto.QuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Choices:      q.Choices,
		}
	}
	return resp, nil
}

// ScoreSubmissions grades a batch of answers. Referenced questions are
// fetched once; unknown ids degrade to an incorrect result with a
// blank correct answer instead of aborting the batch.
func (s *quizService) ScoreSubmissions(req *dto.ScoreRequest) (*dto.ScoreResponse, error) {
	if errs := s.validator.ValidateScoreRequest(req); len(errs) > 0 {
		return nil, errs
	}

	ids := make([]string, 0, len(req.Answers))
	seen := make(map[string]bool, len(req.Answers))
	for _, sub := range req.Answers {
		if !seen[sub.QuestionID] {
			seen[sub.QuestionID] = true
			ids = append(ids, sub.QuestionID)
		}
	}

	questions, err := s.repo.GetQuestionsByIDs(ids)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch questions for scoring", err)
	}

	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	subs := make([]domain.Submission, len(req.Answers))
	for i, a := range req.Answers {
		subs[i] = domain.Submission{QuestionID: a.QuestionID, Answer: a.Answer}
	}
	score := gradeSubmissions(subs, byID)

	results := make([]dto.SubmissionResultResponse, len(score.Results))
	for i, r := range score.Results {
		results[i] = dto.SubmissionResultResponse{
			QuestionID:    r.QuestionID,
			Correct:       r.Correct,
			CorrectAnswer: r.CorrectAnswer,
		}
	}
	return &dto.ScoreResponse{TotalCorrect: score.TotalCorrect, Results: results}, nil
}

// gradeSubmissions compares each answer digest against the stored one.
// Results keep the submission order.
func gradeSubmissions(subs []domain.Submission, byID map[string]domain.Question) domain.ScoreResult {
	score := domain.ScoreResult{Results: make([]domain.SubmissionResult, len(subs))}
	for i, sub := range subs {
		q, ok := byID[sub.QuestionID]
		if !ok {
			score.Results[i] = domain.SubmissionResult{QuestionID: sub.QuestionID}
			continue
		}

		correct := util.HashAnswer(sub.Answer) == q.HashedAnswer
		if correct {
			score.TotalCorrect++
		}
		score.Results[i] = domain.SubmissionResult{
			QuestionID:    sub.QuestionID,
			Correct:       correct,
			CorrectAnswer: correctChoice(q),
		}
	}
	return score
}

// correctChoice recovers the plaintext of the correct answer by
// matching choice digests against the stored one.
func correctChoice(q domain.Question) string {
	for _, choice := range q.Choices {
		if util.HashAnswer(choice) == q.HashedAnswer {
			return choice
		}
	}
	return ""
}
