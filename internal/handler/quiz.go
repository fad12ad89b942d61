package handler

import (
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/dto"
	"trivia-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DefaultQuizAmount is served when the caller does not ask for a
// specific question count.
const DefaultQuizAmount = 5

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// Health handles GET /health
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// GetCategories handles GET /categories. Only categories with at
// least one question are returned.
func (h *QuizHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetCategoryMeta handles GET /categories/meta. Every category is
// returned along with the difficulty levels it has questions for.
func (h *QuizHandler) GetCategoryMeta(c *fiber.Ctx) error {
	meta, err := h.service.GetCategoryMeta()
	if err != nil {
		return err
	}
	return c.JSON(meta)
}

// GetQuiz handles GET /quiz?category=<int>&difficulty=<enum>&amount=<int>
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	req := &dto.QuizRequest{
		CategoryID: c.QueryInt("category"),
		Difficulty: c.Query("difficulty"),
		Amount:     c.QueryInt("amount", DefaultQuizAmount),
	}

	questions, err := h.service.GetQuiz(req)
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// ScoreQuiz handles POST /quiz/score
func (h *QuizHandler) ScoreQuiz(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Body must have an 'answers' array")
	}

	result, err := h.service.ScoreSubmissions(&req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
