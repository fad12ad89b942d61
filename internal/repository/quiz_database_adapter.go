package repository

import (
	"database/sql"
	"fmt"
	"time"

	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/repository/models"
	"trivia-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository over sqlx.
type QuizDatabaseAdapter struct {
	db DBTX
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db DBTX) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

const questionColumns = "id, category_id, difficulty, question_text, choices, hashed_answer, created_at"

// GetAllCategories returns every category ordered by api_id.
func (a *QuizDatabaseAdapter) GetAllCategories() ([]domain.Category, error) {
	var rows []models.Category
	query := `SELECT api_id, name, created_at FROM categories ORDER BY api_id`
	if err := a.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return toDomainCategories(rows), nil
}

// GetNonEmptyCategories returns only categories that have at least one
// question: distinct category ids first, then a filtered fetch.
func (a *QuizDatabaseAdapter) GetNonEmptyCategories() ([]domain.Category, error) {
	var ids []int
	if err := a.db.Select(&ids, `SELECT DISTINCT category_id FROM questions`); err != nil {
		return nil, fmt.Errorf("failed to get non-empty category ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	query, args, err := sqlx.In(`SELECT api_id, name, created_at FROM categories WHERE api_id IN (?) ORDER BY api_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build category filter: %w", err)
	}
	var rows []models.Category
	if err := a.db.Select(&rows, a.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get non-empty categories: %w", err)
	}
	return toDomainCategories(rows), nil
}

// GetDifficultyBreakdown aggregates questions by category and
// difficulty, one row per populated pair.
func (a *QuizDatabaseAdapter) GetDifficultyBreakdown() ([]domain.DifficultyBreakdown, error) {
	var rows []models.DifficultyCount
	query := `SELECT category_id, difficulty FROM questions GROUP BY category_id, difficulty ORDER BY category_id, difficulty`
	if err := a.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get difficulty breakdown: %w", err)
	}

	breakdown := make([]domain.DifficultyBreakdown, len(rows))
	for i, row := range rows {
		breakdown[i] = domain.DifficultyBreakdown{
			CategoryID: row.CategoryID,
			Difficulty: domain.Difficulty(row.Difficulty),
		}
	}
	return breakdown, nil
}

// SampleQuestions draws a uniform random sample without replacement of
// up to amount questions matching category and difficulty.
func (a *QuizDatabaseAdapter) SampleQuestions(categoryID int, difficulty domain.Difficulty, amount int) ([]domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category_id = $1 AND difficulty = $2 ORDER BY random() LIMIT $3`
	if err := a.db.Select(&rows, query, categoryID, string(difficulty), amount); err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetQuestionsByIDs batch-fetches questions by id. Ids not present in
// the store are simply absent from the result.
func (a *QuizDatabaseAdapter) GetQuestionsByIDs(ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+questionColumns+` FROM questions WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build question id filter: %w", err)
	}
	var rows []models.Question
	if err := a.db.Select(&rows, a.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by ids: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// SaveCategory persists a new category.
func (a *QuizDatabaseAdapter) SaveCategory(category *domain.Category) error {
	row := models.Category{
		APIID:     category.APIID,
		Name:      category.Name,
		CreatedAt: time.Now(),
	}
	query := `INSERT INTO categories (api_id, name, created_at) VALUES (:api_id, :name, :created_at)`
	if _, err := a.db.NamedExec(query, row); err != nil {
		return fmt.Errorf("failed to save category %d: %w", category.APIID, err)
	}
	return nil
}

// SaveQuestions bulk-inserts questions, assigning fresh ULIDs to any
// question without an id.
func (a *QuizDatabaseAdapter) SaveQuestions(questions []domain.Question) error {
	query := `INSERT INTO questions (id, category_id, difficulty, question_text, choices, hashed_answer, created_at)
		VALUES (:id, :category_id, :difficulty, :question_text, :choices, :hashed_answer, :created_at)`
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = util.NewULID()
		}
		row := models.Question{
			ID:           questions[i].ID,
			CategoryID:   questions[i].CategoryID,
			Difficulty:   string(questions[i].Difficulty),
			QuestionText: questions[i].QuestionText,
			Choices:      models.StringSlice(questions[i].Choices),
			HashedAnswer: questions[i].HashedAnswer,
			CreatedAt:    time.Now(),
		}
		if _, err := a.db.NamedExec(query, row); err != nil {
			return fmt.Errorf("failed to save question %s: %w", row.ID, err)
		}
	}
	return nil
}

// DeleteCategory removes a category; its questions go with it via the
// foreign key cascade.
func (a *QuizDatabaseAdapter) DeleteCategory(apiID int) error {
	if _, err := a.db.Exec(`DELETE FROM categories WHERE api_id = $1`, apiID); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", apiID, err)
	}
	return nil
}

// DeleteAllCategories wipes the categories table.
func (a *QuizDatabaseAdapter) DeleteAllCategories() error {
	if _, err := a.db.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}

// DeleteAllQuestions wipes the questions table.
func (a *QuizDatabaseAdapter) DeleteAllQuestions() error {
	if _, err := a.db.Exec(`DELETE FROM questions`); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	return nil
}

// CountQuestions counts questions for one category/difficulty pair.
func (a *QuizDatabaseAdapter) CountQuestions(categoryID int, difficulty domain.Difficulty) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM questions WHERE category_id = $1 AND difficulty = $2`
	if err := a.db.Get(&count, query, categoryID, string(difficulty)); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func toDomainCategories(rows []models.Category) []domain.Category {
	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = domain.Category{APIID: row.APIID, Name: row.Name}
	}
	return categories
}

func toDomainQuestions(rows []models.Question) []domain.Question {
	questions := make([]domain.Question, len(rows))
	for i, row := range rows {
		questions[i] = domain.Question{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			Difficulty:   domain.Difficulty(row.Difficulty),
			QuestionText: row.QuestionText,
			Choices:      []string(row.Choices),
			HashedAnswer: row.HashedAnswer,
		}
	}
	return questions
}
