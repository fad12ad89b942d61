package domain

// Difficulty is one of the three levels a question can be filed under.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all valid levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a raw string into a Difficulty.
// The second return value reports whether the input was valid.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

func (d Difficulty) String() string {
	return string(d)
}

// Category is a trivia category from the upstream taxonomy.
// Categories are created by the seed job and read-only afterwards.
type Category struct {
	APIID int
	Name  string
}

// Question is a single multiple-choice question. The correct answer is
// stored only as a digest; the plaintext never leaves the store.
type Question struct {
	ID           string
	CategoryID   int
	Difficulty   Difficulty
	QuestionText string
	Choices      []string
	HashedAnswer string
}

// ChoiceCount is the number of choices every question must carry.
const ChoiceCount = 4

// CategoryMeta pairs a category with the difficulty levels for which
// at least one question exists. Derived per request, never persisted.
type CategoryMeta struct {
	APIID     int
	Name      string
	Available []Difficulty
}

// DifficultyBreakdown is one row of the per-category difficulty
// aggregation over the questions table.
type DifficultyBreakdown struct {
	CategoryID int
	Difficulty Difficulty
}

// Submission is one answered question in a scoring request.
type Submission struct {
	QuestionID string
	Answer     string
}

// SubmissionResult grades a single submission. CorrectAnswer carries
// the plaintext of the right choice, or "" for an unknown question id.
type SubmissionResult struct {
	QuestionID    string
	Correct       bool
	CorrectAnswer string
}

// ScoreResult is the grade for a whole submission batch. Results
// preserve the order of the submitted answers.
type ScoreResult struct {
	TotalCorrect int
	Results      []SubmissionResult
}

// QuizRepository defines store access for categories and questions.
type QuizRepository interface {
	GetAllCategories() ([]Category, error)
	GetNonEmptyCategories() ([]Category, error)
	GetDifficultyBreakdown() ([]DifficultyBreakdown, error)
	SampleQuestions(categoryID int, difficulty Difficulty, amount int) ([]Question, error)
	GetQuestionsByIDs(ids []string) ([]Question, error)

	SaveCategory(category *Category) error
	SaveQuestions(questions []Question) error
	DeleteCategory(apiID int) error
	DeleteAllCategories() error
	DeleteAllQuestions() error
	CountQuestions(categoryID int, difficulty Difficulty) (int, error)
}
