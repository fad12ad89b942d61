package seeder

import (
	"context"
	"sync"
	"testing"

	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/trivia"
	"trivia-quiz/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepo is an in-memory store. Seeding fans out across categories,
// so every mutation takes the lock.
type fakeRepo struct {
	mu         sync.Mutex
	categories map[int]domain.Category
	questions  []domain.Question
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{categories: make(map[int]domain.Category)}
}

func (r *fakeRepo) GetAllCategories() ([]domain.Category, error)      { return nil, nil }
func (r *fakeRepo) GetNonEmptyCategories() ([]domain.Category, error) { return nil, nil }
func (r *fakeRepo) GetDifficultyBreakdown() ([]domain.DifficultyBreakdown, error) {
	return nil, nil
}
func (r *fakeRepo) SampleQuestions(int, domain.Difficulty, int) ([]domain.Question, error) {
	return nil, nil
}
func (r *fakeRepo) GetQuestionsByIDs([]string) ([]domain.Question, error) { return nil, nil }

func (r *fakeRepo) SaveCategory(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.APIID] = *category
	return nil
}

func (r *fakeRepo) SaveQuestions(questions []domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append(r.questions, questions...)
	return nil
}

func (r *fakeRepo) DeleteCategory(apiID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, apiID)
	return nil
}

func (r *fakeRepo) DeleteAllCategories() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[int]domain.Category)
	return nil
}

func (r *fakeRepo) DeleteAllQuestions() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = nil
	return nil
}

func (r *fakeRepo) CountQuestions(categoryID int, difficulty domain.Difficulty) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, q := range r.questions {
		if q.CategoryID == categoryID && q.Difficulty == difficulty {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) questionsFor(categoryID int, difficulty domain.Difficulty) []domain.Question {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Question
	for _, q := range r.questions {
		if q.CategoryID == categoryID && q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// fakeSource serves canned questions keyed by category and difficulty.
type fakeSource struct {
	mu         sync.Mutex
	categories []trivia.CategoryEntry
	questions  map[int]map[domain.Difficulty][]trivia.QuestionEntry
}

func (s *fakeSource) FetchCategories(ctx context.Context) ([]trivia.CategoryEntry, error) {
	return s.categories, nil
}

func (s *fakeSource) FetchQuestions(ctx context.Context, categoryID int, difficulty domain.Difficulty, desired int) ([]trivia.QuestionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.questions[categoryID][difficulty]
	if len(entries) > desired {
		entries = entries[:desired]
	}
	return entries, nil
}

func entry(text, correct string) trivia.QuestionEntry {
	return trivia.QuestionEntry{
		Question:         text,
		CorrectAnswer:    correct,
		IncorrectAnswers: []string{"wrong one", "wrong two", "wrong three"},
	}
}

func TestRunSeedsCategories(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeSource{
		categories: []trivia.CategoryEntry{
			{ID: 9, Name: "General Knowledge"},
			{ID: 14, Name: "Television"},
		},
		questions: map[int]map[domain.Difficulty][]trivia.QuestionEntry{
			9: {
				domain.DifficultyEasy:   {entry("e1", "a1"), entry("e2", "a2"), entry("e3", "a3"), entry("e4", "a4"), entry("e5", "a5")},
				domain.DifficultyMedium: {entry("m1", "a1"), entry("m2", "a2"), entry("m3", "a3")},
				domain.DifficultyHard:   {entry("h1", "a1"), entry("h2", "a2"), entry("h3", "a3")},
			},
			14: {
				domain.DifficultyEasy: {entry("tv1", "a1")},
			},
		},
	}

	err := New(repo, source, zap.NewNop()).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, repo.categories, 2)
	assert.Equal(t, "General Knowledge", repo.categories[9].Name)
	assert.Len(t, repo.questionsFor(9, domain.DifficultyEasy), 5)
	assert.Len(t, repo.questionsFor(9, domain.DifficultyMedium), 3)
	assert.Len(t, repo.questionsFor(9, domain.DifficultyHard), 3)
	assert.Len(t, repo.questionsFor(14, domain.DifficultyEasy), 1)
}

func TestRunDropsEmptyCategories(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeSource{
		categories: []trivia.CategoryEntry{
			{ID: 9, Name: "General Knowledge"},
			{ID: 31, Name: "Anime"},
		},
		questions: map[int]map[domain.Difficulty][]trivia.QuestionEntry{
			9: {
				domain.DifficultyMedium: {entry("m1", "a1"), entry("m2", "a2"), entry("m3", "a3")},
				domain.DifficultyHard:   {entry("h1", "a1"), entry("h2", "a2"), entry("h3", "a3")},
			},
			// Category 31 yields nothing for any difficulty.
		},
	}

	err := New(repo, source, zap.NewNop()).Run(context.Background())

	require.NoError(t, err)
	_, ok := repo.categories[31]
	assert.False(t, ok, "category without questions should be deleted")
	_, ok = repo.categories[9]
	assert.True(t, ok)
}

func TestRunWipesPreviousData(t *testing.T) {
	repo := newFakeRepo()
	repo.categories[99] = domain.Category{APIID: 99, Name: "Stale"}
	repo.questions = []domain.Question{{ID: "stale", CategoryID: 99}}

	source := &fakeSource{
		categories: []trivia.CategoryEntry{{ID: 9, Name: "General Knowledge"}},
		questions: map[int]map[domain.Difficulty][]trivia.QuestionEntry{
			9: {
				domain.DifficultyMedium: {entry("m1", "a1"), entry("m2", "a2"), entry("m3", "a3")},
				domain.DifficultyHard:   {entry("h1", "a1"), entry("h2", "a2"), entry("h3", "a3")},
			},
		},
	}

	err := New(repo, source, zap.NewNop()).Run(context.Background())

	require.NoError(t, err)
	_, ok := repo.categories[99]
	assert.False(t, ok)
	for _, q := range repo.questions {
		assert.NotEqual(t, "stale", q.ID)
	}
}

func TestRunBackfillsGuaranteedCategory(t *testing.T) {
	repo := newFakeRepo()
	// The API has nothing at all for the guaranteed category, so the
	// fallback packs must cover both difficulties.
	source := &fakeSource{
		categories: []trivia.CategoryEntry{{ID: 9, Name: "General Knowledge"}},
		questions:  map[int]map[domain.Difficulty][]trivia.QuestionEntry{},
	}

	err := New(repo, source, zap.NewNop()).Run(context.Background())

	require.NoError(t, err)
	medium := repo.questionsFor(GuaranteedCategoryID, domain.DifficultyMedium)
	hard := repo.questionsFor(GuaranteedCategoryID, domain.DifficultyHard)
	assert.Len(t, medium, GuaranteedMinimum)
	assert.Len(t, hard, GuaranteedMinimum)

	// The guaranteed category survives even though the API was empty.
	_, ok := repo.categories[GuaranteedCategoryID]
	assert.True(t, ok)
}

func TestRunBackfillTopsUpPartialCategory(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeSource{
		categories: []trivia.CategoryEntry{{ID: 9, Name: "General Knowledge"}},
		questions: map[int]map[domain.Difficulty][]trivia.QuestionEntry{
			9: {
				domain.DifficultyMedium: {entry("m1", "a1")},
				domain.DifficultyHard:   {entry("h1", "a1"), entry("h2", "a2"), entry("h3", "a3")},
			},
		},
	}

	err := New(repo, source, zap.NewNop()).Run(context.Background())

	require.NoError(t, err)
	// The backfill asks the API again first (which re-serves the same
	// entry) and covers the rest from the fallback pack.
	medium := repo.questionsFor(GuaranteedCategoryID, domain.DifficultyMedium)
	assert.Len(t, medium, GuaranteedMinimum)
	// Hard already met the minimum and must not grow.
	assert.Len(t, repo.questionsFor(GuaranteedCategoryID, domain.DifficultyHard), GuaranteedMinimum)
}

func TestBuildQuestion(t *testing.T) {
	q := buildQuestion(9, domain.DifficultyMedium, "What is the unit of resistance?", "Ohm", []string{"Henry", "Tesla", "Siemens"})

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, 9, q.CategoryID)
	assert.Equal(t, domain.DifficultyMedium, q.Difficulty)
	require.Len(t, q.Choices, domain.ChoiceCount)
	assert.NotContains(t, q.Choices, "")

	// Exactly one choice matches the stored digest, and it is the
	// correct answer regardless of shuffle position.
	matches := 0
	for _, choice := range q.Choices {
		if util.HashAnswer(choice) == q.HashedAnswer {
			matches++
			assert.Equal(t, "Ohm", choice)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestFallbackPacksAreWellFormed(t *testing.T) {
	for _, pack := range [][]FallbackQuestion{mediumFallback, hardFallback} {
		require.Len(t, pack, GuaranteedMinimum)
		for _, fb := range pack {
			assert.NotEmpty(t, fb.QuestionText)
			assert.NotEmpty(t, fb.Correct)
			assert.Len(t, fb.Distractors, domain.ChoiceCount-1)
			assert.NotContains(t, fb.Distractors, fb.Correct)
		}
	}
}
