// Package seeder populates the question store from the trivia API.
// It is a one-shot batch job and never runs alongside the server.
package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/trivia"
	"trivia-quiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DesiredPerDifficulty is the question count requested per
	// category/difficulty pair before the halving retry kicks in.
	DesiredPerDifficulty = 10

	// GuaranteedCategoryID always ends up with at least
	// GuaranteedMinimum medium and hard questions.
	GuaranteedCategoryID = 9
	GuaranteedMinimum    = 3

	categoryConcurrency = 4
)

// QuestionSource abstracts the trivia API for testing.
type QuestionSource interface {
	FetchCategories(ctx context.Context) ([]trivia.CategoryEntry, error)
	FetchQuestions(ctx context.Context, categoryID int, difficulty domain.Difficulty, desired int) ([]trivia.QuestionEntry, error)
}

// Seeder wipes and repopulates the store.
type Seeder struct {
	repo   domain.QuizRepository
	source QuestionSource
	log    *zap.Logger
}

// New creates a Seeder.
func New(repo domain.QuizRepository, source QuestionSource, log *zap.Logger) *Seeder {
	return &Seeder{repo: repo, source: source, log: log}
}

// Run executes the full seeding procedure: wipe, insert the category
// taxonomy, fill each category per difficulty, drop categories that
// ended up empty, then backfill the guaranteed category.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.repo.DeleteAllQuestions(); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}
	if err := s.repo.DeleteAllCategories(); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	entries, err := s.source.FetchCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch category taxonomy: %w", err)
	}
	for _, entry := range entries {
		category := domain.Category{APIID: entry.ID, Name: entry.Name}
		if err := s.repo.SaveCategory(&category); err != nil {
			return fmt.Errorf("failed to save category %d: %w", entry.ID, err)
		}
	}
	s.log.Info("Categories inserted", zap.Int("count", len(entries)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(categoryConcurrency)
	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			if err := s.seedCategory(gctx, entry.ID); err != nil {
				// One failing category does not stop the rest.
				s.log.Error("Failed to seed category",
					zap.Int("category", entry.ID), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.guaranteeMinimum(ctx, domain.DifficultyMedium, mediumFallback); err != nil {
		return err
	}
	if err := s.guaranteeMinimum(ctx, domain.DifficultyHard, hardFallback); err != nil {
		return err
	}

	s.log.Info("Seeding complete")
	return nil
}

// seedCategory fills one category across all difficulties and deletes
// it when it gets no questions at all.
func (s *Seeder) seedCategory(ctx context.Context, apiID int) error {
	total := 0
	for _, difficulty := range domain.Difficulties {
		raw, err := s.source.FetchQuestions(ctx, apiID, difficulty, DesiredPerDifficulty)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			s.log.Warn("No questions from API",
				zap.Int("category", apiID), zap.String("difficulty", difficulty.String()))
			continue
		}

		questions := make([]domain.Question, len(raw))
		for i, entry := range raw {
			questions[i] = buildQuestion(apiID, difficulty, entry.Question, entry.CorrectAnswer, entry.IncorrectAnswers)
		}
		if err := s.repo.SaveQuestions(questions); err != nil {
			return err
		}
		total += len(questions)
		s.log.Info("Questions inserted",
			zap.Int("category", apiID),
			zap.String("difficulty", difficulty.String()),
			zap.Int("count", len(questions)))
	}

	// The guaranteed category is kept even when empty; the backfill
	// inserts into it afterwards.
	if total == 0 && apiID != GuaranteedCategoryID {
		s.log.Info("Dropping empty category", zap.Int("category", apiID))
		return s.repo.DeleteCategory(apiID)
	}
	return nil
}

// guaranteeMinimum tops up the guaranteed category to the minimum
// question count for a difficulty. The API gets one more chance before
// the built-in fallback pack is used.
func (s *Seeder) guaranteeMinimum(ctx context.Context, difficulty domain.Difficulty, pack []FallbackQuestion) error {
	have, err := s.repo.CountQuestions(GuaranteedCategoryID, difficulty)
	if err != nil {
		return err
	}
	if have >= GuaranteedMinimum {
		return nil
	}
	need := GuaranteedMinimum - have

	extra, err := s.source.FetchQuestions(ctx, GuaranteedCategoryID, difficulty, need)
	if err != nil {
		return err
	}

	var questions []domain.Question
	for _, entry := range extra {
		questions = append(questions, buildQuestion(GuaranteedCategoryID, difficulty, entry.Question, entry.CorrectAnswer, entry.IncorrectAnswers))
	}
	// Whatever the API could not cover comes from the built-in pack.
	for _, fb := range pack {
		if len(questions) >= need {
			break
		}
		questions = append(questions, buildQuestion(GuaranteedCategoryID, difficulty, fb.QuestionText, fb.Correct, fb.Distractors))
	}
	if err := s.repo.SaveQuestions(questions); err != nil {
		return err
	}

	s.log.Info("Backfilled guaranteed category",
		zap.String("difficulty", difficulty.String()), zap.Int("added", len(questions)))
	return nil
}

// buildQuestion shuffles the choices and stores only the digest of the
// correct answer.
func buildQuestion(categoryID int, difficulty domain.Difficulty, text, correct string, distractors []string) domain.Question {
	choices := make([]string, 0, len(distractors)+1)
	choices = append(choices, correct)
	choices = append(choices, distractors...)
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return domain.Question{
		ID:           util.NewULID(),
		CategoryID:   categoryID,
		Difficulty:   difficulty,
		QuestionText: text,
		Choices:      choices,
		HashedAnswer: util.HashAnswer(correct),
	}
}
