package player

import "trivia-quiz/internal/dto"

// Status is the lifecycle state of a fetch-backed container.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// CategoryStore holds the category list through its fetch lifecycle:
// idle until the first load, then loading, then succeeded or failed.
// There is no automatic retry.
type CategoryStore struct {
	status Status
	list   []dto.CategoryMetaResponse
}

// NewCategoryStore starts in the idle state with an empty list.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{status: StatusIdle}
}

func (s *CategoryStore) Status() Status {
	return s.status
}

func (s *CategoryStore) List() []dto.CategoryMetaResponse {
	return s.list
}

// Begin marks a fetch as in flight.
func (s *CategoryStore) Begin() {
	s.status = StatusLoading
}

// Succeed stores the fetched list.
func (s *CategoryStore) Succeed(list []dto.CategoryMetaResponse) {
	s.status = StatusSucceeded
	s.list = list
}

// Fail records a fetch error; the list is left as it was.
func (s *CategoryStore) Fail() {
	s.status = StatusFailed
}

// Find returns the category with the given api id, if present.
func (s *CategoryStore) Find(apiID int) (dto.CategoryMetaResponse, bool) {
	for _, c := range s.list {
		if c.APIID == apiID {
			return c, true
		}
	}
	return dto.CategoryMetaResponse{}, false
}

// QuizStore holds the active question set. A successful load returns
// to idle carrying the new questions; there is no separate succeeded
// state. Clear resets to idle with no questions at any time.
type QuizStore struct {
	status    Status
	questions []dto.QuestionResponse
}

// NewQuizStore starts idle with no questions.
func NewQuizStore() *QuizStore {
	return &QuizStore{status: StatusIdle}
}

func (s *QuizStore) Status() Status {
	return s.status
}

func (s *QuizStore) Questions() []dto.QuestionResponse {
	return s.questions
}

// Begin marks a fetch as in flight.
func (s *QuizStore) Begin() {
	s.status = StatusLoading
}

// Succeed stores the questions and returns to idle.
func (s *QuizStore) Succeed(questions []dto.QuestionResponse) {
	s.status = StatusIdle
	s.questions = questions
}

// Fail records a fetch error.
func (s *QuizStore) Fail() {
	s.status = StatusFailed
}

// Clear drops the question set, used whenever the category or
// difficulty changes or a reshuffle starts.
func (s *QuizStore) Clear() {
	s.status = StatusIdle
	s.questions = nil
}
