package player

import "trivia-quiz/internal/dto"

// Session is the client-only state of one quiz run: the fetched
// questions, the answer per question id, and a cursor bounded to
// [0, len(questions)-1]. It is discarded on any category or
// difficulty change and after submission.
type Session struct {
	questions []dto.QuestionResponse
	answers   map[string]string
	cursor    int
}

// NewSession starts a session at the first question with no answers.
func NewSession(questions []dto.QuestionResponse) *Session {
	return &Session{
		questions: questions,
		answers:   make(map[string]string),
	}
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// Cursor returns the index of the visible question.
func (s *Session) Cursor() int {
	return s.cursor
}

// Current returns the visible question, if any.
func (s *Session) Current() (dto.QuestionResponse, bool) {
	if len(s.questions) == 0 {
		return dto.QuestionResponse{}, false
	}
	return s.questions[s.cursor], true
}

// Answer records the chosen answer text for the visible question.
func (s *Session) Answer(choice string) {
	if q, ok := s.Current(); ok {
		s.answers[q.ID] = choice
	}
}

// CurrentAnswer returns the recorded answer for the visible question.
func (s *Session) CurrentAnswer() (string, bool) {
	q, ok := s.Current()
	if !ok {
		return "", false
	}
	answer, ok := s.answers[q.ID]
	return answer, ok
}

// CurrentAnswered reports whether the visible question has an answer.
// Next and Submit stay disabled until it does.
func (s *Session) CurrentAnswered() bool {
	_, ok := s.CurrentAnswer()
	return ok
}

// AtStart reports whether the cursor is on the first question.
func (s *Session) AtStart() bool {
	return s.cursor == 0
}

// AtEnd reports whether the cursor is on the last question.
func (s *Session) AtEnd() bool {
	return s.cursor >= len(s.questions)-1
}

// Next advances the cursor. It refuses to move past the last question
// or off an unanswered one.
func (s *Session) Next() bool {
	if s.AtEnd() || !s.CurrentAnswered() {
		return false
	}
	s.cursor++
	return true
}

// Back moves the cursor one question back, stopping at the first.
func (s *Session) Back() bool {
	if s.AtStart() {
		return false
	}
	s.cursor--
	return true
}

// Submissions returns the recorded answers in question order.
func (s *Session) Submissions() []dto.AnswerSubmission {
	subs := make([]dto.AnswerSubmission, 0, len(s.answers))
	for _, q := range s.questions {
		if answer, ok := s.answers[q.ID]; ok {
			subs = append(subs, dto.AnswerSubmission{QuestionID: q.ID, Answer: answer})
		}
	}
	return subs
}
