package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia-quiz/internal/dto"
)

type action int

const (
	actionNone action = iota
	actionShuffle
	actionChangeDifficulty
	actionChangeCategory
	actionQuit
)

// UI renders the quiz through a terminal prompt loop. All visible
// output derives from the two state containers plus the per-run
// session (cursor and answer map).
type UI struct {
	api        *APIClient
	categories *CategoryStore
	quiz       *QuizStore
	in         *bufio.Scanner
	out        io.Writer
	amount     int
}

// NewUI creates a UI reading commands from in and printing to out.
func NewUI(api *APIClient, in io.Reader, out io.Writer, amount int) *UI {
	return &UI{
		api:        api,
		categories: NewCategoryStore(),
		quiz:       NewQuizStore(),
		in:         bufio.NewScanner(in),
		out:        out,
		amount:     amount,
	}
}

// Run drives the whole client: load categories, then loop over
// category choice, difficulty choice, and the question walk.
func (u *UI) Run(ctx context.Context) error {
	u.categories.Begin()
	meta, err := u.api.FetchMeta(ctx)
	if err != nil {
		u.categories.Fail()
		return err
	}
	u.categories.Succeed(meta)

	for {
		category, ok := u.pickCategory()
		if !ok {
			return nil
		}

		// Selecting a category resets difficulty to its first
		// available level and drops any in-progress quiz.
		if len(category.Available) == 0 {
			fmt.Fprintf(u.out, "No questions available for %s yet.\n", category.Name)
			continue
		}
		difficulty := category.Available[0]

		for {
			session, err := u.fetchQuiz(ctx, category.APIID, difficulty)
			if err != nil {
				fmt.Fprintf(u.out, "Could not load the quiz: %v\n", err)
				break
			}

			act := u.playQuiz(ctx, session)
			if act == actionQuit {
				return nil
			}
			if act == actionChangeCategory {
				break
			}
			if act == actionChangeDifficulty {
				next, changed := u.pickDifficulty(category, difficulty)
				if !changed {
					continue
				}
				difficulty = next
			}
			// actionShuffle and difficulty changes fall through to a
			// fresh clear-then-fetch round.
		}
	}
}

// fetchQuiz runs the clear -> reset -> fetch sequence so a new
// selection never shows questions from the previous one.
func (u *UI) fetchQuiz(ctx context.Context, categoryID int, difficulty string) (*Session, error) {
	u.quiz.Clear()
	u.quiz.Begin()
	questions, err := u.api.FetchQuiz(ctx, categoryID, difficulty, u.amount)
	if err != nil {
		u.quiz.Fail()
		return nil, err
	}
	u.quiz.Succeed(questions)

	if len(questions) < u.amount {
		noun := "questions"
		if len(questions) == 1 {
			noun = "question"
		}
		fmt.Fprintf(u.out, "Only %d %s available in this category/difficulty.\n", len(questions), noun)
	}
	return NewSession(questions), nil
}

// pickCategory prompts for a category from the loaded list. The
// second return value is false when the user quits.
func (u *UI) pickCategory() (dto.CategoryMetaResponse, bool) {
	list := u.categories.List()
	fmt.Fprintln(u.out, "\nCategories:")
	for i, c := range list {
		fmt.Fprintf(u.out, "  %2d) %s [%s]\n", i+1, c.Name, strings.Join(c.Available, ", "))
	}

	for {
		fmt.Fprintf(u.out, "Pick a category (1-%d, q to quit): ", len(list))
		input, ok := u.readLine()
		if !ok || input == "q" {
			return dto.CategoryMetaResponse{}, false
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 1 && n <= len(list) {
			return list[n-1], true
		}
		fmt.Fprintln(u.out, "Not a valid choice.")
	}
}

// pickDifficulty shows the available tabs for the current category and
// returns the chosen one. The second return value is false when the
// user keeps the current level.
func (u *UI) pickDifficulty(category dto.CategoryMetaResponse, current string) (string, bool) {
	fmt.Fprintf(u.out, "Difficulties for %s: %s\n", category.Name, strings.Join(category.Available, ", "))
	fmt.Fprint(u.out, "Pick a difficulty (enter to keep current): ")
	input, ok := u.readLine()
	if !ok || input == "" || input == current {
		return current, false
	}
	for _, d := range category.Available {
		if d == input {
			return d, true
		}
	}
	fmt.Fprintln(u.out, "That difficulty has no questions here.")
	return current, false
}

// playQuiz walks the questions one at a time until the quiz is
// submitted or the user asks for a different selection.
func (u *UI) playQuiz(ctx context.Context, session *Session) action {
	for {
		question, ok := session.Current()
		if !ok {
			return actionChangeCategory
		}

		fmt.Fprintf(u.out, "\nQuestion %d of %d\n", session.Cursor()+1, session.Len())
		fmt.Fprintln(u.out, question.QuestionText)
		for i, choice := range question.Choices {
			marker := " "
			if answer, answered := session.CurrentAnswer(); answered && answer == choice {
				marker = "*"
			}
			fmt.Fprintf(u.out, " %s %d) %s\n", marker, i+1, choice)
		}

		forward := "n=next"
		if session.AtEnd() {
			forward = "u=submit"
		}
		fmt.Fprintf(u.out, "[1-%d answer, %s, b=back, s=shuffle, d=difficulty, c=category, q=quit]: ",
			len(question.Choices), forward)

		input, alive := u.readLine()
		if !alive || input == "q" {
			return actionQuit
		}

		switch input {
		case "n":
			if session.AtEnd() {
				fmt.Fprintln(u.out, "This is the last question; submit with 'u'.")
			} else if !session.Next() {
				fmt.Fprintln(u.out, "Answer this question first.")
			}
		case "b":
			if !session.Back() {
				fmt.Fprintln(u.out, "Already at the first question.")
			}
		case "u":
			if !session.AtEnd() {
				fmt.Fprintln(u.out, "Submit is only available on the last question.")
				continue
			}
			if !session.CurrentAnswered() {
				fmt.Fprintln(u.out, "Answer this question first.")
				continue
			}
			u.submit(ctx, session)
			return actionChangeCategory
		case "s":
			return actionShuffle
		case "d":
			return actionChangeDifficulty
		case "c":
			return actionChangeCategory
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(question.Choices) {
				fmt.Fprintln(u.out, "Not a valid choice.")
				continue
			}
			session.Answer(question.Choices[n-1])
		}
	}
}

// submit posts the answer map and surfaces the total.
func (u *UI) submit(ctx context.Context, session *Session) {
	score, err := u.api.SubmitAnswers(ctx, dto.ScoreRequest{Answers: session.Submissions()})
	if err != nil {
		fmt.Fprintf(u.out, "Could not score the quiz: %v\n", err)
		return
	}
	fmt.Fprintf(u.out, "\nYou got %d / %d\n", score.TotalCorrect, session.Len())
}

func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}
