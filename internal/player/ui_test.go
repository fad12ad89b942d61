package player

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuizServer serves a fixed two-question quiz and grades q1 against
// "a" and q2 against "b".
func newQuizServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/categories/meta":
			fmt.Fprint(w, `[{"apiId":9,"name":"General Knowledge","available":["easy","medium"]},{"apiId":31,"name":"Anime","available":[]}]`)
		case "/quiz":
			fmt.Fprint(w, `[{"id":"q1","questionText":"First question?","choices":["a","b","c","d"]},{"id":"q2","questionText":"Second question?","choices":["a","b","c","d"]}]`)
		case "/quiz/score":
			var req dto.ScoreRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			correct := map[string]string{"q1": "a", "q2": "b"}
			resp := dto.ScoreResponse{Results: []dto.SubmissionResultResponse{}}
			for _, sub := range req.Answers {
				ok := correct[sub.QuestionID] == sub.Answer
				if ok {
					resp.TotalCorrect++
				}
				resp.Results = append(resp.Results, dto.SubmissionResultResponse{
					QuestionID: sub.QuestionID, Correct: ok, CorrectAnswer: correct[sub.QuestionID],
				})
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
}

func runScript(t *testing.T, server *httptest.Server, amount int, script ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer
	ui := NewUI(NewAPIClient(server.URL), in, &out, amount)
	require.NoError(t, ui.Run(context.Background()))
	return out.String()
}

func TestUIPlaysThroughAQuiz(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	output := runScript(t, server, 2,
		"1", // pick General Knowledge
		"n", // next is blocked until answered
		"1", // answer "a" (correct)
		"n",
		"u", // submit is blocked until answered
		"3", // answer "c" (incorrect)
		"u", // submit
		"q",
	)

	assert.Contains(t, output, "Question 1 of 2")
	assert.Contains(t, output, "First question?")
	assert.Contains(t, output, "Answer this question first.")
	assert.Contains(t, output, "Question 2 of 2")
	assert.Contains(t, output, "You got 1 / 2")
}

func TestUIMarksRecordedAnswer(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	output := runScript(t, server, 2,
		"1",
		"2", // answer "b"
		"n",
		"b", // back to the first question
		"q",
	)

	// Revisiting the first question shows the recorded choice marked.
	assert.Contains(t, output, " * 2) b")
}

func TestUIBackBlockedAtFirstQuestion(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	output := runScript(t, server, 2, "1", "b", "q")

	assert.Contains(t, output, "Already at the first question.")
}

func TestUISubmitOnlyOnLastQuestion(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	output := runScript(t, server, 2, "1", "1", "u", "q")

	assert.Contains(t, output, "Submit is only available on the last question.")
	assert.NotContains(t, output, "You got")
}

func TestUIShortfallHint(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	// Five requested, two served.
	output := runScript(t, server, 5, "1", "q")

	assert.Contains(t, output, "Only 2 questions available in this category/difficulty.")
}

func TestUIEmptyCategoryMessage(t *testing.T) {
	server := newQuizServer(t)
	defer server.Close()

	output := runScript(t, server, 2,
		"2", // Anime has no questions for any difficulty
		"q",
	)

	assert.Contains(t, output, "No questions available for Anime yet.")
	// The category list comes back for another pick.
	assert.Equal(t, 2, strings.Count(output, "Categories:"))
}

func TestUIMetaFailureSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ui := NewUI(NewAPIClient(server.URL), strings.NewReader(""), &bytes.Buffer{}, 2)
	err := ui.Run(context.Background())

	assert.Error(t, err)
}
