// Package player is the terminal client for the quiz API: an HTTP
// client, reducer-style state containers, and the interactive
// presentation loop.
package player

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trivia-quiz/internal/dto"
)

// APIClient talks to the quiz server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the given server base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchMeta loads every category with its availability set.
func (c *APIClient) FetchMeta(ctx context.Context) ([]dto.CategoryMetaResponse, error) {
	var meta []dto.CategoryMetaResponse
	if err := c.getJSON(ctx, c.baseURL+"/categories/meta", &meta); err != nil {
		return nil, fmt.Errorf("could not load categories: %w", err)
	}
	return meta, nil
}

// FetchQuiz loads a random question set for a category and difficulty.
func (c *APIClient) FetchQuiz(ctx context.Context, categoryID int, difficulty string, amount int) ([]dto.QuestionResponse, error) {
	query := url.Values{}
	query.Set("category", strconv.Itoa(categoryID))
	query.Set("difficulty", difficulty)
	query.Set("amount", strconv.Itoa(amount))

	var questions []dto.QuestionResponse
	if err := c.getJSON(ctx, c.baseURL+"/quiz?"+query.Encode(), &questions); err != nil {
		return nil, fmt.Errorf("could not load quiz: %w", err)
	}
	return questions, nil
}

// SubmitAnswers posts the answer map for grading.
func (c *APIClient) SubmitAnswers(ctx context.Context, req dto.ScoreRequest) (*dto.ScoreResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quiz/score", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("could not submit answers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not submit answers (status %d)", resp.StatusCode)
	}

	var score dto.ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (c *APIClient) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
