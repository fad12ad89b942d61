// Package trivia is a small client for the Open Trivia DB API, used
// only by the offline seed job.
package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trivia-quiz/internal/domain"
)

// CategoryEntry is one category of the upstream taxonomy.
type CategoryEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// QuestionEntry is one multiple-choice question as served upstream.
type QuestionEntry struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type categoriesResponse struct {
	TriviaCategories []CategoryEntry `json:"trivia_categories"`
}

type questionsResponse struct {
	ResponseCode int             `json:"response_code"`
	Results      []QuestionEntry `json:"results"`
}

// Client calls the Open Trivia DB API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a trivia API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// FetchCategories returns the full upstream category taxonomy.
func (c *Client) FetchCategories(ctx context.Context) ([]CategoryEntry, error) {
	var resp categoriesResponse
	if err := c.getJSON(ctx, c.baseURL+"/api_category.php", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return resp.TriviaCategories, nil
}

// FetchQuestions asks for up to desired questions matching a category
// and difficulty, halving the requested amount and retrying whenever
// the API cannot satisfy it. An empty result is not an error; it means
// the API has nothing for this pair.
func (c *Client) FetchQuestions(ctx context.Context, categoryID int, difficulty domain.Difficulty, desired int) ([]QuestionEntry, error) {
	for amount := desired; amount > 0; amount /= 2 {
		query := url.Values{}
		query.Set("amount", strconv.Itoa(amount))
		query.Set("category", strconv.Itoa(categoryID))
		query.Set("difficulty", difficulty.String())
		query.Set("type", "multiple")

		var resp questionsResponse
		if err := c.getJSON(ctx, c.baseURL+"/api.php?"+query.Encode(), &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch questions for category %d: %w", categoryID, err)
		}
		if resp.ResponseCode == 0 && len(resp.Results) > 0 {
			return resp.Results, nil
		}
	}
	return nil, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
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
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
