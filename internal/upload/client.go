package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the content API with a site API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client. baseURL is the API root, e.g.
// "https://api.example.com/api".
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("base URL and API key are required")
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// CreateArticleRequest is the payload for article creation.
type CreateArticleRequest struct {
	Language string `json:"language"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Content  string `json:"content"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// CreateArticle uploads one article to a site and returns the new article ID.
func (c *Client) CreateArticle(ctx context.Context, siteName string, article CreateArticleRequest) (string, error) {
	if siteName == "" {
		return "", fmt.Errorf("site name is required")
	}

	body, err := json.Marshal(article)
	if err != nil {
		return "", fmt.Errorf("marshal article: %w", err)
	}

	url := fmt.Sprintf("%s/sites/%s/articles", c.baseURL, siteName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("API request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if !envelope.Success {
		if envelope.Error != nil {
			return "", fmt.Errorf("API request failed (%d): %s [%s]", resp.StatusCode, envelope.Error.Message, envelope.Error.Code)
		}
		return "", fmt.Errorf("API request failed (%d)", resp.StatusCode)
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return "", fmt.Errorf("decode response data: %w", err)
	}
	return data.ID, nil
}
