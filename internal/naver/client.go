// Package naver is a client for the Naver blog search API.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"melonrank/internal/models"
)

const (
	// DefaultBaseURL is the Naver Open API blog search endpoint.
	DefaultBaseURL = "https://openapi.naver.com/v1/search/blog.json"

	// ErrMissingCredentials is shown when no client id or secret is configured.
	ErrMissingCredentials = "NAVER API 키가 없습니다. 환경변수로 설정해주세요."

	// SortSimilarity orders results by relevance; SortDate by post date.
	SortSimilarity = "sim"
	SortDate       = "date"

	defaultTimeout = 10 * time.Second
)

// Client queries the blog search API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithBaseURL overrides the search endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a client for the given API credentials.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		baseURL:      DefaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCredentials reports whether both client id and secret are set.
func (c *Client) HasCredentials() bool {
	return c.clientID != "" && c.clientSecret != ""
}

type searchResponse struct {
	Items []models.BlogItem `json:"items"`
}

// SearchBlog searches blog posts for query. It never fails: missing
// credentials, upstream errors and timeouts come back as BlogResult.Error
// with no items.
func (c *Client) SearchBlog(ctx context.Context, query string, display int, sort string) models.BlogResult {
	if !c.HasCredentials() {
		return models.BlogResult{Items: []models.BlogItem{}, Error: ErrMissingCredentials}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(display))
	params.Set("sort", sort)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return failed(err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.BlogResult{
			Items: []models.BlogItem{},
			Error: fmt.Sprintf("네이버 API 오류: %d", resp.StatusCode),
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failed(err)
	}
	if body.Items == nil {
		body.Items = []models.BlogItem{}
	}
	return models.BlogResult{Items: body.Items}
}

func failed(err error) models.BlogResult {
	return models.BlogResult{Items: []models.BlogItem{}, Error: fmt.Sprintf("요청 실패: %v", err)}
}
