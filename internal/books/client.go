package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/ratelimiter"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	userAgent = "FreeRead/1.0 (+https://www.gutenberg.org/policy/robot_access.html)"

	clientTimeout = 20 * time.Second
	maxListBytes  = 4 << 20
	maxTextBytes  = 8 << 20

	maxAttempts         = 3
	initialBackoff      = time.Second
	maxBackoff          = 8 * time.Second
	backoffGrowthFactor = 2

	DefaultAPIURL = "https://gutendex.com/books"
	ebookURLBase  = "https://www.gutenberg.org/ebooks/"
)

type listPage struct {
	Count   int                 `json:"count"`
	Next    *string             `json:"next"`
	Results []domain.RemoteBook `json:"results"`
}

// Client talks to a Gutendex-compatible book API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	limiter      *ratelimiter.RateLimiter
	retryBackoff time.Duration
	log          *slog.Logger
}

func NewClient(baseURL string, limiter *ratelimiter.RateLimiter, log *slog.Logger) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: clientTimeout},
		limiter:      limiter,
		retryBackoff: initialBackoff,
		log:          log,
	}
}

// ListBooks pages through the list endpoint, following "next" links for at
// most maxPages pages. Books from pages fetched before a failure are
// returned together with the error.
func (c *Client) ListBooks(ctx context.Context, maxPages int) ([]domain.RemoteBook, error) {
	pageURL, err := c.firstPageURL()
	if err != nil {
		return nil, err
	}

	var books []domain.RemoteBook

	for page := 0; page < maxPages && pageURL != ""; page++ {
		var p listPage
		if err = c.getJSON(ctx, pageURL, &p); err != nil {
			return books, fmt.Errorf("get page (page = %d): %w", page+1, err)
		}

		books = append(books, p.Results...)

		pageURL = ""
		if p.Next != nil {
			pageURL = strings.TrimSpace(*p.Next)
		}
	}

	return books, nil
}

// FetchText downloads the body of a book as plain text.
func (c *Client) FetchText(ctx context.Context, book domain.RemoteBook) (string, error) {
	textURL, isHTML, ok := TextURL(book)
	if !ok {
		return "", fmt.Errorf("no text format (bookID = %d)", book.ID)
	}

	body, err := c.get(ctx, textURL, maxTextBytes)
	if err != nil {
		return "", fmt.Errorf("get text (bookID = %d): %w", book.ID, err)
	}

	if !isHTML {
		return strings.ToValidUTF8(string(body), ""), nil
	}

	text, err := htmlToText(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("convert HTML (bookID = %d): %w", book.ID, err)
	}

	return text, nil
}

func (c *Client) firstPageURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	if q.Get("languages") == "" {
		q.Set("languages", "en")
	}
	if q.Get("sort") == "" {
		q.Set("sort", "popular")
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.get(ctx, rawURL, maxListBytes)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	backoff := c.retryBackoff

	for attempt := 1; ; attempt++ {
		body, retry, err := c.getOnce(ctx, rawURL, limit)
		if err == nil {
			return body, nil
		}

		if !retry || attempt >= maxAttempts || ctx.Err() != nil {
			return nil, err
		}

		c.log.WarnContext(ctx, "Book API request failed, retrying...",
			"error", err,
			"url", rawURL,
			"attempt", attempt,
			"backoffSeconds", backoff.Seconds())

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		backoff = nextBackoff(backoff)
	}
}

// getOnce performs a single request. It reports whether a failure is worth
// retrying.
func (c *Client) getOnce(ctx context.Context, rawURL string, limit int64) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.limiter.Do(c.httpClient, req)
	if err != nil {
		return nil, true, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			c.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"url", rawURL)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError

		return nil, retry, fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, false, errors.New("read body: response is too large")
	}

	return body, false, nil
}

func nextBackoff(backoff time.Duration) time.Duration {
	if backoff < maxBackoff {
		backoff *= backoffGrowthFactor
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return backoff
}

// EbookURL is the public landing page of a book.
func EbookURL(bookID int) string {
	return fmt.Sprintf("%s%d", ebookURLBase, bookID)
}
