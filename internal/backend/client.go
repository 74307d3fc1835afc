// Package backend implements the JSON-over-HTTP client for the remote
// assessment service: document ingestion, index rebuilds, retrieval
// grounded Q&A, quiz generation and grading, citation resolution, and the
// learner profile.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/bazs0328/graduation/internal/logging"
	"github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/bazs0328/graduation/internal/state"
)

// Outcome describes one finished request for observers (request logging,
// the local event store).
type Outcome struct {
	Endpoint string
	Latency  time.Duration
	Status   int
	Err      error
}

// Observer receives the outcome of every request the client makes.
type Observer func(Outcome)

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithObserver registers an outcome observer.
func WithObserver(fn Observer) Option {
	return func(c *HTTPClient) { c.observe = fn }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	cfg     Config
	http    *http.Client
	observe Observer
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the service at cfg.BaseURL.
func NewHTTPClient(cfg Config, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) UploadDocument(ctx context.Context, sess state.Session, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/docs/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setSession(req, sess)

	var out UploadResult
	// Uploads are not idempotent, so they get exactly one attempt.
	if err := c.send(ctx, req, "/docs/upload", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context, sess state.Session) ([]Document, error) {
	var out struct {
		Items []Document `json:"items"`
	}
	if err := c.do(ctx, sess, http.MethodGet, "/docs", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *HTTPClient) GetDocument(ctx context.Context, sess state.Session, id int) (*Document, error) {
	var out Document
	path := fmt.Sprintf("/docs/%d", id)
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RebuildIndex(ctx context.Context, sess state.Session) (*IndexStatus, error) {
	var out IndexStatus
	if err := c.do(ctx, sess, http.MethodPost, "/index/rebuild", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Ask(ctx context.Context, sess state.Session, req AskRequest) (*AskResult, error) {
	if req.DocumentID == 0 && sess.DocumentID != 0 {
		req.DocumentID = sess.DocumentID
	}
	var out AskResult
	if err := c.do(ctx, sess, http.MethodPost, "/chat", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GenerateQuiz(ctx context.Context, sess state.Session, req quiz.GenerateRequest) (*quiz.Quiz, error) {
	if req.DocumentID == 0 && sess.DocumentID != 0 {
		req.DocumentID = sess.DocumentID
	}

	l := logging.FromContext(ctx)

	out, err := c.generateOnce(ctx, sess, req)
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		// A malformed generation is usually a one-off; ask once more.
		l.Warn().Err(err).Msg("quiz generation response invalid, retrying once")
		out, err = c.generateOnce(ctx, sess, req)
	}
	if err != nil {
		return nil, err
	}

	// The difficulty plan is advisory; a bad sum is logged, not fatal.
	if req.Count > 0 && out.DifficultyPlan.Total() != req.Count {
		l.Warn().
			Int("quiz_id", out.QuizID).
			Int("requested", req.Count).
			Int("planned", out.DifficultyPlan.Total()).
			Msg("difficulty plan does not sum to requested count")
	}
	for _, q := range out.Questions {
		if !q.Type.Known() {
			l.Warn().
				Int("question_id", q.QuestionID).
				Str("type", string(q.Type)).
				Msg("question type outside the known set")
		}
	}
	return out, nil
}

func (c *HTTPClient) generateOnce(ctx context.Context, sess state.Session, req quiz.GenerateRequest) (*quiz.Quiz, error) {
	var raw json.RawMessage
	if err := c.do(ctx, sess, http.MethodPost, "/quiz/generate", req, &raw, false); err != nil {
		return nil, err
	}
	if err := validateQuizPayload(raw); err != nil {
		return nil, err
	}

	var out quiz.Quiz
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return &out, nil
}

func (c *HTTPClient) SubmitQuiz(ctx context.Context, sess state.Session, req quiz.SubmitRequest) (*quiz.SubmitResult, error) {
	var out quiz.SubmitResult
	if err := c.do(ctx, sess, http.MethodPost, "/quiz/submit", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ResolveSources(ctx context.Context, sess state.Session, chunkIDs []int) ([]sources.Record, error) {
	req := map[string]any{"chunk_ids": chunkIDs}
	var out sources.ResolveResponse
	if err := c.do(ctx, sess, http.MethodPost, "/sources/resolve", req, &out, true); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *HTTPClient) Profile(ctx context.Context, sess state.Session) (*learnpath.Profile, error) {
	var out learnpath.Profile
	if err := c.do(ctx, sess, http.MethodGet, "/profile/me", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RecentQuizzes(ctx context.Context, sess state.Session, limit int) ([]RecentQuiz, error) {
	req := map[string]any{"limit": limit}
	var out struct {
		Items []RecentQuiz `json:"items"`
	}
	if err := c.do(ctx, sess, http.MethodPost, "/quizzes/recent", req, &out, true); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *HTTPClient) CreateResearch(ctx context.Context, sess state.Session, req ResearchCreateRequest) (*Research, error) {
	var out Research
	if err := c.do(ctx, sess, http.MethodPost, "/research", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListResearch(ctx context.Context, sess state.Session) ([]ResearchListItem, error) {
	var out struct {
		Items []ResearchListItem `json:"items"`
	}
	if err := c.do(ctx, sess, http.MethodGet, "/research", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *HTTPClient) GetResearch(ctx context.Context, sess state.Session, id int) (*ResearchDetail, error) {
	var out ResearchDetail
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/research/%d", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AppendResearchEntry(ctx context.Context, sess state.Session, id int, req ResearchEntryRequest) (*ResearchEntry, error) {
	var out ResearchEntry
	if err := c.do(ctx, sess, http.MethodPost, fmt.Sprintf("/research/%d/entries", id), req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one JSON round trip, retrying transient failures when retryable.
func (c *HTTPClient) do(ctx context.Context, sess state.Session, method, path string, body, out any, retryable bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
	}

	attempts := 1
	if retryable {
		attempts = c.cfg.Retry.MaxAttempts
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			wait := c.backoff(attempt-1, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := c.newRequest(ctx, sess, method, path, payload)
		if err != nil {
			return err
		}
		lastErr = c.send(ctx, req, path, out)
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *HTTPClient) newRequest(ctx context.Context, sess state.Session, method, path string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setSession(req, sess)
	return req, nil
}

func (c *HTTPClient) setSession(req *http.Request, sess state.Session) {
	if id := strings.TrimSpace(sess.ID); id != "" {
		req.Header.Set(c.cfg.SessionHeader, id)
	}
}

// send performs one prepared request and decodes the response into out.
func (c *HTTPClient) send(ctx context.Context, req *http.Request, endpoint string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = &ErrServiceUnavailable{Err: err}
		c.finish(ctx, Outcome{Endpoint: endpoint, Latency: time.Since(start), Err: err})
		return err
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	outcome := Outcome{Endpoint: endpoint, Latency: time.Since(start), Status: resp.StatusCode}

	switch {
	case readErr != nil:
		outcome.Err = &ErrServiceUnavailable{Status: resp.StatusCode, Err: readErr}
	case resp.StatusCode == http.StatusTooManyRequests:
		outcome.Err = &ErrRateLimited{RetryAfter: retryAfter(resp)}
	case resp.StatusCode >= 500:
		outcome.Err = &ErrServiceUnavailable{Status: resp.StatusCode, Err: errors.New(errorDetail(data))}
	case resp.StatusCode >= 400:
		outcome.Err = &ErrBadRequest{Status: resp.StatusCode, Detail: errorDetail(data)}
	case out != nil:
		if err := json.Unmarshal(data, out); err != nil {
			outcome.Err = &ErrInvalidResponse{Content: data, Err: err}
		}
	}

	c.finish(ctx, outcome)
	return outcome.Err
}

func (c *HTTPClient) finish(ctx context.Context, outcome Outcome) {
	logger := logging.FromContext(ctx)
	evt := logger.Debug()
	if outcome.Err != nil {
		evt = logger.Warn().Err(outcome.Err)
	}
	evt.Str("endpoint", outcome.Endpoint).
		Int("status", outcome.Status).
		Dur("latency", outcome.Latency).
		Msg("backend request")

	if c.observe != nil {
		c.observe(outcome)
	}
}

// backoff computes the wait before the next retry, honoring a rate limit's
// requested delay and adding jitter otherwise.
func (c *HTTPClient) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimited
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	cfg := c.cfg.Retry
	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

func isTransient(err error) bool {
	var unavail *ErrServiceUnavailable
	if errors.As(err, &unavail) {
		return true
	}
	var rl *ErrRateLimited
	return errors.As(err, &rl)
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

// errorDetail extracts the service's error message from a failure payload.
func errorDetail(data []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(data))
}
