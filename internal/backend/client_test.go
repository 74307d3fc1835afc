package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/state"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Retry.InitialWait = time.Millisecond
	cfg.Retry.MaxWait = 2 * time.Millisecond
	return cfg
}

func TestSessionHeaderInjection(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Session-Id")
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	sess := state.Session{ID: "sess-abc123"}

	_, err := c.ListDocuments(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "sess-abc123", gotHeader)
}

func TestEmptySessionOmitsHeader(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["X-Session-Id"]
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	_, err := c.ListDocuments(context.Background(), state.Session{})
	require.NoError(t, err)
	assert.False(t, present)
}

func TestBadRequestCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "count must be positive"})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	_, err := c.GenerateQuiz(context.Background(), state.Session{ID: "s"}, quiz.GenerateRequest{Count: -1})

	var bad *ErrBadRequest
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, http.StatusUnprocessableEntity, bad.Status)
	assert.Contains(t, bad.Detail, "count must be positive")
}

func TestRetryableEndpointRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{
			map[string]any{"chunk_id": 3, "document_id": 1},
		}})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	records, err := c.ResolveSources(context.Background(), state.Session{ID: "s"}, []int{3})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ChunkID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMutatingEndpointDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	_, err := c.SubmitQuiz(context.Background(), state.Session{ID: "s"}, quiz.SubmitRequest{QuizID: 1})

	var unavail *ErrServiceUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRateLimitParsesRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	c := NewHTTPClient(cfg)

	_, err := c.Profile(context.Background(), state.Session{ID: "s"})
	var rl *ErrRateLimited
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
}

func TestGenerateQuizValidatesShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name: "valid quiz",
			payload: `{"quiz_id": 1, "questions": [
				{"question_id": 1, "type": "single", "stem": "题干", "options": ["甲", "乙"]}
			], "difficulty_plan": {"Easy": 1}}`,
		},
		{
			name: "negative difficulty count",
			payload: `{"quiz_id": 1, "questions": [
				{"question_id": 1, "type": "single", "stem": "题干", "options": ["甲", "乙"]}
			], "difficulty_plan": {"Easy": -5}}`,
			wantErr: true,
		},
		{
			name:    "missing questions",
			payload: `{"quiz_id": 1}`,
			wantErr: true,
		},
		{
			name:    "empty question list",
			payload: `{"quiz_id": 1, "questions": []}`,
			wantErr: true,
		},
		{
			name:    "question without stem",
			payload: `{"quiz_id": 1, "questions": [{"question_id": 1, "type": "single"}]}`,
			wantErr: true,
		},
		{
			name: "unknown type is allowed",
			payload: `{"quiz_id": 1, "questions": [
				{"question_id": 1, "type": "matching", "stem": "连线题"}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			c := NewHTTPClient(testConfig(srv.URL))
			q, err := c.GenerateQuiz(context.Background(), state.Session{ID: "s"}, quiz.GenerateRequest{Count: 1})

			if tt.wantErr {
				var invalid *ErrInvalidResponse
				require.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, q.QuizID)
		})
	}
}

func TestGenerateQuizRetriesInvalidResponseOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"quiz_id": 1}`))
			return
		}
		_, _ = w.Write([]byte(`{"quiz_id": 2, "questions": [
			{"question_id": 1, "type": "judge", "stem": "判断题"}
		]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	q, err := c.GenerateQuiz(context.Background(), state.Session{ID: "s"}, quiz.GenerateRequest{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, q.QuizID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResearchRoundTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/research":
			var req ResearchCreateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(Research{ResearchID: 9, SessionID: "s", Title: req.Title})
		case r.Method == http.MethodGet && r.URL.Path == "/research":
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{
				map[string]any{"research_id": 9, "title": "矩阵分解", "entry_count": 1},
			}})
		case r.Method == http.MethodGet && r.URL.Path == "/research/9":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"research_id": 9, "session_id": "s", "title": "矩阵分解",
				"entries": []any{map[string]any{
					"entry_id": 1, "research_id": 9, "entry_type": "note", "content": "QR 分解",
				}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/research/9/entries":
			var req ResearchEntryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(ResearchEntry{EntryID: 2, ResearchID: 9, EntryType: req.EntryType, Content: req.Content})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL))
	sess := state.Session{ID: "s"}

	created, err := c.CreateResearch(context.Background(), sess, ResearchCreateRequest{Title: "矩阵分解"})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ResearchID)

	items, err := c.ListResearch(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].EntryCount)

	detail, err := c.GetResearch(context.Background(), sess, 9)
	require.NoError(t, err)
	assert.Equal(t, "矩阵分解", detail.Title)
	require.Len(t, detail.Entries, 1)
	assert.Equal(t, "note", detail.Entries[0].EntryType)

	entry, err := c.AppendResearchEntry(context.Background(), sess, 9, ResearchEntryRequest{EntryType: "note", Content: "QR 分解对满秩矩阵总是存在。"})
	require.NoError(t, err)
	assert.Equal(t, 2, entry.EntryID)
}

func TestObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"weak_concepts": []any{}})
	}))
	defer srv.Close()

	var seen []Outcome
	c := NewHTTPClient(testConfig(srv.URL), WithObserver(func(o Outcome) {
		seen = append(seen, o)
	}))

	_, err := c.Profile(context.Background(), state.Session{ID: "s"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "/profile/me", seen[0].Endpoint)
	assert.Equal(t, http.StatusOK, seen[0].Status)
	assert.NoError(t, seen[0].Err)
}

func TestNetworkFailureIsServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 2
	c := NewHTTPClient(cfg)

	_, err := c.ListDocuments(context.Background(), state.Session{ID: "s"})
	var unavail *ErrServiceUnavailable
	require.ErrorAs(t, err, &unavail)
}

func TestBackoffHonorsRetryAfter(t *testing.T) {
	c := NewHTTPClient(DefaultConfig())
	wait := c.backoff(0, &ErrRateLimited{RetryAfter: 3 * time.Second})
	assert.Equal(t, 3*time.Second, wait)
}

func TestBackoffIsBounded(t *testing.T) {
	c := NewHTTPClient(DefaultConfig())
	for attempt := range 10 {
		wait := c.backoff(attempt, errors.New("boom"))
		assert.GreaterOrEqual(t, wait, time.Duration(0))
		// 20% jitter above the 5s cap.
		assert.LessOrEqual(t, wait, 6*time.Second)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Retry.MaxAttempts = 0
	assert.Error(t, cfg.Validate())
}
