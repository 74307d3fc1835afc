package backend

import (
	"context"
	"time"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/bazs0328/graduation/internal/state"
)

// Client is the boundary to the remote assessment service. Every method
// takes the explicit session so no identity leaks through package state.
type Client interface {
	// UploadDocument sends one file for ingestion.
	UploadDocument(ctx context.Context, sess state.Session, path string) (*UploadResult, error)

	// ListDocuments returns the documents known to the session.
	ListDocuments(ctx context.Context, sess state.Session) ([]Document, error)

	// GetDocument returns one document's detail.
	GetDocument(ctx context.Context, sess state.Session, id int) (*Document, error)

	// RebuildIndex asks the service to rebuild its search index.
	RebuildIndex(ctx context.Context, sess state.Session) (*IndexStatus, error)

	// Ask runs a retrieval-grounded question and returns the answer with
	// its citation references.
	Ask(ctx context.Context, sess state.Session, req AskRequest) (*AskResult, error)

	// GenerateQuiz requests a new quiz.
	GenerateQuiz(ctx context.Context, sess state.Session, req quiz.GenerateRequest) (*quiz.Quiz, error)

	// SubmitQuiz grades an attempt.
	SubmitQuiz(ctx context.Context, sess state.Session, req quiz.SubmitRequest) (*quiz.SubmitResult, error)

	// ResolveSources batches citation ids into preview records.
	ResolveSources(ctx context.Context, sess state.Session, chunkIDs []int) ([]sources.Record, error)

	// Profile fetches the learner profile.
	Profile(ctx context.Context, sess state.Session) (*learnpath.Profile, error)

	// RecentQuizzes lists the most recent graded attempts.
	RecentQuizzes(ctx context.Context, sess state.Session, limit int) ([]RecentQuiz, error)

	// CreateResearch opens a new research notebook.
	CreateResearch(ctx context.Context, sess state.Session, req ResearchCreateRequest) (*Research, error)

	// ListResearch returns the session's research notebooks, newest first.
	ListResearch(ctx context.Context, sess state.Session) ([]ResearchListItem, error)

	// GetResearch returns one notebook with its entries in creation order.
	GetResearch(ctx context.Context, sess state.Session, id int) (*ResearchDetail, error)

	// AppendResearchEntry adds an entry to a notebook.
	AppendResearchEntry(ctx context.Context, sess state.Session, id int, req ResearchEntryRequest) (*ResearchEntry, error)
}

// UploadResult acknowledges a document ingestion.
type UploadResult struct {
	DocumentID int    `json:"document_id"`
	Filename   string `json:"filename"`
	ChunkCount int    `json:"chunk_count"`
	Status     string `json:"status,omitempty"`
}

// Document is one ingested document.
type Document struct {
	DocumentID int        `json:"document_id"`
	Name       string     `json:"name"`
	ChunkCount int        `json:"chunk_count"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// IndexStatus reports the outcome of an index rebuild.
type IndexStatus struct {
	Status     string `json:"status"`
	ChunkCount int    `json:"chunk_count"`
	Detail     string `json:"detail,omitempty"`
}

// AskRequest is a retrieval-grounded question.
type AskRequest struct {
	Query      string `json:"query"`
	TopK       int    `json:"top_k,omitempty"`
	DocumentID int    `json:"document_id,omitempty"`
}

// SourceRef is a citation reference attached to an answer. Only the chunk
// id matters to the client; it is resolved to a preview separately.
type SourceRef struct {
	ChunkID    int     `json:"chunk_id"`
	DocumentID int     `json:"document_id,omitempty"`
	Score      float64 `json:"score,omitempty"`
}

// AskResult is the service's answer to a question.
type AskResult struct {
	Answer  string      `json:"answer"`
	Sources []SourceRef `json:"sources,omitempty"`
}

// ChunkIDs returns the citation ids attached to the answer, in order.
func (r AskResult) ChunkIDs() []int {
	ids := make([]int, 0, len(r.Sources))
	for _, s := range r.Sources {
		ids = append(ids, s.ChunkID)
	}
	return ids
}

// ResearchCreateRequest opens a research notebook. Both fields may be empty.
type ResearchCreateRequest struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Research is a created or updated research notebook.
type Research struct {
	ResearchID int        `json:"research_id"`
	SessionID  string     `json:"session_id"`
	Title      string     `json:"title,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ResearchListItem is one notebook in the listing, with its entry count.
type ResearchListItem struct {
	ResearchID int        `json:"research_id"`
	Title      string     `json:"title,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	EntryCount int        `json:"entry_count"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ResearchEntryRequest appends one entry to a notebook.
type ResearchEntryRequest struct {
	EntryType  string           `json:"entry_type"`
	Content    string           `json:"content"`
	ToolTraces []map[string]any `json:"tool_traces,omitempty"`
	Sources    []map[string]any `json:"sources,omitempty"`
}

// ResearchEntry is one stored notebook entry.
type ResearchEntry struct {
	EntryID    int              `json:"entry_id"`
	ResearchID int              `json:"research_id"`
	EntryType  string           `json:"entry_type"`
	Content    string           `json:"content"`
	ToolTraces []map[string]any `json:"tool_traces,omitempty"`
	Sources    []map[string]any `json:"sources,omitempty"`
	CreatedAt  *time.Time       `json:"created_at,omitempty"`
}

// ResearchDetail is one notebook with its entries in creation order.
type ResearchDetail struct {
	Research
	Entries []ResearchEntry `json:"entries"`
}

// RecentQuiz is one entry in the recent-attempts listing.
type RecentQuiz struct {
	QuizID         int                 `json:"quiz_id"`
	SubmittedAt    *time.Time          `json:"submitted_at,omitempty"`
	Score          *float64            `json:"score,omitempty"`
	Accuracy       *float64            `json:"accuracy,omitempty"`
	DifficultyPlan quiz.DifficultyPlan `json:"difficulty_plan,omitempty"`
	Summary        map[string]any      `json:"summary,omitempty"`
}
