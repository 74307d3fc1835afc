package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/bazs0328/graduation/internal/state"
)

// MockClient is a deterministic Client for tests and offline demos.
// Each field, when set, overrides the built-in canned behavior. Calls are
// recorded by endpoint name.
type MockClient struct {
	mu    sync.Mutex
	Calls []string

	Err error

	UploadFn  func(path string) (*UploadResult, error)
	QuizFn    func(req quiz.GenerateRequest) (*quiz.Quiz, error)
	SubmitFn  func(req quiz.SubmitRequest) (*quiz.SubmitResult, error)
	AskFn     func(req AskRequest) (*AskResult, error)
	SourcesFn func(chunkIDs []int) ([]sources.Record, error)
	ProfileFn func() (*learnpath.Profile, error)
	RecentFn  func(limit int) ([]RecentQuiz, error)
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) record(endpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, endpoint)
	return m.Err
}

// CallCount reports how many times the given endpoint was invoked.
func (m *MockClient) CallCount(endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == endpoint {
			n++
		}
	}
	return n
}

func (m *MockClient) UploadDocument(_ context.Context, _ state.Session, path string) (*UploadResult, error) {
	if err := m.record("/docs/upload"); err != nil {
		return nil, err
	}
	if m.UploadFn != nil {
		return m.UploadFn(path)
	}
	return &UploadResult{DocumentID: 1, Filename: path, ChunkCount: 12}, nil
}

func (m *MockClient) ListDocuments(_ context.Context, _ state.Session) ([]Document, error) {
	if err := m.record("/docs"); err != nil {
		return nil, err
	}
	return []Document{{DocumentID: 1, Name: "线性代数讲义.pdf", ChunkCount: 12}}, nil
}

func (m *MockClient) GetDocument(_ context.Context, _ state.Session, id int) (*Document, error) {
	if err := m.record("/docs/{id}"); err != nil {
		return nil, err
	}
	return &Document{DocumentID: id, Name: "线性代数讲义.pdf", ChunkCount: 12}, nil
}

func (m *MockClient) RebuildIndex(_ context.Context, _ state.Session) (*IndexStatus, error) {
	if err := m.record("/index/rebuild"); err != nil {
		return nil, err
	}
	return &IndexStatus{Status: "ok", ChunkCount: 12}, nil
}

func (m *MockClient) Ask(_ context.Context, _ state.Session, req AskRequest) (*AskResult, error) {
	if err := m.record("/chat"); err != nil {
		return nil, err
	}
	if m.AskFn != nil {
		return m.AskFn(req)
	}
	return &AskResult{
		Answer:  "矩阵的秩等于其行空间的维数。",
		Sources: []SourceRef{{ChunkID: 3, DocumentID: 1, Score: 0.91}},
	}, nil
}

func (m *MockClient) GenerateQuiz(_ context.Context, _ state.Session, req quiz.GenerateRequest) (*quiz.Quiz, error) {
	if err := m.record("/quiz/generate"); err != nil {
		return nil, err
	}
	if m.QuizFn != nil {
		return m.QuizFn(req)
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}
	questions := make([]quiz.Question, count)
	for i := range questions {
		questions[i] = quiz.Question{
			QuestionID:     i + 1,
			Type:           quiz.TypeSingle,
			Difficulty:     quiz.DifficultyEasy,
			Stem:           fmt.Sprintf("示例题目 %d", i+1),
			Options:        []string{"选项一", "选项二", "选项三", "选项四"},
			SourceChunkIDs: []int{3},
		}
	}
	return &quiz.Quiz{
		QuizID:         1001,
		Questions:      questions,
		DifficultyPlan: quiz.DifficultyPlan{quiz.DifficultyEasy: count},
	}, nil
}

func (m *MockClient) SubmitQuiz(_ context.Context, _ state.Session, req quiz.SubmitRequest) (*quiz.SubmitResult, error) {
	if err := m.record("/quiz/submit"); err != nil {
		return nil, err
	}
	if m.SubmitFn != nil {
		return m.SubmitFn(req)
	}
	results := make([]quiz.QuestionResult, len(req.Answers))
	correct := true
	for i, ans := range req.Answers {
		results[i] = quiz.QuestionResult{
			QuestionID:     ans.QuestionID,
			Correct:        &correct,
			UserAnswer:     ans.UserAnswer,
			ExpectedAnswer: map[string]any{"type": "single", "choice": "A"},
		}
	}
	return &quiz.SubmitResult{
		Score:       float64(len(req.Answers)),
		Accuracy:    1,
		PerQuestion: results,
	}, nil
}

func (m *MockClient) ResolveSources(_ context.Context, _ state.Session, chunkIDs []int) ([]sources.Record, error) {
	if err := m.record("/sources/resolve"); err != nil {
		return nil, err
	}
	if m.SourcesFn != nil {
		return m.SourcesFn(chunkIDs)
	}
	items := make([]sources.Record, len(chunkIDs))
	for i, id := range chunkIDs {
		items[i] = sources.Record{
			ChunkID:      id,
			DocumentID:   1,
			DocumentName: "线性代数讲义.pdf",
			TextPreview:  "……示例段落……",
		}
	}
	return items, nil
}

func (m *MockClient) Profile(_ context.Context, _ state.Session) (*learnpath.Profile, error) {
	if err := m.record("/profile/me"); err != nil {
		return nil, err
	}
	if m.ProfileFn != nil {
		return m.ProfileFn()
	}
	return &learnpath.Profile{
		AbilityLevel:     "intermediate",
		WeakConcepts:     []learnpath.WeakConcept{{Concept: "特征值", WrongCount: 2}},
		FrustrationScore: 3,
		LastQuizSummary: map[string]any{
			"quiz_id":  1001.0,
			"accuracy": 0.75,
		},
	}, nil
}

func (m *MockClient) RecentQuizzes(_ context.Context, _ state.Session, limit int) ([]RecentQuiz, error) {
	if err := m.record("/quizzes/recent"); err != nil {
		return nil, err
	}
	if m.RecentFn != nil {
		return m.RecentFn(limit)
	}
	accuracy := 0.8
	return []RecentQuiz{{QuizID: 1001, Accuracy: &accuracy}}, nil
}

func (m *MockClient) CreateResearch(_ context.Context, sess state.Session, req ResearchCreateRequest) (*Research, error) {
	if err := m.record("/research"); err != nil {
		return nil, err
	}
	return &Research{ResearchID: 501, SessionID: sess.ID, Title: req.Title, Summary: req.Summary}, nil
}

func (m *MockClient) ListResearch(_ context.Context, _ state.Session) ([]ResearchListItem, error) {
	if err := m.record("/research"); err != nil {
		return nil, err
	}
	return []ResearchListItem{{ResearchID: 501, Title: "矩阵分解笔记", EntryCount: 2}}, nil
}

func (m *MockClient) GetResearch(_ context.Context, sess state.Session, id int) (*ResearchDetail, error) {
	if err := m.record("/research/{id}"); err != nil {
		return nil, err
	}
	return &ResearchDetail{
		Research: Research{ResearchID: id, SessionID: sess.ID, Title: "矩阵分解笔记"},
		Entries: []ResearchEntry{
			{EntryID: 1, ResearchID: id, EntryType: "note", Content: "QR 分解对满秩矩阵总是存在。"},
		},
	}, nil
}

func (m *MockClient) AppendResearchEntry(_ context.Context, _ state.Session, id int, req ResearchEntryRequest) (*ResearchEntry, error) {
	if err := m.record("/research/{id}/entries"); err != nil {
		return nil, err
	}
	return &ResearchEntry{EntryID: 2, ResearchID: id, EntryType: req.EntryType, Content: req.Content}, nil
}
