package reports_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/JaimeStill/litterlens/internal/observability"
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/internal/records"
	"github.com/JaimeStill/litterlens/internal/reports"
	"github.com/JaimeStill/litterlens/pkg/lifecycle"
	"github.com/JaimeStill/litterlens/pkg/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockClassifier dispatches on the output spec embedded in the prompt.
type mockClassifier struct {
	configured bool
	calls      atomic.Int32
	scoreFn    func(image []byte) (string, error)
	categoryFn func(image []byte) (string, error)
}

func (m *mockClassifier) Configured() bool { return m.configured }

func (m *mockClassifier) Classify(_ context.Context, image []byte, instruction string) (string, error) {
	switch {
	case strings.Contains(instruction, "ONLY OUTPUT THE SCORE"):
		m.calls.Add(1)
		return m.scoreFn(image)
	case strings.Contains(instruction, "ONLY OUTPUT THE CATEGORY"):
		m.calls.Add(1)
		return m.categoryFn(image)
	}
	return "", errors.New("unexpected prompt")
}

func answer(text string) func([]byte) (string, error) {
	return func([]byte) (string, error) { return text, nil }
}

// memoryStore is an in-memory records.System.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	rows    []records.NewRecord
	failErr error
}

func (s *memoryStore) Handler() *records.Handler { return nil }

func (s *memoryStore) Insert(_ context.Context, rec records.NewRecord) (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.rows = append(s.rows, rec)
	return s.nextID, nil
}

func (s *memoryStore) Top(context.Context, int) ([]records.Record, error) {
	return []records.Record{}, nil
}

// memoryArchive is an in-memory storage.System.
type memoryArchive struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	uploadErr error
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{blobs: make(map[string][]byte)}
}

func (a *memoryArchive) Start(*lifecycle.Coordinator) error { return nil }

func (a *memoryArchive) Upload(_ context.Context, key string, data []byte, _ string) error {
	if a.uploadErr != nil {
		return a.uploadErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blobs[key] = data
	return nil
}

func (a *memoryArchive) Download(_ context.Context, key string) (*storage.Blob, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	data, ok := a.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.Blob{
		Body:          io.NopCloser(strings.NewReader(string(data))),
		ContentType:   "image/jpeg",
		ContentLength: int64(len(data)),
	}, nil
}

func newSystem(c reports.Classifier, store records.System, archive storage.System) (reports.System, *observability.Metrics) {
	logger := discardLogger()
	metrics := observability.NewMetricsForTesting()
	sys := reports.New(c, prompts.New(&prompts.Config{}, logger), store, archive, metrics, logger)
	return sys, metrics
}
