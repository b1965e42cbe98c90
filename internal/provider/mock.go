package provider

import (
	"context"
	"sync"
)

// MockClient is a scriptable Client for tests and offline development
type MockClient struct {
	mu        sync.Mutex
	responses []*Response
	errs      []error
	calls     []Request
}

// NewMockClient creates an empty mock; queue results with Enqueue
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Enqueue adds one scripted result. Calls consume queued results in order;
// when the queue is exhausted the last entry repeats.
func (m *MockClient) Enqueue(resp *Response, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
	m.errs = append(m.errs, err)
}

// GenerateSpeech returns the next scripted result
func (m *MockClient) GenerateSpeech(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{}, nil
	}
	idx := len(m.calls) - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return m.responses[idx], m.errs[idx]
}

// Calls returns a copy of the requests seen so far
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
