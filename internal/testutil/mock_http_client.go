package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/runforua/donorboard/internal/httpclient"
)

// MockHTTPClient implements httpclient.Client for tests. Responses are
// served in registration order per URL, so paginated exchanges can be
// scripted page by page.
type MockHTTPClient struct {
	mu       sync.Mutex
	queues   map[string][]MockResponse
	requests []httpclient.Request
}

// MockResponse represents a scripted HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Err        error
}

func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		queues: make(map[string][]MockResponse),
	}
}

// EnqueueResponse appends a scripted response for the given URL.
func (m *MockHTTPClient) EnqueueResponse(url string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[url] = append(m.queues[url], resp)
}

// EnqueueJSON is a helper to script a 200 JSON response.
func (m *MockHTTPClient) EnqueueJSON(url string, body string) {
	m.EnqueueResponse(url, MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
	})
}

// Requests returns a copy of every request sent so far.
func (m *MockHTTPClient) Requests() []httpclient.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]httpclient.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(_ context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, *req)

	queue := m.queues[req.URL]
	if len(queue) == 0 {
		return nil, httpclient.NewError(http.StatusNotFound, []byte("no scripted response"))
	}

	next := queue[0]
	m.queues[req.URL] = queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	if next.StatusCode >= 400 {
		return nil, httpclient.NewError(next.StatusCode, next.Body)
	}

	return &httpclient.Response{
		StatusCode: next.StatusCode,
		Body:       next.Body,
	}, nil
}
