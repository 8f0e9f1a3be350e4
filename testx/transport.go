package testx

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RecordingTransport is an http.RoundTripper that captures every request and
// replies with canned responses. It lets store clients be exercised without a
// live server, and exposes a call counter for asserting that no network
// attempt was made.
type RecordingTransport struct {
	mu        sync.Mutex
	requests  []*http.Request
	bodies    [][]byte
	responses []cannedResponse
	err       error
}

type cannedResponse struct {
	statusCode int
	body       string
}

var _ http.RoundTripper = (*RecordingTransport)(nil)

func NewRecordingTransport() *RecordingTransport {
	return &RecordingTransport{}
}

// Respond queues a canned response with the given status code and body.
// Responses are consumed in FIFO order; when the queue runs low the last
// queued response is repeated.
func (rt *RecordingTransport) Respond(statusCode int, body string) *RecordingTransport {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.responses = append(rt.responses, cannedResponse{statusCode: statusCode, body: body})
	return rt
}

// Fail makes every subsequent round trip return the given transport error.
func (rt *RecordingTransport) Fail(err error) *RecordingTransport {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.err = err
	return rt
}

func (rt *RecordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	rt.requests = append(rt.requests, req)
	rt.bodies = append(rt.bodies, body)

	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	if rt.err != nil {
		return nil, rt.err
	}

	canned := cannedResponse{statusCode: http.StatusOK, body: `{}`}
	if len(rt.responses) > 0 {
		canned = rt.responses[0]
		if len(rt.responses) > 1 {
			rt.responses = rt.responses[1:]
		}
	}

	return &http.Response{
		StatusCode: canned.statusCode,
		Status:     http.StatusText(canned.statusCode),
		Header: http.Header{
			"Content-Type": []string{"application/json"},
			// Required by the official client's product check.
			"X-Elastic-Product": []string{"Elasticsearch"},
		},
		Body: io.NopCloser(bytes.NewReader([]byte(canned.body))),
	}, nil
}

// Calls returns how many round trips were attempted.
func (rt *RecordingTransport) Calls() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.requests)
}

// Request returns the i-th captured request.
func (rt *RecordingTransport) Request(i int) *http.Request {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.requests[i]
}

// Body returns the i-th captured request body.
func (rt *RecordingTransport) Body(i int) []byte {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.bodies[i]
}
