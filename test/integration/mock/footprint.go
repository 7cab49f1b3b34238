package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FootprintApi is a configurable stand-in for the remote footprint accounting
// API. It answers drill-down, item create/update/fetch and item delete
// requests with canned responses and records what it received.
type FootprintApi struct {
	mu sync.Mutex

	server *httptest.Server

	dataItemUID string
	itemUID     string
	totalAmount string

	failDeletes bool
	failAll     bool

	requestCounts map[string]int
	lastItemBody  map[string]any
}

// NewFootprintApi starts the mock server with default canned responses.
func NewFootprintApi() *FootprintApi {
	f := &FootprintApi{}
	f.Reset()
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// GetUrl returns the mock server's base URL.
func (f *FootprintApi) GetUrl() string {
	return f.server.URL
}

// Reset restores default responses and clears recorded requests.
func (f *FootprintApi) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dataItemUID = "mock-data-item-uid"
	f.itemUID = "mock-item-uid"
	f.totalAmount = "42.5"
	f.failDeletes = false
	f.failAll = false
	f.requestCounts = map[string]int{}
	f.lastItemBody = nil
}

// SetItemResponse configures the uid and total returned for item requests.
func (f *FootprintApi) SetItemResponse(itemUID, totalAmount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemUID = itemUID
	f.totalAmount = totalAmount
}

// SetDataItemUID configures the drill-down resolution.
func (f *FootprintApi) SetDataItemUID(uid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dataItemUID = uid
}

// FailDeletes makes item deletions return HTTP 500.
func (f *FootprintApi) FailDeletes() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failDeletes = true
}

// FailAll makes every request return HTTP 500.
func (f *FootprintApi) FailAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = true
}

// RequestCount returns how many requests of a method arrived, across paths.
func (f *FootprintApi) RequestCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requestCounts[strings.ToUpper(method)]
}

// LastItemBody returns the most recent item payload received.
func (f *FootprintApi) LastItemBody() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastItemBody
}

func (f *FootprintApi) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requestCounts[r.Method]++

	if f.failAll {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.Contains(r.URL.Path, "/drill"):
		_, _ = fmt.Fprintf(w, `{"dataItemUid":%q}`, f.dataItemUID)

	case r.Method == http.MethodDelete:
		if f.failDeletes {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.lastItemBody = body
		}
		_, _ = fmt.Fprintf(w, `{"uid":%q,"totalAmount":%s}`, f.itemUID, f.totalAmount)
	}
}
