package testutil

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
)

// Endpoint paths served by TemplateServer
const (
	GeneratorPath = "/api"
	ListerPath    = "/api/list"
)

// TemplateServer serves a listing endpoint and a generator endpoint that
// answers 404 when any requested name is unknown.
type TemplateServer struct {
	*httptest.Server

	Templates map[string]string

	mu       sync.Mutex
	requests []string
}

// NewTemplateServer starts a server closed at the end of the test
func NewTemplateServer(t *testing.T, templates map[string]string) *TemplateServer {
	t.Helper()

	ts := &TemplateServer{Templates: templates}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.serve))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TemplateServer) serve(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	ts.requests = append(ts.requests, r.URL.Path)
	ts.mu.Unlock()

	switch {
	case r.URL.Path == ListerPath:
		names := make([]string, 0, len(ts.Templates))
		for name := range ts.Templates {
			names = append(names, name)
		}
		sort.Strings(names)
		_, _ = w.Write([]byte(strings.Join(names, "\n")))

	case strings.HasPrefix(r.URL.Path, GeneratorPath+"/"):
		requested := strings.Split(strings.TrimPrefix(r.URL.Path, GeneratorPath+"/"), ",")
		parts := make([]string, 0, len(requested))
		for _, name := range requested {
			content, ok := ts.Templates[name]
			if !ok {
				http.Error(w, "unknown template "+name, http.StatusNotFound)
				return
			}
			parts = append(parts, content)
		}
		_, _ = w.Write([]byte(strings.Join(parts, "\n")))

	default:
		http.NotFound(w, r)
	}
}

// Requests returns the request paths received so far
func (ts *TemplateServer) Requests() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]string(nil), ts.requests...)
}

// Args returns the gig flags that point the remote source at this server
func (ts *TemplateServer) Args(extra ...string) []string {
	return append([]string{
		"--server-url", ts.URL,
		"--generator-path", GeneratorPath,
		"--lister-path", ListerPath,
	}, extra...)
}
