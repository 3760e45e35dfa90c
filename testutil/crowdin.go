package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/libretro/crowdin-progress/models"
)

const APIPrefix = "/api/v2"

// FakeProject describes what the fake Crowdin API serves.
type FakeProject struct {
	Token     string
	ProjectID string
	// BranchIDs are raw JSON values, so numeric and string ids can both be served.
	BranchIDs []string
	Progress  []models.LanguageProgress
	Languages map[string]string
	// FailPaths maps a request path to the status code it answers with.
	FailPaths map[string]int
	// RawBodies maps a request path to a body served verbatim with a 200.
	RawBodies map[string]string
}

// FakeCrowdin is a recording fake of the three Crowdin endpoints.
type FakeCrowdin struct {
	*httptest.Server
	project FakeProject

	mu       sync.Mutex
	requests []string
}

// NewFakeCrowdin starts a fake Crowdin API. It is closed when the test ends.
func NewFakeCrowdin(t *testing.T, project FakeProject) *FakeCrowdin {
	t.Helper()
	fake := &FakeCrowdin{project: project}

	rtr := mux.NewRouter()
	api := rtr.PathPrefix(APIPrefix).Subrouter()
	api.Use(fake.record, fake.authorize, fake.failures)
	api.HandleFunc("/projects/{projectId}/branches", fake.branches).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/branches/{branchId}/languages/progress", fake.progress).Methods(http.MethodGet)
	api.HandleFunc("/languages/{languageId}", fake.language).Methods(http.MethodGet)
	rtr.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Unknown path[%s]", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	fake.Server = httptest.NewServer(rtr)
	t.Cleanup(fake.Close)
	return fake
}

// BaseURL is the value to use as the client host.
func (f *FakeCrowdin) BaseURL() string {
	return f.URL + APIPrefix
}

// Requests returns the request URIs received so far, in order.
func (f *FakeCrowdin) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeCrowdin) record(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.RequestURI())
		f.mu.Unlock()
		h.ServeHTTP(w, r)
	})
}

func (f *FakeCrowdin) authorize(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.project.Token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (f *FakeCrowdin) failures(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := f.project.FailPaths[r.URL.Path]; ok {
			w.WriteHeader(code)
			return
		}
		if body, ok := f.project.RawBodies[r.URL.Path]; ok {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, body)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (f *FakeCrowdin) branches(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["projectId"] != f.project.ProjectID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	items := make([]json.RawMessage, 0, len(f.project.BranchIDs))
	for i, id := range f.project.BranchIDs {
		items = append(items, json.RawMessage(fmt.Sprintf(`{"data":{"id":%s,"projectId":%q,"name":"branch-%d"}}`, id, f.project.ProjectID, i)))
	}
	writeJSON(w, map[string]interface{}{"data": items})
}

func (f *FakeCrowdin) progress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if vars["projectId"] != f.project.ProjectID || len(f.project.BranchIDs) == 0 || !sameID(vars["branchId"], f.project.BranchIDs[0]) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.URL.Query().Get("limit") != "100" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	items := make([]map[string]models.LanguageProgress, 0, len(f.project.Progress))
	for _, p := range f.project.Progress {
		items = append(items, map[string]models.LanguageProgress{"data": p})
	}
	writeJSON(w, map[string]interface{}{"data": items})
}

func (f *FakeCrowdin) language(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["languageId"]
	name, ok := f.project.Languages[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{"data": models.Language{ID: id, Name: name}})
}

func sameID(pathID, rawID string) bool {
	var id models.ID
	if err := json.Unmarshal([]byte(rawID), &id); err != nil {
		return false
	}
	return id.String() == pathID
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}
