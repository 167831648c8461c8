// Package apitest provides an in-memory fake of the dataset REST API for
// tests. It serves the same routes as the real service, enforces the API key
// when one is configured and can be told to fail upcoming item uploads.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Request is a request recorded by the fake.
type Request struct {
	Method    string
	Path      string
	Workspace string
	Body      []byte
}

// Server is a running fake dataset API.
type Server struct {
	*httptest.Server

	apiKey string
	ids    *utils.UUIDGenerator

	mu       sync.Mutex
	datasets map[string]models.Dataset
	items    map[string][]models.DatasetItem
	requests []Request
	failures []int
}

type Option func(*Server)

// WithAPIKey makes the fake answer 401 to requests without this key.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// WithDataset seeds a dataset.
func WithDataset(ds models.Dataset) Option {
	return func(s *Server) { s.datasets[ds.ID] = ds }
}

// NewServer starts a fake and closes it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		ids:      utils.NewUUIDGenerator(),
		datasets: make(map[string]models.Dataset),
		items:    make(map[string][]models.DatasetItem),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.record)
	router.Use(s.auth)

	router.Route("/v1/private/datasets", func(r chi.Router) {
		r.Post("/", s.createDataset)
		r.Post("/retrieve", s.retrieveDataset)
		r.Put("/items", s.putItems)
		r.Post("/items/delete", s.deleteItems)
		r.Get("/{id}", s.getDataset)
	})

	return router
}

// FailNextPuts makes the next item uploads answer with the given statuses,
// one status per request.
func (s *Server) FailNextPuts(statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, statuses...)
}

// Items returns the items stored for a dataset id, in upload order.
func (s *Server) Items(datasetID string) []models.DatasetItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items[datasetID])
}

// DatasetByName returns the stored dataset with that name.
func (s *Server) DatasetByName(name string) (models.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByName(name)
}

// Requests returns every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Count returns how many recorded requests match method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			var raw json.RawMessage
			_ = json.NewDecoder(r.Body).Decode(&raw)
			body = raw
			r.Body = http.NoBody
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Workspace: r.Header.Get("Comet-Workspace"),
			Body:      body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), body)))
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get("Authorization") != s.apiKey {
			writeError(w, http.StatusUnauthorized, "missing or invalid api key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) createDataset(w http.ResponseWriter, r *http.Request) {
	var req models.DatasetCreateRequest
	if err := json.Unmarshal(bodyFrom(r.Context()), &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findByName(req.Name); ok {
		writeError(w, http.StatusConflict, "dataset already exists")
		return
	}

	ds := s.newDataset(req.ID, req.Name, req.Description)
	w.Header().Set("Location", "/v1/private/datasets/"+ds.ID)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) retrieveDataset(w http.ResponseWriter, r *http.Request) {
	var req models.DatasetRetrieveRequest
	if err := json.Unmarshal(bodyFrom(r.Context()), &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	ds, ok := s.findByName(req.DatasetName)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	_, _ = utils.WriteJSON(w, ds, http.StatusOK)
}

func (s *Server) getDataset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ds, ok := s.datasets[chi.URLParam(r, "id")]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	_, _ = utils.WriteJSON(w, ds, http.StatusOK)
}

// putItems appends or replaces items by id. A dataset referenced by name is
// created on first use; one referenced by id must exist.
func (s *Server) putItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.failures) > 0 {
		status := s.failures[0]
		s.failures = s.failures[1:]
		writeError(w, status, http.StatusText(status))
		return
	}

	var batch models.DatasetItemBatch
	if err := json.Unmarshal(bodyFrom(r.Context()), &batch); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var ds models.Dataset
	if name, ok := batch.DatasetName(); ok {
		if ds, ok = s.findByName(name); !ok {
			ds = s.newDataset("", name, "")
		}
	} else {
		id, _ := batch.DatasetID()
		var found bool
		if ds, found = s.datasets[id]; !found {
			writeError(w, http.StatusNotFound, "dataset not found")
			return
		}
	}

	now := time.Now().UTC()
	stored := s.items[ds.ID]
	for _, item := range batch.Items() {
		if item.ID == "" {
			item.ID = s.ids.Generate()
		}
		item.DatasetID = ds.ID
		item.LastUpdatedAt = &now

		idx := slices.IndexFunc(stored, func(existing models.DatasetItem) bool { return existing.ID == item.ID })
		if idx >= 0 {
			item.CreatedAt = stored[idx].CreatedAt
			stored[idx] = item
			continue
		}
		item.CreatedAt = &now
		stored = append(stored, item)
	}
	s.items[ds.ID] = stored

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteItems(w http.ResponseWriter, r *http.Request) {
	var req models.DatasetItemsDeleteRequest
	if err := json.Unmarshal(bodyFrom(r.Context()), &req); err != nil || len(req.ItemIDs) == 0 {
		writeError(w, http.StatusBadRequest, "item_ids are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, items := range s.items {
		s.items[id] = slices.DeleteFunc(items, func(item models.DatasetItem) bool {
			return slices.Contains(req.ItemIDs, item.ID)
		})
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) findByName(name string) (models.Dataset, bool) {
	for _, ds := range s.datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return models.Dataset{}, false
}

func (s *Server) newDataset(id, name, description string) models.Dataset {
	if id == "" {
		id = s.ids.Generate()
	}
	now := time.Now().UTC()
	ds := models.Dataset{ID: id, Name: name, Description: description, CreatedAt: &now, LastUpdatedAt: &now}
	s.datasets[id] = ds
	return ds
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_, _ = utils.WriteJSON(w, map[string][]string{"errors": {msg}}, status)
}
