package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Aaqilyousuf/documind-cli/internal/models"
)

func TestListFilesNormalization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/files" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("user_id") != "u1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[
			{"fileId":"a","fileName":"b.pdf"},
			{"id":"c","name":"d.csv","mimeType":"text/csv","upload_time":"2024-01-01T00:00:00Z"}
		],"count":2}`))
	}))
	defer server.Close()

	docs := NewClient(server.URL).ListFiles(context.Background(), "u1")
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	legacy := docs[0]
	if legacy.ID != "a" || legacy.Name != "b.pdf" {
		t.Errorf("legacy keys not normalized: %+v", legacy)
	}
	if legacy.MimeType != models.DefaultMimeType {
		t.Errorf("expected default mime type, got %q", legacy.MimeType)
	}
	if legacy.CreatedAt.IsZero() {
		t.Error("expected created-at fallback to now, got zero time")
	}

	modern := docs[1]
	if modern.ID != "c" || modern.Name != "d.csv" || modern.MimeType != "text/csv" {
		t.Errorf("modern keys not preserved: %+v", modern)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !modern.CreatedAt.Equal(want) {
		t.Errorf("expected server upload_time %v, got %v", want, modern.CreatedAt)
	}
}

func TestListFilesDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if docs := NewClient(server.URL).ListFiles(context.Background(), "u1"); len(docs) != 0 {
		t.Errorf("expected empty listing on server error, got %d docs", len(docs))
	}

	// Unreachable server degrades the same way.
	server.Close()
	if docs := NewClient(server.URL).ListFiles(context.Background(), "u1"); len(docs) != 0 {
		t.Errorf("expected empty listing on transport failure, got %d docs", len(docs))
	}
}

func TestDeleteMissingParameter(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if err := c.DeleteFile(context.Background(), "u1", ""); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter for empty id, got %v", err)
	}
	if err := c.DeleteFile(context.Background(), "", "f1"); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter for empty user, got %v", err)
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("expected no network calls, server saw %d", n)
	}
}

func TestDeleteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.deleteTimeout = 20 * time.Millisecond

	err := c.DeleteFile(context.Background(), "u1", "f1")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestDeleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"File not found"}`))
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteFile(context.Background(), "u1", "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "File not found" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestUploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/upload" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("user_id") != "u1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "notes.txt" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if err := c.UploadFile(context.Background(), "u1", "notes.txt", strings.NewReader("content")); err != nil {
		t.Errorf("upload failed: %v", err)
	}
	if err := c.UploadFile(context.Background(), "", "notes.txt", strings.NewReader("content")); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/query" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"42"}`))
	}))
	defer server.Close()

	answer, err := NewClient(server.URL).Query(context.Background(), "u1", "what?")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if answer != "42" {
		t.Errorf("expected answer 42, got %q", answer)
	}
}
