package models

import "time"

// Document is the canonical representation of a server-known uploaded
// file, after normalizing the backend's heterogeneous field names.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size,omitempty"`
	ChunkCount int       `json:"chunk_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Selection is a locally-chosen file. Uploaded stays false until the
// server confirms persistence and is never flipped back to false.
type Selection struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mime_type"`
	Uploaded   bool   `json:"uploaded"`
	DocumentID string `json:"document_id,omitempty"` // set once the server assigns an id
}

// Message is one entry in a chat transcript. Transcripts are
// append-only and live only as long as the session.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}
