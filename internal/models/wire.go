package models

import "time"

// ServerFile mirrors one entry of the backend's file listing. The
// backend has grown two generations of field names, so both are
// accepted here and collapsed by NormalizeFile.
type ServerFile struct {
	FileID     string `json:"fileId"`
	ID         string `json:"id"`
	FileName   string `json:"fileName"`
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	UploadTime string `json:"upload_time"`
	Size       int64  `json:"size"`
	ChunkCount int    `json:"chunk_count"`
}

// ListFilesResponse is the body of GET /api/v1/files.
type ListFilesResponse struct {
	Files []ServerFile `json:"files"`
	Count int          `json:"count"`
}

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Question string `json:"question"`
	UserID   string `json:"user_id"`
}

// QueryResponse is the answer returned by the backend.
type QueryResponse struct {
	Answer string `json:"answer"`
}

// DefaultMimeType is assumed when the server omits a file's MIME type.
const DefaultMimeType = "application/pdf"

// NormalizeFile collapses a ServerFile into a canonical Document.
// Precedence: fileId over id, fileName over name. A missing mimeType
// defaults to PDF and a missing or unparseable upload_time defaults to
// now; both defaults are display fallbacks, not server-sourced data.
func NormalizeFile(f ServerFile, now time.Time) Document {
	doc := Document{
		ID:         f.FileID,
		Name:       f.FileName,
		MimeType:   f.MimeType,
		Size:       f.Size,
		ChunkCount: f.ChunkCount,
	}
	if doc.ID == "" {
		doc.ID = f.ID
	}
	if doc.Name == "" {
		doc.Name = f.Name
	}
	if doc.MimeType == "" {
		doc.MimeType = DefaultMimeType
	}
	if t, err := time.Parse(time.RFC3339, f.UploadTime); err == nil {
		doc.CreatedAt = t
	} else {
		doc.CreatedAt = now
	}
	return doc
}
