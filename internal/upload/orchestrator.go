// Package upload sequences multi-file submission to the backend.
// Files go up one at a time so progress stays a simple fraction and
// the server never sees a burst; the first failure halts the batch.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aaqilyousuf/documind-cli/internal/broadcast"
	"github.com/Aaqilyousuf/documind-cli/internal/models"
)

// ErrUnsupportedType means a file was rejected locally before any
// network call.
var ErrUnsupportedType = errors.New("unsupported file type")

// acceptedTypes mirrors what the backend's parsers can ingest.
var acceptedTypes = map[string]string{
	".pdf":  "application/pdf",
	".csv":  "text/csv",
	".txt":  "text/plain",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// NewSelection validates path and builds a pending selection from it.
func NewSelection(path string) (models.Selection, error) {
	mimeType, ok := acceptedTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return models.Selection{}, fmt.Errorf("%w: %s (supported: pdf, csv, txt, docx)", ErrUnsupportedType, filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		return models.Selection{}, err
	}
	return models.Selection{
		Name:     filepath.Base(path),
		Path:     path,
		Size:     info.Size(),
		MimeType: mimeType,
	}, nil
}

// Registry is the slice of the API client the orchestrator drives.
type Registry interface {
	ListFiles(ctx context.Context, userID string) []models.Document
	UploadFile(ctx context.Context, userID, name string, r io.Reader) error
}

// Notifier receives the single change notification a successful batch
// emits.
type Notifier interface {
	Notify(topic string)
}

// Result reports how far a batch got. Selections is the input with
// uploaded marks applied up to the halt point; Documents is the fresh
// listing fetched after a fully successful batch, nil otherwise.
type Result struct {
	Selections []models.Selection
	Documents  []models.Document
	Uploaded   int
	Total      int
}

// Orchestrator uploads batches for one backend.
type Orchestrator struct {
	API        Registry
	Events     Notifier
	OnProgress func(done, total int)
}

// Run uploads every not-yet-uploaded selection strictly in order, one
// request per file. Each success advances progress by one and marks
// the selection uploaded; the first failure aborts the batch with the
// remaining files never attempted and nothing rolled back. A fully
// successful batch triggers exactly one registry refresh followed by
// exactly one change notification, in that order, so listeners can
// assume the registry is current when the signal arrives.
func (o *Orchestrator) Run(ctx context.Context, userID string, selections []models.Selection) (Result, error) {
	res := Result{Selections: selections}
	for _, sel := range selections {
		if !sel.Uploaded {
			res.Total++
		}
	}
	if res.Total == 0 {
		return res, nil
	}

	for i := range res.Selections {
		sel := &res.Selections[i]
		if sel.Uploaded {
			continue
		}

		if err := o.uploadOne(ctx, userID, sel); err != nil {
			return res, fmt.Errorf("upload %s: %w", sel.Name, err)
		}
		sel.Uploaded = true
		res.Uploaded++
		if o.OnProgress != nil {
			o.OnProgress(res.Uploaded, res.Total)
		}
	}

	res.Documents = o.API.ListFiles(ctx, userID)
	if o.Events != nil {
		o.Events.Notify(broadcast.TopicFilesChanged)
	}
	return res, nil
}

func (o *Orchestrator) uploadOne(ctx context.Context, userID string, sel *models.Selection) error {
	f, err := os.Open(sel.Path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return o.API.UploadFile(ctx, userID, sel.Name, f)
}
