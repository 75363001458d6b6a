// Package api is the typed HTTP client for the DocuMind backend. It
// owns field normalization and the error taxonomy; callers never see
// raw server JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Aaqilyousuf/documind-cli/internal/models"
	"github.com/Aaqilyousuf/documind-cli/internal/transport"
)

// Client calls the DocuMind backend over HTTP.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	deleteTimeout time.Duration
}

// NewClient constructs a backend client with the uniform request bound.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: transport.DefaultTimeout},
		deleteTimeout: transport.DeleteTimeout,
	}
}

// ListFiles returns the documents the backend holds for userID. The
// listing is non-critical to read, so any failure degrades to an empty
// slice; the cause goes to the log for diagnostics.
func (c *Client) ListFiles(ctx context.Context, userID string) []models.Document {
	if userID == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s%s/files?user_id=%s", c.baseURL, transport.APIPrefix, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("list files: %v", err)
		return nil
	}

	var listing models.ListFilesResponse
	if err := c.do(req, &listing); err != nil {
		log.Printf("list files: %v", err)
		return nil
	}

	now := time.Now()
	docs := make([]models.Document, 0, len(listing.Files))
	for _, f := range listing.Files {
		docs = append(docs, models.NormalizeFile(f, now))
	}
	return docs
}

// DeleteFile removes one document. Both arguments are required and
// checked before any network traffic. The call carries its own 10s
// deadline; exceeding it reports ErrTimeout so the caller can offer a
// retry instead of a generic failure.
func (c *Client) DeleteFile(ctx context.Context, userID, fileID string) error {
	if userID == "" || fileID == "" {
		return fmt.Errorf("%w: user id and file id are required", ErrMissingParameter)
	}

	ctx, cancel := context.WithTimeout(ctx, c.deleteTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s%s/files/%s?user_id=%s",
		c.baseURL, transport.APIPrefix, url.PathEscape(fileID), url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: delete %s", ErrTimeout, fileID)
		}
		return err
	}
	return nil
}

// UploadFile sends one file as multipart form data. The backend
// processes uploads synchronously, so a nil return means the document
// is persisted and will appear in the next listing.
func (c *Client) UploadFile(ctx context.Context, userID, name string, r io.Reader) error {
	if userID == "" || name == "" {
		return fmt.Errorf("%w: user id and file name are required", ErrMissingParameter)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	if err := writer.WriteField("user_id", userID); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transport.APIPrefix+"/upload", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, nil)
}

// Query asks a question about the user's documents and returns the
// answer text, which may be empty when the backend found nothing.
func (c *Client) Query(ctx context.Context, userID, question string) (string, error) {
	payload, err := json.Marshal(models.QueryRequest{Question: question, UserID: userID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transport.APIPrefix+"/query", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp models.QueryResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
