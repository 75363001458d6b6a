// Package identity manages the anonymous per-installation token that
// correlates a user's documents on the backend. It is the CLI
// counterpart of the browser's user_id cookie: generated once, kept
// for a year, never sent anywhere except as a query parameter.
package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// TTL matches the 365-day cookie expiry of the web client.
const TTL = 365 * 24 * time.Hour

const fileName = "identity.json"

type record struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Provider reads and writes the persisted token in a state directory.
type Provider struct {
	Dir string

	memory string // fallback token when the state dir is unwritable
}

// NewProvider returns a Provider rooted at dir.
func NewProvider(dir string) *Provider {
	return &Provider{Dir: dir}
}

func (p *Provider) path() string {
	return filepath.Join(p.Dir, fileName)
}

// GetOrCreate returns the persisted token, generating and persisting a
// new one when none exists or the stored one has expired. Repeated
// calls against the same state return the same value. Persistence
// failure is not an error: the generated token is kept in memory for
// the rest of the process instead.
func (p *Provider) GetOrCreate() string {
	if rec, err := p.read(); err == nil && rec.Token != "" && time.Now().Before(rec.ExpiresAt) {
		return rec.Token
	}
	if p.memory != "" {
		return p.memory
	}

	now := time.Now()
	rec := record{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
	if err := p.write(rec); err != nil {
		p.memory = rec.Token
	}
	return rec.Token
}

// Clear removes the persisted token so the next GetOrCreate mints a
// fresh one. The CLI analogue of clearing browser cookies.
func (p *Provider) Clear() error {
	p.memory = ""
	err := os.Remove(p.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (p *Provider) read() (record, error) {
	data, err := os.ReadFile(p.path())
	if err != nil {
		return record{}, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, err
	}
	return rec, nil
}

// write persists via temp file + rename. Two processes racing their
// first-ever call can still each mint a token with last-write-wins;
// both tokens are valid, the loser's uploads become orphaned.
func (p *Provider) write(rec record) error {
	if err := os.MkdirAll(p.Dir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	tmp := p.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, p.path())
}
