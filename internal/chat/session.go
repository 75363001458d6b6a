// Package chat holds the append-only transcript of one question
// session. Failures never surface as errors here: the transcript is
// the user's only feedback surface, so they become assistant messages.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Aaqilyousuf/documind-cli/internal/models"
)

// Fixed assistant lines. Greeting opens every session; the other two
// stand in for an empty or failed answer.
const (
	Greeting       = "Hello! I'm ready to help you explore your documents. What would you like to know?"
	FallbackAnswer = "I couldn't find relevant information in your documents."
	ApologyAnswer  = "Sorry, I encountered an error while processing your question. Please try again."
)

// Querier is the slice of the API client a session needs.
type Querier interface {
	Query(ctx context.Context, userID, question string) (string, error)
}

// Session is one chat conversation. Messages accumulate in memory and
// are discarded with the session; nothing persists across runs.
type Session struct {
	api      Querier
	userID   string
	messages []models.Message
}

// NewSession opens a session seeded with the greeting.
func NewSession(api Querier, userID string) *Session {
	s := &Session{api: api, userID: userID}
	s.append(Greeting, false)
	return s
}

// Ask sends question to the backend and appends the exchange to the
// transcript: one user message, then exactly one assistant message.
// A blank question or unresolved identity is a no-op (ok=false,
// nothing appended). An empty answer renders the fallback line, a
// transport failure the apology line.
func (s *Session) Ask(ctx context.Context, question string) (reply models.Message, ok bool) {
	question = strings.TrimSpace(question)
	if question == "" || s.userID == "" {
		return models.Message{}, false
	}

	s.append(question, true)

	answer, err := s.api.Query(ctx, s.userID, question)
	switch {
	case err != nil:
		answer = ApologyAnswer
	case answer == "":
		answer = FallbackAnswer
	}
	return s.append(answer, false), true
}

// Messages returns the transcript in append order.
func (s *Session) Messages() []models.Message {
	return s.messages
}

func (s *Session) append(content string, isUser bool) models.Message {
	msg := models.Message{
		ID:        uuid.NewString(),
		Content:   content,
		IsUser:    isUser,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}
