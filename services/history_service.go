package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Yashavanth-L/PDF-Analyzer/models"
)

// HistoryService keeps the per-session chat history the boundary
// renders. Entries live in memory for the lifetime of the process and
// are never persisted; the analysis pipeline has no access to them.
type HistoryService struct {
	mu       sync.Mutex
	sessions map[string][]models.ChatEntry
}

func NewHistoryService() *HistoryService {
	return &HistoryService{
		sessions: make(map[string][]models.ChatEntry),
	}
}

// Append records a completed turn under sessionID and returns the
// session identifier. An empty sessionID starts a new session, the
// same way an unknown one does after a server restart.
func (h *HistoryService) Append(sessionID string, entry models.ChatEntry) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	h.sessions[sessionID] = append(h.sessions[sessionID], entry)
	return sessionID
}

// Entries returns the session's turns most recent first. The result is
// a copy; callers cannot mutate the stored log.
func (h *HistoryService) Entries(sessionID string) []models.ChatEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	stored := h.sessions[sessionID]
	entries := make([]models.ChatEntry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		entries = append(entries, stored[i])
	}
	return entries
}
