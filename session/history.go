package session

import (
	"sync"

	"sqlgenie/models"
)

// History is the per-session list of past cycles, most recent first. With a
// limit of 0 it grows for the life of the session; a positive limit drops the
// oldest entries.
type History struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	limit   int
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Record(entry models.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]models.HistoryEntry{entry}, h.entries...)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// List returns a copy of the entries.
func (h *History) List() []models.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Get(id string) (models.HistoryEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
