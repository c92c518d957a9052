package session

import (
	"time"

	"sqlgenie/ai"
	"sqlgenie/cache"
	"sqlgenie/logger"
	"sqlgenie/models"
	"sqlgenie/service"
)

const DefaultID = "default"

// Archiver keeps a copy of history entries outside the session.
type Archiver interface {
	StoreHistoryEntry(sessionID string, entry models.HistoryEntry) error
}

type Session struct {
	ID        string
	CreatedAt time.Time
	Processor *Processor
	Editor    *Editor
}

// CurrentResult is the manual result when there is one, else the generated
// one.
func (s *Session) CurrentResult() *models.QueryResult {
	if r := s.Editor.State().ManualResult; r != nil {
		return r
	}
	return s.Processor.State().Result
}

func (s *Session) Info() models.SessionInfo {
	return models.SessionInfo{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		HistoryCount: s.Processor.History().Len(),
	}
}

type Dependencies struct {
	Generator ai.Generator
	Executor  service.Executor
	// Archive is optional.
	Archive Archiver
}

// Manager hands out sessions by ID. Sessions live in the cache and expire
// after the cache TTL without activity.
type Manager struct {
	cache *cache.Cache
	deps  Dependencies
	opts  Options
}

func NewManager(c *cache.Cache, deps Dependencies, opts Options) *Manager {
	return &Manager{cache: c, deps: deps, opts: opts}
}

// Get returns the session for id, creating it when needed. Each call extends
// the session's lifetime.
func (m *Manager) Get(id string) *Session {
	if id == "" {
		id = DefaultID
	}

	for {
		if v, ok := m.cache.Get(id); ok {
			s := v.(*Session)
			m.cache.SetDefault(id, s)
			return s
		}

		// Add loses when a concurrent request created the session first; the
		// next Get then returns the winner.
		s := m.newSession(id)
		if m.cache.Add(id, s) {
			logger.Debug("Session created", logger.Ctx{"session": id})
			return s
		}
	}
}

// End drops the session. The next request with the same ID starts afresh.
func (m *Manager) End(id string) {
	if id == "" {
		id = DefaultID
	}
	m.cache.Delete(id)
	logger.Debug("Session ended", logger.Ctx{"session": id})
}

func (m *Manager) newSession(id string) *Session {
	processor := NewProcessor(m.deps.Generator, m.deps.Executor, m.opts)
	editor := NewEditor(m.deps.Executor)
	processor.OnSQLGenerated(editor.HandleSQLGenerated)

	if m.deps.Archive != nil {
		archive := m.deps.Archive
		processor.OnSQLGenerated(func(ev SQLGeneratedEvent) {
			if err := archive.StoreHistoryEntry(id, ev.Entry); err != nil {
				logger.Error("Failed to archive history entry", logger.Ctx{"session": id, "err": err})
			}
		})
	}

	now := time.Now
	if m.opts.Now != nil {
		now = m.opts.Now
	}

	return &Session{
		ID:        id,
		CreatedAt: now(),
		Processor: processor,
		Editor:    editor,
	}
}

func (m *Manager) Count() int {
	return m.cache.ItemCount()
}
