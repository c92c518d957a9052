package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sqlgenie/ai"
	"sqlgenie/logger"
	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/validation"
)

// SQLGeneratedEvent is published after every successful cycle.
type SQLGeneratedEvent struct {
	Entry  models.HistoryEntry
	Result *models.QueryResult
}

type Options struct {
	// Delay is the artificial wait before SQL is generated.
	Delay        time.Duration
	HistoryLimit int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Processor runs query cycles for one session. Only one cycle may be in
// flight at a time; a second Submit meanwhile fails with ErrBusy.
type Processor struct {
	generator ai.Generator
	executor  service.Executor
	history   *History
	delay     time.Duration
	now       func() time.Time

	mu            sync.Mutex
	state         models.ProcessingState
	busy          bool
	lastTimestamp int64
	subscribers   []func(SQLGeneratedEvent)
}

func NewProcessor(generator ai.Generator, executor service.Executor, opts Options) *Processor {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Processor{
		generator: generator,
		executor:  executor,
		history:   NewHistory(opts.HistoryLimit),
		delay:     opts.Delay,
		now:       now,
	}
}

// OnSQLGenerated registers fn to run after each successful cycle. Callbacks
// run synchronously, in registration order, outside the processor lock.
func (p *Processor) OnSQLGenerated(fn func(SQLGeneratedEvent)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

func (p *Processor) State() models.ProcessingState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Processor) History() *History {
	return p.history
}

func (p *Processor) dispatch(a Action) models.ProcessingState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Reduce(p.state, a)
	return p.state
}

// Submit runs one full cycle for query and returns the resulting state.
func (p *Processor) Submit(ctx context.Context, query string) (models.ProcessingState, error) {
	p.mu.Lock()
	if err := validation.ValidateQuery(query); err != nil {
		// A running cycle owns the state until it finishes.
		if !p.busy {
			p.state = Reduce(p.state, Rejected{Message: err.Error()})
		}
		state := p.state
		p.mu.Unlock()
		return state, err
	}
	if p.busy {
		state := p.state
		p.mu.Unlock()
		return state, ErrBusy
	}
	p.busy = true
	p.state = Reduce(p.state, Submitted{Query: query})
	p.mu.Unlock()

	sql, result, err := p.run(ctx, query)

	p.mu.Lock()
	p.busy = false
	if err != nil {
		p.state = Reduce(p.state, Failed{Message: err.Error()})
		state := p.state
		p.mu.Unlock()

		logger.Warn("Query processing failed", logger.Ctx{"query": query, "err": err})
		return state, err
	}

	// Timestamps are strictly increasing within a session, even for cycles
	// finishing in the same millisecond.
	ts := p.now().UnixMilli()
	if ts <= p.lastTimestamp {
		ts = p.lastTimestamp + 1
	}
	p.lastTimestamp = ts

	entry := models.HistoryEntry{
		ID:              uuid.New().String(),
		NaturalLanguage: query,
		GeneratedSQL:    sql,
		Timestamp:       ts,
	}
	p.state = Reduce(p.state, Succeeded{SQL: sql, Result: result})
	p.history.Record(entry)
	state := p.state
	subscribers := append(([]func(SQLGeneratedEvent))(nil), p.subscribers...)
	p.mu.Unlock()

	logger.Debug("Query processed", logger.Ctx{"query": query, "sql": sql, "rows": result.RowCount})

	event := SQLGeneratedEvent{Entry: entry, Result: result}
	for _, fn := range subscribers {
		fn(event)
	}

	return state, nil
}

func (p *Processor) run(ctx context.Context, query string) (sql string, result *models.QueryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProcessingError{Query: query, Err: fmt.Errorf("panic while processing query: %v", r)}
		}
	}()

	if err := wait(ctx, p.delay); err != nil {
		return "", nil, &ProcessingError{Query: query, Err: err}
	}

	sql, err = p.generator.GenerateSQL(ctx, query)
	if err != nil {
		return "", nil, &ProcessingError{Query: query, Err: err}
	}

	result, err = p.executor.Execute(ctx, sql)
	if err != nil {
		return "", nil, &ProcessingError{Query: query, Err: err}
	}
	if result == nil {
		return "", nil, &ProcessingError{Query: query, Err: fmt.Errorf("no result for %q", sql)}
	}

	return sql, result, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry resubmits the last question, whether it succeeded or not.
func (p *Processor) Retry(ctx context.Context) (models.ProcessingState, error) {
	query := p.State().CurrentQuery
	if query == "" {
		return p.State(), ErrNothingToRetry
	}
	return p.Submit(ctx, query)
}

// Replay runs the question of a history entry again. The stored SQL is not
// reused; the new cycle adds its own entry.
func (p *Processor) Replay(ctx context.Context, id string) (models.ProcessingState, error) {
	entry, ok := p.history.Get(id)
	if !ok {
		return p.State(), ErrEntryNotFound
	}
	return p.Submit(ctx, entry.NaturalLanguage)
}

// Clear resets the state. History is kept.
func (p *Processor) Clear() models.ProcessingState {
	return p.dispatch(Reset{})
}
