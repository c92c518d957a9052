package session

import (
	"context"
	"sync"

	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/validation"
)

// Editor holds the hand-edited copy of the generated SQL and the result of
// running it. Newly generated SQL replaces the edit and drops the manual
// result.
type Editor struct {
	executor service.Executor

	mu    sync.Mutex
	state models.EditorState
	// gen changes whenever the editable SQL is replaced.
	gen uint64
}

func NewEditor(executor service.Executor) *Editor {
	return &Editor{executor: executor}
}

// HandleSQLGenerated is subscribed to Processor.OnSQLGenerated.
func (e *Editor) HandleSQLGenerated(ev SQLGeneratedEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = models.EditorState{EditableSQL: ev.Entry.GeneratedSQL}
	e.gen++
}

func (e *Editor) State() models.EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Begin() models.EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Editing = true
	return e.state
}

func (e *Editor) Update(sql string) models.EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Editing = true
	e.state.EditableSQL = sql
	e.gen++
	return e.state
}

// Cancel leaves edit mode without touching the edited text.
func (e *Editor) Cancel() models.EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Editing = false
	return e.state
}

// Run validates and executes the edited SQL. If the SQL is replaced while it
// runs, the result is dropped and ErrEditChanged returned.
func (e *Editor) Run(ctx context.Context) (*models.QueryResult, error) {
	e.mu.Lock()
	sql, gen := e.state.EditableSQL, e.gen
	e.mu.Unlock()

	if err := validation.ValidateSQL(sql); err != nil {
		return nil, err
	}

	result, err := e.executor.Execute(ctx, sql)
	if err != nil {
		return nil, &ProcessingError{Query: sql, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != gen {
		return nil, ErrEditChanged
	}
	e.state.ManualResult = result
	e.state.Editing = false
	return result, nil
}
