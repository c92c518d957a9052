package session

import "sqlgenie/models"

// Action is a transition of the processing state.
type Action interface {
	isAction()
}

// Submitted starts a cycle for Query.
type Submitted struct{ Query string }

// Succeeded ends a cycle with generated SQL and its result.
type Succeeded struct {
	SQL    string
	Result *models.QueryResult
}

// Failed ends a cycle with an error. Earlier SQL and results stay.
type Failed struct{ Message string }

// Rejected reports invalid input without starting a cycle.
type Rejected struct{ Message string }

// Reset clears everything.
type Reset struct{}

func (Submitted) isAction() {}
func (Succeeded) isAction() {}
func (Failed) isAction()    {}
func (Rejected) isAction()  {}
func (Reset) isAction()     {}

// Reduce returns the state that follows s after a. It never modifies s.
func Reduce(s models.ProcessingState, a Action) models.ProcessingState {
	switch a := a.(type) {
	case Submitted:
		s.Loading = true
		s.Error = ""
		s.CurrentQuery = a.Query
	case Succeeded:
		s.Loading = false
		s.Error = ""
		s.GeneratedSQL = a.SQL
		s.Result = a.Result
	case Failed:
		s.Loading = false
		s.Error = a.Message
	case Rejected:
		s.Error = a.Message
	case Reset:
		return models.ProcessingState{}
	}
	return s
}
