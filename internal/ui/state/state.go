package state

import (
	"strings"

	"colorsearch/internal/domain"
)

// Status names the phase of the search interaction
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Phase is one of Idle, Loading, Loaded or Failed. Each variant carries only
// the data valid in that phase, so a loading phase can never hold a stale
// error or result set.
type Phase interface {
	Status() Status
	isPhase()
}

// Idle is the phase before the first submission
type Idle struct{}

// Loading is the phase while RequestID is in flight
type Loading struct {
	RequestID uint64
	Query     string // trimmed query sent to the service
}

// Loaded holds the records returned for the last request
type Loaded struct {
	Results []domain.MatchRecord
}

// Failed holds the message of the last failed request
type Failed struct {
	Message string
}

func (Idle) Status() Status    { return StatusIdle }
func (Loading) Status() Status { return StatusLoading }
func (Loaded) Status() Status  { return StatusLoaded }
func (Failed) Status() Status  { return StatusError }

func (Idle) isPhase()    {}
func (Loading) isPhase() {}
func (Loaded) isPhase()  {}
func (Failed) isPhase()  {}

// SearchState is the complete local state of the search form. It is owned by
// a single model and mutated only through the methods below.
type SearchState struct {
	query       string
	phase       Phase
	hasSearched bool
}

// NewSearchState creates the initial state
func NewSearchState() *SearchState {
	return &SearchState{phase: Idle{}}
}

// Query returns the live input value
func (s *SearchState) Query() string { return s.query }

// Phase returns the current phase
func (s *SearchState) Phase() Phase { return s.phase }

// Status returns the status of the current phase
func (s *SearchState) Status() Status { return s.phase.Status() }

// HasSearched reports whether a submission has ever been made. It never
// resets.
func (s *SearchState) HasSearched() bool { return s.hasSearched }

// Results returns the records to render. Only the Loaded phase has any.
func (s *SearchState) Results() []domain.MatchRecord {
	if p, ok := s.phase.(Loaded); ok {
		return p.Results
	}
	return nil
}

// ErrorMessage returns the failure message, if the last request failed
func (s *SearchState) ErrorMessage() (string, bool) {
	if p, ok := s.phase.(Failed); ok {
		return p.Message, true
	}
	return "", false
}

// PendingRequest returns the id of the in-flight request
func (s *SearchState) PendingRequest() (uint64, bool) {
	if p, ok := s.phase.(Loading); ok {
		return p.RequestID, true
	}
	return 0, false
}

// SetQuery stores the input value. No validation, no side effects.
func (s *SearchState) SetQuery(value string) {
	s.query = value
}

// Begin starts a submission tagged with requestID. It returns the trimmed
// query to send, or false when the query is blank, in which case the state
// is left untouched.
func (s *SearchState) Begin(requestID uint64) (string, bool) {
	trimmed := strings.TrimSpace(s.query)
	if trimmed == "" {
		return "", false
	}
	s.phase = Loading{RequestID: requestID, Query: trimmed}
	s.hasSearched = true
	return trimmed, true
}

// Resolve completes requestID with records. Responses for any request other
// than the one in flight are ignored and false is returned.
func (s *SearchState) Resolve(requestID uint64, records []domain.MatchRecord) bool {
	if !s.isCurrent(requestID) {
		return false
	}
	if records == nil {
		records = []domain.MatchRecord{}
	}
	s.phase = Loaded{Results: records}
	return true
}

// Fail completes requestID with an error message. Same staleness rule as
// Resolve.
func (s *SearchState) Fail(requestID uint64, message string) bool {
	if !s.isCurrent(requestID) {
		return false
	}
	s.phase = Failed{Message: message}
	return true
}

func (s *SearchState) isCurrent(requestID uint64) bool {
	pending, ok := s.PendingRequest()
	return ok && pending == requestID
}
