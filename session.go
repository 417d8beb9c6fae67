package keyterms

import (
	"context"
	"slices"
	"sync"
)

// Status names a session state.
type Status string

// Status constants for State.
const (
	StatusIdle       Status = "idle"
	StatusRequesting Status = "requesting"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// State is the observable state of a Session. It is implemented only by
// Idle, Requesting, Success and Failed.
type State interface {
	Status() Status
	state()
}

// Idle is the initial state, before any extraction was requested.
type Idle struct{}

// Requesting means a request is in flight.
type Requesting struct {
	Request ExtractionRequest
}

// Success holds the ranked terms of the latest completed request.
type Success struct {
	Results []RankedTerm
	Count   int

	// Elapsed is the service-side extraction time in seconds.
	Elapsed float64
}

// Failed holds the user-facing message of the latest failed request.
type Failed struct {
	Code    string
	Message string
}

func (Idle) Status() Status       { return StatusIdle }
func (Requesting) Status() Status { return StatusRequesting }
func (Success) Status() Status    { return StatusSuccess }
func (Failed) Status() Status     { return StatusFailed }

func (Idle) state()       {}
func (Requesting) state() {}
func (Success) state()    {}
func (Failed) state()     {}

// Session drives one user's extraction lifecycle:
// Idle -> Requesting -> Success | Failed, re-entered by every Extract.
//
// Only the latest request may change the state. A response arriving after a
// newer Extract has started is dropped, and the older request's context is
// cancelled when the newer one begins.
type Session struct {
	service KeywordService

	// OnChange, if set, is called with every committed state, in commit
	// order. It may read State and Results but must not call Extract.
	OnChange func(State)

	mu        sync.Mutex
	state     State
	token     uint64
	cancel    context.CancelFunc
	committed []RankedTerm

	notifyMu sync.Mutex
}

// NewSession returns an Idle session backed by service.
func NewSession(service KeywordService) *Session {
	return &Session{
		service: service,
		state:   Idle{},
	}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Results returns the result set exports should operate on: the current
// Success results, or while a request is in flight, the results that were
// committed before it started. It is empty in Idle and Failed.
func (s *Session) Results() []RankedTerm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.committed)
}

// Extract validates the raw input and, if valid, requests the top-N terms
// and blocks until the request resolves.
//
// Invalid input returns an EINVALID error and leaves the state untouched.
// Service and network failures are not returned; they put the session into
// Failed.
func (s *Session) Extract(ctx context.Context, rawText, rawTopN string) error {
	req, err := ParseRequest(rawText, rawTopN)
	if err != nil {
		return err
	}

	ctx, token := s.begin(ctx, req)

	ext, err := s.service.ExtractKeywords(ctx, req)
	if err != nil {
		s.commit(token, failure(err))
		return nil
	}

	results := Rank(ext.Keywords)
	s.commit(token, Success{
		Results: results,
		Count:   ext.Count,
		Elapsed: ext.ExtractionTime,
	})
	return nil
}

// begin enters Requesting and returns the request's context and token.
func (s *Session) begin(ctx context.Context, req *ExtractionRequest) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.token++
	token := s.token
	s.cancel = cancel
	s.state = Requesting{Request: *req}
	st := s.snapshot()
	s.mu.Unlock()

	s.notify(st)
	return ctx, token
}

// commit applies st if token still identifies the latest request.
func (s *Session) commit(token uint64, st State) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if token != s.token {
		s.mu.Unlock()
		return
	}

	s.cancel()
	s.cancel = nil
	s.state = st
	switch st := st.(type) {
	case Success:
		s.committed = st.Results
	case Failed:
		s.committed = nil
	}
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(snap)
}

// snapshot copies the current state. The caller must hold s.mu.
func (s *Session) snapshot() State {
	if st, ok := s.state.(Success); ok {
		st.Results = slices.Clone(st.Results)
		return st
	}
	return s.state
}

// notify delivers st to OnChange. The caller must hold notifyMu and not
// s.mu, so transitions are delivered in commit order and OnChange may read
// the session.
func (s *Session) notify(st State) {
	if s.OnChange != nil {
		s.OnChange(st)
	}
}

// failure converts a KeywordService error into a Failed state. Errors
// outside the service taxonomy are reported as EUNKNOWN.
func failure(err error) Failed {
	switch code := ErrorCode(err); code {
	case ESERVICE, ETRANSPORT, ENETWORK, EUNKNOWN:
		return Failed{Code: code, Message: ErrorMessage(err)}
	}
	return Failed{Code: EUNKNOWN, Message: UnknownErrorMessage}
}
