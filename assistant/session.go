package assistant

import (
	"sync"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/models"
)

const (
	DefaultReplyDelay = 600 * time.Millisecond
	DefaultIdleDelay  = time.Minute
	DefaultSessionTTL = 30 * time.Minute
)

// SessionConfig tunes the simulated typing delay and the inactivity
// timeout before a proactive message. Zero ReplyDelay answers at once; zero
// IdleDelay disables proactive messages.
//
// TTL is how long a registry keeps a session nobody has asked for. Zero
// keeps sessions until they are removed.
type SessionConfig struct {
	ReplyDelay time.Duration
	IdleDelay  time.Duration
	TTL        time.Duration
}

// InitialState is the window state of a conversation that has not started.
func InitialState() models.ChatState {
	return models.ChatState{ShowingCategories: true}
}

// Session is one visitor's chat: the transcript plus the open,
// showingCategories and recording facets. Facets are independent; every
// setter is idempotent. Opening and starting to record also post a
// message, so the transcript order follows the order of the calls.
//
// Replies scheduled with Say land after ReplyDelay. Close cancels them so a
// torn-down transcript is never written to.
type Session struct {
	ID string

	mu         sync.Mutex
	cfg        SessionConfig
	state      models.ChatState
	transcript []models.ChatMessage
	greeted    bool
	closed     bool
	path       string
	pending    map[*time.Timer]struct{}
	idle       *time.Timer
	expiry     *time.Timer
	expire     func()
	now        func() time.Time
}

func NewSession(id string, cfg SessionConfig) *Session {
	return &Session{
		ID:      id,
		cfg:     cfg,
		state:   InitialState(),
		pending: make(map[*time.Timer]struct{}),
		now:     time.Now,
	}
}

// SetOpen opens or hides the chat window. The greeting is added on the
// first open only.
func (s *Session) SetOpen(open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	s.state.Open = open
	if open && !s.greeted {
		s.greeted = true
		s.appendLocked(models.SenderAssistant, Greeting)
	}
	return nil
}

func (s *Session) SetShowingCategories(showing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	s.state.ShowingCategories = showing
	return nil
}

// SetRecording toggles voice input. Starting to record adds the listening
// prompt.
func (s *Session) SetRecording(recording bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	if recording && !s.state.Recording {
		s.appendLocked(models.SenderAssistant, ListeningPrompt)
	}
	s.state.Recording = recording
	return nil
}

// ToggleCategory expands a menu heading, or collapses it when it is
// already the active one.
func (s *Session) ToggleCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	if s.state.ActiveCategory == name {
		s.state.ActiveCategory = ""
	} else {
		s.state.ActiveCategory = name
	}
	return nil
}

// Apply sets every facet present in req.
func (s *Session) Apply(req models.UpdateChatStateRequest) error {
	if req.Open != nil {
		if err := s.SetOpen(*req.Open); err != nil {
			return err
		}
	}
	if req.ShowingCategories != nil {
		if err := s.SetShowingCategories(*req.ShowingCategories); err != nil {
			return err
		}
	}
	if req.Recording != nil {
		if err := s.SetRecording(*req.Recording); err != nil {
			return err
		}
	}
	if req.ActiveCategory != nil {
		if err := s.ToggleCategory(*req.ActiveCategory); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) State() models.ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the messages so far.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// AppendUser records a visitor message and hides the category menu.
func (s *Session) AppendUser(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	s.state.ShowingCategories = false
	s.appendLocked(models.SenderUser, text)
	return nil
}

// Say appends an assistant reply after the configured delay. pending is
// true when the reply has not landed yet.
func (s *Session) Say(text string) (pending bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, models.ErrSessionClosed
	}
	if s.cfg.ReplyDelay <= 0 {
		s.appendLocked(models.SenderAssistant, text)
		return false, nil
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.cfg.ReplyDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pending, timer)
		if s.closed {
			return
		}
		s.appendLocked(models.SenderAssistant, text)
	})
	s.pending[timer] = struct{}{}
	return true, nil
}

// Pending is the number of replies still waiting on their delay.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Touch records activity on path and restarts the inactivity timer.
func (s *Session) Touch(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.path = path
	if s.cfg.IdleDelay <= 0 {
		return
	}
	if s.idle != nil {
		s.idle.Stop()
	}
	s.idle = time.AfterFunc(s.cfg.IdleDelay, s.nudge)
}

// nudge posts the proactive message unless the assistant spoke last or the
// window is hidden.
func (s *Session) nudge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.state.Open {
		return
	}
	if n := len(s.transcript); n > 0 && s.transcript[n-1].Sender == models.SenderAssistant {
		return
	}
	s.appendLocked(models.SenderAssistant, ProactiveMessage(s.path))
}

// Close tears the session down and cancels every pending reply. It is safe
// to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for timer := range s.pending {
		timer.Stop()
		delete(s.pending, timer)
	}
	if s.idle != nil {
		s.idle.Stop()
	}
	if s.expiry != nil {
		s.expiry.Stop()
	}
}

// extend restarts the eviction countdown.
func (s *Session) extend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.expire == nil || s.cfg.TTL <= 0 {
		return
	}
	if s.expiry != nil {
		s.expiry.Stop()
	}
	s.expiry = time.AfterFunc(s.cfg.TTL, s.expire)
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) appendLocked(sender models.Sender, text string) {
	s.transcript = append(s.transcript, models.ChatMessage{
		Sender:    sender,
		Text:      text,
		Timestamp: s.now(),
	})
}

// SessionRegistry hands out one Session per visitor id. A session that
// goes TTL without being fetched is closed and forgotten.
type SessionRegistry struct {
	mu       sync.RWMutex
	cfg      SessionConfig
	sessions map[string]*Session
}

func NewSessionRegistry(cfg SessionConfig) *SessionRegistry {
	return &SessionRegistry{cfg: cfg, sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use.
func (r *SessionRegistry) Get(id string) *Session {
	if s, ok := r.Lookup(id); ok {
		return s
	}

	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = NewSession(id, r.cfg)
		s.expire = func() { r.evict(id, s) }
		r.sessions[id] = s
	}
	r.mu.Unlock()
	s.extend()
	return s
}

// Lookup returns the session for id without creating one.
func (r *SessionRegistry) Lookup(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.extend()
	}
	return s, ok
}

// evict drops s unless id has since been handed a newer session.
func (r *SessionRegistry) evict(id string, s *Session) {
	r.mu.Lock()
	if r.sessions[id] == s {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	s.Close()
}

// Remove closes and forgets the session for id.
func (r *SessionRegistry) Remove(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

// CloseAll tears down every session, used on shutdown.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
