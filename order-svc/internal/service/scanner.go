package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ScanSession is one staff client's active camera/capture attachment. It is
// closed either explicitly or when the same client starts a new session.
type ScanSession struct {
	ID        string
	ClientID  string
	StartedAt time.Time

	closeOnce sync.Once
	done      chan struct{}
}

func (s *ScanSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Done is closed once the session has been torn down.
func (s *ScanSession) Done() <-chan struct{} {
	return s.done
}

func (s *ScanSession) Active() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// ScanSessionManager enforces at most one active verification session per
// staff client. Starting a new session always tears down the previous one
// first, so a client can never receive duplicate capture callbacks.
type ScanSessionManager struct {
	mu       sync.Mutex
	sessions map[string]*ScanSession
}

func NewScanSessionManager() *ScanSessionManager {
	return &ScanSessionManager{sessions: make(map[string]*ScanSession)}
}

func (m *ScanSessionManager) Start(clientID string) *ScanSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if previous, ok := m.sessions[clientID]; ok {
		previous.Close()
	}

	session := &ScanSession{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
	m.sessions[clientID] = session
	return session
}

func (m *ScanSessionManager) Stop(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[clientID]; ok {
		session.Close()
		delete(m.sessions, clientID)
	}
}

// Active returns the client's session if one is still attached.
func (m *ScanSessionManager) Active(clientID string) (*ScanSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[clientID]
	if !ok || !session.Active() {
		return nil, false
	}
	return session, true
}
