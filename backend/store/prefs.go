package store

import (
	"encoding/json"
	"os"
	"sync"

	"learnhub/backend/models"
)

// Storage keys, matching the client-side names.
const (
	sidebarKey = "lms.sidebar.collapsed"
	sessionKey = "lms.session.user"
)

// PrefsStore models the client-local persistent storage as a small JSON file
// of key -> raw value. All I/O is best-effort: read or write failures are
// swallowed and callers get the unpersisted baseline instead.
type PrefsStore struct {
	mu   sync.Mutex
	path string
}

func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

// SidebarCollapsed returns the persisted sidebar flag. Absence, unreadable
// state or a malformed value all default to false.
func (p *PrefsStore) SidebarCollapsed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	raw, ok := p.read()[sidebarKey]
	if !ok {
		return false
	}
	var collapsed bool
	if err := json.Unmarshal(raw, &collapsed); err != nil {
		return false
	}
	return collapsed
}

func (p *PrefsStore) SetSidebarCollapsed(collapsed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.read()
	raw, err := json.Marshal(collapsed)
	if err != nil {
		return
	}
	state[sidebarKey] = raw
	p.write(state)
}

// SaveSession persists the serialized identity under the session key.
func (p *PrefsStore) SaveSession(u *models.User) {
	if u == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.read()
	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	state[sessionKey] = raw
	p.write(state)
}

// LoadSession returns the persisted identity, or nil when absent or
// undecodable.
func (p *PrefsStore) LoadSession() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	raw, ok := p.read()[sessionKey]
	if !ok {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// ClearSession removes the persisted identity; called on logout.
func (p *PrefsStore) ClearSession() {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.read()
	delete(state, sessionKey)
	p.write(state)
}

func (p *PrefsStore) read() map[string]json.RawMessage {
	state := make(map[string]json.RawMessage)
	data, err := os.ReadFile(p.path)
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return make(map[string]json.RawMessage)
	}
	return state
}

func (p *PrefsStore) write(state map[string]json.RawMessage) {
	data, err := json.Marshal(state)
	if err != nil {
		return
	}
	_ = os.WriteFile(p.path, data, 0o644)
}
