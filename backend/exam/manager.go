package exam

import (
	"strings"
	"sync"
	"time"

	"learnhub/backend/models"
	"learnhub/backend/store"
)

// Manager hands out exam sessions keyed by (user, course, lesson) and owns
// their lifecycle. Each session owns at most one outstanding countdown timer
// at a time.
type Manager struct {
	catalog  *store.CatalogStore
	interval time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(catalog *store.CatalogStore) *Manager {
	return &Manager{
		catalog:  catalog,
		interval: time.Second,
		sessions: make(map[string]*Session),
	}
}

// Open resolves the exam lesson and returns the session for it, creating one
// when none exists. The lesson is resolved by scanning the course's modules;
// a missing lesson or a non-exam type aborts with an error the caller turns
// into a redirect.
func (m *Manager) Open(userID, courseID, lessonID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(userID, courseID, lessonID)
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}

	lesson, ok := m.catalog.GetLesson(courseID, lessonID)
	if !ok {
		return nil, ErrLessonNotFound
	}
	if lesson.Type != models.LessonExam {
		return nil, ErrNotExam
	}

	state := StateUnlocked
	if lesson.Password != "" {
		state = StateLocked
	}

	s := &Session{
		catalog:   m.catalog,
		userID:    userID,
		courseID:  courseID,
		lessonID:  lessonID,
		lesson:    lesson,
		questions: lesson.Questions,
		state:     state,
		answers:   make(map[string]int),
		interval:  m.interval,
	}
	m.sessions[key] = s
	return s, nil
}

// Get returns an existing session without creating one.
func (m *Manager) Get(userID, courseID, lessonID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionKey(userID, courseID, lessonID)]
	return s, ok
}

// Cancel discards a session's working state and removes it, returning
// control to the course detail view. Finished sessions stay around so their
// result remains readable.
func (m *Manager) Cancel(userID, courseID, lessonID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(userID, courseID, lessonID)
	s, ok := m.sessions[key]
	if !ok {
		return ErrLessonNotFound
	}
	if err := s.Cancel(); err != nil {
		return err
	}
	delete(m.sessions, key)
	return nil
}

func sessionKey(userID, courseID, lessonID string) string {
	return strings.Join([]string{userID, courseID, lessonID}, "|")
}
