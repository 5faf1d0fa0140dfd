// Package exam implements the password-gated, timed exam flow: lesson
// resolution, unlock, countdown, answer collection, grading, and the
// completion side-effects written back into the catalog.
package exam

import (
	"errors"
	"math"
	"sync"
	"time"

	"learnhub/backend/models"
	"learnhub/backend/store"
)

var (
	ErrLessonNotFound = errors.New("exam lesson not found")
	ErrNotExam        = errors.New("lesson is not an exam")
	ErrLocked         = errors.New("exam is locked")
	ErrWrongPassword  = errors.New("incorrect password, please try again")
	ErrNotStarted     = errors.New("exam is not in progress")
	ErrFinished       = errors.New("exam is already finished")
)

const defaultPassingScore = 70

type State string

const (
	StateLocked     State = "locked"
	StateUnlocked   State = "unlocked"
	StateInProgress State = "in-progress"
	StateFinished   State = "finished"
)

type Result struct {
	Score          int  `json:"score"`
	Passed         bool `json:"passed"`
	CorrectCount   int  `json:"correctCount"`
	TotalQuestions int  `json:"totalQuestions"`
}

// Session is one identity's working state for one exam lesson. Answers are
// session-scoped and discarded on cancel; nothing here is persisted. All
// methods are safe to call from the timer goroutine and request handlers
// concurrently.
type Session struct {
	mu       sync.Mutex
	catalog  *store.CatalogStore
	userID   string
	courseID string
	lessonID string

	lesson    models.Lesson
	questions []models.Question

	state     State
	answers   map[string]int
	remaining int // seconds
	interval  time.Duration
	stop      chan struct{}
	stopOnce  *sync.Once
	result    *Result
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) RemainingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) Lesson() models.Lesson {
	return s.lesson
}

// Questions returns the exam's ordered questions. Correct indices are
// excluded from serialization by the model's json tags.
func (s *Session) Questions() []models.Question {
	return s.questions
}

// Result returns the graded result once the session is finished.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// SubmitPassword attempts to unlock the exam. A mismatch leaves the session
// locked and may be retried without limit. Submitting against an already
// unlocked session is a no-op.
func (s *Session) SubmitPassword(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLocked {
		return nil
	}
	if password != s.lesson.Password {
		return ErrWrongPassword
	}
	s.state = StateUnlocked
	return nil
}

// Start begins the exam and its countdown. The countdown runs at one-second
// resolution from lesson duration (minutes), floored at zero; reaching zero
// submits automatically.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateLocked:
		return ErrLocked
	case StateInProgress:
		return nil
	case StateFinished:
		return ErrFinished
	}

	s.remaining = s.lesson.Duration * 60
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.state = StateInProgress
	s.stop = make(chan struct{})
	s.stopOnce = &sync.Once{}
	go s.runTimer(s.stop)
	return nil
}

func (s *Session) runTimer(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.tick() {
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports whether the session
// is done.
func (s *Session) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return true
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.submitLocked()
		return true
	}
	return false
}

// SelectOption records a single-select answer, overwriting any previous
// choice for the question.
func (s *Session) SelectOption(questionID string, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrNotStarted
	}
	s.answers[questionID] = optionIndex
	return nil
}

// Submit grades the exam. Submitting an already finished session returns the
// recorded result; the timer is never stopped twice.
func (s *Session) Submit() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateFinished {
		return *s.result, nil
	}
	if s.state != StateInProgress {
		return Result{}, ErrNotStarted
	}
	return s.submitLocked(), nil
}

// submitLocked stops the timer, grades, and applies the completion
// side-effects. Callers must hold the mutex.
func (s *Session) submitLocked() Result {
	s.stopTimerLocked()

	total := len(s.questions)
	denominator := total
	if denominator < 1 {
		denominator = 1
	}
	correct := 0
	for _, q := range s.questions {
		if idx, ok := s.answers[q.ID]; ok && idx == q.CorrectIndex {
			correct++
		}
	}
	score := int(math.Round(float64(correct) / float64(denominator) * 100))

	passing := s.lesson.PassingScore
	if passing == 0 {
		passing = defaultPassingScore
	}
	passed := score >= passing

	s.state = StateFinished
	s.result = &Result{
		Score:          score,
		Passed:         passed,
		CorrectCount:   correct,
		TotalQuestions: total,
	}

	if passed {
		s.catalog.MarkLessonCompleted(s.courseID, s.lessonID)
	}

	// Pass or fail, the enrollment's progress is recomputed from the course
	// structure when the identity is enrolled.
	if enrollment, ok := s.catalog.GetEnrollment(s.userID, s.courseID); ok {
		completed, lessons := s.countLessons()
		progress := 0
		if lessons > 0 {
			progress = int(math.Round(float64(completed) / float64(lessons) * 100))
		}
		s.catalog.UpdateProgress(enrollment.ID, progress, completed)
	}

	return *s.result
}

func (s *Session) countLessons() (completed, total int) {
	course, ok := s.catalog.GetCourseByID(s.courseID)
	if !ok {
		return 0, 0
	}
	for _, mod := range course.Modules {
		for _, lesson := range mod.Lessons {
			total++
			if lesson.IsCompleted {
				completed++
			}
		}
	}
	return completed, total
}

// Cancel discards in-progress answers and timer state without grading. Only
// available before the session is finished.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateFinished {
		return ErrFinished
	}
	s.stopTimerLocked()
	s.answers = make(map[string]int)
	s.remaining = 0
	if s.state == StateInProgress {
		s.state = StateUnlocked
	}
	return nil
}

// stopTimerLocked stops the countdown. Safe to call any number of times,
// including before the timer ever started.
func (s *Session) stopTimerLocked() {
	if s.stopOnce == nil {
		return
	}
	stop := s.stop
	s.stopOnce.Do(func() {
		close(stop)
	})
}
