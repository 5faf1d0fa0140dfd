package store

import (
	"fmt"
	"sync"
	"time"

	"learnhub/backend/models"
)

// CatalogStore owns the in-memory course catalog and enrollment records.
// Every read hands out deep copies and every mutation replaces whole values
// under the lock, so readers never observe a partially updated collection.
// All mutations serialize through this single store; there is no other
// writer.
type CatalogStore struct {
	mu          sync.RWMutex
	courses     []models.Course
	enrollments []models.Enrollment
}

// NewCatalogStore returns a store pre-populated with the demo catalog and
// enrollments.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		courses:     seedCourses(),
		enrollments: seedEnrollments(),
	}
}

// Courses lists the full catalog.
func (s *CatalogStore) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	for i := range s.courses {
		out[i] = cloneCourse(s.courses[i])
	}
	return out
}

// GetCourseByID returns a course, lazily attaching the default module and
// lesson structure when the course has none. The seeded structure is written
// back so repeated lookups see the same lesson ids.
func (s *CatalogStore) GetCourseByID(id string) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		if len(s.courses[i].Modules) == 0 {
			updated := cloneCourse(s.courses[i])
			updated.Modules = defaultModules(id)
			s.replaceCourseLocked(i, updated)
		}
		return cloneCourse(s.courses[i]), true
	}
	return models.Course{}, false
}

// GetLesson resolves a lesson by scanning the course's modules.
func (s *CatalogStore) GetLesson(courseID, lessonID string) (models.Lesson, bool) {
	course, ok := s.GetCourseByID(courseID)
	if !ok {
		return models.Lesson{}, false
	}
	for _, mod := range course.Modules {
		for _, lesson := range mod.Lessons {
			if lesson.ID == lessonID {
				return lesson, true
			}
		}
	}
	return models.Lesson{}, false
}

// QuestionsForLesson returns the ordered question list carried by an exam
// lesson. Missing lessons yield an empty list.
func (s *CatalogStore) QuestionsForLesson(courseID, lessonID string) []models.Question {
	lesson, ok := s.GetLesson(courseID, lessonID)
	if !ok {
		return nil
	}
	return lesson.Questions
}

// UserEnrollments lists a user's enrollment records.
func (s *CatalogStore) UserEnrollments(userID string) []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// UserCourses joins a user's enrollments to the catalog.
func (s *CatalogStore) UserCourses(userID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrolled := make(map[string]bool)
	for _, e := range s.enrollments {
		if e.UserID == userID {
			enrolled[e.CourseID] = true
		}
	}

	var out []models.Course
	for i := range s.courses {
		if enrolled[s.courses[i].ID] {
			out = append(out, cloneCourse(s.courses[i]))
		}
	}
	return out
}

// GetEnrollment finds the enrollment for a (user, course) pair.
func (s *CatalogStore) GetEnrollment(userID, courseID string) (models.Enrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, true
		}
	}
	return models.Enrollment{}, false
}

// Enroll creates a fresh enrollment record. Enrolling twice in the same
// course creates two records; uniqueness on (user, course) is not enforced
// here, matching the upstream behavior.
func (s *CatalogStore) Enroll(userID, courseID string) models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	enrollment := models.Enrollment{
		ID:             newID("enr"),
		UserID:         userID,
		CourseID:       courseID,
		EnrolledAt:     now,
		Progress:       0,
		LastAccessedAt: now,
		Status:         models.StatusNotStarted,
	}

	next := make([]models.Enrollment, 0, len(s.enrollments)+1)
	next = append(next, s.enrollments...)
	next = append(next, enrollment)
	s.enrollments = next
	return enrollment
}

// UpdateProgress overwrites an enrollment's progress fields and recomputes
// its status from the new progress value.
func (s *CatalogStore) UpdateProgress(enrollmentID string, progress, completedLessons int) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.enrollments {
		if e.ID != enrollmentID {
			continue
		}
		e.Progress = progress
		e.CompletedLessons = completedLessons
		e.LastAccessedAt = time.Now()
		e.Status = models.StatusForProgress(progress)

		next := append([]models.Enrollment(nil), s.enrollments...)
		next[i] = e
		s.enrollments = next
		return e, true
	}
	return models.Enrollment{}, false
}

// AddCourse inserts a new course with generated id and timestamps.
func (s *CatalogStore) AddCourse(course models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	course.ID = newID("course")
	course.EnrolledCount = 0
	course.Rating = 0
	course.CreatedAt = now
	course.UpdatedAt = now

	next := make([]models.Course, 0, len(s.courses)+1)
	next = append(next, s.courses...)
	next = append(next, course)
	s.courses = next
	return cloneCourse(course)
}

// UpdateCourse applies a mutation to a course and refreshes its UpdatedAt
// timestamp.
func (s *CatalogStore) UpdateCourse(id string, mutate func(*models.Course)) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		updated := cloneCourse(s.courses[i])
		mutate(&updated)
		updated.ID = id
		updated.UpdatedAt = time.Now()
		s.replaceCourseLocked(i, updated)
		return cloneCourse(updated), true
	}
	return models.Course{}, false
}

// DeleteCourse removes a course from the catalog. Enrollment records are
// never deleted in-session.
func (s *CatalogStore) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Course, 0, len(s.courses))
	found := false
	for i := range s.courses {
		if s.courses[i].ID == id {
			found = true
			continue
		}
		next = append(next, s.courses[i])
	}
	s.courses = next
	return found
}

// MarkLessonCompleted sets a lesson's completion flag. Completion is
// monotonic: this never resets a lesson back to incomplete.
func (s *CatalogStore) MarkLessonCompleted(courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != courseID {
			continue
		}
		updated := cloneCourse(s.courses[i])
		for mi := range updated.Modules {
			for li := range updated.Modules[mi].Lessons {
				if updated.Modules[mi].Lessons[li].ID == lessonID {
					updated.Modules[mi].Lessons[li].IsCompleted = true
					s.replaceCourseLocked(i, updated)
					return true
				}
			}
		}
		return false
	}
	return false
}

// replaceCourseLocked publishes a new course slice with index i swapped out.
// Callers must hold the write lock.
func (s *CatalogStore) replaceCourseLocked(i int, course models.Course) {
	next := append([]models.Course(nil), s.courses...)
	next[i] = course
	s.courses = next
}

// newID derives identifiers from the wall clock. Unique as long as two
// creations do not land on the same nanosecond tick, which is fine for
// single-user local use.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func cloneCourse(c models.Course) models.Course {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	if c.Modules != nil {
		out.Modules = make([]models.Module, len(c.Modules))
		for i := range c.Modules {
			out.Modules[i] = cloneModule(c.Modules[i])
		}
	}
	return out
}

func cloneModule(m models.Module) models.Module {
	out := m
	if m.Lessons != nil {
		out.Lessons = make([]models.Lesson, len(m.Lessons))
		for i := range m.Lessons {
			out.Lessons[i] = cloneLesson(m.Lessons[i])
		}
	}
	return out
}

func cloneLesson(l models.Lesson) models.Lesson {
	out := l
	if l.Questions != nil {
		out.Questions = make([]models.Question, len(l.Questions))
		for i := range l.Questions {
			q := l.Questions[i]
			q.Options = append([]models.QuestionOption(nil), q.Options...)
			out.Questions[i] = q
		}
	}
	return out
}
