package models

import "time"

// Enrollment status values, derived from progress.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Lesson types.
const (
	LessonVideo      = "video"
	LessonPDF        = "pdf"
	LessonQuiz       = "quiz"
	LessonAssignment = "assignment"
	LessonExam       = "exam"
	LessonWebinar    = "webinar"
	LessonCaseStudy  = "case-study"
	LessonKeywords   = "keywords"
)

type Instructor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Course struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Thumbnail     string     `json:"thumbnail,omitempty"`
	Category      string     `json:"category"`
	Duration      int        `json:"duration"` // minutes
	Difficulty    string     `json:"difficulty"` // beginner, intermediate, advanced
	Instructor    Instructor `json:"instructor"`
	EnrolledCount int        `json:"enrolledCount"`
	Rating        float64    `json:"rating"`
	TotalLessons  int        `json:"totalLessons"`
	Tags          []string   `json:"tags,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Modules       []Module   `json:"modules,omitempty"`
}

type Module struct {
	ID          string   `json:"id"`
	CourseID    string   `json:"courseId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Order       int      `json:"order"`
	Lessons     []Lesson `json:"lessons"`
	IsExpanded  bool     `json:"isExpanded,omitempty"` // UI state only
}

type Lesson struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId,omitempty"`
	ModuleID    string `json:"moduleId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Type        string `json:"type"`
	ContentURL  string `json:"contentUrl,omitempty"`
	Content     string `json:"content,omitempty"`
	Duration    int    `json:"duration,omitempty"` // minutes; drives the exam countdown
	IsCompleted bool   `json:"isCompleted"`        // monotonic: never reset by normal flows
	IsLocked    bool   `json:"isLocked,omitempty"`

	// Exam-only fields, present when Type == "exam".
	Password         string     `json:"-"`
	IsProctored      bool       `json:"isProctored,omitempty"`
	PassingScore     int        `json:"passingScore,omitempty"` // percent; 0 means default (70)
	ShuffleQuestions bool       `json:"shuffleQuestions,omitempty"`
	AllowReview      bool       `json:"allowReview,omitempty"`
	MaxAttempts      int        `json:"maxAttempts,omitempty"`
	Questions        []Question `json:"-"`
}

type Enrollment struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	CourseID          string    `json:"courseId"`
	EnrolledAt        time.Time `json:"enrolledAt"`
	Progress          int       `json:"progress"` // 0-100
	CompletedLessons  int       `json:"completedLessons"`
	LastAccessedAt    time.Time `json:"lastAccessedAt"`
	Status            string    `json:"status"` // not-started, in-progress, completed
	CertificateIssued bool      `json:"certificateIssued,omitempty"`
}

// StatusForProgress derives enrollment status after a progress update.
// A fresh enrollment starts as not-started; any update moves it to
// in-progress until it reaches 100.
func StatusForProgress(progress int) string {
	if progress >= 100 {
		return StatusCompleted
	}
	return StatusInProgress
}
