package models

import "time"

type Question struct {
	ID           string           `json:"id"`
	Prompt       string           `json:"prompt"`
	Order        int              `json:"order"`
	Points       int              `json:"points"`
	Options      []QuestionOption `json:"options"`
	CorrectIndex int              `json:"-"` // never serialized to clients
}

type QuestionOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"-"`
}

// QuizAttempt and friends are pass-through records: carried by the data model
// but not exercised by the exam flow, which keeps its working answers in a
// session-scoped map instead.
type QuizAttempt struct {
	ID          string       `json:"id"`
	QuizID      string       `json:"quizId"`
	UserID      string       `json:"userId"`
	StartedAt   time.Time    `json:"startedAt"`
	SubmittedAt *time.Time   `json:"submittedAt,omitempty"`
	Score       int          `json:"score,omitempty"`
	Passed      bool         `json:"passed,omitempty"`
	Answers     []QuizAnswer `json:"answers,omitempty"`
	TimeSpent   int          `json:"timeSpent,omitempty"` // seconds
}

type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect,omitempty"`
	PointsEarned   int    `json:"pointsEarned,omitempty"`
}

type AssignmentSubmission struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignmentId"`
	UserID       string     `json:"userId"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Content      string     `json:"content,omitempty"`
	FileURL      string     `json:"fileUrl,omitempty"`
	Status       string     `json:"status"` // submitted, graded, returned
	Grade        int        `json:"grade,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	GradedBy     string     `json:"gradedBy,omitempty"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"`
}

type Certificate struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	CourseID          string     `json:"courseId"`
	IssuedAt          time.Time  `json:"issuedAt"`
	CertificateNumber string     `json:"certificateNumber"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
}
