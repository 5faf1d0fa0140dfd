package store

import (
	"fmt"
	"time"

	"learnhub/backend/models"
)

// Demo catalog, mirroring the credit-counseling curriculum the platform
// ships with.
func seedCourses() []models.Course {
	instSarah := models.Instructor{ID: "inst-1", Name: "Sarah Johnson", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah"}
	instMichael := models.Instructor{ID: "inst-2", Name: "Michael Chen", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael"}
	instDavid := models.Instructor{ID: "inst-3", Name: "David Martinez", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=David"}

	return []models.Course{
		{
			ID:            "course-1",
			Title:         "Introduction to Credit Counseling",
			Description:   "Learn the fundamentals of credit counseling, including assessment techniques, debt management plans, and client communication strategies.",
			Thumbnail:     "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=250&fit=crop",
			Category:      "Fundamentals",
			Duration:      180,
			Difficulty:    "beginner",
			Instructor:    instSarah,
			EnrolledCount: 245,
			Rating:        4.8,
			TotalLessons:  12,
			Tags:          []string{"credit", "counseling", "basics"},
			CreatedAt:     date(2024, 1, 15),
			UpdatedAt:     date(2024, 11, 1),
		},
		{
			ID:            "course-2",
			Title:         "Advanced Debt Management Strategies",
			Description:   "Master advanced techniques for creating effective debt management plans, negotiating with creditors, and handling complex financial situations.",
			Thumbnail:     "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=400&h=250&fit=crop",
			Category:      "Advanced",
			Duration:      240,
			Difficulty:    "advanced",
			Instructor:    instMichael,
			EnrolledCount: 156,
			Rating:        4.9,
			TotalLessons:  15,
			Tags:          []string{"debt", "management", "negotiation"},
			CreatedAt:     date(2024, 2, 10),
			UpdatedAt:     date(2024, 10, 15),
		},
		{
			ID:            "course-3",
			Title:         "Financial Literacy for Counselors",
			Description:   "Comprehensive training on teaching financial literacy concepts to clients, including budgeting, saving, and credit score improvement.",
			Thumbnail:     "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=400&h=250&fit=crop",
			Category:      "Professional Development",
			Duration:      150,
			Difficulty:    "intermediate",
			Instructor:    instSarah,
			EnrolledCount: 189,
			Rating:        4.7,
			TotalLessons:  10,
			Tags:          []string{"financial literacy", "teaching", "budgeting"},
			CreatedAt:     date(2024, 3, 5),
			UpdatedAt:     date(2024, 9, 20),
		},
		{
			ID:            "course-4",
			Title:         "Legal & Ethical Compliance",
			Description:   "Understanding legal requirements, ethical standards, and compliance regulations in credit counseling practice.",
			Thumbnail:     "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=400&h=250&fit=crop",
			Category:      "Compliance",
			Duration:      120,
			Difficulty:    "intermediate",
			Instructor:    instDavid,
			EnrolledCount: 198,
			Rating:        4.6,
			TotalLessons:  8,
			Tags:          []string{"legal", "ethics", "compliance"},
			CreatedAt:     date(2024, 4, 12),
			UpdatedAt:     date(2024, 10, 30),
		},
		{
			ID:            "course-5",
			Title:         "Client Communication Skills",
			Description:   "Develop effective communication techniques for counseling sessions, including active listening, empathy, and conflict resolution.",
			Thumbnail:     "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=400&h=250&fit=crop",
			Category:      "Soft Skills",
			Duration:      90,
			Difficulty:    "beginner",
			Instructor:    instMichael,
			EnrolledCount: 312,
			Rating:        4.9,
			TotalLessons:  6,
			Tags:          []string{"communication", "counseling", "soft skills"},
			CreatedAt:     date(2024, 5, 8),
			UpdatedAt:     date(2024, 11, 5),
		},
		{
			ID:            "course-6",
			Title:         "Credit Report Analysis",
			Description:   "Learn to read, interpret, and analyze credit reports from all three major bureaus. Identify errors and guide clients on dispute processes.",
			Thumbnail:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=250&fit=crop",
			Category:      "Technical Skills",
			Duration:      135,
			Difficulty:    "intermediate",
			Instructor:    instSarah,
			EnrolledCount: 223,
			Rating:        4.8,
			TotalLessons:  9,
			Tags:          []string{"credit report", "analysis", "bureaus"},
			CreatedAt:     date(2024, 6, 20),
			UpdatedAt:     date(2024, 10, 10),
		},
	}
}

func seedEnrollments() []models.Enrollment {
	return []models.Enrollment{
		{
			ID:             "enr-1",
			UserID:         "1",
			CourseID:       "course-1",
			EnrolledAt:     date(2024, 10, 1),
			Progress:       75,
			CompletedLessons: 9,
			LastAccessedAt: date(2024, 11, 8),
			Status:         models.StatusInProgress,
		},
		{
			ID:             "enr-2",
			UserID:         "1",
			CourseID:       "course-3",
			EnrolledAt:     date(2024, 10, 15),
			Progress:       40,
			CompletedLessons: 4,
			LastAccessedAt: date(2024, 11, 5),
			Status:         models.StatusInProgress,
		},
		{
			ID:                "enr-3",
			UserID:            "1",
			CourseID:          "course-5",
			EnrolledAt:        date(2024, 9, 20),
			Progress:          100,
			CompletedLessons:  6,
			LastAccessedAt:    date(2024, 10, 28),
			Status:            models.StatusCompleted,
			CertificateIssued: true,
		},
	}
}

// defaultModules builds the fallback module/lesson structure attached to a
// course the first time it is fetched without one: one content module and a
// final-exam module whose exam lesson is password-gated.
func defaultModules(courseID string) []models.Module {
	mod1 := fmt.Sprintf("%s-mod-1", courseID)
	mod2 := fmt.Sprintf("%s-mod-2", courseID)

	return []models.Module{
		{
			ID:       mod1,
			CourseID: courseID,
			Title:    "Core Material",
			Order:    1,
			Lessons: []models.Lesson{
				{
					ID:          fmt.Sprintf("%s-lesson-1", courseID),
					CourseID:    courseID,
					ModuleID:    mod1,
					Title:       "Introduction",
					Description: "Overview of the course material",
					Order:       1,
					Type:        models.LessonVideo,
					ContentURL:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
					Duration:    15,
				},
				{
					ID:          fmt.Sprintf("%s-lesson-2", courseID),
					CourseID:    courseID,
					ModuleID:    mod1,
					Title:       "Understanding Credit Reports",
					Description: "How to read and interpret credit reports",
					Order:       2,
					Type:        models.LessonVideo,
					ContentURL:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
					Duration:    20,
				},
				{
					ID:          fmt.Sprintf("%s-lesson-3", courseID),
					CourseID:    courseID,
					ModuleID:    mod1,
					Title:       "Client Assessment Techniques",
					Description: "Best practices for assessing client financial situations",
					Order:       3,
					Type:        models.LessonPDF,
					ContentURL:  "/assets/sample.pdf",
					Duration:    10,
				},
				{
					ID:          fmt.Sprintf("%s-lesson-4", courseID),
					CourseID:    courseID,
					ModuleID:    mod1,
					Title:       "Knowledge Check",
					Description: "Test your understanding of the material",
					Order:       4,
					Type:        models.LessonQuiz,
					Duration:    5,
				},
			},
		},
		{
			ID:       mod2,
			CourseID: courseID,
			Title:    "Final Assessment",
			Order:    2,
			Lessons: []models.Lesson{
				{
					ID:           fmt.Sprintf("%s-exam", courseID),
					CourseID:     courseID,
					ModuleID:     mod2,
					Title:        "Final Exam",
					Description:  "Proctored final exam covering the full course",
					Order:        1,
					Type:         models.LessonExam,
					Duration:     30,
					Password:     "secret",
					IsProctored:  true,
					PassingScore: 70,
					AllowReview:  true,
					MaxAttempts:  3,
					Questions:    defaultQuestions(courseID),
				},
			},
		},
	}
}

func defaultQuestions(courseID string) []models.Question {
	q := func(n int, prompt string, correct int, options ...string) models.Question {
		opts := make([]models.QuestionOption, len(options))
		for i, text := range options {
			opts[i] = models.QuestionOption{
				ID:        fmt.Sprintf("%s-q%d-opt%d", courseID, n, i),
				Text:      text,
				IsCorrect: i == correct,
			}
		}
		return models.Question{
			ID:           fmt.Sprintf("%s-q%d", courseID, n),
			Prompt:       prompt,
			Order:        n,
			Points:       1,
			Options:      opts,
			CorrectIndex: correct,
		}
	}

	return []models.Question{
		q(1, "What is the primary goal of a debt management plan?", 1,
			"Maximize creditor recovery",
			"Help the client repay debt on sustainable terms",
			"Eliminate the client's credit history"),
		q(2, "Which document lists a consumer's open credit accounts?", 1,
			"A bank statement",
			"A credit report",
			"A loan application"),
		q(3, "How many major credit bureaus operate in the United States?", 2,
			"One",
			"Two",
			"Three"),
		q(4, "What should a counselor establish first in a client session?", 1,
			"A repayment schedule",
			"The client's complete financial picture",
			"The creditor contact list"),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
