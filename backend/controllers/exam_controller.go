package controllers

import (
	"errors"

	"learnhub/backend/config"
	"learnhub/backend/exam"
	"learnhub/backend/middleware"
	"learnhub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ExamController struct {
	Exams *exam.Manager
	Cfg   *config.Config
}

func NewExamController(exams *exam.Manager, cfg *config.Config) *ExamController {
	return &ExamController{Exams: exams, Cfg: cfg}
}

// open resolves the session for the route's exam lesson. An invalid course
// or lesson id is fatal for this view and answered with a redirect back to
// the course detail page.
func (ec *ExamController) open(c *fiber.Ctx) (*exam.Session, error) {
	user := middleware.CurrentUser(c)

	session, err := ec.Exams.Open(user.ID, c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return nil, c.Redirect("/courses/"+c.Params("id"), fiber.StatusSeeOther)
	}
	return session, nil
}

func (ec *ExamController) GetExam(c *fiber.Ctx) error {
	session, err := ec.open(c)
	if session == nil {
		return err
	}

	lesson := session.Lesson()
	state := session.State()

	result := fiber.Map{
		"state":     state,
		"remaining": session.RemainingSeconds(),
		"lesson":    lesson,
	}
	if state != exam.StateLocked {
		result["questions"] = session.Questions()
	}
	if graded, ok := session.Result(); ok {
		result["result"] = graded
	}

	return c.JSON(result)
}

// Unlock checks the exam password. A mismatch keeps the exam locked and may
// be retried without limit.
func (ec *ExamController) Unlock(c *fiber.Ctx) error {
	session, err := ec.open(c)
	if session == nil {
		return err
	}

	type PasswordInput struct {
		Password string `json:"password"`
	}

	var input PasswordInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := session.SubmitPassword(input.Password); err != nil {
		return utils.Unauthorized(c, "Incorrect password. Please try again.")
	}

	return c.JSON(fiber.Map{
		"state": session.State(),
	})
}

func (ec *ExamController) Start(c *fiber.Ctx) error {
	session, err := ec.open(c)
	if session == nil {
		return err
	}

	if err := session.Start(); err != nil {
		if errors.Is(err, exam.ErrLocked) {
			return utils.Forbidden(c, "Exam is locked")
		}
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"state":     session.State(),
		"remaining": session.RemainingSeconds(),
		"questions": session.Questions(),
	})
}

func (ec *ExamController) Answer(c *fiber.Ctx) error {
	session, err := ec.open(c)
	if session == nil {
		return err
	}

	type AnswerInput struct {
		QuestionID  string `json:"questionId"`
		OptionIndex int    `json:"optionIndex"`
	}

	var input AnswerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := session.SelectOption(input.QuestionID, input.OptionIndex); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.NoContent(c)
}

func (ec *ExamController) Submit(c *fiber.Ctx) error {
	session, err := ec.open(c)
	if session == nil {
		return err
	}

	result, err := session.Submit()
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"state":  session.State(),
		"result": result,
	})
}

// Cancel discards the working exam state and sends the client back to the
// course detail view. Nothing is graded.
func (ec *ExamController) Cancel(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := ec.Exams.Cancel(user.ID, c.Params("id"), c.Params("lessonId")); err != nil {
		if errors.Is(err, exam.ErrFinished) {
			return utils.BadRequest(c, "Exam is already graded")
		}
	}

	return c.Redirect("/courses/"+c.Params("id"), fiber.StatusSeeOther)
}
