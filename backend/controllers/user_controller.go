package controllers

import (
	"learnhub/backend/config"
	"learnhub/backend/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Cfg *config.Config
}

func NewUserController(cfg *config.Config) *UserController {
	return &UserController{Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated identity
// @Tags user
// @Produce json
// @Success 200 {object} models.User
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
