package controllers

import (
	"errors"

	"learnhub/backend/auth"
	"learnhub/backend/config"
	"learnhub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *auth.Service
	Cfg  *config.Config
}

func NewAuthController(service *auth.Service, cfg *config.Config) *AuthController {
	return &AuthController{Auth: service, Cfg: cfg}
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	user, err := ac.Auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not log in",
		})
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// SwitchRole godoc
// @Summary Switch active role
// @Description Change the active role without logging out
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/role [post]
func (ac *AuthController) SwitchRole(c *fiber.Ctx) error {
	type RoleInput struct {
		Role string `json:"role"`
	}

	var input RoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	user, err := ac.Auth.SwitchRole(input.Role)
	if err != nil {
		if errors.Is(err, auth.ErrRoleNotAllowed) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Role not available for this user",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Auth.Logout()
	return utils.NoContent(c)
}
