package controllers

import (
	"learnhub/backend/config"
	"learnhub/backend/middleware"
	"learnhub/backend/nav"
	"learnhub/backend/store"

	"github.com/gofiber/fiber/v2"
)

type NavController struct {
	Prefs *store.PrefsStore
	Cfg   *config.Config
}

func NewNavController(prefs *store.PrefsStore, cfg *config.Config) *NavController {
	return &NavController{Prefs: prefs, Cfg: cfg}
}

// GetNavigation godoc
// @Summary Get navigation entries
// @Description Returns the sidebar entries visible to the active role
// @Tags navigation
// @Produce json
// @Success 200 {array} models.NavItem
// @Security ApiKeyAuth
// @Router /navigation [get]
func (nc *NavController) GetNavigation(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(nav.Visible(user, nav.Items()))
}

func (nc *NavController) GetSidebar(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"collapsed": nc.Prefs.SidebarCollapsed(),
	})
}

func (nc *NavController) SetSidebar(c *fiber.Ctx) error {
	type SidebarInput struct {
		Collapsed bool `json:"collapsed"`
	}

	var input SidebarInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	nc.Prefs.SetSidebarCollapsed(input.Collapsed)
	return c.JSON(fiber.Map{
		"collapsed": input.Collapsed,
	})
}
