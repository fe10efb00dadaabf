package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func (h *MenuController) Index(c *ctx.Context) {
	items, err := h.menu.List(c.Context())
	if err != nil {
		internalError(c, "Error fetching menu.", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
