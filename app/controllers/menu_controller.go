package controllers

import (
	"github.com/shashiranjanraj/dinehub/app/resources"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

func (h *MenuController) Index(c *ctx.Context) {
	page, pageSize := c.Page()
	menus, p, err := h.service.List(c.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.Paginated(resources.Menus(menus), p, "Menus retrieved successfully")
}

func (h *MenuController) Show(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	menu, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.MenuFrom(menu), "Menu retrieved successfully")
}

// ByRestaurant handles GET /api/menus/restaurant/{id}.
func (h *MenuController) ByRestaurant(c *ctx.Context) {
	restaurantID, ok := idParam(c)
	if !ok {
		return
	}
	menus, err := h.service.ByRestaurant(c.Context(), restaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.Menus(menus), "Menus retrieved successfully")
}

func (h *MenuController) Store(c *ctx.Context) {
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}
	menu, err := h.service.Create(c.Context(), c.Claims(), in)
	if err != nil {
		fail(c, err)
		return
	}
	location(c, "/api/menus/"+menu.ID.String())
	c.Created(resources.MenuFrom(menu), "Menu created successfully")
}

func (h *MenuController) Update(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}
	if err := h.service.Update(c.Context(), c.Claims(), id, in); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}

func (h *MenuController) Destroy(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Context(), c.Claims(), id); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}
