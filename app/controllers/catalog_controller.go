package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/dinehub/app/resources"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

// RestaurantTypeController answers with bare objects, like the auth
// endpoints.
type RestaurantTypeController struct {
	service *services.RestaurantTypeService
}

func NewRestaurantTypeController(service *services.RestaurantTypeService) *RestaurantTypeController {
	return &RestaurantTypeController{service: service}
}

func (h *RestaurantTypeController) Index(c *ctx.Context) {
	types, err := h.service.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resources.RestaurantTypes(types))
}

func (h *RestaurantTypeController) Show(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resources.RestaurantTypeFrom(t))
}

func (h *RestaurantTypeController) Store(c *ctx.Context) {
	var in services.RestaurantTypeInput
	if !c.BindJSON(&in) {
		return
	}
	t, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	location(c, "/api/restauranttypes/"+t.ID.String())
	c.JSON(http.StatusCreated, resources.RestaurantTypeFrom(t))
}

func (h *RestaurantTypeController) Update(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.RestaurantTypeInput
	if !c.BindJSON(&in) {
		return
	}
	if err := h.service.Update(c.Context(), id, in); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}

func (h *RestaurantTypeController) Destroy(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}

type MenuCategoryController struct {
	service *services.MenuCategoryService
}

func NewMenuCategoryController(service *services.MenuCategoryService) *MenuCategoryController {
	return &MenuCategoryController{service: service}
}

func (h *MenuCategoryController) Index(c *ctx.Context) {
	categories, err := h.service.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.MenuCategories(categories), "Menu categories retrieved successfully")
}

func (h *MenuCategoryController) Show(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.MenuCategoryFrom(category), "Menu category retrieved successfully")
}

func (h *MenuCategoryController) Store(c *ctx.Context) {
	var in services.CreateMenuCategoryInput
	if !c.BindJSON(&in) {
		return
	}
	category, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	location(c, "/api/menucategories/"+category.ID.String())
	c.Created(resources.MenuCategoryFrom(category), "Menu category created successfully")
}

func (h *MenuCategoryController) Update(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.UpdateMenuCategoryInput
	if !c.BindJSON(&in) {
		return
	}
	if err := h.service.Update(c.Context(), id, in); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}

func (h *MenuCategoryController) Destroy(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}
