package controllers

import (
	"github.com/shashiranjanraj/dinehub/app/resources"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

type RestaurantController struct {
	service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{service: service}
}

func (h *RestaurantController) Index(c *ctx.Context) {
	page, pageSize := c.Page()
	restaurants, p, err := h.service.List(c.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.Paginated(resources.Restaurants(restaurants), p, "Restaurants retrieved successfully")
}

func (h *RestaurantController) Show(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	restaurant, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.RestaurantFrom(restaurant), "Restaurant retrieved successfully")
}

// ByOwner handles GET /api/restaurants/owner/{id}.
func (h *RestaurantController) ByOwner(c *ctx.Context) {
	ownerID, ok := idParam(c)
	if !ok {
		return
	}
	restaurant, err := h.service.ByOwner(c.Context(), c.Claims(), ownerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.RestaurantFrom(restaurant), "Restaurant retrieved successfully")
}

// ByType handles GET /api/restaurants/type/{id}.
func (h *RestaurantController) ByType(c *ctx.Context) {
	typeID, ok := idParam(c)
	if !ok {
		return
	}
	page, pageSize := c.Page()
	restaurants, p, err := h.service.ByType(c.Context(), typeID, page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.Paginated(resources.Restaurants(restaurants), p, "Restaurants retrieved successfully")
}

func (h *RestaurantController) Store(c *ctx.Context) {
	var in services.RestaurantInput
	if !c.BindJSON(&in) {
		return
	}
	restaurant, err := h.service.Create(c.Context(), c.Claims(), in)
	if err != nil {
		fail(c, err)
		return
	}
	location(c, "/api/restaurants/"+restaurant.ID.String())
	c.Created(resources.RestaurantFrom(restaurant), "Restaurant created successfully")
}

func (h *RestaurantController) Update(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.RestaurantInput
	if !c.BindJSON(&in) {
		return
	}
	if err := h.service.Update(c.Context(), c.Claims(), id, in); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}

func (h *RestaurantController) Destroy(c *ctx.Context) {
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
