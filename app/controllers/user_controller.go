package controllers

import (
	"github.com/shashiranjanraj/dinehub/app/resources"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Index lists accounts; the route is admin-only.
func (h *UserController) Index(c *ctx.Context) {
	page, pageSize := c.Page()
	users, p, err := h.service.List(c.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.Paginated(resources.Users(users), p, "Users retrieved successfully")
}

// Me returns the caller's own account.
func (h *UserController) Me(c *ctx.Context) {
	user, err := h.service.Me(c.Context(), c.Claims())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(resources.UserFrom(user), "User retrieved successfully")
}

func (h *UserController) Update(c *ctx.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.UpdateUserInput
	if !c.BindJSON(&in) {
		return
	}
	if err := h.service.Update(c.Context(), c.Claims(), id, in); err != nil {
		fail(c, err)
		return
	}
	c.NoContent()
}
