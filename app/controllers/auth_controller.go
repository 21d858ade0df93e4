package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

// AuthController answers with bare JSON objects rather than the envelope.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST /auth/register.
func (h *AuthController) Register(c *ctx.Context) {
	var in services.RegisterInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := h.service.Register(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	location(c, "/auth/"+id.String())
	c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
}

// Login handles POST /auth/login.
func (h *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	token, err := h.service.Login(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
