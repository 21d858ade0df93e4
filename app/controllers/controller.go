// Package controllers holds the HTTP handlers. Each one decodes the
// request, calls a service and shapes the result with app/resources.
package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
)

// fail writes err as a failure envelope. Service errors keep their message;
// anything else is logged and hidden behind a 500.
func fail(c *ctx.Context, err error) {
	var se *services.Error
	if !errors.As(err, &se) {
		c.Log().Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	c.Error(statusOf(se.Kind), se.Message)
}

func statusOf(kind error) int {
	switch kind {
	case services.ErrBadRequest:
		return http.StatusBadRequest
	case services.ErrUnauthorized:
		return http.StatusUnauthorized
	case services.ErrForbidden:
		return http.StatusForbidden
	case services.ErrNotFound:
		return http.StatusNotFound
	case services.ErrConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// idParam reads the {id} path value. A malformed id answers 404.
func idParam(c *ctx.Context) (uuid.UUID, bool) {
	id, ok := c.UUIDParam("id")
	if !ok {
		c.NotFound()
	}
	return id, ok
}

func location(c *ctx.Context, path string) {
	c.W.Header().Set("Location", path)
}

// Home handles GET /.
func Home(c *ctx.Context) {
	c.JSON(http.StatusOK, map[string]string{"message": "The api is running"})
}
