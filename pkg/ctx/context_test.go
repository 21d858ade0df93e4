package ctx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	appctx "github.com/shashiranjanraj/dinehub/pkg/ctx"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"github.com/stretchr/testify/assert"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.Success(map[string]any{"id": 1}, "")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1},"success":true}`, rec.Body.String())
}

func TestPaginatedKeepsDataAnArray(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.Paginated([]string{"a"}, orm.Pagination{Page: 1, PageSize: 20, Total: 1, TotalPages: 1}, "")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.JSONEq(t, `{"data":["a"],"success":true,"meta":{"page":1,"pageSize":20,"total":1,"totalPages":1}}`, rec.Body.String())
}

func TestPageClamping(t *testing.T) {
	cases := map[string][2]int{
		"/":                       {1, 20},
		"/?page=0&pageSize=0":     {1, 20},
		"/?page=3&pageSize=500":   {3, 100},
		"/?page=-2&pageSize=-9":   {1, 1},
		"/?page=abc&pageSize=xyz": {1, 20},
	}
	for target, want := range cases {
		appctx.Wrap(func(c *appctx.Context) {
			page, size := c.Page()
			assert.Equal(t, want, [2]int{page, size}, target)
		})(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
}

func TestUUIDParam(t *testing.T) {
	r := chi.NewRouter()
	var got uuid.UUID
	var ok bool
	r.Get("/menus/{id}", appctx.Wrap(func(c *appctx.Context) {
		got, ok = c.UUIDParam("id")
	}))

	id := uuid.New()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menus/"+id.String(), nil))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menus/not-a-uuid", nil))
	assert.False(t, ok)
}

func TestBindJSONInvalidIs400(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  "}`))

	appctx.Wrap(func(c *appctx.Context) {
		var input struct {
			Name string `json:"name" validate:"required"`
		}
		assert.False(t, c.BindJSON(&input))
	})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"The name field is required."`)
}

func TestClaimsAccessors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	claims := &auth.Claims{Username: "alice"}
	claims.Subject = "acc-9"
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))

	appctx.Wrap(func(c *appctx.Context) {
		assert.Equal(t, "acc-9", c.UserID())
		assert.Equal(t, "alice", c.Claims().Username)
		c.Set("restaurant", "r-1")
		v, ok := c.Get("restaurant")
		assert.True(t, ok)
		assert.Equal(t, "r-1", v)
	})(httptest.NewRecorder(), req)

	appctx.Wrap(func(c *appctx.Context) {
		assert.Nil(t, c.Claims())
		assert.Empty(t, c.UserID())
	})(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
