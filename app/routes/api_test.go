package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/shashiranjanraj/dinehub/database/migrations"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/database"
	"github.com/shashiranjanraj/dinehub/pkg/migration"
	"github.com/shashiranjanraj/dinehub/pkg/router"
	"github.com/shashiranjanraj/dinehub/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	_, err = migration.New(db, nil).Run()
	require.NoError(t, err)

	r := router.New()
	require.NoError(t, RegisterAPI(r, Deps{DB: db, CacheTTL: time.Minute}))
	return r.Handler()
}

func token(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := auth.GenerateToken(auth.Identity{ID: uuid.NewString(), Username: "tester", Roles: roles})
	require.NoError(t, err)
	return tok
}

type reply struct {
	Code int
	Body map[string]interface{}
	Raw  []byte
}

func call(t *testing.T, h http.Handler, method, url, bearer string, body interface{}) reply {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := reply{Code: rec.Code, Raw: rec.Body.Bytes()}
	if len(out.Raw) > 0 && out.Raw[0] == '{' {
		require.NoError(t, json.Unmarshal(out.Raw, &out.Body))
	}
	return out
}

func (r reply) data(t *testing.T) map[string]interface{} {
	t.Helper()
	d, ok := r.Body["data"].(map[string]interface{})
	require.True(t, ok, "no data object in %s", r.Raw)
	return d
}

func TestScenarios(t *testing.T) {
	h := newAPI(t)
	testkit.RunDir(t, h, "testdata", testkit.Vars{
		"userToken": token(t, auth.RoleUser),
		"missingId": uuid.NewString(),
	})
}

// login registers username and returns its id and bearer token.
func login(t *testing.T, h http.Handler, username string) (string, string) {
	t.Helper()
	creds := map[string]string{"username": username, "password": "pw-" + username}

	reg := call(t, h, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, reg.Code, string(reg.Raw))
	id, _ := reg.Body["id"].(string)
	require.NotEmpty(t, id)

	res := call(t, h, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, res.Code, string(res.Raw))
	assert.Equal(t, "Bearer", res.Body["token_type"])
	tok, _ := res.Body["access_token"].(string)
	require.NotEmpty(t, tok)
	return id, tok
}

func TestOwnerFlow(t *testing.T) {
	h := newAPI(t)
	admin := token(t, auth.RoleAdmin)
	ownerID, owner := login(t, h, "owner")
	_, stranger := login(t, h, "stranger")

	dup := call(t, h, http.MethodPost, "/auth/register", "", map[string]string{"username": "owner", "password": "x"})
	assert.Equal(t, http.StatusConflict, dup.Code)

	typ := call(t, h, http.MethodPost, "/api/restauranttypes", admin, map[string]string{"code": "IT1", "name": "Italian"})
	require.Equal(t, http.StatusCreated, typ.Code, string(typ.Raw))
	typeID, _ := typ.Body["id"].(string)
	again := call(t, h, http.MethodPost, "/api/restauranttypes/create", admin, map[string]string{"code": "IT1", "name": "Other"})
	assert.Equal(t, http.StatusConflict, again.Code)

	cat := call(t, h, http.MethodPost, "/api/menucategories", admin, map[string]string{"name": "Main Course", "description": "Mains"})
	require.Equal(t, http.StatusCreated, cat.Code, string(cat.Raw))
	categoryID, _ := cat.data(t)["id"].(string)

	rest := call(t, h, http.MethodPost, "/api/restaurants", owner, map[string]interface{}{
		"name": "Trattoria", "address": "1 Via Roma", "restaurantTypeId": typeID,
	})
	require.Equal(t, http.StatusCreated, rest.Code, string(rest.Raw))
	restaurant := rest.data(t)
	restaurantID, _ := restaurant["id"].(string)
	assert.Equal(t, ownerID, restaurant["ownerId"])
	assert.Equal(t, true, restaurant["isActive"])
	assert.Equal(t, "Restaurant created successfully", rest.Body["message"])

	second := call(t, h, http.MethodPost, "/api/restaurants/create", owner, map[string]string{"name": "Again", "address": "2 Via Roma"})
	assert.Equal(t, http.StatusConflict, second.Code)

	mine := call(t, h, http.MethodGet, "/api/restaurants/owner/"+ownerID, owner, nil)
	assert.Equal(t, http.StatusOK, mine.Code)
	peek := call(t, h, http.MethodGet, "/api/restaurants/owner/"+ownerID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, peek.Code)

	byType := call(t, h, http.MethodGet, "/api/restaurants/type/"+typeID, "", nil)
	require.Equal(t, http.StatusOK, byType.Code)
	assert.Len(t, byType.Body["data"], 1)

	menu := call(t, h, http.MethodPost, "/api/menus", owner, map[string]interface{}{
		"name": "Margherita", "price": 8.5, "restaurantId": restaurantID, "categoryId": categoryID,
	})
	require.Equal(t, http.StatusCreated, menu.Code, string(menu.Raw))
	menuID, _ := menu.data(t)["id"].(string)

	badRef := call(t, h, http.MethodPost, "/api/menus", owner, map[string]interface{}{
		"name": "Ghost", "price": 1, "restaurantId": restaurantID, "categoryId": uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, badRef.Code)
	assert.Equal(t, "Invalid CategoryId", badRef.Body["message"])

	hijack := call(t, h, http.MethodPut, "/api/menus/"+menuID, stranger, map[string]interface{}{
		"name": "Mine now", "price": 1, "restaurantId": restaurantID, "categoryId": categoryID,
	})
	assert.Equal(t, http.StatusForbidden, hijack.Code)

	inUse := call(t, h, http.MethodDelete, "/api/menucategories/"+categoryID, admin, nil)
	assert.Equal(t, http.StatusConflict, inUse.Code)

	gql := call(t, h, http.MethodPost, "/graphql", "", map[string]string{
		"query": fmt.Sprintf(`{ restaurant(id: "%s") { name } menus(restaurantId: "%s") { name price } }`, restaurantID, restaurantID),
	})
	require.Equal(t, http.StatusOK, gql.Code)
	assert.JSONEq(t, `{"data":{"restaurant":{"name":"Trattoria"},"menus":[{"name":"Margherita","price":8.5}]}}`, string(gql.Raw))

	gone := call(t, h, http.MethodDelete, "/api/restaurants/"+restaurantID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, gone.Code)
	gone = call(t, h, http.MethodDelete, "/api/restaurants/"+restaurantID, owner, nil)
	assert.Equal(t, http.StatusNoContent, gone.Code)

	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodGet, "/api/menus/"+menuID, "", nil).Code)
	assert.Equal(t, http.StatusNoContent, call(t, h, http.MethodDelete, "/api/menucategories/"+categoryID, admin, nil).Code)
}

func TestUserProfile(t *testing.T) {
	h := newAPI(t)
	id, tok := login(t, h, "alice")
	_, other := login(t, h, "bob")

	me := call(t, h, http.MethodGet, "/api/users/data", tok, nil)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "alice", me.data(t)["username"])
	assert.NotContains(t, string(me.Raw), "password")

	upd := call(t, h, http.MethodPut, "/api/users/"+id, other, map[string]string{"name": "Mallory"})
	assert.Equal(t, http.StatusForbidden, upd.Code)

	upd = call(t, h, http.MethodPut, "/api/users/"+id, tok, map[string]string{"phoneNumber": "555-0100"})
	assert.Equal(t, http.StatusNoContent, upd.Code)

	list := call(t, h, http.MethodGet, "/api/users?page=1&pageSize=1", token(t, auth.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, list.Code)
	meta, _ := list.Body["meta"].(map[string]interface{})
	assert.EqualValues(t, 2, meta["total"])
	assert.EqualValues(t, 2, meta["totalPages"])
}
