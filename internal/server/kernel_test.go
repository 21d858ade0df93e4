package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shashiranjanraj/dinehub/app/routes"
	_ "github.com/shashiranjanraj/dinehub/database/migrations"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/database"
	"github.com/shashiranjanraj/dinehub/pkg/migration"
	"github.com/shashiranjanraj/dinehub/pkg/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTableIsNamed(t *testing.T) {
	r, err := NewRouter(routes.Deps{Hub: ws.NewHub()})
	require.NoError(t, err)

	names := map[string]string{}
	for _, info := range r.Routes() {
		names[info.Name] = info.Method + " " + info.Path
	}
	assert.Equal(t, "GET /metrics", names["metrics"])
	assert.Equal(t, "GET /ws/catalog", names["ws.catalog"])
	assert.Equal(t, "POST /auth/login", names["auth.login"])
	assert.Equal(t, "GET /api/restaurants/owner/{id}", names["restaurants.by_owner"])
	assert.Equal(t, "DELETE /api/menus/{id}", names["menus.destroy"])
}

func TestMetricsEndpoint(t *testing.T) {
	h, err := Handler(routes.Deps{})
	require.NoError(t, err)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dinehub_http_requests_total")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCatalogChangesReachWebsocketClients(t *testing.T) {
	db, err := database.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	_, err = migration.New(db, nil).Run()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := ws.NewHub("*")
	go hub.Run(ctx)
	t.Cleanup(ListenCatalogEvents(hub))

	h, err := Handler(routes.Deps{DB: db, CacheTTL: time.Minute, Hub: hub})
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/catalog", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	tok, err := auth.GenerateToken(auth.Identity{ID: uuid.NewString(), Username: "root", Roles: []string{auth.RoleAdmin}})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/restauranttypes", bytes.NewBufferString(`{"code":"JP1","name":"Japanese"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"restauranttype.created","id":"`+created.ID+`"}`, string(msg))
}
