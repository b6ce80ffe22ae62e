package servers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_assettag/api/v1/servers"
	"go_assettag/internal/model"
	"go_assettag/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)
	h := servers.NewHandler(db)

	r := gin.New()
	r.GET("/servers", h.List)
	r.GET("/servers/:id", h.Show)
	r.POST("/servers", h.Create)
	r.PUT("/servers/:id", h.Update)
	r.DELETE("/servers/:id", h.Delete)
	return r, db
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListOmitsPassword(t *testing.T) {
	r, _ := setup(t)

	body := `{"name":"db01","department":"IT","server_user":"root","server_password":"hunter2","status":"active"}`
	w := do(r, http.MethodPost, "/servers", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/servers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "server_password")
}

func TestUpdateEmptyPasswordKeepsStored(t *testing.T) {
	r, db := setup(t)

	body := `{"name":"db01","department":"IT","server_user":"root","server_password":"hunter2","status":"active"}`
	w := do(r, http.MethodPost, "/servers", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var created model.ServerAccount
	require.NoError(t, json.Unmarshal(env.Data, &created))

	body = `{"name":"db01","department":"Ops","server_user":"admin","server_password":"","status":"retired"}`
	w = do(r, http.MethodPut, fmt.Sprintf("/servers/%d", created.ID), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.ServerAccount
	require.NoError(t, db.First(&got, created.ID).Error)
	assert.Equal(t, "hunter2", got.ServerPassword)
	assert.Equal(t, "Ops", got.Department)
	assert.Equal(t, "admin", got.ServerUser)
}

func TestDeleteMissing(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodDelete, "/servers/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
