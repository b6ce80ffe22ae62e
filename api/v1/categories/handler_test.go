package categories_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_assettag/api/v1/categories"
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
	h := categories.NewHandler(db)

	r := gin.New()
	r.GET("/categories", h.List)
	r.GET("/categories/:id", h.Show)
	r.POST("/categories", h.Create)
	r.PUT("/categories/:id", h.Update)
	r.DELETE("/categories/:id", h.Delete)
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

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Laptops", "laptops"},
		{"Office Chairs", "office-chairs"},
		{"  Network / Switches  ", "network-switches"},
		{"Déjà Vu", "d-j-vu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categories.Slugify(tt.name))
	}
}

func TestCreate_DerivesSlug(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/categories", `{"name":"Office Chairs"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got model.Category
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "office-chairs", got.Slug)
}

func TestCreate_DuplicateName(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/categories", `{"name":"Laptops"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/categories", `{"name":"Laptops"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreate_EmptyName(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/categories", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_CascadesToAssets(t *testing.T) {
	r, db := setup(t)
	company, category := testutil.SeedRefs(t, db)

	asset := model.Asset{PersonInCharge: "Bob", Department: "IT", CompanyID: company.ID, CategoryID: category.ID, IsActive: true}
	require.NoError(t, db.Create(&asset).Error)

	w := do(r, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// Category and its assets are gone from default scope
	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&model.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// But retained in storage
	require.NoError(t, db.Unscoped().Model(&model.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSoftDeletedCategoryHiddenFromListAndShow(t *testing.T) {
	r, db := setup(t)

	category := model.Category{Name: "Laptops", Slug: "laptops"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Delete(&category).Error)

	w := do(r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var list []model.Category
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)

	w = do(r, http.MethodGet, fmt.Sprintf("/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
