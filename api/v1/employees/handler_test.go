package employees_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_assettag/api/v1/employees"
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
	h := employees.NewHandler(db)

	r := gin.New()
	r.GET("/employees", h.List)
	r.GET("/employees/:id", h.Show)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
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

func TestCreate_ActiveByDefault(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/employees", `{"name":"Alice","department":"IT"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got model.Employee
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.IsActive)
}

func TestCreate_ExplicitInactive(t *testing.T) {
	r, db := setup(t)

	w := do(r, http.MethodPost, "/employees", `{"name":"Alice","department":"IT","is_active":false}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var created model.Employee
	require.NoError(t, json.Unmarshal(env.Data, &created))

	var got model.Employee
	require.NoError(t, db.First(&got, created.ID).Error)
	assert.False(t, got.IsActive)
}

func TestUpdate_PartialFields(t *testing.T) {
	r, db := setup(t)

	employee := model.Employee{Name: "Alice", Department: "IT", IsActive: true}
	require.NoError(t, db.Create(&employee).Error)

	w := do(r, http.MethodPut, fmt.Sprintf("/employees/%d", employee.ID), `{"department":"Ops"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.Employee
	require.NoError(t, db.First(&got, employee.ID).Error)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Ops", got.Department)
	assert.True(t, got.IsActive)
}

func TestSoftDeletedEmployeeHiddenFromListAndShow(t *testing.T) {
	r, db := setup(t)

	employee := model.Employee{Name: "Alice", Department: "IT", IsActive: true}
	require.NoError(t, db.Create(&employee).Error)

	w := do(r, http.MethodDelete, fmt.Sprintf("/employees/%d", employee.ID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var list []model.Employee
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)

	w = do(r, http.MethodGet, fmt.Sprintf("/employees/%d", employee.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// But retained in storage
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDelete_Missing(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodDelete, "/employees/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
