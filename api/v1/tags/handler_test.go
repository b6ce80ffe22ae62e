package tags_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go_assettag/api/v1/tags"
	"go_assettag/internal/model"
	"go_assettag/internal/tag"
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
	h := tags.NewHandler(db, tag.QRRenderer{Size: 64}, tag.Archive{Dir: t.TempDir()})

	r := gin.New()
	r.GET("/tags", h.List)
	r.POST("/tags", h.Create)
	r.POST("/tags/mark-printed", h.MarkPrinted)
	r.DELETE("/tags/:id", h.Delete)
	r.GET("/assets/:id/download-tag", h.DownloadTag)
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

func seedAssetWithCode(t *testing.T, db *gorm.DB, code string) model.Asset {
	t.Helper()
	company, category := testutil.SeedRefs(t, db)
	asset := model.Asset{PersonInCharge: "Bob", Department: "IT", CompanyID: company.ID, CategoryID: category.ID, IsActive: true}
	require.NoError(t, db.Create(&asset).Error)
	require.NoError(t, db.Create(&model.AssetCode{AssetID: asset.ID, UniqueCode: code}).Error)
	return asset
}

func TestCreateRendersAndArchives(t *testing.T) {
	r, db := setup(t)
	asset := seedAssetWithCode(t, db, "AC-0001")

	body := fmt.Sprintf(`{"asset_id":%d,"unique_code":"AC-0001"}`, asset.ID)
	w := do(r, http.MethodPost, "/tags", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var item tags.TagItem
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, model.PrintStatusNotPrinted, item.PrintStatus)
	assert.Contains(t, item.URL, "AC-0001.png")

	// Archived image is downloadable
	w = do(r, http.MethodGet, "/assets/AC-0001/download-tag", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestCreateRejectsUnassignedCode(t *testing.T) {
	r, db := setup(t)
	asset := seedAssetWithCode(t, db, "AC-0001")

	body := fmt.Sprintf(`{"asset_id":%d,"unique_code":"AC-9999"}`, asset.ID)
	w := do(r, http.MethodPost, "/tags", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadUnknownCode(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodGet, "/assets/NOPE/download-tag", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRefusesTamperedCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t)

	base := t.TempDir()
	storageDir := filepath.Join(base, "storage")
	h := tags.NewHandler(db, tag.QRRenderer{Size: 64}, tag.Archive{Dir: storageDir})

	r := gin.New()
	r.POST("/tags", h.Create)

	// A traversal code written straight into the registry, bypassing the
	// assignment endpoint's charset check, must still be stopped at archive time
	asset := seedAssetWithCode(t, db, "AC-0001")
	require.NoError(t, db.Create(&model.AssetCode{AssetID: asset.ID + 1000, UniqueCode: "../../evil"}).Error)

	body := fmt.Sprintf(`{"asset_id":%d,"unique_code":"../../evil"}`, asset.ID+1000)
	w := do(r, http.MethodPost, "/tags", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	_, err := os.Stat(filepath.Join(base, "evil.png"))
	assert.True(t, os.IsNotExist(err), "no image may be written outside the storage root")

	var count int64
	require.NoError(t, db.Model(&model.BatchTag{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMarkPrinted(t *testing.T) {
	r, db := setup(t)
	asset := seedAssetWithCode(t, db, "AC-0001")

	body := fmt.Sprintf(`{"asset_id":%d,"unique_code":"AC-0001"}`, asset.ID)
	w := do(r, http.MethodPost, "/tags", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/tags/mark-printed", "")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.BatchTag{}).
		Where("print_status = ?", model.PrintStatusPrinted).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Idempotent when nothing is left to print
	w = do(r, http.MethodPost, "/tags/mark-printed", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSoftDeleteHidesFromList(t *testing.T) {
	r, db := setup(t)
	asset := seedAssetWithCode(t, db, "AC-0001")

	body := fmt.Sprintf(`{"asset_id":%d,"unique_code":"AC-0001"}`, asset.ID)
	w := do(r, http.MethodPost, "/tags", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var item tags.TagItem
	require.NoError(t, json.Unmarshal(env.Data, &item))

	w = do(r, http.MethodDelete, fmt.Sprintf("/tags/%d", item.ID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/tags", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var list []tags.TagItem
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}
