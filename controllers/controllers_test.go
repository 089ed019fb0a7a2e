package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/models"
	"github.com/JaredDoge/BabyRecordBackend/routes"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// newTestRouter 建立掛好全部路由的測試用引擎
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Caregiver{},
		&models.Record{},
		&models.Settings{},
	))

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/caregivers/login",
		gin.H{"caregiver_name": "媽媽"})
	require.Equal(t, http.StatusOK, w.Code)
	first, ok := resp["caregiver_id"].(float64)
	require.True(t, ok)
	assert.Greater(t, first, float64(0))

	// 同名再登入回傳同一個 ID
	w, resp = doJSON(t, r, http.MethodPost, "/api/caregivers/login",
		gin.H{"caregiver_name": "媽媽"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, resp["caregiver_id"])
}

func TestLoginEndpoint_EmptyName(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/caregivers/login",
		gin.H{"caregiver_name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "照顧者名稱不能為空", resp["message"])
}

// 帶 +08:00 時區的輸入在 +08:00 的伺服器上，欄位原樣呈現
func TestRecordScenario(t *testing.T) {
	origLocal := time.Local
	time.Local = time.FixedZone("CST", 8*3600)
	defer func() { time.Local = origLocal }()

	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/records", gin.H{
		"caregiver_name": "媽媽",
		"time":           "2024-01-01T10:00:00+08:00",
		"event":          "餵奶",
	})
	require.Equal(t, http.StatusOK, w.Code)
	recordID, ok := resp["record_id"].(float64)
	require.True(t, ok)
	require.Greater(t, recordID, float64(0))

	w, resp = doJSON(t, r, http.MethodGet,
		"/api/records/"+jsonNumber(recordID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "餵奶", resp["event"])
	assert.Equal(t, "2024-01-01 10:00:00", resp["time"])
	assert.Equal(t, "媽媽", resp["caregiver_name"])
}

func TestRecordCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// 新增
	w, resp := doJSON(t, r, http.MethodPost, "/api/records", gin.H{
		"caregiver_name": "爸爸",
		"time":           "2024-01-01 10:00:00",
		"event":          "擠奶",
		"notes":          "左邊",
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := jsonNumber(resp["record_id"].(float64))

	// 更新
	w, resp = doJSON(t, r, http.MethodPut, "/api/records/"+id, gin.H{
		"time":  "2024-01-01 11:00:00",
		"event": "大便",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/records/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "大便", resp["event"])
	assert.Equal(t, "2024-01-01 11:00:00", resp["time"])
	assert.Equal(t, "", resp["notes"])

	// 刪除
	w, _ = doJSON(t, r, http.MethodDelete, "/api/records/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/records/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "記錄不存在", resp["message"])

	// 重複刪除一樣回 404
	w, resp = doJSON(t, r, http.MethodDelete, "/api/records/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "記錄不存在", resp["message"])
}

func TestRecordEndpoint_InvalidEvent(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/records", gin.H{
		"caregiver_name": "媽媽",
		"time":           "2024-01-01 10:00:00",
		"event":          "睡覺",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "event 必須為 餵奶/擠奶/大便/小便", resp["message"])
}

func TestRecordEndpoint_UpdateMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPut, "/api/records/1", gin.H{"event": "餵奶"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordEndpoint_UpdateNotFound(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPut, "/api/records/999", gin.H{
		"time":  "2024-01-01 10:00:00",
		"event": "餵奶",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "記錄不存在", resp["message"])
}

func TestRecordListEndpoint_Filter(t *testing.T) {
	r := newTestRouter(t)

	for _, rec := range []gin.H{
		{"caregiver_name": "媽媽", "time": "2024-01-01 08:00:00", "event": "餵奶"},
		{"caregiver_name": "爸爸", "time": "2024-01-01 12:00:00", "event": "小便"},
		{"caregiver_name": "媽媽", "time": "2024-01-01 10:00:00", "event": "大便"},
	} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/records", rec)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "2024-01-01 12:00:00", all[0]["time"])
	assert.Equal(t, "2024-01-01 08:00:00", all[2]["time"])

	req = httptest.NewRequest(http.MethodGet, "/api/records?caregiver_name=%E5%AA%BD%E5%AA%BD", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var filtered []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 2)
	for _, record := range filtered {
		assert.Equal(t, "媽媽", record["caregiver_name"])
	}
}

func TestSettingsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// 尚未寫入時回傳預設值
	w, resp := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(180), resp["feeding_interval"])
	assert.Equal(t, float64(240), resp["pumping_interval"])
	assert.Equal(t, "System", resp["last_modified_by"])

	// 覆寫後回傳新值
	w, resp = doJSON(t, r, http.MethodPut, "/api/settings", gin.H{
		"feeding_interval": 150,
		"pumping_interval": 200,
		"caregiver_name":   "爸爸",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(150), resp["feeding_interval"])
	assert.Equal(t, float64(200), resp["pumping_interval"])
	assert.Equal(t, "爸爸", resp["last_modified_by"])
}

func TestSettingsEndpoint_Validation(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPut, "/api/settings", gin.H{
		"feeding_interval": 150,
		"caregiver_name":   "爸爸",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// jsonNumber 將 JSON 數字轉回路徑用的字串
func jsonNumber(f float64) string {
	return strconv.FormatInt(int64(f), 10)
}
