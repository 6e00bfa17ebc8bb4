package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"diveshop-backend/config"
	"diveshop-backend/controllers"
	"diveshop-backend/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	bc := controllers.NewBookingController(services.NewBookingService(db))
	gc := controllers.NewGroupController(services.NewGroupService(db))
	wc := controllers.NewWaiverController(services.NewWaiverService(db))
	rc := controllers.NewRentalController(services.NewRentalService(db))
	return SetupRouter(bc, gc, wc, rc)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestUnknownPathIs404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiverCreateAndValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/divers", gin.H{
		"name":  "Test Diver",
		"email": "test@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Test Diver", created["name"])

	// missing email -> validation error in the flat {"error": ...} shape
	w = doJSON(t, r, http.MethodPost, "/api/divers", gin.H{"name": "No Email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "name and email are required", body["error"])
}

func TestBookingCourseGroupConflictIs400(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/divers", gin.H{
		"name": "D", "email": "d@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var diver map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diver))

	w = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"diver_id":  diver["id"],
		"course_id": "c1",
		"group_id":  "g1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "mutually exclusive")
}

func TestMissingBookingIs404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCorsPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/divers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWaiverEndpointFlipsDiverFlag(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/divers", gin.H{
		"name": "W", "email": "w@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var diver map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diver))
	diverID := diver["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/waivers", gin.H{
		"diver_id":       diverID,
		"signature_data": "sig",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/divers/"+diverID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reloaded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reloaded))
	assert.Equal(t, true, reloaded["waiver_signed"])

	// absent waiver reads as JSON null
	w = doJSON(t, r, http.MethodPost, "/api/divers", gin.H{
		"name": "X", "email": "x@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var other map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))

	w = doJSON(t, r, http.MethodGet, "/api/waivers/"+other["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
