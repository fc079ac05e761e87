package server

import (
	"billscan-server/confs"
	"billscan-server/db"
	"billscan-server/entities"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&entities.User{},
		&entities.PasswordResetToken{},
		&entities.Category{},
		&entities.Bill{},
		&entities.UserSettings{},
	))
	require.NoError(t, db.SeedDefaultCategories(gdb))

	cfg := &confs.Config{JWTSecret: "test-secret", ListenAddr: "127.0.0.1:0"}
	srv := NewServer(&db.GormDatabase{DB: gdb}, cfg)
	srv.Setup()
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func signupBody() map[string]interface{} {
	return map[string]interface{}{
		"email":     "alice@example.com",
		"password":  "secret123",
		"username":  "alice_01",
		"full_name": "Alice Example",
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decode(t, rec)
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "connected", payload["database"])
}

func TestSignupAndLoginFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	payload := decode(t, rec)
	user, ok := payload["user"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, user, "password_hash")
	assert.Equal(t, "alice@example.com", user["email"])
	userID := user["user_id"].(string)
	require.NotEmpty(t, userID)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email_or_username": "alice_01",
		"password":          "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	payload = decode(t, rec)
	assert.NotEmpty(t, payload["token"])

	// Signup also provisioned settings.
	rec = doJSON(t, srv, http.MethodGet, "/api/settings/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	payload = decode(t, rec)
	settings := payload["settings"].(map[string]interface{})
	assert.Equal(t, "USD", settings["currency"])
}

func TestSignupConflicts(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same email, fresh username.
	body := signupBody()
	body["username"] = "someone_else"
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signup", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "email")

	// Same username, fresh email.
	body = signupBody()
	body["email"] = "other@example.com"
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signup", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "username")
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())

	recWrongPass := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email_or_username": "alice@example.com",
		"password":          "nope",
	})
	recUnknown := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email_or_username": "ghost",
		"password":          "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, recWrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, recWrongPass.Body.String(), recUnknown.Body.String())
}

func TestPasswordResetOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/forgot-password", map[string]interface{}{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "brandnew1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Token is single use.
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "brandnew2",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown email on forgot-password is a 404.
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/forgot-password", map[string]interface{}{
		"email": "ghost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAndListBills(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	userID := decode(t, rec)["user"].(map[string]interface{})["user_id"].(string)

	// Missing amount is a validation error.
	rec = doJSON(t, srv, http.MethodPost, "/api/bills", map[string]interface{}{
		"user_id":     userID,
		"vendor_name": "Blue Coffee Co",
		"bill_date":   "2025-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/bills", map[string]interface{}{
		"user_id":     userID,
		"vendor_name": "Blue Coffee Co",
		"amount":      4.5,
		"bill_date":   "2025-03-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	bill := decode(t, rec)["bill"].(map[string]interface{})
	assert.Equal(t, "USD", bill["currency"])
	assert.Equal(t, false, bill["is_paid"])

	rec = doJSON(t, srv, http.MethodGet, "/api/bills/"+userID+"?vendor_name=COFFEE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bills := decode(t, rec)["bills"].([]interface{})
	require.Len(t, bills, 1)
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	categories := decode(t, rec)["categories"].([]interface{})
	require.NotEmpty(t, categories)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, true, first["is_default"])
}

func TestSettingsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/settings/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	userID := decode(t, rec)["user"].(map[string]interface{})["user_id"].(string)

	// Patch with no recognized fields fails and changes nothing.
	rec = doJSON(t, srv, http.MethodPut, "/api/settings/"+userID, map[string]interface{}{
		"favorite_color": "teal",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/api/settings/"+userID, map[string]interface{}{
		"appearance_mode":        "dark",
		"bill_reminders_enabled": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/settings/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decode(t, rec)["settings"].(map[string]interface{})
	assert.Equal(t, "dark", settings["appearance_mode"])
	assert.Equal(t, false, settings["bill_reminders_enabled"])
	assert.Equal(t, "USD", settings["currency"])
}

func TestGetUserEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	userID := decode(t, rec)["user"].(map[string]interface{})["user_id"].(string)

	rec = doJSON(t, srv, http.MethodGet, "/api/users/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	rec = doJSON(t, srv, http.MethodGet, "/api/users/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
