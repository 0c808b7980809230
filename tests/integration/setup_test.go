package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finvault/internal/logger"
	"finvault/internal/server"
	"finvault/internal/testutil"
	"finvault/internal/validator"
)

const defaultUserID = "00000000-0000-7000-8000-000000000001"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := server.NewRouter(server.NewServices(db), server.Options{DefaultUserID: defaultUserID})
	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request as userID and returns the recorder.
func (app *testApp) request(method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) map[string]interface{} {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	result := expectStatus(t, rec, status)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok || errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, result)
	}
}

// newUser provisions accounts for a fresh caller and credits main with amount.
func (app *testApp) newUser(t *testing.T, amount string) string {
	t.Helper()
	userID := testutil.NewUserID()
	expectStatus(t, app.request("GET", "/api/v1/accounts", "", userID), http.StatusOK)
	if amount != "" {
		rec := app.request("PATCH", "/api/v1/accounts/main/balance",
			fmt.Sprintf(`{"amount":%q,"operation":"add","category":"Funding"}`, amount), userID)
		expectStatus(t, rec, http.StatusOK)
	}
	return userID
}

// balance reads an account balance as its decimal string.
func (app *testApp) balance(t *testing.T, userID, accountType string) string {
	t.Helper()
	result := expectStatus(t, app.request("GET", "/api/v1/accounts/"+accountType, "", userID), http.StatusOK)
	return result["account"].(map[string]interface{})["balance"].(string)
}
