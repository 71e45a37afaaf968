package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studyplanner/planner-api/config"
	"github.com/studyplanner/planner-api/middleware"
	"github.com/studyplanner/planner-api/models"
)

// setupHandler creates a fresh in-memory database for one test. The DSN is
// named after the test so gorm's connection pool sees a single shared
// database rather than one per connection.
func setupHandler(t *testing.T) *DBHandler {
	t.Helper()

	config.Env.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Board{}, &models.Card{})
	require.NoError(t, err)

	return &DBHandler{DB: db}
}

// newTestMux registers the API routes the way main does, so path values
// resolve and the bearer guard applies to the same endpoints.
func newTestMux(db *DBHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", db.Login)
	mux.HandleFunc("GET /api/users/{id}", db.GetUserByID)
	mux.HandleFunc("POST /api/users", db.CreateUser)
	mux.HandleFunc("PATCH /api/users/{id}", middleware.Authenticate(db.UpdateUserByID))
	mux.HandleFunc("DELETE /api/users/{id}", db.DeleteUserByID)

	mux.HandleFunc("GET /api/boards", db.GetBoards)
	mux.HandleFunc("POST /api/boards", db.CreateBoard)
	mux.HandleFunc("PATCH /api/boards/{id}", db.UpdateBoardByID)
	mux.HandleFunc("DELETE /api/boards/{id}", db.DeleteBoardByID)

	mux.HandleFunc("GET /api/cards", db.GetCards)
	mux.HandleFunc("POST /api/cards", db.CreateCard)
	mux.HandleFunc("PATCH /api/cards/{id}", db.UpdateCardByID)
	mux.HandleFunc("DELETE /api/cards/{id}", db.DeleteCardByID)

	return mux
}

func makeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

func doRequest(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}

// fixedClock pins the handler's notion of now, so board seeding is
// deterministic regardless of when the tests run.
func fixedClock(month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2025, month, 15, 10, 0, 0, 0, time.UTC)
	}
}
