package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/infrastructure/persistence"
)

func newHealthTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	// GORM pings once while opening the connection
	mock.ExpectPing()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	h := NewHealthHandler(&persistence.Database{DB: gormDB})

	engine := gin.New()
	engine.GET("/health", h.Check)
	engine.GET("/api/v1/ping", h.Ping)
	return engine, mock
}

func TestHealthHandler_Check(t *testing.T) {
	t.Run("reports ok when database responds", func(t *testing.T) {
		engine, mock := newHealthTestServer(t)
		mock.ExpectPing()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "connected", body["database"])
		assert.NotContains(t, body, "error")

		// Pool stats ride along on the healthy response
		connections, ok := body["connections"].(map[string]any)
		require.True(t, ok, "expected a connections object")
		assert.Contains(t, connections, "open")
		assert.Contains(t, connections, "in_use")
		assert.Contains(t, connections, "idle")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("degrades to 503 when database is unreachable", func(t *testing.T) {
		engine, mock := newHealthTestServer(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "disconnected", body["database"])
		assert.Contains(t, body["error"], "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHealthHandler_Ping(t *testing.T) {
	engine, _ := newHealthTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
