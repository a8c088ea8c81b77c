package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHeartbeatEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewStore(90 * time.Second)
	router := SetupRouter(store)

	body := `{"name":"authorservice","address":"localhost:8081"}`
	req := httptest.NewRequest(http.MethodPost, "/registry/heartbeat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/registry/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"authorservice"`)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
}

func TestHeartbeatRejectsAnonymousService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(NewStore(90 * time.Second))

	req := httptest.NewRequest(http.MethodPost, "/registry/heartbeat", strings.NewReader(`{"address":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
