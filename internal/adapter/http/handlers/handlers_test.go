package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"

	"homeez_booking/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func perform(r *gin.Engine, method, path, body, userID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
		req.Header.Set(middleware.HeaderUserEmail, userID+"@example.com")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	return r
}
