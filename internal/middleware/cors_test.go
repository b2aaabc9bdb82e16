package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testOrigin = "http://localhost:3000"

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		checkHeaders   func(*testing.T, http.Header)
	}{
		{
			name:           "GET request passes through with CORS headers",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, h http.Header) {
				assert.Equal(t, testOrigin, h.Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
				assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", h.Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "Origin, Content-Type, Authorization", h.Get("Access-Control-Allow-Headers"))
				assert.Equal(t, "86400", h.Get("Access-Control-Max-Age"))
			},
		},
		{
			name:           "PATCH request passes through with CORS headers",
			method:         http.MethodPatch,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, h http.Header) {
				assert.Equal(t, testOrigin, h.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "DELETE request passes through with CORS headers",
			method:         http.MethodDelete,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, h http.Header) {
				assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
			},
		},
		{
			name:           "OPTIONS preflight request returns 204",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			checkHeaders: func(t *testing.T, h http.Header) {
				assert.Equal(t, testOrigin, h.Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", h.Get("Access-Control-Allow-Methods"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(testOrigin))
			ok := func(c *gin.Context) { c.Status(http.StatusOK) }
			router.GET("/test", ok)
			router.PATCH("/test", ok)
			router.DELETE("/test", ok)
			router.OPTIONS("/test", ok)

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", testOrigin)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkHeaders(t, w.Header())
		})
	}
}

func TestCORS_PreflightDoesNotReachHandler(t *testing.T) {
	handlerCalled := false

	router := gin.New()
	router.Use(CORS(testOrigin))
	router.OPTIONS("/test", func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, handlerCalled, "handler should not be called for preflight requests")
}
