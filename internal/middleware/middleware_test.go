package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"teamcity-notifier/pkg/log"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop())
	r := gin.New()
	r.Use(mw.Recovery(), mw.Trace())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceID(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generates id", header: ""},
		{name: "reuses incoming id", header: "tc-delivery-1", wantSame: true},
		{name: "replaces oversized id", header: strings.Repeat("x", maxRequestIDLen+1)},
	}

	r := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/id", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Body.String()
			if got == "" {
				t.Fatal("trace id missing from request context")
			}
			if w.Header().Get(RequestIDHeader) != got {
				t.Errorf("response header = %q, want %q", w.Header().Get(RequestIDHeader), got)
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("trace id = %q, want %q", got, tt.header)
			}
			if !tt.wantSame && got == tt.header {
				t.Errorf("trace id %q should have been replaced", got)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
