package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/wb_microservices/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_microservices/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		if rid, ok := ctxmeta.RequestIDFromContext(c.Request.Context()); ok {
			*captured = rid
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID_IncomingHeaderKept(t *testing.T) {
	var captured string
	r := newRIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
	req.Header.Set("X-Request-ID", "req-abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if captured != "req-abc" {
		t.Fatalf("context id: want req-abc, got %q", captured)
	}
	if got := w.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Fatalf("response header: want req-abc, got %q", got)
	}
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	var captured string
	r := newRIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if captured == "" {
		t.Fatal("request id must be generated")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("generated id must be a uuid, got %q: %v", captured, err)
	}
	if got := w.Header().Get("X-Request-ID"); got != captured {
		t.Fatalf("header and context id must match: %q vs %q", got, captured)
	}
}
