package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 0, "msg": "pong"})
	})
}

func TestNewHttpServer_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", gin.New(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
}

func TestServer_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", nil, nil)
	s.Register(pingRoutes{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/ping", nil)
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("cors header missing: got=%q", got)
	}
}

func TestServer_CorsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodOptions, "/maps", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusNoContent {
		t.Fatalf("preflight status: got=%d want=%d", w.Code, nethttp.StatusNoContent)
	}
}
