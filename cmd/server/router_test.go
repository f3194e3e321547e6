package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/handler"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/health"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"
)

func newTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := bolus.NewService(nil, nil, bolus.DefaultSettings(), nil)
	return newRouter(routerDeps{
		allowedOrigins: origins,
		healthChecker:  health.NewChecker("test"),
		bolusHandler:   handler.NewBolusHandler(svc, "key"),
		factorHandler:  handler.NewFactorHandler(svc),
		apiKey:         "key",
	})
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/health/live", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/health/ready", wantStatus: http.StatusOK},
		{name: "hourly factors without store", method: http.MethodGet, path: "/api/v1/bolus-factors", wantStatus: http.StatusOK},
		{name: "calorie factors without store", method: http.MethodGet, path: "/api/v1/calorie-factors", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestNewCORSConfig(t *testing.T) {
	tests := []struct {
		name         string
		origins      []string
		wantAllowAll bool
	}{
		{name: "no origins", origins: nil, wantAllowAll: true},
		{name: "wildcard", origins: []string{"*"}, wantAllowAll: true},
		{name: "explicit", origins: []string{"https://bolus.example.com"}, wantAllowAll: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newCORSConfig(tt.origins)
			if cfg.AllowAllOrigins != tt.wantAllowAll {
				t.Errorf("AllowAllOrigins = %v, want %v", cfg.AllowAllOrigins, tt.wantAllowAll)
			}
			if !tt.wantAllowAll && len(cfg.AllowOrigins) != len(tt.origins) {
				t.Errorf("AllowOrigins = %v, want %v", cfg.AllowOrigins, tt.origins)
			}
		})
	}
}
