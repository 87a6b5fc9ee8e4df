package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

func TestRequestLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, log := range []*logger.Logger{nil, logger.NewNop()} {
		r := gin.New()
		r.Use(AttachTraceContext(), RequestLogger(log))
		r.GET("/roadmap/:roadmap_id", func(c *gin.Context) {
			c.Status(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roadmap/abc", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status=%d", rec.Code)
		}
	}
}

func TestRoadmapIDFromParamOrQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		route string
		url   string
		want  string
	}{
		{"/roadmap/:roadmap_id", "/roadmap/abcd1234", "abcd1234"},
		{"/events", "/events?roadmap_id=%20ef567890%20", "ef567890"},
		{"/roadmaps", "/roadmaps", ""},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			var got string
			r := gin.New()
			r.GET(tc.route, func(c *gin.Context) {
				got = roadmapID(c)
				c.Status(http.StatusOK)
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.url, nil))
			if got != tc.want {
				t.Fatalf("roadmapID=%q want %q", got, tc.want)
			}
		})
	}
}
