package observability

import (
	"context"
	"testing"

	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		raw  string
		want map[string]string
	}{
		{"", nil},
		{"bad,=x,y=", nil},
		{"a=1, b = 2", map[string]string{"a": "1", "b": "2"}},
		{"auth=Basic abc=", map[string]string{"auth": "Basic abc="}},
	}
	for _, tt := range tests {
		got := parseHeaders(tt.raw)
		if len(got) != len(tt.want) {
			t.Fatalf("parseHeaders(%q)=%v want %v", tt.raw, got, tt.want)
		}
		for k, v := range tt.want {
			if got[k] != v {
				t.Fatalf("parseHeaders(%q)[%s]=%q want %q", tt.raw, k, got[k], v)
			}
		}
	}
}

func TestClampRatio(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v)=%v", in, got)
		}
	}
}

func TestInitOTelDisabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.NewNop(), OtelConfig{})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
