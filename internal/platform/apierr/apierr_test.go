package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAs(t *testing.T) {
	base := errors.New("roadmap not found")
	wrapped := fmt.Errorf("lookup: %w", NotFound("roadmap_not_found", base))

	ae, ok := As(wrapped)
	if !ok || ae.Status != http.StatusNotFound || ae.Code != "roadmap_not_found" {
		t.Fatalf("As=%+v ok=%v", ae, ok)
	}
	if !errors.Is(wrapped, base) {
		t.Fatal("expected cause to stay reachable")
	}
	if _, ok := As(base); ok {
		t.Fatal("plain error should not match")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{Unprocessable("invalid_request", errors.New("goal must contain text")), "goal must contain text"},
		{New(http.StatusConflict, "busy", nil), "busy"},
		{New(http.StatusTeapot, "", nil), "api error (418)"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("Error()=%q want %q", got, tt.want)
		}
	}
}
