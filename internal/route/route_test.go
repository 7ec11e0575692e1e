package route

import (
	"testing"

	"github.com/balaji-matta18/spendbuddy/internal/session"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		state session.State
		want  Decision
	}{
		{"protected loading", Protected, session.StateLoading, Placeholder},
		{"protected anonymous", Protected, session.StateAnonymous, RedirectLogin},
		{"protected active", Protected, session.StateActive, Render},
		{"public loading", Public, session.StateLoading, Placeholder},
		{"public anonymous", Public, session.StateAnonymous, Render},
		{"public active", Public, session.StateActive, RedirectDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.kind, tt.state); got != tt.want {
				t.Fatalf("Decide(%v, %v) = %v, want %v", tt.kind, tt.state, got, tt.want)
			}
		})
	}
}

func TestDecide_LoadingNeverRedirects(t *testing.T) {
	for _, kind := range []Kind{Protected, Public} {
		got := Decide(kind, session.StateLoading)
		if got == RedirectLogin || got == RedirectDashboard {
			t.Fatalf("Decide(%v, loading) = %v, must not redirect", kind, got)
		}
	}
}
