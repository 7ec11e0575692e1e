// Package route decides what a screen may show for a given session state.
// The decision is pure; enforcement lives in the TUI and CLI layers.
package route

import "github.com/balaji-matta18/spendbuddy/internal/session"

// Kind distinguishes the two guard variants.
type Kind int

const (
	// Protected screens require an active session.
	Protected Kind = iota
	// Public is the login screen: active sessions are bounced to the
	// dashboard instead.
	Public
)

// Decision is the guard's verdict.
type Decision int

const (
	// Render shows the requested screen.
	Render Decision = iota
	// Placeholder shows a neutral loading view. A restore in progress must
	// never be mistaken for "unauthenticated".
	Placeholder
	// RedirectLogin replaces the current screen with the login view, with no
	// back-navigation into the protected screen.
	RedirectLogin
	// RedirectDashboard replaces the login view with the authenticated
	// landing screen.
	RedirectDashboard
)

// Decide maps a guard kind and session state to a verdict. StateLoading
// yields Placeholder for both kinds; only Active and Anonymous redirect.
func Decide(kind Kind, state session.State) Decision {
	if state == session.StateLoading {
		return Placeholder
	}
	switch kind {
	case Protected:
		if state == session.StateAnonymous {
			return RedirectLogin
		}
	case Public:
		if state == session.StateActive {
			return RedirectDashboard
		}
	}
	return Render
}
