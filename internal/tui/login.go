package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// loginValues backs the auth form fields.
type loginValues struct {
	Mode     string // "signin" or "signup"
	Username string
	Email    string
	Password string
}

type authDoneMsg struct {
	created bool // account created, token withheld: route back to login
	err     error
}

func newLoginForm(vals *loginValues) *huh.Form {
	if vals.Mode == "" {
		vals.Mode = "signin"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("SpendBuddy").
				Options(
					huh.NewOption("Sign in", "signin"),
					huh.NewOption("Create account", "signup"),
				).
				Value(&vals.Mode),
			huh.NewInput().
				Key("username").
				Title("Username (sign up only)").
				Value(&vals.Username),
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&vals.Email),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.Password),
		),
	)
}

// validateAuth checks required fields before any network call is made.
func validateAuth(vals loginValues) error {
	if strings.TrimSpace(vals.Email) == "" || vals.Password == "" {
		return errors.New("email and password are required")
	}
	if vals.Mode == "signup" && strings.TrimSpace(vals.Username) == "" {
		return errors.New("username is required to create an account")
	}
	return nil
}

// authCmd runs the sign-in or sign-up against the backend.
func (a App) authCmd(vals loginValues) tea.Cmd {
	store, client := a.store, a.client
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if vals.Mode == "signup" {
			_, err = store.SignUp(ctx, client, vals.Username, vals.Email, vals.Password)
			if errors.Is(err, session.ErrLoginRequired) {
				return authDoneMsg{created: true}
			}
		} else {
			_, err = store.SignIn(ctx, client, vals.Email, vals.Password)
		}
		return authDoneMsg{err: err}
	}
}
