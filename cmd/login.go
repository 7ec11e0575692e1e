package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/route"
	"github.com/balaji-matta18/spendbuddy/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
	flagUsername string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the SpendBuddy backend",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted if omitted)")
	signupCmd.Flags().StringVar(&flagUsername, "username", "", "Account username")
	signupCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted if omitted)")
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

func prompt(label string) string {
	fmt.Printf("  %s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func runLogin(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}

	// Login is the one public screen: an active session bounces to the
	// dashboard instead of re-authenticating.
	if route.Decide(route.Public, env.store.State()) == route.RedirectDashboard {
		sess, _ := env.store.Current()
		fmt.Printf("  Already signed in as %s. Run `spendbuddy logout` to switch accounts.\n", sess.Username)
		return nil
	}

	email := flagEmail
	if email == "" {
		email = prompt("Email")
	}
	password := flagPassword
	if password == "" {
		password = prompt("Password")
	}
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	sess, err := env.store.SignIn(context.Background(), env.client, email, password)
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			return err
		}
		return fmt.Errorf("sign in failed: %w", err)
	}

	fmt.Printf("\n  Welcome back, %s!\n", sess.Username)
	return nil
}

func runSignup(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}

	username := flagUsername
	if username == "" {
		username = prompt("Username")
	}
	email := flagEmail
	if email == "" {
		email = prompt("Email")
	}
	password := flagPassword
	if password == "" {
		password = prompt("Password")
	}
	if username == "" || email == "" || password == "" {
		return errors.New("username, email, and password are required")
	}

	sess, err := env.store.SignUp(context.Background(), env.client, username, email, password)
	if errors.Is(err, session.ErrLoginRequired) {
		fmt.Println("\n  Account created. Please log in with `spendbuddy login`.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Printf("\n  Account created. Welcome, %s!\n", sess.Username)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}

	env.store.SignOut()
	fmt.Println("  Logged out successfully!")
	return nil
}

func runWhoami(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	sess, _ := env.store.Current()
	fmt.Printf("  %s <%s>\n", sess.Username, sess.Email)
	if len(sess.Roles) > 0 {
		fmt.Printf("  Roles: %s\n", strings.Join(sess.Roles, ", "))
	}
	fmt.Printf("  Month starts on day %d\n", sess.MonthStartDay)
	return nil
}
