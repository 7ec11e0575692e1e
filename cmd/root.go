package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/log"
	"github.com/balaji-matta18/spendbuddy/internal/route"
	"github.com/balaji-matta18/spendbuddy/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL  string
	flagOffline bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "spendbuddy",
	Short: "Personal finance tracker CLI",
	Long:  "Track expenses, budgets, and reports against your SpendBuddy backend.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Serve read-only views from the local snapshot")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// appEnv bundles the config, session store, and API client shared by every
// command.
type appEnv struct {
	cfg    config.Config
	store  *session.Store
	client *api.Client
}

// newEnv builds the shared environment: load config, restore the persisted
// session, and wire the 401 hook that clears it.
func newEnv() (*appEnv, error) {
	env, err := newEnvDeferred()
	if err != nil {
		return nil, err
	}
	env.store.Restore()
	return env, nil
}

// newEnvDeferred builds the environment without restoring the session. The
// TUI runs the restore itself so its guard can show the loading placeholder
// until the outcome is known.
func newEnvDeferred() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}

	log.Init(config.Dir())

	store := session.NewStore(config.Dir())
	client := api.NewClient(cfg.API.BaseURL, store)
	client.OnSessionExpired(store.Clear)

	return &appEnv{cfg: cfg, store: store, client: client}, nil
}

// requireSession is the CLI's protected-route guard.
func (e *appEnv) requireSession() error {
	if route.Decide(route.Protected, e.store.State()) == route.RedirectLogin {
		return errors.New("not signed in: run `spendbuddy login` first")
	}
	return nil
}

// finishErr rewrites an expired-session failure into the login hint so every
// command reports it the same way.
func finishErr(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New("session expired: run `spendbuddy login` to sign in again")
	}
	return err
}

func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
