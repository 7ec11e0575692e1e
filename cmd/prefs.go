package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagPrefMonthStart int
	flagPrefUsername   string
	flagPrefEmail      string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update account preferences",
	RunE:  runPrefs,
}

func init() {
	prefsCmd.Flags().IntVar(&flagPrefMonthStart, "month-start-day", 0, "Day the budget period begins (1-28)")
	prefsCmd.Flags().StringVar(&flagPrefUsername, "username", "", "New display name")
	prefsCmd.Flags().StringVar(&flagPrefEmail, "email", "", "New account email")

	rootCmd.AddCommand(prefsCmd)
}

func runPrefs(cmd *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()
	changed := false

	if cmd.Flags().Changed("month-start-day") {
		if flagPrefMonthStart < 1 || flagPrefMonthStart > 28 {
			return fmt.Errorf("month start day %d out of range 1-28", flagPrefMonthStart)
		}
		if err := env.client.UpdatePreferences(ctx, flagPrefMonthStart); err != nil {
			return finishErr(err)
		}
		changed = true
	}

	if cmd.Flags().Changed("username") || cmd.Flags().Changed("email") {
		profile, err := env.client.GetProfile(ctx)
		if err != nil {
			return finishErr(err)
		}
		if cmd.Flags().Changed("username") {
			if strings.TrimSpace(flagPrefUsername) == "" {
				return fmt.Errorf("--username must not be empty")
			}
			profile.Username = flagPrefUsername
		}
		if cmd.Flags().Changed("email") {
			if strings.TrimSpace(flagPrefEmail) == "" {
				return fmt.Errorf("--email must not be empty")
			}
			profile.Email = flagPrefEmail
		}
		if _, err := env.client.UpdateProfile(ctx, profile); err != nil {
			return finishErr(err)
		}
		changed = true
	}

	if changed {
		env.store.Refresh(ctx, env.client)
		infof("Preferences updated.")
	}

	sess, _ := env.store.Current()
	fmt.Printf("  Username:        %s\n", sess.Username)
	fmt.Printf("  Email:           %s\n", sess.Email)
	fmt.Printf("  Month start day: %d\n", sess.MonthStartDay)
	return nil
}
