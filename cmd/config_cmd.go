package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setupCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", cfg.API.BaseURL)
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:      %s\n", cfg.General.Currency)
	fmt.Printf("    Default range: %s\n", cfg.General.DefaultRange)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `spendbuddy setup` to reconfigure.")
	return nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to SpendBuddy!")
	fmt.Println()

	// 1. Backend URL
	fmt.Println("  1. Backend URL")
	fmt.Printf("     Current: %s\n", cfg.API.BaseURL)
	fmt.Print("     > ")
	baseURL, _ := reader.ReadString('\n')
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	fmt.Println()

	// 2. Currency symbol
	fmt.Println("  2. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 3. Default report range
	fmt.Println("  3. Default report range")
	fmt.Println("     (1) 3 months")
	fmt.Println("     (2) 6 months [default]")
	fmt.Println("     (3) all time")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.DefaultRange = api.Range3M
	case "3":
		cfg.General.DefaultRange = api.RangeAll
	default:
		cfg.General.DefaultRange = api.Range6M
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Flexoki Light")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "flexoki-light"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `spendbuddy setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
