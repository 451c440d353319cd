package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to goldsuite! Let's configure the dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Test password.
	passwordPrompt := promptui.Prompt{
		Label:   "Test login password",
		Default: cfg.Auth.Password,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("password cannot be empty")
			}
			return nil
		},
	}
	if cfg.Auth.Password, err = passwordPrompt.Run(); err != nil {
		return nil, fmt.Errorf("password: %w", err)
	}

	// 3. Fixture source.
	sourcePrompt := promptui.Select{
		Label: "Fixture source",
		Items: []string{
			"embedded (built-in example data)",
			"sqlite   (seeded with goldsuite seed)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fixture source: %w", err)
	}
	if sourceIdx == 1 {
		dbPrompt := promptui.Prompt{
			Label:   "SQLite database path",
			Default: "goldsuite.db",
		}
		if cfg.Fixtures.Database, err = dbPrompt.Run(); err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{"console", "json"},
	}
	if _, cfg.Log.Format, err = formatPrompt.Run(); err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if cfg.Fixtures.Database != "" {
		fmt.Printf("Run goldsuite seed before goldsuite serve to fill %s.\n", cfg.Fixtures.Database)
	}
	return cfg, nil
}
