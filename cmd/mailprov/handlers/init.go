package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mailprov/mailprov/internal/config"
	"github.com/mailprov/mailprov/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.WriteFile

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !isInteractiveTTY() {
		return fmt.Errorf("init requires an interactive terminal; write %s by hand instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToFileConfig()

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("mailprov - tenant onboarding for your mail platform")
	fmt.Println("====================================================")
	fmt.Println()
	fmt.Println("This wizard records operator defaults (API target, quota, branding).")
	fmt.Println("Per-tenant values are always given as flags to 'mailprov provision'.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.FileConfig) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Defaults")
	fmt.Println("--------")
	fmt.Printf("  Server:      %s\n", cfg.Server)
	fmt.Printf("  Super-admin: %s\n", cfg.Superadmin)
	fmt.Printf("  Quota:       %d GB\n", cfg.Quota/1073741824)
	if cfg.Branding.Name != "" {
		fmt.Printf("  Brand:       %s\n", cfg.Branding.Name)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Set the super-admin secret:\n")
	fmt.Printf("     export %s=<secret>\n", config.EnvSuperadminSecret)
	fmt.Println()
	fmt.Println("  2. Provision your first tenant:")
	fmt.Println("     mailprov provision --domain clienta.com --org \"Client A Inc.\" \\")
	fmt.Println("       --admin admin@clienta.com --password <password>")
	fmt.Println()
}
