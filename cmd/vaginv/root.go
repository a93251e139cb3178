// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vaginv.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"vaginv-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "vaginv",
		Short: "Ansible dynamic inventory for Vagrant environments",
		Long: TitleStyle.Render("vaginv") + SubtitleStyle.Render(" - Ansible dynamic inventory for Vagrant environments") + `

vaginv turns running Vagrant VMs into an Ansible inventory. It shells out
to 'vagrant ssh-config' for every configured project path, groups the
discovered VMs, and prints the inventory document Ansible's script
protocol expects.

Inventory sources are small YAML files (ending in vagrant.yml or
dynamic.yml) listing the Vagrant project paths to scan.

` + SubtitleStyle.Render("Examples:") + `
  vaginv list ./vagrant.yml            Print the full inventory as JSON
  vaginv list --format yaml ./vagrant.yml
  vaginv host ./vagrant.yml 10.1.1.1   Print one host's variables
  vaginv validate ./vagrant.yml        Check a source file without running vagrant
  vaginv cache list                    Show stored results
  vaginv explain vagrant-timeout       Explain a diagnostic`,
	}

	appOnce sync.Once
	app     *App
	appErr  error
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vaginv/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(explainCmd)
}

// getApp returns the process-wide App, building it on first use.
func getApp() (*App, error) {
	appOnce.Do(func() {
		app, appErr = NewApp(Dependencies{})
	})
	return app, appErr
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
