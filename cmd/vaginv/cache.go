// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"vaginv-cli/internal/cache"
	"vaginv-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage stored inventory results",
	}

	cacheListCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored inventory results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			store, err := cacheStore(cmd, a)
			if err != nil {
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			entries, err := store.Entries()
			if err != nil {
				fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}
			if len(entries) == 0 {
				fmt.Fprintln(a.stdout, SubtitleStyle.Render("cache is empty"))
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(a.stdout, "%s  %s  %s\n",
					CmdStyle.Render(e.Key), e.StoredAt.Format(time.RFC3339), e.Source)
			}
			return nil
		},
	}

	cacheClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored inventory results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			store, err := cacheStore(cmd, a)
			if err != nil {
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			if err := store.Clear(); err != nil {
				fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			fmt.Fprintln(a.stdout, SuccessStyle.Render("✓")+" cache cleared")
			return nil
		},
	}
)

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

// cacheStore resolves the effective cache directory from config and returns
// a file store over it. Errors are already printed when this returns.
func cacheStore(cmd *cobra.Command, a *App) (*cache.FileStore, error) {
	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return nil, err
	}
	dir, err := config.ResolveCacheDir(cfg)
	if err != nil {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return nil, err
	}
	return cache.NewFileStore(dir), nil
}
