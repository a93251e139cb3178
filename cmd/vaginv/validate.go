// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"vaginv-cli/internal/config"
	"vaginv-cli/internal/source"

	"github.com/spf13/cobra"
)

// validateCmd checks a source file (and the active config) without ever
// invoking the vagrant CLI, so it is safe to run anywhere.
var validateCmd = &cobra.Command{
	Use:   "validate <source>",
	Short: "Validate an inventory source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if _, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile}); err != nil {
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		opts, err := source.Load(args[0])
		if err != nil {
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintf(a.stdout, "%s %s is a valid inventory source (%d path(s))\n",
			SuccessStyle.Render("✓"), args[0], len(opts.Paths))
		return nil
	},
}
