// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hostCmd implements the '--host' half of Ansible's script protocol: the
// variables of one inventory host as a JSON object. Unknown hosts print an
// empty object, not an error.
var hostCmd = &cobra.Command{
	Use:   "host <source> <hostname>",
	Short: "Print the variables of one inventory host",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		out, err := a.Inventory.Host(cmd.Context(), HostRequest{
			SourcePath: args[0],
			HostName:   args[1],
			ConfigPath: cfgFile,
			Verbose:    verbose,
		})
		if err != nil {
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintln(a.stdout, string(out))
		return nil
	},
}
