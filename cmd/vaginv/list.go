// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"vaginv-cli/internal/inventory"

	"github.com/spf13/cobra"
)

var (
	listFormat  string
	listNoCache bool

	listCmd = &cobra.Command{
		Use:   "list <source>",
		Short: "Print the full inventory document",
		Long: `Print the inventory document for every Vagrant project path listed in
the source file, in the shape Ansible's script protocol expects from
'--list': one entry per group plus '_meta.hostvars'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			out, err := a.Inventory.List(cmd.Context(), ListRequest{
				SourcePath: args[0],
				Format:     inventory.Format(listFormat),
				NoCache:    listNoCache,
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
)

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", string(inventory.FormatJSON), "output format (json or yaml)")
	listCmd.Flags().BoolVar(&listNoCache, "no-cache", false, "bypass cached results for this run")
}
