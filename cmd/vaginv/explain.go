// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"vaginv-cli/internal/issue"

	"github.com/spf13/cobra"
)

// explainCmd renders a diagnostic catalog entry as styled markdown.
// Without arguments it lists the known diagnostic names.
var explainCmd = &cobra.Command{
	Use:   "explain [diagnostic]",
	Short: "Explain a diagnostic by name",
	Long: `Explain a diagnostic by name, with suggestions on how to resolve it.

Run without arguments to list every known diagnostic.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeIssueSlugs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Fprintln(a.stdout, SubtitleStyle.Render("Known diagnostics:"))
			for _, slug := range issue.Slugs() {
				fmt.Fprintln(a.stdout, "  "+CmdStyle.Render(slug))
			}
			return nil
		}

		entry := issue.Lookup(args[0])
		if entry == nil {
			fmt.Fprintf(a.stderr, "%sunknown diagnostic %q (known: %s)\n",
				ErrorStyle.Render("Error: "), args[0], strings.Join(issue.Slugs(), ", "))
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		rendered, err := entry.Render("dark")
		if err != nil {
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintln(a.stdout, rendered)
		return nil
	},
}

// completeIssueSlugs provides shell completion over the diagnostic catalog.
func completeIssueSlugs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return issue.Slugs(), cobra.ShellCompDirectiveNoFileComp
}
