// SPDX-License-Identifier: MPL-2.0

package main

import cmd "vaginv-cli/cmd/vaginv"

func main() {
	cmd.Execute()
}
