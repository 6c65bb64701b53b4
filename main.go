// SPDX-License-Identifier: MPL-2.0

// mimectl manages XDG default-application associations (mimeapps.list)
// with canonical MIME alias handling.
package main

import cmd "mimectl/cmd/mimectl"

func main() {
	cmd.Execute()
}
