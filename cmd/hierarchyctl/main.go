// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"gitlab.com/fisherprime/hierarchy/v4/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
