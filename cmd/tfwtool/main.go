// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/afgtfw/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
