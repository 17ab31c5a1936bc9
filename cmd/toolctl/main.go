// Command toolctl is the boundary CLI over the transactional component
// installer core: install, uninstall, and list toolchain components within
// an install prefix.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package main

import (
	"fmt"
	"os"

	"toolchainctl/cmd/toolctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toolctl:", err)
		os.Exit(cmd.ExitCodeFor(err))
	}
}
