/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"opal",
		"Opal catalog utility",
		args,
		ver,
		newDDLCmd(),
	)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
