// melonctl inspects and maintains the keyword counts and chart snapshot
// from the command line.
package main

import (
	"os"

	"melonrank/cmd/melonctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
