package main

import (
	"fmt"
	"os"

	"github.com/vfg2006/sales-dashboard-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
