package main

import (
	"os"

	"github.com/smabank/bank/cmd/bank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
