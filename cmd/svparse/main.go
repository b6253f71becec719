package main

import (
	"os"

	"github.com/hdlcore/svparse/cmd/svparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
