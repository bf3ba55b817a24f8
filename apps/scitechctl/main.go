package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/quatton/scitech/apps/scitechctl/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "scitechctl crashed: %v\n", r)
			if os.Getenv("SCITECH_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}
