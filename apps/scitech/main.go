package main

import "github.com/quatton/scitech/apps/scitech/cmd"

func main() {
	cmd.Execute()
}
