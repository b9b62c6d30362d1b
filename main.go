package main

import "github.com/rail44/tally/cmd"

func main() {
	cmd.Execute()
}
