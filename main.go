package main

import "github.com/notargets/poiseuille/cmd"

func main() {
	cmd.Execute()
}
