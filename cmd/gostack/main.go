package main

import "github.com/philipparndt/gostack/cmd"

func main() {
	cmd.Execute()
}
