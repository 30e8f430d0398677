package main

import "notetree/cmd/notetree-cli/cmd"

func main() {
	cmd.Execute()
}
