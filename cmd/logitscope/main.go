package main

import "github.com/probelab/logitscope/internal/commands"

func main() {
	commands.Execute()
}
