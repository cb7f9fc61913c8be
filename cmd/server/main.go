package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/probelab/logitscope/internal/tools"
)

func main() {
	s := server.NewMCPServer(
		"logitscope",
		"1.0.0",
	)

	tools.Register(s)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
