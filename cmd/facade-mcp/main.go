package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	facademcp "github.com/pockettcg/facade/internal/mcp"
	"github.com/pockettcg/facade/internal/version"
)

func main() {
	facadeURL := flag.String("facade-url", "http://localhost:8080", "base URL of the facade API server")
	flag.Parse()

	facademcp.SetBaseURL(*facadeURL)

	s := server.NewMCPServer("pockettcg-facade", version.Version)
	facademcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
