package main

import (
	"github.com/panbanda/mood/internal/mcpserver"
	"github.com/urfave/cli/v2"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes the MOOD
analysis as a tool that LLMs can invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "mood": {
        "command": "mood",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - analyze_mood          MOOD ratios, NOC and DIT for a Java source tree

Available prompts:
  - review-inheritance    Guided review of the inheritance design`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version, mcpserver.WithLogger(logger))
	return server.Run(c.Context)
}
