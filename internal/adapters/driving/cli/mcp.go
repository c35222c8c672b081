package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can drive
the pipeline: load a document, extract rules, import and match control
points, generate test cases and export the Word documents.

The server communicates over stdio using JSON-RPC.

Assistant configuration (mcpServers section):
  {
    "mcpServers": {
      "testgen": {
        "command": "/path/to/testgen",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Workbench: workbenchService,
		Settings:  settingsService,
	})
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
