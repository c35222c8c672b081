package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

const instructions = `testgen turns French requirement documents into business rules,
control points (PDC) and test cases. Call load_document first; it returns
the session_id every other tool takes. Stages run in order: extract_rules,
then import_control_points (optional) and match_rules or
build_control_points, then generate_test_cases. Reloading a document
clears every later stage. export writes a Word document (or the word
cloud PNG) to disk. list_sessions shows open sessions; close_session
discards one.`

// Server exposes one workbench over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server

	// writeFile is swapped by tests.
	writeFile func(path string, data []byte) error
}

// NewServer registers the tools and resources. Ports.Workbench is required.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "testgen", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
		writeFile: writeFile,
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving testgen %s on stdio", Version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
