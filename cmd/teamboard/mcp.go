package main

import (
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/okian/teamboard/internal/adapters/mcp"
	"github.com/okian/teamboard/pkg/logger"
)

func mcpCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server on stdin/stdout. Logs go to stderr.

Tools exposed:
  score_employee     performance score of one employee
  compare_salary     salary against the market benchmark
  skills_for_task    required and recommended skills of a task category
  tasks_for_skill    task categories that use a skill
  employee_workload  allocations, total and risk tier of one employee
  propose_team       ask the staffing model for a team`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := c.service()
			if err != nil {
				return err
			}

			srv := mcp.NewServer(svc)
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Get().Info(ctx, "teamboard MCP server starting", logger.String("transport", "stdio"))
			return mcpserver.ServeStdio(srv.MCPServer(), mcpserver.WithErrorLogger(errLogger))
		},
	}
}
