// Package main implements the MCP server for dev.to article drafts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/devto-mcp/internal/config"
	"github.com/taigrr/devto-mcp/internal/drafts"
	"github.com/taigrr/devto-mcp/internal/logging"
	"github.com/taigrr/devto-mcp/internal/pathfilter"
)

var (
	draftsService *drafts.Service
	logger        = zap.NewNop()
)

func main() {
	cmd := &cobra.Command{
		Use:   "devto-mcp [drafts-dir]",
		Short: "MCP server for preparing dev.to articles",
		Long: `devto-mcp is a Model Context Protocol (MCP) server that checks
dev.to articles before they are submitted. It validates tags and
images, reconciles YAML front matter with explicit parameters,
reports liquid tags and converts them to portable markdown for
cross-posting.`,
		Example: `devto-mcp ~/writing/drafts
devto-mcp --config devto-mcp.yml --log-level debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServer,
	}

	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.DraftsDir = args[0]
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	draftsService = drafts.New(cfg.DraftsDir, pathfilter.New(cfg.Ignore),
		drafts.WithWorkers(cfg.Workers),
		drafts.WithLogger(logger.Named("drafts")),
	)

	logger.Info("starting server",
		zap.String("version", version),
		zap.String("drafts_dir", draftsService.Root()),
		zap.Int("workers", cfg.Workers),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "devto-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
