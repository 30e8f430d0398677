package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "notetree/internal/adapters/mcp"
	"notetree/internal/config"
	"notetree/internal/logger"
	"notetree/internal/service"
)

func main() {
	cfgFlag := flag.String("config", "", "config file (default is $XDG_CONFIG_HOME/notetree/config.toml)")
	dbFlag := flag.String("db", "", "path to the note database (overrides db_path)")
	flag.Parse()

	cfg, err := config.Load(*cfgFlag)
	if err != nil {
		log.Fatalf("notetree-mcp: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}

	// stdout carries the protocol
	logger.SetOutput(os.Stderr)
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("notetree-mcp: %v", err)
	}

	ctx := context.Background()
	svc, err := service.New(ctx, cfg)
	if err != nil {
		log.Fatalf("notetree-mcp: %v", err)
	}
	defer svc.Close()
	svc.Start(ctx)

	mcpServer := server.NewMCPServer(
		"notetree-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc)
	mcpadapter.RegisterWriteTools(mcpServer, svc)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", err)
		os.Exit(1)
	}
}
