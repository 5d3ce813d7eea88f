package main

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/nano-banana-mcp/internal/artifacts"
	"github.com/fpang/nano-banana-mcp/internal/config"
	"github.com/fpang/nano-banana-mcp/internal/gemini"
	"github.com/fpang/nano-banana-mcp/internal/imagegen"
	"github.com/fpang/nano-banana-mcp/internal/logging"
	"github.com/fpang/nano-banana-mcp/internal/server"
)

// runServe resolves the configuration, builds the service stack, and
// blocks on the stdio MCP loop until the client disconnects. Stdout
// carries nothing but protocol frames; everything else goes to stderr.
func runServe(cmd *cobra.Command, args []string) error {
	logging.Init()
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	// A missing or unusable credential is not fatal: the server comes up
	// unconfigured and every tool call returns the configuration-error
	// envelope instead.
	var caller imagegen.Caller
	if cfg.Configured() {
		client, err := gemini.NewClient(cmd.Context(), cfg.APIKey, cfg.Model)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Gemini client; serving unconfigured")
		} else {
			caller = client
		}
	} else {
		log.Warn().Msg("No API key found. Image generation will fail.")
	}

	svc := imagegen.NewService(caller, store, cfg.IncludeBase64)
	srv := server.New(svc, store, cfg, version)

	logging.NewStartupLogger(server.ServerName).
		Version(version).
		Feature("configured", caller != nil).
		Feature("includeBase64", cfg.IncludeBase64).
		Config("model", cfg.Model).
		Config("outputDir", store.Dir()).
		InitDuration(time.Since(start)).
		Log()

	return srv.Run(cmd.Context(), &mcp.StdioTransport{})
}
