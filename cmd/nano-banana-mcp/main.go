package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is the release identity baked into the binary:
//
//	go build -ldflags="-X main.version=v1.2.3"
//
// In development (go run), "dev" is used.
var version = "dev"

// CLI flags
var chooseDirFlag bool

// rootCmd serves the MCP loop when invoked without a subcommand, which
// is how MCP client configurations launch the binary.
var rootCmd = &cobra.Command{
	Use:   "nano-banana-mcp",
	Short: "MCP server for Gemini image generation",
	Long: `Nano Banana MCP exposes Google Gemini image generation, editing, and
blending as MCP tools over stdio, along with a gallery of generated
images, documentation resources, and prompt templates.

The server reads its credential from the GEMINI_API_KEY environment
variable or ~/.nano_banana_config.json and writes generated images into
a directory resolved at startup (NANO_BANANA_OUTPUT_DIR, the config
file, a detected project root, or ~/mcp_generated_images).

Examples:
  nano-banana-mcp                # serve MCP over stdio (default)
  nano-banana-mcp serve          # same, explicit
  nano-banana-mcp config         # print the resolved configuration
  nano-banana-mcp config --choose-dir  # pick the output directory
  nano-banana-mcp version`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	RunE:  runServe,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nano-banana-mcp %s\n", version)
	},
}

func init() {
	configCmd.Flags().BoolVar(&chooseDirFlag, "choose-dir", false, "Open a directory picker and save the choice to ~/.nano_banana_config.json")
	rootCmd.AddCommand(serveCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
