package main

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/fpang/nano-banana-mcp/internal/config"
	"github.com/fpang/nano-banana-mcp/internal/logging"
)

// runConfig prints the configuration the server would start with, or
// with --choose-dir opens a native directory picker and saves the
// selection to the user-level config file.
func runConfig(cmd *cobra.Command, args []string) error {
	logging.Init()

	if chooseDirFlag {
		return chooseOutputDir()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	configPath, err := config.FilePath()
	if err != nil {
		return err
	}

	fmt.Printf("API key configured: %t\n", cfg.Configured())
	fmt.Printf("Model:              %s\n", cfg.Model)
	fmt.Printf("Output directory:   %s\n", cfg.OutputDir)
	fmt.Printf("Include base64:     %t\n", cfg.IncludeBase64)
	fmt.Printf("Config file:        %s\n", configPath)
	return nil
}

// chooseOutputDir updates only output_dir in the config file; an
// api_key already stored there is carried over untouched.
func chooseOutputDir() error {
	dir, err := zenity.SelectFile(
		zenity.Directory(),
		zenity.Title("Select output directory for generated images"),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		fmt.Println("Selection canceled; configuration unchanged.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory selection failed: %w", err)
	}

	fileCfg, err := config.ReadFileConfig()
	if err != nil {
		return err
	}
	fileCfg.OutputDir = dir

	path, err := config.WriteFileConfig(fileCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Output directory %s saved to %s\n", dir, path)
	return nil
}
