// Package config resolves the server's runtime configuration from
// environment variables and the user-level JSON config file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/fpang/nano-banana-mcp/internal/gemini"
)

const (
	configFileName = ".nano_banana_config.json"
	outputDirName  = "mcp_generated_images"
	projectMarker  = ".mcp.json"
)

// FileConfig mirrors the user-level config file at ~/.nano_banana_config.json.
type FileConfig struct {
	APIKey    string `json:"api_key,omitempty"`
	OutputDir string `json:"output_dir,omitempty"`
}

// Config is the resolved service configuration. It is built once at
// startup and passed explicitly to the components that need it.
type Config struct {
	APIKey        string
	Model         string
	OutputDir     string
	IncludeBase64 bool
}

// Configured reports whether an upstream credential is present.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

// Load resolves the full configuration. A .env file in the working
// directory is honored if present.
//
// Credential priority:
//  1. GEMINI_API_KEY environment variable
//  2. api_key in ~/.nano_banana_config.json
//
// A missing config file is not an error; a malformed one is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	fileCfg, err := ReadFileConfig()
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey != "" {
		log.Debug().Msg("Using API key from environment variable")
	} else if fileCfg.APIKey != "" {
		apiKey = fileCfg.APIKey
		log.Debug().Msg("Using API key from config file")
	}

	return &Config{
		APIKey:        apiKey,
		Model:         gemini.GetModelName(),
		OutputDir:     resolveOutputDir(fileCfg),
		IncludeBase64: includeBase64FromEnv(),
	}, nil
}

// resolveOutputDir determines where generated images are written.
// Priority order:
//  1. NANO_BANANA_OUTPUT_DIR environment variable
//  2. output_dir in ~/.nano_banana_config.json
//  3. Project root detected via a .mcp.json marker above the executable
//  4. Directory one level above the install directory
//  5. ~/mcp_generated_images
func resolveOutputDir(fileCfg FileConfig) string {
	if dir := os.Getenv("NANO_BANANA_OUTPUT_DIR"); dir != "" {
		log.Debug().Str("dir", dir).Msg("Using output directory from environment variable")
		return expandHome(dir)
	}

	if fileCfg.OutputDir != "" {
		log.Debug().Str("dir", fileCfg.OutputDir).Msg("Using output directory from config file")
		return expandHome(fileCfg.OutputDir)
	}

	if dir, ok := projectRootDir(); ok {
		log.Debug().Str("dir", dir).Msg("Using output directory under detected project root")
		return dir
	}

	if dir, ok := installAdjacentDir(); ok {
		log.Debug().Str("dir", dir).Msg("Using output directory adjacent to install location")
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return outputDirName
	}
	return filepath.Join(home, outputDirName)
}

// projectRootDir searches upward from the executable for a .mcp.json
// project marker. The first ancestor carrying one wins, provided it is
// writable; an unwritable marker directory ends the search.
func projectRootDir() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}

	dir := filepath.Dir(exe)
	for {
		if _, err := os.Stat(filepath.Join(dir, projectMarker)); err == nil {
			if dirWritable(dir) {
				return filepath.Join(dir, outputDirName), true
			}
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// installAdjacentDir places artifacts one level above the install
// directory. Skipped for bin-style installs, where the binary sits in a
// shared bin directory whose parent is not project space.
func installAdjacentDir() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}

	exeDir := filepath.Dir(exe)
	if filepath.Base(exeDir) == "bin" {
		return "", false
	}

	parent := filepath.Dir(exeDir)
	if !dirWritable(parent) {
		return "", false
	}
	return filepath.Join(parent, outputDirName), true
}

// dirWritable probes dir by creating and removing a temporary file.
func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".nano-banana-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func includeBase64FromEnv() bool {
	switch strings.ToLower(os.Getenv("NANO_BANANA_INCLUDE_BASE64")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// FilePath returns the location of the user-level config file.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// ReadFileConfig loads ~/.nano_banana_config.json. A missing file
// returns a zero FileConfig.
func ReadFileConfig() (FileConfig, error) {
	var fileCfg FileConfig

	path, err := FilePath()
	if err != nil {
		return fileCfg, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileCfg, nil
	}
	if err != nil {
		return fileCfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return fileCfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fileCfg, nil
}

// WriteFileConfig persists the user-level config file and returns its path.
func WriteFileConfig(fileCfg FileConfig) (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(fileCfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
