package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration, loaded from config.toml next to
// the executable.
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Imports ImportsConfig `toml:"imports"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig data directory settings.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ImportsConfig import defaults applied when the caller omits them.
type ImportsConfig struct {
	DefaultShifts []string `toml:"default_shifts"`
}

// LoggingConfig slog settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig defaults used when config.toml is absent.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8090,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Imports: ImportsConfig{
			DefaultShifts: []string{"lunch"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetExeDir directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory,
// falling back to defaults when the file does not exist.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureDataDir creates the data directory next to the executable and
// returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
