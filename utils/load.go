package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadEnv.
const (
	EnvConfigPath = "DUELPONG_CONFIG"
	EnvListenAddr = "DUELPONG_ADDR"
	EnvLogLevel   = "DUELPONG_LOG_LEVEL"
	EnvLogFormat  = "DUELPONG_LOG_FORMAT"
	EnvFrameRate  = "DUELPONG_FRAME_RATE"
)

// LoadConfig overlays the file at path on DefaultConfig. The format is
// picked from the extension: .yaml/.yml, .toml or .json.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	case ".toml":
		err = toml.Unmarshal(raw, &cfg)
	case ".json":
		err = json.Unmarshal(raw, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnv reads an optional .env file, loads the config file named by
// DUELPONG_CONFIG and applies the host overrides on top.
func LoadEnv() (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := LoadConfig(os.Getenv(EnvConfigPath))
	if err != nil {
		return cfg, err
	}

	cfg.ListenAddr = getEnv(EnvListenAddr, cfg.ListenAddr)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.FrameRate = getEnvInt(EnvFrameRate, cfg.FrameRate)

	return cfg, cfg.Validate()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// WriteConfig encodes cfg to path, picking the format from the extension
// the same way LoadConfig does.
func WriteConfig(path string, cfg Config) error {
	var (
		raw []byte
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(cfg)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		raw = buf.Bytes()
	case ".json":
		raw, err = json.MarshalIndent(cfg, "", "  ")
	default:
		return fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
