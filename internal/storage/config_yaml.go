package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zenpomodoro/internal/core/model"
	"zenpomodoro/internal/tips"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file read from the application config directory.
const ConfigFileName = "config.yaml"

// Environment variables that override the API key from the file, in order.
var apiKeyEnv = []string{"API_KEY", "GEMINI_API_KEY"}

// Config is the startup configuration. It is only ever read. Minute fields
// that are missing or not positive integers use their defaults.
type Config struct {
	Settings model.Settings
	Gemini   tips.GeminiConfig
	LogLevel string
}

type yamlGemini struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type yamlConfig struct {
	FocusMinutes      string     `yaml:"focus_minutes"`
	ShortBreakMinutes string     `yaml:"short_break_minutes"`
	LongBreakMinutes  string     `yaml:"long_break_minutes"`
	Gemini            yamlGemini `yaml:"gemini"`
	LogLevel          string     `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Settings: model.DefaultSettings(),
		Gemini: tips.GeminiConfig{
			Model:   tips.DefaultModel,
			Timeout: tips.DefaultTimeout,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads config.yaml from configDir.
// If the config file does not exist, default settings are returned. Invalid
// YAML returns the defaults with the error. A field of the wrong shape keeps
// its default while the other fields still load, and the error is returned
// alongside the config.
func LoadConfig(configDir string) (Config, error) {
	config := DefaultConfig()
	configPath := filepath.Join(configDir, ConfigFileName)

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(rawData, &root); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	var fileData yamlConfig
	fieldErr := decodeFields(&root, map[string]any{
		"focus_minutes":       &fileData.FocusMinutes,
		"short_break_minutes": &fileData.ShortBreakMinutes,
		"long_break_minutes":  &fileData.LongBreakMinutes,
		"log_level":           &fileData.LogLevel,
		"gemini": map[string]any{
			"api_key":         &fileData.Gemini.APIKey,
			"model":           &fileData.Gemini.Model,
			"timeout_seconds": &fileData.Gemini.TimeoutSeconds,
		},
	})

	applyYamlConfig(&config, fileData)
	if fieldErr != nil {
		return config, fmt.Errorf("parse config yaml: %w", fieldErr)
	}
	return config, nil
}

// decodeFields decodes each known key of a mapping node into its target on
// its own. Nested maps describe nested mappings. Unknown keys are ignored.
func decodeFields(node *yaml.Node, fields map[string]any) error {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	var errs []error
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]
		switch target := fields[key].(type) {
		case nil:
		case map[string]any:
			if err := decodeFields(value, target); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		default:
			if err := value.Decode(target); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides the API key from the environment.
func (config Config) ApplyEnv(getenv func(string) string) Config {
	for _, name := range apiKeyEnv {
		if value := strings.TrimSpace(getenv(name)); value != "" {
			config.Gemini.APIKey = value
			return config
		}
	}
	return config
}

func applyYamlConfig(config *Config, fileData yamlConfig) {
	config.Settings = model.ParseSettings(fileData.FocusMinutes, fileData.ShortBreakMinutes, fileData.LongBreakMinutes)

	config.Gemini.APIKey = strings.TrimSpace(fileData.Gemini.APIKey)
	if modelName := strings.TrimSpace(fileData.Gemini.Model); modelName != "" {
		config.Gemini.Model = modelName
	}
	if fileData.Gemini.TimeoutSeconds > 0 {
		config.Gemini.Timeout = time.Duration(fileData.Gemini.TimeoutSeconds) * time.Second
	}
	if fileData.LogLevel != "" {
		config.LogLevel = fileData.LogLevel
	}
}
