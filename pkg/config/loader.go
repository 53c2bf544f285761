package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// maestroYAML represents the complete maestro.yaml file structure. Every
// section is optional; unset sections fall back to built-in defaults.
type maestroYAML struct {
	LLM       *LLMConfig       `yaml:"llm"`
	Planner   *PlannerConfig   `yaml:"planner"`
	Approval  *ApprovalConfig  `yaml:"approval"`
	Queue     *QueueConfig     `yaml:"queue"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Gateway   *GatewayConfig   `yaml:"gateway"`
	Retention *RetentionConfig `yaml:"retention"`
	Notifier  *NotifierConfig  `yaml:"notifier"`
	Server    *ServerConfig    `yaml:"server"`
	Features  *FeatureFlags    `yaml:"features"`
}

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. This is the primary entry point.
//
// Steps performed:
//  1. Read maestro.yaml from configDir
//  2. Expand {{.VAR}} environment references
//  3. Parse YAML
//  4. Merge user values over built-in defaults
//  5. Validate with field-pathed errors
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"endpoints", stats.Endpoints,
		"features_enabled", stats.Features)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	raw, err := loadMaestroYAML(configDir)
	if err != nil {
		return nil, NewLoadError("maestro.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
		LLM:       &LLMConfig{},
		Planner:   DefaultPlannerConfig(),
		Approval:  DefaultApprovalConfig(),
		Queue:     DefaultQueueConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Gateway:   DefaultGatewayConfig(),
		Retention: DefaultRetentionConfig(),
		Notifier:  DefaultNotifierConfig(),
		Server:    DefaultServerConfig(),
		Features:  DefaultFeatureFlags(),
	}

	if raw.LLM != nil {
		cfg.LLM = raw.LLM
	}
	if err := mergeSection("planner", cfg.Planner, raw.Planner); err != nil {
		return nil, err
	}
	if err := mergeSection("approval", cfg.Approval, raw.Approval); err != nil {
		return nil, err
	}
	if err := mergeSection("queue", cfg.Queue, raw.Queue); err != nil {
		return nil, err
	}
	if err := mergeSection("sandbox", cfg.Sandbox, raw.Sandbox); err != nil {
		return nil, err
	}
	if err := mergeSection("gateway", cfg.Gateway, raw.Gateway); err != nil {
		return nil, err
	}
	if err := mergeSection("retention", cfg.Retention, raw.Retention); err != nil {
		return nil, err
	}
	if err := mergeSection("notifier", cfg.Notifier, raw.Notifier); err != nil {
		return nil, err
	}
	if err := mergeSection("server", cfg.Server, raw.Server); err != nil {
		return nil, err
	}
	if raw.Features != nil {
		cfg.Features = raw.Features
	}

	// Endpoints with no concurrency cap get a sane floor.
	for i := range cfg.LLM.Endpoints {
		if cfg.LLM.Endpoints[i].MaxConcurrent <= 0 {
			cfg.LLM.Endpoints[i].MaxConcurrent = 1
		}
	}

	return cfg, nil
}

// mergeSection merges user-provided YAML values into built-in defaults.
// Non-zero user values override; unset values keep the default.
func mergeSection[T any](name string, dst *T, src *T) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return nil
}

// loadMaestroYAML reads and parses maestro.yaml. A missing file is not an
// error: the built-in defaults apply (endpoints then come from CRUD).
func loadMaestroYAML(configDir string) (*maestroYAML, error) {
	var raw maestroYAML

	path := filepath.Join(configDir, "maestro.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("maestro.yaml not found, using built-in defaults", "path", path)
			return &raw, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &raw, nil
}
