package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SecretKeyEnv overrides ServerConfig.SecretKey when set.
const SecretKeyEnv = "TUMMY_SECRET_KEY"

// load resolves a config by name.
// Search order: customPath -> ~/.tummy/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default
func load[T any](name, customPath string, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var userCfg T
			if err := yaml.Unmarshal(data, &userCfg); err == nil {
				return userCfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var localCfg T
		if err := yaml.Unmarshal(data, &localCfg); err == nil {
			return localCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadRunner loads Tummy Runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner", customPath, DefaultRunnerConfig)
}

// LoadWheel loads Habit Wheel configuration.
// A config with no labels is rejected, since every spin must resolve to one.
func LoadWheel(customPath string) (WheelConfig, error) {
	cfg, err := load("wheel", customPath, DefaultWheelConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Labels) == 0 {
		return cfg, fmt.Errorf("wheel config has no labels")
	}
	return cfg, nil
}

// LoadQuiz loads the Tummy Quiz question set.
// Every question needs at least one option to be answerable.
func LoadQuiz(customPath string) (QuizConfig, error) {
	cfg, err := load("quiz", customPath, DefaultQuizConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Questions) == 0 {
		return cfg, fmt.Errorf("quiz config has no questions")
	}
	for i, q := range cfg.Questions {
		if len(q.Options) == 0 {
			return cfg, fmt.Errorf("quiz question %d has no options", i+1)
		}
	}
	return cfg, nil
}

// LoadServer loads the content service configuration and applies env overrides.
func LoadServer(customPath string) (ServerConfig, error) {
	cfg, err := load("server", customPath, DefaultServerConfig)
	if err != nil {
		return cfg, err
	}
	if secret := os.Getenv(SecretKeyEnv); secret != "" {
		cfg.SecretKey = secret
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tummy", "configs", filename)
}
