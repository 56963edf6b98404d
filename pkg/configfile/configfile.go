// Package configfile manages the launcher's persistent configuration.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/vanboompow/moltworker/pkg/environment"
)

const (
	DefaultConfigDir  = ".moltworker"
	DefaultConfigFile = "config.yaml"

	// DefaultImage is the clawdbot image used when the config does not name one.
	DefaultImage = "ghcr.io/vanboompow/clawdbot:latest"
)

// Config is what lives in ~/.moltworker/config.yaml.
//
// Defaults seed the environment at the lowest precedence: the process
// environment and any --env-file both override them.
type Config struct {
	Image    string            `yaml:"image"`
	Defaults map[string]string `yaml:"defaults,omitempty"`
}

type Manager struct {
	mu         sync.RWMutex
	config     Config
	configPath string
	saveMu     sync.Mutex
}

func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	if err := ensureConfigExists(configPath); err != nil {
		return nil, err
	}

	m := &Manager{
		configPath: configPath,
		config:     defaultConfig(),
	}

	if err := m.Load(); err != nil {
		return nil, err
	}

	return m, nil
}

func defaultConfig() Config {
	return Config{
		Image: DefaultImage,
	}
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

func ensureConfigExists(configPath string) error {
	dir := filepath.Dir(configPath)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal default config: %w", err)
		}

		if err := os.WriteFile(configPath, data, 0o644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}

	return nil
}

func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if cfg.Image == "" {
		cfg.Image = DefaultImage
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()

	return nil
}

func (m *Manager) Save() error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.RLock()
	cfg := m.config
	m.mu.RUnlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (m *Manager) GetImage() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Image
}

func (m *Manager) SetImage(image string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.Image = image
}

// Environment exposes the config defaults as an environment source. The
// returned provider is a copy; later config edits do not leak into it.
func (m *Manager) Environment() environment.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	defaults := make(environment.Map, len(m.config.Defaults))
	for k, v := range m.config.Defaults {
		defaults[k] = v
	}
	return defaults
}
