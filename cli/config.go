package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const defaultServerURL = "http://localhost:7790"

// ServerConfig is one coinwidget server the CLI can talk to
type ServerConfig struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Config is the CLI's list of known servers
type Config struct {
	DefaultServer string                  `yaml:"default_server"`
	Servers       map[string]ServerConfig `yaml:"servers"`
	configPath    string
}

// DefaultConfigPath returns ~/.coinwidget/config.yaml, creating the directory.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".coinwidget")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig reads the config at path, writing a default one if it is missing.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		configPath: path,
		Servers:    make(map[string]ServerConfig),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.DefaultServer = "local"
		cfg.Servers["local"] = ServerConfig{URL: defaultServerURL, Description: "Local coinwidget service"}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Servers == nil {
		cfg.Servers = make(map[string]ServerConfig)
	}
	cfg.configPath = path
	return cfg, nil
}

// Save writes the config back to its file
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.configPath, data, 0600)
}

// AddServer adds or replaces a server; the first one becomes the default
func (c *Config) AddServer(name, url, description string) error {
	if name == "" {
		return fmt.Errorf("server name cannot be empty")
	}
	if url == "" {
		return fmt.Errorf("server URL cannot be empty")
	}

	c.Servers[name] = ServerConfig{URL: url, Description: description}
	if c.DefaultServer == "" {
		c.DefaultServer = name
	}
	return c.Save()
}

// SetDefault selects the default server
func (c *Config) SetDefault(name string) error {
	if _, exists := c.Servers[name]; !exists {
		return fmt.Errorf("server '%s' not found", name)
	}
	c.DefaultServer = name
	return c.Save()
}

// DefaultURL returns the default server's URL, or the built-in local URL.
func (c *Config) DefaultURL() string {
	if server, ok := c.Servers[c.DefaultServer]; ok && server.URL != "" {
		return server.URL
	}
	return defaultServerURL
}

// ServerNames returns the configured server names in sorted order
func (c *Config) ServerNames() []string {
	names := make([]string, 0, len(c.Servers))
	for name := range c.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
