package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig  `yaml:"server"`
	Search     SearchConfig  `yaml:"search"`
	Network    NetworkConfig `yaml:"network"`
	UI         UIConfig      `yaml:"ui"`
	Categories []string      `yaml:"categories"`
	LogLevel   string        `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SearchConfig struct {
	MaxResults int `yaml:"max_results"`
}

type NetworkConfig struct {
	ProbeAddr string        `yaml:"probe_addr"`
	Interval  time.Duration `yaml:"interval"`
	Timeout   time.Duration `yaml:"timeout"`
}

type UIConfig struct {
	InstallPromptDelay time.Duration `yaml:"install_prompt_delay"`
	NoticeDuration     time.Duration `yaml:"notice_duration"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 8
	}
	if c.Network.ProbeAddr == "" {
		c.Network.ProbeAddr = "1.1.1.1:53"
	}
	if c.Network.Interval == 0 {
		c.Network.Interval = 15 * time.Second
	}
	if c.Network.Timeout == 0 {
		c.Network.Timeout = 2 * time.Second
	}
	if c.UI.InstallPromptDelay == 0 {
		c.UI.InstallPromptDelay = 10 * time.Second
	}
	if c.UI.NoticeDuration == 0 {
		c.UI.NoticeDuration = 3 * time.Second
	}
	if len(c.Categories) == 0 {
		c.Categories = []string{
			"home", "breaking", "business", "sport",
			"politics", "lifestyle", "technology",
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
