package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gizmo3030/awakening-data/internal/items"

	"gopkg.in/yaml.v3"
)

// Config carries everything the pipeline needs: where the wiki lives, how to
// identify to it, pacing, the snapshot path, and the hand-curated item
// records merged over scraped data every run.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	CategoryPath string `yaml:"category_path"`
	Output       string `yaml:"output"`
	UserAgent    string `yaml:"user_agent"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
	FetchDelayMS   int `yaml:"fetch_delay_ms"`

	Debug bool `yaml:"debug"`

	ManualItems []items.Item `yaml:"manual_items"`
}

type Options struct {
	Debug bool
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://awakening.wiki",
		CategoryPath:   "/Category:Placeables",
		Output:         "items_data.json",
		UserAgent:      "AwakeningDataExtractor/4.0 (Go; github.com/gizmo3030/awakening-data)",
		TimeoutSeconds: 30,
		FetchDelayMS:   1000,
		ManualItems: []items.Item{
			{
				Name: "Pentashield",
				Recipe: []items.Component{
					{Name: "Calibrated Servoks", Count: 6},
					{Name: "Steel", Count: 2},
					{Name: "Cobalt Paste", Count: 20},
				},
				Power: items.PowerSpec{Consumes: 6},
			},
		},
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads the config at path, falling back to built-in defaults when path
// is empty or the file does not exist. CLI options win over file values.
func Load(path string, opts Options) (*Config, string, error) {
	if path == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		return cfg, "(built-in defaults)", nil
	}

	cfg, err := loadYAML(path)
	if os.IsNotExist(err) {
		cfg = DefaultConfig()
		mergeConfig(cfg, opts)
		return cfg, fmt.Sprintf("(built-in defaults; %s not found)", path), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	normalizeDefaults(cfg)
	mergeConfig(cfg, opts)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.CategoryPath == "" {
		c.CategoryPath = def.CategoryPath
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.FetchDelayMS <= 0 {
		c.FetchDelayMS = def.FetchDelayMS
	}
}

func (c *Config) CategoryURL() string {
	return c.BaseURL + c.CategoryPath
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelayMS) * time.Millisecond
}

func (c *Config) Print() {
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	fmt.Printf(" -category_path: %s\n", c.CategoryPath)
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Printf(" -fetch_delay_ms: %d\n", c.FetchDelayMS)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	fmt.Printf(" -manual_items: %d\n", len(c.ManualItems))
}
