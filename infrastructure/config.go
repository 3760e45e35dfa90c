package infrastructure

import (
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/libretro/crowdin-progress/models"
)

const (
	DefaultConfigPath = "crowdin.yaml"
	envPrefix         = "crowdin"
)

type (
	// Config is the part of crowdin.yaml used by this tool. The other keys
	// of the file (files, base_path, preserve_hierarchy...) are ignored.
	Config struct {
		APIToken  string `yaml:"api_token" envconfig:"API_TOKEN"`
		ProjectID string `yaml:"project_id" envconfig:"PROJECT_ID"`
		BaseURL   string `yaml:"base_url" envconfig:"BASE_URL"`
	}

	Credentials struct {
		APIToken  string
		ProjectID string
	}
)

// LoadConfig reads the YAML configuration at path, then applies the
// CROWDIN_* environment variables on top of it.
// Required keys are not checked here, see Config.Credentials.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, models.WithKindf(models.ErrConfiguration, err, "reading %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, models.WithKindf(models.ErrConfiguration, err, "parsing %s", path)
	}

	var env Config
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Config{}, models.WithKindf(models.ErrConfiguration, err, "reading environment")
	}
	cfg.override(env)

	return cfg, nil
}

func (c *Config) override(env Config) {
	if env.APIToken != "" {
		c.APIToken = env.APIToken
	}
	if env.ProjectID != "" {
		c.ProjectID = env.ProjectID
	}
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
}

// Credentials returns the keys needed to talk to Crowdin, or a configuration
// error naming the first missing one.
func (c Config) Credentials() (Credentials, error) {
	if strings.TrimSpace(c.APIToken) == "" {
		return Credentials{}, models.WithKind(models.ErrConfiguration, errors.New(`missing key "api_token"`))
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		return Credentials{}, models.WithKind(models.ErrConfiguration, errors.New(`missing key "project_id"`))
	}
	return Credentials{APIToken: c.APIToken, ProjectID: c.ProjectID}, nil
}
