package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Packages configures dependency installation for generated projects.
	Packages struct {
		// Manager is the package manager binary used to install dependencies (npm, pnpm, yarn)
		Manager string `yaml:"manager,omitempty"`

		// Prod lists the packages added as production dependencies
		Prod []string `yaml:"prod,omitempty"`

		// Dev lists the packages added as development dependencies
		Dev []string `yaml:"dev,omitempty"`
	}

	// PromptDefaults are the values offered when prompting for a new project.
	PromptDefaults struct {
		ProjectName string `yaml:"project_name,omitempty"`
		DBUser      string `yaml:"db_user,omitempty"`
		DBHost      string `yaml:"db_host,omitempty"`
		DBPort      int    `yaml:"db_port,omitempty"`
	}

	// Config represents the nodeseed CLI configuration.
	Config struct {
		// Template is a directory copied into new projects instead of the
		// built-in template
		Template string `yaml:"template,omitempty"`

		// Packages configures dependency installation
		Packages Packages `yaml:"packages"`

		// Defaults configures prompt defaults
		Defaults PromptDefaults `yaml:"defaults"`
	}
)

// Defaults returns the configuration used when no nodeseed.yaml is present.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Any value that is not set falls back to the matching default from
// pkg/consts, so an empty document yields Defaults().
//
// Example:
//
//	yamlData := `
//	template: ./templates/api
//	packages:
//	  manager: pnpm
//	  prod: [express, mysql2, dotenv]
//	defaults:
//	  db_port: 3307
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Installing with %s\n", cfg.Packages.Manager)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("nodeseed.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Resolve loads the configuration at path. A missing file yields Defaults()
// unless required is set.
func Resolve(path string, required bool) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !required {
		return Defaults(), nil
	}

	return LoadConfigFile(path)
}

func (c *Config) applyDefaults() {
	if c.Packages.Manager == "" {
		c.Packages.Manager = consts.DefaultPackageManager
	}
	if c.Packages.Prod == nil {
		c.Packages.Prod = append([]string(nil), consts.DefaultProdPackages...)
	}
	if c.Packages.Dev == nil {
		c.Packages.Dev = append([]string(nil), consts.DefaultDevPackages...)
	}

	if c.Defaults.ProjectName == "" {
		c.Defaults.ProjectName = consts.DefaultProjectName
	}
	if c.Defaults.DBUser == "" {
		c.Defaults.DBUser = consts.DefaultDBUser
	}
	if c.Defaults.DBHost == "" {
		c.Defaults.DBHost = consts.DefaultDBHost
	}
	if c.Defaults.DBPort == 0 {
		c.Defaults.DBPort = consts.DefaultDBPort
	}
}
