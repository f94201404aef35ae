package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the file written by "init-config".
	DefaultConfigFileName = "jakartamigrate.yaml"
	configFileMode        = 0o644
)

// Settings is the configuration for a migration run. It is loaded once and
// treated as read-only afterwards.
type Settings struct {
	DryRun              bool            `yaml:"dry_run"`
	Verbose             bool            `yaml:"verbose"`
	Backup              bool            `yaml:"backup"`
	JavaxPackages       []string        `yaml:"javax_to_jakarta_packages"`
	DependencyRules     map[string]Rule `yaml:"eap7_to_eap8_dependencies"`
	ManagedDependencies []string        `yaml:"managed_dependencies"`
}

// settingsFile mirrors Settings with optional fields so that keys absent
// from the file keep their defaults and present tables replace them whole.
type settingsFile struct {
	DryRun              *bool           `yaml:"dry_run"`
	Verbose             *bool           `yaml:"verbose"`
	Backup              *bool           `yaml:"backup"`
	JavaxPackages       []string        `yaml:"javax_to_jakarta_packages"`
	DependencyRules     map[string]Rule `yaml:"eap7_to_eap8_dependencies"`
	ManagedDependencies []string        `yaml:"managed_dependencies"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the built-in configuration.
func NewDefaultSettings() *Settings {
	return &Settings{
		Backup:              true,
		JavaxPackages:       DefaultJavaxPackages(),
		DependencyRules:     DefaultDependencyRules(),
		ManagedDependencies: DefaultManagedDependencies(),
	}
}

// NewSettings reads and parses a configuration file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	var file settingsFile
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), &file); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := NewDefaultSettings()
	if file.DryRun != nil {
		settings.DryRun = *file.DryRun
	}
	if file.Verbose != nil {
		settings.Verbose = *file.Verbose
	}
	if file.Backup != nil {
		settings.Backup = *file.Backup
	}
	if file.JavaxPackages != nil {
		settings.JavaxPackages = file.JavaxPackages
	}
	if file.DependencyRules != nil {
		settings.DependencyRules = file.DependencyRules
	}
	if file.ManagedDependencies != nil {
		settings.ManagedDependencies = file.ManagedDependencies
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// RuleTable builds the immutable rule table for these settings.
func (s *Settings) RuleTable() *RuleTable {
	return NewRuleTable(s.DependencyRules, s.ManagedDependencies, s.JavaxPackages)
}

// Save writes the settings as YAML.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if writeErr := os.WriteFile(path, data, configFileMode); writeErr != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, writeErr)
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".jakartamigrate.yaml",
		".jakartamigrate.yml",
		"jakartamigrate.yaml",
		"jakartamigrate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks structural configuration values. Individual dependency
// rules are not validated here; NewRuleTable skips malformed ones.
func validate(s *Settings) error {
	for i, pkg := range s.JavaxPackages {
		if !strings.HasPrefix(pkg, "javax.") {
			return fmt.Errorf("javax_to_jakarta_packages[%d] %q must start with \"javax.\"", i, pkg)
		}
	}
	return nil
}
