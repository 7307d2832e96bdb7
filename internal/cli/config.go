package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the delegen configuration from delegen.yaml.
type Config struct {
	// Schema is the path to the resolved schema graph document.
	Schema string `mapstructure:"schema"`

	// Generate holds generation run settings.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds generation run settings.
type GenerateConfig struct {
	// Command is the external client generator invocation (argv). Empty
	// means the declaration document already exists.
	Command []string `mapstructure:"command"`

	// Declarations is the path of the declaration document the external
	// generator emits.
	Declarations string `mapstructure:"declarations"`

	// Output is the artifact output directory.
	Output string `mapstructure:"output"`

	// Namespace is the CRUD namespace name in the declaration tree.
	Namespace string `mapstructure:"namespace"`

	// AuxPrefix is the reserved synthetic member prefix.
	AuxPrefix string `mapstructure:"aux_prefix"`

	// ClientImport is the module specifier of the original client
	// declarations, used by the re-export when no hierarchy exists.
	ClientImport string `mapstructure:"client_import"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("DELEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "schema.json")

	v.SetDefault("generate.command", []string{})
	v.SetDefault("generate.declarations", "client/declarations.json")
	v.SetDefault("generate.output", "delegen")
	v.SetDefault("generate.namespace", "")
	v.SetDefault("generate.aux_prefix", "")
	v.SetDefault("generate.client_import", "./client")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for delegen.yaml or delegen.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		// Try delegen.yaml then delegen.yml
		for _, name := range []string{"delegen.yaml", "delegen.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}
