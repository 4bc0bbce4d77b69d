package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/inspector"
	"github.com/projectdiscovery/inspector/internal/document"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

// fileConfig is the inspector config file: checker settings plus the
// layouts of the document readers
type fileConfig struct {
	inspector.Config `yaml:",inline"`
	Layout           document.Layout `yaml:"layout"`
	Sheet            document.Sheet  `yaml:"sheet"`
}

var defaultConfigPath string

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultConfigPath = filepath.Join(getUserHomeDir(), ".config/inspector/inspector.yaml")
	// create default inspector.yaml config if does not exist
	if fileutil.FileExists(defaultConfigPath) {
		return
	}
	if err := os.MkdirAll(filepath.Dir(defaultConfigPath), 0700); err != nil {
		gologger.Error().Msgf("failed to create config folder got: %v", err)
		return
	}
	if err := inspector.GenerateSample(defaultConfigPath); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultConfigPath, err)
	}
}

// defaultFileConfig returns the built-in configuration
func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Config: inspector.DefaultConfig,
		Layout: document.DefaultLayout,
		Sheet:  document.DefaultSheet,
	}
}

// loadConfig reads path on top of the built-in configuration.
// An empty path uses the default config file when it exists.
func loadConfig(path string) (*fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		if !fileutil.FileExists(defaultConfigPath) {
			return cfg, nil
		}
		path = defaultConfigPath
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(bin, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
