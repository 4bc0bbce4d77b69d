package inspector

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigBin is the sample configuration written on first run
//
//go:embed config.yaml
var DefaultConfigBin []byte

// DefaultConfig is used when no configuration file is given
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultConfigBin, &DefaultConfig); err != nil {
		panic(err)
	}
}

type Config struct {
	// Locale selects a built-in message preset
	Locale string `yaml:"locale"`
	// Messages override single templates of the preset
	Messages    Messages          `yaml:"messages"`
	Ideograph   IdeographRange    `yaml:"ideograph"`
	Punctuation PunctuationConfig `yaml:"punctuation"`
}

type IdeographRange struct {
	Low  rune `yaml:"low"`
	High rune `yaml:"high"`
}

type PunctuationConfig struct {
	HalfWidth            string `yaml:"half-width"`
	FullWidth            string `yaml:"full-width"`
	HalfWidthTerminators string `yaml:"half-width-terminators"`
	FullWidthTerminators string `yaml:"full-width-terminators"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	return os.WriteFile(filePath, DefaultConfigBin, 0644)
}

// Classifier returns a classifier using the configured tables
func (c *Config) Classifier() *Classifier {
	return NewClassifier(&ClassifierOptions{
		IdeographLow:         c.Ideograph.Low,
		IdeographHigh:        c.Ideograph.High,
		HalfWidthPunctuation: c.Punctuation.HalfWidth,
		FullWidthPunctuation: c.Punctuation.FullWidth,
		HalfWidthTerminators: c.Punctuation.HalfWidthTerminators,
		FullWidthTerminators: c.Punctuation.FullWidthTerminators,
	})
}

// ResolveMessages returns the locale preset with configured overrides applied
func (c *Config) ResolveMessages() (*Messages, error) {
	preset, err := MessagesFor(c.Locale)
	if err != nil {
		return nil, err
	}
	m := c.Messages
	m.Merge(preset)
	return &m, nil
}
