package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Environment variables understood by the generate command.
const (
	EnvFolder  = "FOLDER"
	EnvPrivate = "PRIVATE_LIST"
	EnvExclude = "EXCLUDE_FOLDERS"
	EnvHide    = "HIDE_FOLDERS"
	EnvOutput  = "OUTPUT"
	EnvRules   = "RULES_PATH"
)

// A Config carries the snapshot generation settings.
type Config struct {
	Folder  string
	Output  string
	Private []string
	Exclude []string
	Hide    []string
}

type rules struct {
	Private []string `yaml:"private"`
	Exclude []string `yaml:"exclude"`
	Hide    []string `yaml:"hide"`
}

// FromEnv builds the configuration from the process environment.
func FromEnv() (*Config, error) {
	c := &Config{
		Folder: os.Getenv(EnvFolder),
		Output: os.Getenv(EnvOutput),
	}
	if c.Output == "" {
		c.Output = "output.txt"
	}

	var err error
	if c.Private, err = LoadList(os.Getenv(EnvPrivate)); err != nil {
		return nil, err
	}
	if c.Exclude, err = LoadList(os.Getenv(EnvExclude)); err != nil {
		return nil, err
	}
	if c.Hide, err = LoadList(os.Getenv(EnvHide)); err != nil {
		return nil, err
	}

	if path := os.Getenv(EnvRules); path != "" {
		if err = c.mergeRules(path); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the configured folder exists and is a directory.
func (c *Config) Validate() error {
	if c.Folder == "" {
		return errors.Errorf("%s environment variable not set", EnvFolder)
	}

	info, err := os.Stat(c.Folder)
	if err != nil || !info.IsDir() {
		return errors.Errorf("the folder '%s' does not exist or is not a directory", c.Folder)
	}
	return nil
}

// LoadList interprets value either as the path of an existing file whose
// non-blank lines form the list, or as a comma-separated list.
func LoadList(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}

	if info, err := os.Stat(value); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(value)
		if err != nil {
			return nil, errors.Wrap(err, "could not read list file")
		}
		return fields(string(data), "\n"), nil
	}

	return fields(value, ","), nil
}

func (c *Config) mergeRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read rules file")
	}

	var r rules
	if err = yaml.Unmarshal(data, &r); err != nil {
		return errors.Wrap(err, "could not parse rules file")
	}

	c.Private = append(c.Private, r.Private...)
	c.Exclude = append(c.Exclude, r.Exclude...)
	c.Hide = append(c.Hide, r.Hide...)
	return nil
}

func fields(value, separator string) []string {
	var items []string
	for _, item := range strings.Split(value, separator) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
