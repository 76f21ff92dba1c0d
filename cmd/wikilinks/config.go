package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/indexer"
)

// ConfigEnv names an environment variable pointing at a configuration file to
// try before the default search paths.
const ConfigEnv = "WIKILINKS_CONFIG"

var DefaultConfigSearchPaths = []string{
	filepath.Join(os.Getenv("HOME"), ".wikilinks.toml"),
	filepath.Join(os.Getenv("HOME"), ".config", "wikilinks.toml"),
}

// Config is the TOML configuration struct.  When a ~/.wikilinks.toml or
// ~/.config/wikilinks.toml file exists, the values contained therein will
// override the compiled-in defaults.
type Config struct {
	File string `toml:"-"`

	Data     string
	DumpName string `toml:"dump_name"`
	Output   string
	DB       string
	Workers  int
	Denylist []string
	Quiet    bool
	Verbose  bool
}

func NewConfig() *Config {
	return &Config{}
}

// Do locates, parses and applies the first configuration file found.  When
// none exists the defaults are left untouched.
func (config *Config) Do() error {
	file, err := findConfigFile()
	if err != nil {
		return fmt.Errorf("locating wikilinks TOML configuration: %s", err)
	}

	if len(file) == 0 {
		// No configuration file found.
		return nil
	}

	if _, err := toml.DecodeFile(file, config); err != nil {
		return fmt.Errorf("parsing wikilinks TOML configuration file %q: %s", file, err)
	}
	config.File = file
	log.WithField("file", file).Debug("Loaded configuration")

	config.Apply()
	return nil
}

func (config *Config) Apply() {
	if len(config.Data) > 0 {
		DataPath = config.Data
	}
	if len(config.DumpName) > 0 {
		DumpName = config.DumpName
	}
	if len(config.Output) > 0 {
		OutputPath = config.Output
	}
	if len(config.DB) > 0 {
		DBFile = config.DB
	}
	if config.Workers > 0 {
		indexer.DefaultWorkers = config.Workers
	}
	if len(config.Denylist) > 0 {
		Denylist = config.Denylist
	}
	if config.Quiet {
		Quiet = true
	}
	if config.Verbose {
		Verbose = true
	}
}

// findConfigFile returns the first existing file among $WIKILINKS_CONFIG and
// DefaultConfigSearchPaths (in this order).
//
// If no config file is found, ("", nil) is returned.
func findConfigFile() (string, error) {
	paths := DefaultConfigSearchPaths
	if env := os.Getenv(ConfigEnv); len(env) > 0 {
		paths = append([]string{env}, paths...)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return "", err
		}
	}
	return "", nil
}
