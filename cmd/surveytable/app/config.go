package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPageSize = 15

// Config represents the main application configuration
type Config struct {
	Settings Settings      `yaml:"settings"`
	Storage  StorageConfig `yaml:"storage"`
	View     ViewConfig    `yaml:"view"`

	// One-shot snapshot operations; set from the CLI, never from the file.
	ImportFile string `yaml:"-"`
	ExportFile string `yaml:"-"`
}

// Settings represents global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// StorageConfig represents storage settings
type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

// ViewConfig represents table view settings
type ViewConfig struct {
	PageSize      int      `yaml:"pageSize"`
	HiddenColumns []string `yaml:"hiddenColumns"`
	ShownColumns  []string `yaml:"shownColumns"`
}

func NewConfig() *Config {
	return &Config{
		Settings: Settings{LogLevel: "info"},
		View:     ViewConfig{PageSize: defaultPageSize},
	}
}

// LoadConfig reads a yaml configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}
	return c, nil
}

// NewConfigFromCLI builds the configuration from the optional config file
// and command line flags. Flags win over the file.
func NewConfigFromCLI() (*Config, error) {
	var configPath, dbPath string

	c := NewConfig()

	flag.StringVar(&configPath, "c", "", "Path to the configuration file")
	flag.StringVar(&dbPath, "db", "", "Path to the database file")
	flag.StringVar(&c.ImportFile, "import", "", "Import a JSON snapshot and exit")
	flag.StringVar(&c.ExportFile, "export", "", "Export a JSON snapshot and exit")
	flag.IntVar(&c.View.PageSize, "page-size", 0, "Rows per page")
	flag.Parse()

	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		*c = *loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			c.Storage.DBPath = dbPath
		case "import":
			c.ImportFile = f.Value.String()
		case "export":
			c.ExportFile = f.Value.String()
		case "page-size":
			if v, ok := f.Value.(flag.Getter); ok {
				c.View.PageSize = v.Get().(int)
			}
		}
	})

	var err error
	if c.Storage.DBPath == "" {
		err = errors.New("db path is required")
	} else if c.View.PageSize <= 0 {
		c.View.PageSize = defaultPageSize
	}

	if err != nil {
		flag.Usage()
		return nil, err
	}
	return c, nil
}

// Level parses the configured log level, defaulting to info.
func (s Settings) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
