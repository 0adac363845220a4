package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Configuration specifies the complete pixpack command line configuration.
type Configuration struct {
	// OutputDir is where encoded files (and exported images) are written.
	OutputDir string `toml:"output_dir"`
	// MaxDimension downscales input images larger than this. 0 disables it.
	MaxDimension uint `toml:"max_dimension"`
	// Workers is the number of images compared at once.
	Workers int `toml:"workers"`
	// ExportDecoded writes the decoded images next to the encoded files.
	ExportDecoded bool `toml:"export_decoded"`
	// ReportCSV, if set, is where the comparison report is written.
	ReportCSV string `toml:"report_csv"`
	Verbose   bool   `toml:"verbose"`
}

// EnvPrefix is prepended to upper-cased setting names to get the environment
// variable that overrides them, e.g. PIXPACK_OUTPUT_DIR.
const EnvPrefix = "PIXPACK_"

// Default returns the configuration used when nothing else is specified.
func Default() Configuration {
	return Configuration{
		OutputDir: "output",
		Workers:   1,
	}
}

// Parse all configuration except command line flags, which the caller applies
// on top.
//
// The precedence is:
//
//	command line flags > environment > configuration file > defaults
//
// If `configFile` is empty the PIXPACK_CONFIG environment variable is used. A
// missing configuration file is not an error.
func Parse(configFile string) (Configuration, error) {
	config := Default()

	if configFile == "" {
		configFile = envValueForSetting("config")
	}
	if configFile != "" {
		_, err := toml.DecodeFile(configFile, &config)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("error parsing config file %q: %w", configFile, err)
		}
	}

	err := applyEnv(&config)
	if err != nil {
		return config, err
	}
	return config, config.Validate()
}

// Validate checks that every setting is usable.
func (config Configuration) Validate() error {
	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}
	if config.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}

func applyEnv(config *Configuration) error {
	if val := envValueForSetting("output_dir"); val != "" {
		config.OutputDir = val
	}
	if val := envValueForSetting("report_csv"); val != "" {
		config.ReportCSV = val
	}
	if val := envValueForSetting("max_dimension"); val != "" {
		parsed, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envKey("max_dimension"), err)
		}
		config.MaxDimension = uint(parsed)
	}
	if val := envValueForSetting("workers"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envKey("workers"), err)
		}
		config.Workers = parsed
	}
	if val := envValueForSetting("export_decoded"); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envKey("export_decoded"), err)
		}
		config.ExportDecoded = parsed
	}
	if val := envValueForSetting("verbose"); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envKey("verbose"), err)
		}
		config.Verbose = parsed
	}
	return nil
}

func envKey(name string) string {
	return EnvPrefix + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

func envValueForSetting(name string) string {
	return os.Getenv(envKey(name))
}
