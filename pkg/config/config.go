package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Prefix of the environment variables that override config.json values (e.g. TABLEBUILDER_MAX_SUBJECTS)
const EnvPrefix = "TABLEBUILDER_"

// Default search parameters; every field can be set from config.json, a .env file or the environment, in increasing order of precedence
type Config struct {
	MinSubjects    int    `mapstructure:"minSubjects"`
	MaxSubjects    int    `mapstructure:"maxSubjects"`
	MinCreditHours int    `mapstructure:"minCreditHours"`
	MaxCreditHours int    `mapstructure:"maxCreditHours"`
	Tables         int    `mapstructure:"tables"`
	GridSize       int    `mapstructure:"gridSize"`
	Workers        int    `mapstructure:"workers"`
	Format         string `mapstructure:"format"`
}

var envKeys = map[string]string{
	"MIN_SUBJECTS":     "minSubjects",
	"MAX_SUBJECTS":     "maxSubjects",
	"MIN_CREDIT_HOURS": "minCreditHours",
	"MAX_CREDIT_HOURS": "maxCreditHours",
	"TABLES":           "tables",
	"GRID_SIZE":        "gridSize",
	"WORKERS":          "workers",
	"FORMAT":           "format",
}

func Default() Config {
	return Config{
		MinSubjects:    1,
		MaxSubjects:    6,
		MinCreditHours: 0,
		MaxCreditHours: 21,
		Tables:         1,
		GridSize:       12,
		Workers:        1,
		Format:         "text",
	}
}

// Builds the configuration from the defaults, the JSON file at path (skipped if path is empty or the file does not exist), the .env files and the environment
func Load(path string, envFiles ...string) (Config, error) {
	config := Default()

	//** Config file
	if path != "" {
		values, err := readJson(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		} else if err == nil {
			if err := decode(values, &config); err != nil {
				return Config{}, fmt.Errorf("cannot decode config file %q: %w", path, err)
			}
		}
	}

	//** Environment
	// Missing .env files are not an error, the environment alone is used instead
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load .env file: %w", err)
	}

	overrides := make(map[string]any)
	for suffix, key := range envKeys {
		if value, ok := os.LookupEnv(EnvPrefix + suffix); ok {
			overrides[key] = strings.TrimSpace(value)
		}
	}
	if err := decode(overrides, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode environment overrides: %w", err)
	}

	return config, config.Validate()
}

func (config Config) Validate() error {
	validFormats := []string{"text", "json", "png", "xlsx"}

	if config.MinSubjects < 0 || config.MaxSubjects < config.MinSubjects {
		return fmt.Errorf("invalid subject bounds: [%v, %v]", config.MinSubjects, config.MaxSubjects)
	} else if config.MaxCreditHours < config.MinCreditHours {
		return fmt.Errorf("invalid credit-hour bounds: [%v, %v]", config.MinCreditHours, config.MaxCreditHours)
	} else if config.Tables < 0 {
		return fmt.Errorf("number of tables must not be negative: %v", config.Tables)
	} else if config.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive: %v", config.GridSize)
	} else if !lo.Contains(validFormats, config.Format) {
		return fmt.Errorf("%v is not a valid format, allowed values are %v", config.Format, validFormats)
	}
	return nil
}

func readJson(path string) (map[string]any, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	return inputJson, nil
}

func decode(values map[string]any, config *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // Environment values are strings
		ErrorUnused:      true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
