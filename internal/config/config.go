// Package config loads the configuration of the tablestate command.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/domonda/go-tablestate"
	"github.com/domonda/go-tablestate/internal/logger"
)

// Output formats
const (
	FormatCSV   = "csv"
	FormatHTML  = "html"
	FormatText  = "text"
	FormatExcel = "xlsx"
)

// Config of the tablestate command
type Config struct {
	Table  TableConfig   `mapstructure:"table"`
	Output OutputConfig  `mapstructure:"output"`
	Log    logger.Config `mapstructure:"log"`
}

// TableConfig configures the tablestate.Controller
// and how rows are identified.
type TableConfig struct {
	tablestate.Config `mapstructure:",squash"`

	// IDColumn is the column that identifies a row.
	IDColumn string `mapstructure:"id_column"`
}

// OutputConfig configures how the visible page is written.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Delimiter string `mapstructure:"delimiter"`
	Encoding  string `mapstructure:"encoding"`
	HeaderRow bool   `mapstructure:"header_row"`
}

// Load reads the configuration
//
// Priority (highest to lowest):
//  1. Environment variables with TABLESTATE_ prefix (e.g., TABLESTATE_TABLE_PAGE_SIZE)
//  2. configFile, or tablestate.yaml in the working directory if configFile is empty
//  3. Built-in defaults
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tablestate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("TABLESTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := tablestate.DefaultConfig()
	v.SetDefault("table.page_size", def.PageSize)
	v.SetDefault("table.search_fields", []string{})
	v.SetDefault("table.not_sortable", def.NotSortable)
	v.SetDefault("table.id_column", "id")

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.delimiter", ";")
	v.SetDefault("output.encoding", "")
	v.SetDefault("output.header_row", true)

	logDef := logger.DefaultConfig()
	v.SetDefault("log.level", logDef.Level)
	v.SetDefault("log.format", logDef.Format)
	v.SetDefault("log.output", logDef.Output)
	v.SetDefault("log.time_format", logDef.TimeFormat)
}

// Validate returns an error for invalid values.
func (c *Config) Validate() error {
	if c.Table.PageSize <= 0 {
		return fmt.Errorf("table.page_size must be positive, got %d", c.Table.PageSize)
	}
	if c.Table.IDColumn == "" {
		return errors.New("table.id_column must not be empty")
	}
	if !slices.Contains([]string{FormatCSV, FormatHTML, FormatText, FormatExcel}, c.Output.Format) {
		return fmt.Errorf("output.format must be one of csv, html, text, xlsx, got %q", c.Output.Format)
	}
	if len([]rune(c.Output.Delimiter)) != 1 {
		return fmt.Errorf("output.delimiter must be a single character, got %q", c.Output.Delimiter)
	}
	return nil
}

// Delimiter returns the first rune of Output.Delimiter.
func (c *Config) Delimiter() rune {
	return []rune(c.Output.Delimiter)[0]
}
