// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"casecost/core/cost"
	"casecost/core/engine"
	"casecost/core/types"
	"casecost/core/validation"
	"casecost/internal/errors"
	"casecost/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. CASECOST_ENGINE_TAX_RATE
const EnvPrefix = "CASECOST"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Engine contains calculation settings
	Engine EngineConfig `json:"engine" mapstructure:"engine"`

	// Validation contains task validation settings
	Validation ValidationConfig `json:"validation" mapstructure:"validation"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// EngineConfig contains calculation settings
type EngineConfig struct {
	// RiskSurcharge is the global risk surcharge applied once per case
	RiskSurcharge float64 `json:"risk_surcharge" mapstructure:"risk_surcharge"`

	// TaxRate is the tax rate applied when IncludeTax is set
	TaxRate float64 `json:"tax_rate" mapstructure:"tax_rate"`

	// IncludeTax adds tax to the final total
	IncludeTax bool `json:"include_tax" mapstructure:"include_tax"`

	// ViabilityThreshold is the minimum ROI of a viable case
	ViabilityThreshold float64 `json:"viability_threshold" mapstructure:"viability_threshold"`

	// Currency is the default case currency
	Currency string `json:"currency" mapstructure:"currency"`

	// Concurrency bounds parallel case assessment
	Concurrency int `json:"concurrency" mapstructure:"concurrency"`
}

// ValidationConfig contains task validation settings
type ValidationConfig struct {
	// Strict reports arithmetic mismatches as errors
	Strict bool `json:"strict" mapstructure:"strict"`

	// MaxQuantity is the quantity above which a warning is raised
	MaxQuantity float64 `json:"max_quantity" mapstructure:"max_quantity"`

	// MarketRateCeiling is the hourly rate above which a warning is raised
	MarketRateCeiling float64 `json:"market_rate_ceiling" mapstructure:"market_rate_ceiling"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// ShowItems shows the item breakdown
	ShowItems bool `json:"show_items" mapstructure:"show_items"`

	// ShowValidation shows validation findings
	ShowValidation bool `json:"show_validation" mapstructure:"show_validation"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			RiskSurcharge:      0.10,
			TaxRate:            0.19,
			IncludeTax:         false,
			ViabilityThreshold: 3.0,
			Currency:           string(types.CurrencyEUR),
			Concurrency:        4,
		},
		Validation: ValidationConfig{
			Strict:            false,
			MaxQuantity:       1000,
			MarketRateCeiling: 300,
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowItems:      true,
			ShowValidation: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.casecost.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".casecost.json")
}

// Load loads configuration from a JSON or YAML file and applies
// CASECOST_* environment overrides. A missing file yields the defaults
// with overrides applied; an empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Config("cannot read config "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("cannot access config "+path, err)
		}
	}

	config := Default()
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Config("cannot decode config", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Engine.RiskSurcharge < 0:
		return errors.Newf(errors.TypeConfig, "engine.risk_surcharge must not be negative (got %v)", c.Engine.RiskSurcharge)
	case c.Engine.TaxRate < 0:
		return errors.Newf(errors.TypeConfig, "engine.tax_rate must not be negative (got %v)", c.Engine.TaxRate)
	case c.Validation.MaxQuantity <= 0:
		return errors.Newf(errors.TypeConfig, "validation.max_quantity must be positive (got %v)", c.Validation.MaxQuantity)
	case c.Validation.MarketRateCeiling <= 0:
		return errors.Newf(errors.TypeConfig, "validation.market_rate_ceiling must be positive (got %v)", c.Validation.MarketRateCeiling)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(errors.TypeConfig, err, "cannot create config directory %s", dir)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("cannot encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.TypeConfig, err, "cannot write config %s", path)
	}
	return nil
}

// EngineConfig converts the settings into an immutable engine configuration
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Cost: cost.Config{
			RiskSurcharge: decimal.NewFromFloat(c.Engine.RiskSurcharge),
			TaxRate:       decimal.NewFromFloat(c.Engine.TaxRate),
			IncludeTax:    c.Engine.IncludeTax,
			Currency:      types.Currency(strings.ToUpper(c.Engine.Currency)),
		},
		Validation: validation.Options{
			Strict:            c.Validation.Strict,
			MaxQuantity:       decimal.NewFromFloat(c.Validation.MaxQuantity),
			MarketRateCeiling: decimal.NewFromFloat(c.Validation.MarketRateCeiling),
		},
		ViabilityThreshold: decimal.NewFromFloat(c.Engine.ViabilityThreshold),
		Concurrency:        c.Engine.Concurrency,
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)

	v.SetDefault("engine.risk_surcharge", d.Engine.RiskSurcharge)
	v.SetDefault("engine.tax_rate", d.Engine.TaxRate)
	v.SetDefault("engine.include_tax", d.Engine.IncludeTax)
	v.SetDefault("engine.viability_threshold", d.Engine.ViabilityThreshold)
	v.SetDefault("engine.currency", d.Engine.Currency)
	v.SetDefault("engine.concurrency", d.Engine.Concurrency)

	v.SetDefault("validation.strict", d.Validation.Strict)
	v.SetDefault("validation.max_quantity", d.Validation.MaxQuantity)
	v.SetDefault("validation.market_rate_ceiling", d.Validation.MarketRateCeiling)

	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.show_items", d.Output.ShowItems)
	v.SetDefault("output.show_validation", d.Output.ShowValidation)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
