// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/compintel/ratecard/internal/profile"
	"github.com/compintel/ratecard/internal/refdata"
	"github.com/compintel/ratecard/pkg/constants"
)

// Configuration holds all configuration for ratecard.
type Configuration struct {
	Profile ProfileConfig `yaml:"profile,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ProfileConfig holds the raw employee profile for a CLI computation. Nil
// numeric fields are absent and fall to the normalizer's documented
// defaults.
type ProfileConfig struct {
	Location                   string   `yaml:"location,omitempty"`
	Grade                      string   `yaml:"grade,omitempty"`
	ExperienceYears            *float64 `yaml:"experienceYears,omitempty"`
	TargetMarginPercent        *float64 `yaml:"targetMarginPercent,omitempty"`
	AnnualCompensationOverride *float64 `yaml:"annualCompensationOverride,omitempty"`
	DailyBillableHours         *float64 `yaml:"dailyBillableHours,omitempty"`
	AnnualWorkdays             *float64 `yaml:"annualWorkdays,omitempty"`
}

// RawInput converts the config profile into the normalizer's input form.
func (p ProfileConfig) RawInput() profile.RawInput {
	return profile.RawInput{
		Location:                   p.Location,
		Grade:                      p.Grade,
		ExperienceYears:            p.ExperienceYears,
		TargetMarginPercent:        p.TargetMarginPercent,
		AnnualCompensationOverride: p.AnnualCompensationOverride,
		DailyBillableHours:         p.DailyBillableHours,
		AnnualWorkdays:             p.AnnualWorkdays,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML-formatted configuration from an
// in-memory reader; used by the HTTP server and tests.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing here is fatal: the normalizer recovers every
// condition below, but surfacing them helps explain a fallback result.
func (c *Configuration) ValidateConfiguration(store *refdata.Store) []string {
	var warnings []string

	if c.Profile.Location != "" {
		if _, err := store.CurrencyFor(refdata.LocationCode(c.Profile.Location)); err != nil {
			warnings = append(warnings, fmt.Sprintf("unknown location %q, computation will fall back to %s/%s",
				c.Profile.Location, refdata.FallbackLocation, refdata.FallbackGrade))
		}
	}
	if c.Profile.Location != "" && c.Profile.Grade != "" {
		if _, err := store.SalaryFor(refdata.LocationCode(c.Profile.Location), refdata.GradeCode(c.Profile.Grade)); err != nil {
			warnings = append(warnings, fmt.Sprintf("no salary band for grade %q at %q, computation will fall back to %s/%s",
				c.Profile.Grade, c.Profile.Location, refdata.FallbackLocation, refdata.FallbackGrade))
		}
	}
	if c.Profile.TargetMarginPercent != nil && *c.Profile.TargetMarginPercent >= constants.MaxTargetMarginPercent {
		warnings = append(warnings, "target margin of 100% has no finite break-even rate; rate metrics will be undefined")
	}
	if c.Profile.AnnualWorkdays != nil {
		warnings = append(warnings, "annualWorkdays is derived from the location table and the configured value is ignored for known locations")
	}

	return warnings
}
