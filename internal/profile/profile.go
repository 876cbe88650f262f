// Package profile carries the runtime configuration for the chronic
// binaries. Values come from flags, CHRONIC_* environment variables and
// an optional config file, merged through viper.
package profile

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	chronic "github.com/musicmunky/chronic"
	"github.com/musicmunky/chronic/internal/timezone"
)

// Profile is the configuration to start the CLI or the HTTP server.
type Profile struct {
	// Mode can be "prod" or "dev".
	Mode string `mapstructure:"mode"`
	// Addr is the binding address for the HTTP server.
	Addr string `mapstructure:"addr"`
	// Port is the binding port for the HTTP server.
	Port int `mapstructure:"port"`

	// Context is the default disambiguation direction (past, future,
	// none).
	Context string `mapstructure:"context"`
	// Timezone is the calendar used for span arithmetic.
	Timezone string `mapstructure:"timezone"`
	// Guess selects instant output over span output.
	Guess bool `mapstructure:"guess"`
	// AmbiguousTimeRange bounds the AM window for bare clock times;
	// -1 disables it.
	AmbiguousTimeRange int `mapstructure:"ambiguous_time_range"`
	// EndianPrecedence is "middle" or "little".
	EndianPrecedence string `mapstructure:"endian_precedence"`
	// YearBias is the two-digit-year pivot offset.
	YearBias int `mapstructure:"year_bias"`
	// Debug enables the parse trace.
	Debug bool `mapstructure:"debug"`
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Load reads configuration from the environment and an optional config
// file path, on top of defaults.
func Load(configPath string) (*Profile, error) {
	v := viper.New()
	v.SetDefault("mode", "dev")
	v.SetDefault("addr", "")
	v.SetDefault("port", 8231)
	v.SetDefault("context", "future")
	v.SetDefault("timezone", "")
	v.SetDefault("guess", true)
	v.SetDefault("ambiguous_time_range", 6)
	v.SetDefault("endian_precedence", "middle")
	v.SetDefault("year_bias", 50)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("chronic")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Validate checks the cross-field constraints that viper cannot.
func (p *Profile) Validate() error {
	switch p.Context {
	case "past", "future", "none":
	default:
		return errors.Errorf("invalid context %q", p.Context)
	}
	switch p.EndianPrecedence {
	case "middle", "little":
	default:
		return errors.Errorf("invalid endian precedence %q", p.EndianPrecedence)
	}
	if p.AmbiguousTimeRange != -1 && (p.AmbiguousTimeRange < 0 || p.AmbiguousTimeRange > 12) {
		return errors.Errorf("invalid ambiguous time range %d", p.AmbiguousTimeRange)
	}
	if p.Timezone != "" && !timezone.IsValid(p.Timezone) {
		return errors.Errorf("invalid timezone %q", p.Timezone)
	}
	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	return nil
}

// ParserOptions converts the profile to the parser option set.
func (p *Profile) ParserOptions() (*chronic.Options, error) {
	opts := chronic.DefaultOptions()
	opts.Context = chronic.Context(p.Context)
	opts.Guess = p.Guess
	opts.AmbiguousTimeRange = p.AmbiguousTimeRange
	if p.EndianPrecedence == "little" {
		opts.EndianPrecedence = []chronic.Endian{chronic.EndianLittle, chronic.EndianMiddle}
	}
	opts.AmbiguousYearFutureBias = p.YearBias
	opts.Debug = p.Debug
	if p.Timezone != "" {
		loc, err := timezone.Parse(p.Timezone)
		if err != nil {
			return nil, errors.Wrap(err, "parse timezone")
		}
		opts.Location = loc
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
