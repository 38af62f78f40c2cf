// Package config loads the server configuration from an optional YAML file
// and the environment.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Server struct {
	Port     string `mapstructure:"port" validate:"required,numeric"`
	Compress bool   `mapstructure:"compress"`
	Static   string `mapstructure:"static"` // directory served under /static
	Images   string `mapstructure:"images"` // directory served under /images
}

type Log struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

type Theme struct {
	Default string `mapstructure:"default" validate:"oneof=light dark"`
}

type Reveal struct {
	Threshold float64 `mapstructure:"threshold" validate:"gt=0,lte=1"`
}

type Contact struct {
	Delay time.Duration `mapstructure:"delay" validate:"gt=0"`
}

type Session struct {
	TTL           time.Duration `mapstructure:"ttl" validate:"gt=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`
	MaxViews      int           `mapstructure:"max_views" validate:"gt=0"`
}

type Analytics struct {
	Enabled   bool          `mapstructure:"enabled"`
	Path      string        `mapstructure:"path" validate:"required_if=Enabled true"`
	Salt      string        `mapstructure:"salt"`
	Retention time.Duration `mapstructure:"retention" validate:"gt=0"`
}

type Admin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Config is the complete server configuration.
type Config struct {
	Server    Server    `mapstructure:"server"`
	Log       Log       `mapstructure:"log"`
	Theme     Theme     `mapstructure:"theme"`
	Reveal    Reveal    `mapstructure:"reveal"`
	Contact   Contact   `mapstructure:"contact"`
	Session   Session   `mapstructure:"session"`
	Analytics Analytics `mapstructure:"analytics"`
	Admin     Admin     `mapstructure:"admin"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.compress", true)
	v.SetDefault("server.static", "./static")
	v.SetDefault("server.images", "./images")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("theme.default", "light")
	v.SetDefault("reveal.threshold", 0.1)
	v.SetDefault("contact.delay", "1500ms")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.sweep_interval", "1m")
	v.SetDefault("session.max_views", 10000)
	v.SetDefault("analytics.enabled", true)
	v.SetDefault("analytics.path", "portfolio.db")
	v.SetDefault("analytics.salt", "")
	v.SetDefault("analytics.retention", "8760h")
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
}

// Load reads path (when not empty) and the environment. Variables use the
// PORTFOLIO_ prefix with dots replaced by underscores, e.g.
// PORTFOLIO_SESSION_TTL. PORT, ADMIN_USERNAME and ADMIN_PASSWORD are also
// honoured.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("portfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"server.port":    "PORT",
		"admin.username": "ADMIN_USERNAME",
		"admin.password": "ADMIN_PASSWORD",
	} {
		if err := v.BindEnv(key, "PORTFOLIO_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, errors.Wrapf(err, "binding %s", key)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
