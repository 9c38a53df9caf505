package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// ItemConfig is one configured ritual item.
type ItemConfig struct {
	ID    string `mapstructure:"id" json:"id"`
	Label string `mapstructure:"label" json:"label"`
}

// Settings is the process configuration read from .ackgate.yaml and the
// ACKGATE_* environment.
type Settings struct {
	Path      string        `json:"path"`
	Policy    string        `json:"policy"`
	Dwell     time.Duration `json:"dwell"`
	Epsilon   float64       `json:"epsilon"`
	Autostart bool          `json:"autostart"`
	LogLevel  string        `json:"log_level"`
	Items     []ItemConfig  `json:"items,omitempty"`
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig reads settings with viper. A missing config file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.ackgate")
	v.SetDefault("policy", "checkbox")
	v.SetDefault("dwell", 2*time.Second)
	v.SetDefault("epsilon", 10)
	v.SetDefault("autostart", false)
	v.SetDefault("log_level", "info")
	v.SetConfigName(".ackgate") // .yaml is implicit
	v.SetEnvPrefix("ACKGATE")
	v.AutomaticEnv()

	if override := os.Getenv("ACKGATE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	s := &Settings{
		Path:      path,
		Policy:    v.GetString("policy"),
		Dwell:     v.GetDuration("dwell"),
		Epsilon:   v.GetFloat64("epsilon"),
		Autostart: v.GetBool("autostart"),
		LogLevel:  v.GetString("log_level"),
	}
	if err := v.UnmarshalKey("items", &s.Items); err != nil {
		return nil, fmt.Errorf("store: decode items: %w", err)
	}
	return s, nil
}

type pathConfig string

func (p pathConfig) BasePath() string { return string(p) }

// At returns a Config rooted at path.
func At(path string) Config {
	return pathConfig(path)
}
