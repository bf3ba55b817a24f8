package scsdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL string `mapstructure:"baseUrl"`
	Email   string `mapstructure:"email"`

	v *viper.Viper // instance-specific viper
}

const (
	EnvPrefix  = "SCITECH"
	ConfigName = "scitech"
	ConfigRoot = ".scitech"

	BaseUrlKey = "baseUrl"
	EmailKey   = "email"

	DefaultBaseURL = "http://localhost:3002"
)

// LoadConfig creates a new Config instance with its own viper.
// Lookup order: explicit file, else scitech.yaml merged with the untracked
// .scitech/config.yaml. SCITECH_* environment variables override both.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only maps keys viper already knows about.
	_ = v.BindEnv(BaseUrlKey, EnvPrefix+"_BASE_URL")
	_ = v.BindEnv(EmailKey, EnvPrefix+"_EMAIL")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		for _, name := range []string{"scitech.yaml", "scitech.yml", ".scitech.yaml"} {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				if err := v.ReadInConfig(); err == nil {
					break
				}
			}
		}

		localConfigPath := filepath.Join(ConfigRoot, "config.yaml")
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging local config: %w", err)
			}
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// Viper returns the underlying viper instance, mostly for flag binding.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// GetString reads a key through viper so bound flags take effect.
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

func setDefaults(v *viper.Viper) {
	if !v.IsSet(BaseUrlKey) {
		v.SetDefault(BaseUrlKey, DefaultBaseURL)
	} else {
		normalized := strings.TrimRight(v.GetString(BaseUrlKey), "/")
		v.Set(BaseUrlKey, normalized)
	}
}

// ConfigFileUsed returns the config file that was used (if any)
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
