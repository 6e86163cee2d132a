// Package config provides configuration management for oavp
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig loads defaults, the config file and the environment.
	InitConfig() (*Settings, error)
	// SetConfigFilePath pins the configuration file instead of searching for one.
	SetConfigFilePath(p string)
}

// Default configuration values for oavp.
const (
	DefaultVerbose         = false
	DefaultStrictBuild     = false
	DefaultUserConfigDir   = "$HOME/.config/oavp"
	DefaultSystemConfigDir = "/etc/oavp"
	EnvPrefix              = "OAVP"
)

// CreateSettings binds the external create handler: the scaffolding hook
// executed when the create command is dispatched.
type CreateSettings struct {
	Command string   `yaml:"command" mapstructure:"command"`
	Args    []string `yaml:"args,omitempty" mapstructure:"args"`
	// Dir is the hook's working directory; empty means the current one.
	Dir string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// Settings represents the configuration for oavp.
type Settings struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	// StrictBuild makes the build command fail as not implemented instead
	// of falling back to create.
	StrictBuild bool           `yaml:"strictBuild" mapstructure:"strictBuild"`
	Create      CreateSettings `yaml:"create" mapstructure:"create"`
}

// defaultConfigProvider implements the Provider interface on a private viper instance.
type defaultConfigProvider struct {
	v          *viper.Viper
	configFile string
	cfg        *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{v: viper.New()}
}

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	p.configFile = path
}

func (p *defaultConfigProvider) InitConfig() (*Settings, error) {
	v := p.v

	v.SetDefault("verbose", DefaultVerbose)
	v.SetDefault("strictBuild", DefaultStrictBuild)
	v.SetDefault("create.command", "")
	v.SetDefault("create.args", []string{})
	v.SetDefault("create.dir", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p.configFile != "" {
		v.SetConfigFile(p.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(os.ExpandEnv(DefaultUserConfigDir))
		v.AddConfigPath(DefaultSystemConfigDir)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Settings{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	p.cfg = cfg
	return cfg, nil
}

// ConfigFileUsed returns the file a provider loaded, or "" when settings
// came from defaults and the environment only.
func ConfigFileUsed(p Provider) string {
	if dp, ok := p.(*defaultConfigProvider); ok {
		return dp.v.ConfigFileUsed()
	}
	return ""
}
