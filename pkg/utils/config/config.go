package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/constants"
)

// DefaultConfig keeps ip_gen byte-for-byte compatible with the script it replaced
var DefaultConfig = Config{
	Debug:   false,
	Strict:  false,
	LogFile: "",
}

// Config a struct to load the values from viper for future use.
type Config struct {
	Debug bool `mapstructure:"DEBUG" json:"debug"`
	// Strict turns a target past the end of the network into a failure
	Strict  bool   `mapstructure:"STRICT" json:"strict"`
	LogFile string `mapstructure:"LOG_FILE" json:"logFile,omitempty"`
}

// ToStringMap converts the Config struct to a map of strings
func (c Config) ToStringMap() map[string]string {
	return map[string]string{
		"DEBUG":    fmt.Sprintf("%v", c.Debug),
		"STRICT":   fmt.Sprintf("%v", c.Strict),
		"LOG_FILE": c.LogFile,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	for key, value := range DefaultConfig.ToStringMap() {
		v.SetDefault(key, value)
		// BindEnv only fails on an empty key
		_ = v.BindEnv(key)
	}
	return v
}

// GetConfigFromEnv returns the defaults overridden by IP_GEN_* environment variables
func GetConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := newViper().Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigFromFile loads a single YAML file. Environment variables take
// precedence over the file.
func GetConfigFromFile(configFile string) (*Config, error) {
	return getConfigFromFiles(configFile)
}

/*
GetConfigFromDir : Loads every YAML file in configDir in lexical order, later
files overriding earlier ones.

	This function returns an error if the directory is inaccessible or if no config files could be loaded
*/
func GetConfigFromDir(configDir string) (*Config, error) {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		zap.S().Errorf("cannot read config files in directory: %s. Error was: %s", configDir, err.Error())
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		files = append(files, path.Join(configDir, name))
	}
	if len(files) == 0 {
		return nil, errors.New("no config files could be loaded")
	}
	sort.Strings(files)
	return getConfigFromFiles(files...)
}

func getConfigFromFiles(configFiles ...string) (*Config, error) {
	v := newViper()
	for _, configFile := range configFiles {
		fileObj, err := os.Open(configFile)
		if err != nil {
			return nil, fmt.Errorf("could not open config file '%s': %v", configFile, err)
		}
		err = v.MergeConfig(fileObj)
		fileObj.Close()
		if err != nil {
			return nil, fmt.Errorf("could not parse config file '%s': %v", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDefaultConfig returns a copy of the default config.
func GetDefaultConfig() (*Config, error) {
	cfg := &Config{}
	err := mergo.Merge(cfg, DefaultConfig)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
