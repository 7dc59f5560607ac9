package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func Load() (*viper.Viper, error) {
	path := ResolveConfigPath()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("S3KEEP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 's3keep init' first)", path)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %s (run 's3keep init' first)", path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return v, nil
}
