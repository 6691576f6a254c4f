package configuration

import (
	"github.com/spf13/viper"
	"os"
)

type EnvConfigModel struct {
	Host               string `mapstructure:"SERVER_HOST"`
	Port               string `mapstructure:"SERVER_PORT"`
	ConfigDir          string `mapstructure:"CONFIG_DIR"`
	CorsAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var EnvConfig EnvConfigModel

func LoadConfig(filePath string) (err error) {
	// Check if the file exists
	if _, err = os.Stat(filePath); err == nil {
		viper.SetConfigFile(filePath)

		// Attempt to read the configuration file
		if err = viper.ReadInConfig(); err != nil {
			return err // File exists but could not be read
		}
	} else {
		envs := []string{
			"SERVER_HOST", "SERVER_PORT", "CONFIG_DIR", "CORS_ALLOWED_ORIGINS",
		}
		for _, env := range envs {
			if err = viper.BindEnv(env); err != nil {
				return err
			}
		}
		viper.AutomaticEnv()
	}

	if err = viper.Unmarshal(&EnvConfig); err != nil {
		return err
	}

	if EnvConfig.ConfigDir == "" {
		EnvConfig.ConfigDir = "config"
	}
	return nil
}
