package repository

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

const settingsFile = "save.toml"

// SettingsRepository persists the application settings as a toml file,
// config/save.toml by default.
type SettingsRepository struct {
	dir string
}

func NewSettingsRepository(dir string) *SettingsRepository {
	return &SettingsRepository{dir: dir}
}

// LoadSettings reads the settings file. An absent file is not an error and
// yields zero settings; the app starts unconfigured.
func (r *SettingsRepository) LoadSettings() (models.Settings, error) {
	path := filepath.Join(r.dir, settingsFile)
	if _, err := os.Stat(path); err != nil {
		return models.Settings{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// SaveSettings overwrites the settings file.
func (r *SettingsRepository) SaveSettings(settings models.Settings) error {
	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return err
	}

	v := viper.New()
	v.Set("steam_api_key", settings.SteamAPIKey)
	v.Set("stratz_api_key", settings.StratzAPIKey)
	v.Set("friends", settings.Friends)
	return v.WriteConfigAs(filepath.Join(r.dir, settingsFile))
}
