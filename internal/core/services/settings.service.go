package services

import (
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

type SettingsRepository interface {
	LoadSettings() (models.Settings, error)
	SaveSettings(settings models.Settings) error
}

// SettingsService holds the in-memory settings state between the startup
// load and the teardown save. Handlers mutate it under the lock; the
// repository is only touched at Save.
type SettingsService struct {
	repository SettingsRepository

	lock     sync.RWMutex
	settings models.Settings
}

func NewSettingsService(repository SettingsRepository) (*SettingsService, error) {
	settings, err := repository.LoadSettings()
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded settings: %d friends tracked", len(settings.Friends))
	return &SettingsService{repository: repository, settings: settings}, nil
}

func (s *SettingsService) Snapshot() models.Settings {
	s.lock.RLock()
	defer s.lock.RUnlock()

	snapshot := s.settings
	snapshot.Friends = slices.Clone(s.settings.Friends)
	return snapshot
}

func (s *SettingsService) SetKeys(steamAPIKey, stratzAPIKey string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.settings.SteamAPIKey = steamAPIKey
	s.settings.StratzAPIKey = stratzAPIKey
}

// AddFriend reports false when the account is already tracked.
func (s *SettingsService) AddFriend(accountID int64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if slices.Contains(s.settings.Friends, accountID) {
		return false
	}
	s.settings.Friends = append(s.settings.Friends, accountID)
	return true
}

// RemoveFriend reports false when the account was not tracked.
func (s *SettingsService) RemoveFriend(accountID int64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := slices.Index(s.settings.Friends, accountID)
	if index < 0 {
		return false
	}
	s.settings.Friends = slices.Delete(s.settings.Friends, index, index+1)
	return true
}

// Save writes the settings file. Called exactly once at teardown; a failure
// is logged and swallowed so shutdown completes.
func (s *SettingsService) Save() {
	s.lock.RLock()
	defer s.lock.RUnlock()

	logrus.Info("Saving settings to storage")
	if err := s.repository.SaveSettings(s.settings); err != nil {
		logrus.WithError(err).Error("Failed to save settings")
	}
}
