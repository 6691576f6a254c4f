package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

type countingSettingsRepository struct {
	settings models.Settings
	saved    []models.Settings
}

func (r *countingSettingsRepository) LoadSettings() (models.Settings, error) {
	return r.settings, nil
}

func (r *countingSettingsRepository) SaveSettings(settings models.Settings) error {
	r.saved = append(r.saved, settings)
	return nil
}

func TestSettingsFriendManagement(t *testing.T) {
	service, err := NewSettingsService(&countingSettingsRepository{})
	require.NoError(t, err)

	assert.True(t, service.AddFriend(42))
	assert.False(t, service.AddFriend(42), "duplicate friend is rejected")
	assert.True(t, service.AddFriend(1999))
	assert.Equal(t, []int64{42, 1999}, service.Snapshot().Friends)

	assert.True(t, service.RemoveFriend(42))
	assert.False(t, service.RemoveFriend(42))
	assert.Equal(t, []int64{1999}, service.Snapshot().Friends)
}

func TestSnapshotIsDetached(t *testing.T) {
	service, err := NewSettingsService(&countingSettingsRepository{
		settings: models.Settings{Friends: []int64{42}},
	})
	require.NoError(t, err)

	snapshot := service.Snapshot()
	snapshot.Friends[0] = 7
	assert.Equal(t, []int64{42}, service.Snapshot().Friends)
}

func TestSaveWritesCurrentState(t *testing.T) {
	repo := &countingSettingsRepository{}
	service, err := NewSettingsService(repo)
	require.NoError(t, err)

	service.SetKeys("steam", "stratz")
	service.AddFriend(42)
	service.Save()

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "steam", repo.saved[0].SteamAPIKey)
	assert.Equal(t, "stratz", repo.saved[0].StratzAPIKey)
	assert.Equal(t, []int64{42}, repo.saved[0].Friends)
}
