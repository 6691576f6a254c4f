package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

type fakeMatchFetcher struct {
	responses map[int64]dtos.MatchDetailResponse
	err       error
}

func (f *fakeMatchFetcher) LatestMatchDetailForMany(_ context.Context, _ string, accountIDs []int64) ([]dtos.MatchDetailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	responses := make([]dtos.MatchDetailResponse, 0, len(accountIDs))
	for _, id := range accountIDs {
		responses = append(responses, f.responses[id])
	}
	return responses, nil
}

type fakeResolver struct {
	heroes map[int]string
}

func (f *fakeResolver) EnsureLoaded(context.Context, string) error { return nil }

func (f *fakeResolver) ResolveItem(int) string { return "Unknown" }

func (f *fakeResolver) ResolveHero(id int) string {
	if name, ok := f.heroes[id]; ok {
		return name
	}
	return "Unknown"
}

type fakeSettingsRepository struct {
	settings models.Settings
}

func (r *fakeSettingsRepository) LoadSettings() (models.Settings, error) { return r.settings, nil }

func (r *fakeSettingsRepository) SaveSettings(models.Settings) error { return nil }

func newTestSettings(t *testing.T, settings models.Settings) *SettingsService {
	t.Helper()
	service, err := NewSettingsService(&fakeSettingsRepository{settings: settings})
	require.NoError(t, err)
	return service
}

func detailFor(accountID int64, slot int, radiantWin bool) dtos.MatchDetailResponse {
	return dtos.MatchDetailResponse{
		Result: dtos.MatchDetailResult{
			Status: 1,
			Matches: []dtos.MatchDetail{{
				Players:    []dtos.PlayerDetail{{AccountID: accountID, PlayerSlot: slot, HeroID: 14}},
				RadiantWin: radiantWin,
				Duration:   125,
				StartTime:  1700000000,
				GameMode:   dtos.GameModeAllPick,
			}},
		},
	}
}

func TestRefreshBuildsRows(t *testing.T) {
	fetcher := &fakeMatchFetcher{responses: map[int64]dtos.MatchDetailResponse{
		1: detailFor(1, 0, true),
		2: detailFor(2, 200, true),
	}}
	settings := newTestSettings(t, models.Settings{SteamAPIKey: "key", Friends: []int64{1, 2}})
	watcher := NewWatcherService(fetcher, &fakeResolver{heroes: map[int]string{14: "Pudge"}}, settings)

	watcher.refresh(context.Background())

	rows := watcher.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].AccountID)
	assert.Equal(t, "Win", rows[0].Win)
	assert.Equal(t, "Lose", rows[1].Win)
	assert.Equal(t, "2m5s", rows[0].Duration)
	assert.Equal(t, "AllPick", rows[0].GameMode)
	assert.Equal(t, "Pudge", rows[0].Hero)
}

func TestFailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	fetcher := &fakeMatchFetcher{responses: map[int64]dtos.MatchDetailResponse{1: detailFor(1, 0, true)}}
	settings := newTestSettings(t, models.Settings{SteamAPIKey: "key", Friends: []int64{1}})
	watcher := NewWatcherService(fetcher, &fakeResolver{}, settings)

	watcher.refresh(context.Background())
	require.Len(t, watcher.Rows(), 1)

	fetcher.err = models.RemoteCallError{Endpoint: "history", Err: errors.New("down")}
	watcher.refresh(context.Background())
	assert.Len(t, watcher.Rows(), 1, "a failed refresh must not clear the displayed view")
}

func TestRefreshSkippedWithoutKey(t *testing.T) {
	fetcher := &fakeMatchFetcher{responses: map[int64]dtos.MatchDetailResponse{1: detailFor(1, 0, true)}}
	settings := newTestSettings(t, models.Settings{Friends: []int64{1}})
	watcher := NewWatcherService(fetcher, &fakeResolver{}, settings)

	watcher.refresh(context.Background())
	assert.Empty(t, watcher.Rows())
}

func TestProjectionFailureKeepsPreviousSnapshot(t *testing.T) {
	fetcher := &fakeMatchFetcher{responses: map[int64]dtos.MatchDetailResponse{1: detailFor(1, 0, true)}}
	settings := newTestSettings(t, models.Settings{SteamAPIKey: "key", Friends: []int64{1}})
	watcher := NewWatcherService(fetcher, &fakeResolver{}, settings)

	watcher.refresh(context.Background())
	require.Len(t, watcher.Rows(), 1)

	// The fetched match no longer contains the tracked account.
	fetcher.responses[1] = detailFor(999, 0, true)
	watcher.refresh(context.Background())
	assert.Len(t, watcher.Rows(), 1)
}

func TestRequestRefreshDoesNotBlock(t *testing.T) {
	watcher := NewWatcherService(&fakeMatchFetcher{}, &fakeResolver{}, newTestSettings(t, models.Settings{}))

	assert.True(t, watcher.RequestRefresh())
	// Queue is full, second request is dropped rather than blocking.
	assert.False(t, watcher.RequestRefresh())
}

func TestRunConsumesRequests(t *testing.T) {
	fetcher := &fakeMatchFetcher{responses: map[int64]dtos.MatchDetailResponse{1: detailFor(1, 0, true)}}
	settings := newTestSettings(t, models.Settings{SteamAPIKey: "key", Friends: []int64{1}})
	watcher := NewWatcherService(fetcher, &fakeResolver{}, settings)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watcher.Run(ctx)
		close(done)
	}()

	assert.True(t, watcher.RequestRefresh())
	assert.Eventually(t, func() bool { return len(watcher.Rows()) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
