package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

type MatchFetcher interface {
	LatestMatchDetailForMany(ctx context.Context, key string, accountIDs []int64) ([]dtos.MatchDetailResponse, error)
}

type NameResolver interface {
	EnsureLoaded(ctx context.Context, stratzKey string) error
	ResolveItem(id int) string
	ResolveHero(id int) string
}

// WatcherService drives the background refresh loop. Handlers enqueue
// refresh requests without blocking; a single goroutine performs the
// network work and swaps the view snapshot when it succeeds. A failed
// refresh keeps the previous snapshot untouched.
type WatcherService struct {
	courier   MatchFetcher
	constants NameResolver
	settings  *SettingsService

	requests chan struct{}

	lock  sync.RWMutex
	views []models.MatchView
}

func NewWatcherService(courier MatchFetcher, constants NameResolver, settings *SettingsService) *WatcherService {
	return &WatcherService{
		courier:   courier,
		constants: constants,
		settings:  settings,
		requests:  make(chan struct{}, 1),
	}
}

// RequestRefresh enqueues a refresh without blocking. Returns false when a
// refresh is already pending.
func (s *WatcherService) RequestRefresh() bool {
	select {
	case s.requests <- struct{}{}:
		return true
	default:
		return false
	}
}

// Run consumes refresh requests until the context is cancelled. Meant to be
// started once, as a goroutine, by the app layer.
func (s *WatcherService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.requests:
			s.refresh(ctx)
		}
	}
}

// Rows renders the current snapshot with all ids resolved to names.
func (s *WatcherService) Rows() []dtos.MatchRow {
	s.lock.RLock()
	views := s.views
	s.lock.RUnlock()

	rows := make([]dtos.MatchRow, 0, len(views))
	for _, view := range views {
		rows = append(rows, s.renderRow(view))
	}
	return rows
}

func (s *WatcherService) refresh(ctx context.Context) {
	settings := s.settings.Snapshot()
	if settings.SteamAPIKey == "" {
		logrus.Warn("Skipping refresh: no steam API key configured")
		return
	}
	if len(settings.Friends) == 0 {
		logrus.Warn("Skipping refresh: no friends tracked")
		return
	}

	// Name tables are best-effort: an unresolved id renders as "Unknown",
	// so a failed constant fetch must not block the match refresh.
	if err := s.constants.EnsureLoaded(ctx, settings.StratzAPIKey); err != nil {
		logrus.WithError(err).Error("Failed to load game constants")
	}

	responses, err := s.courier.LatestMatchDetailForMany(ctx, settings.SteamAPIKey, settings.Friends)
	if err != nil {
		logrus.WithError(err).Error("Failed to get match detail")
		return
	}

	views := make([]models.MatchView, 0, len(responses))
	for i, resp := range responses {
		view, err := models.NewMatchView(resp, settings.Friends[i])
		if err != nil {
			logrus.WithError(err).Error("Failed to project match detail")
			return
		}
		views = append(views, view)
	}

	s.lock.Lock()
	s.views = views
	s.lock.Unlock()
	logrus.Infof("Refreshed latest matches for %d friends", len(views))
}

func (s *WatcherService) renderRow(view models.MatchView) dtos.MatchRow {
	player := view.Player
	items := []string{
		s.constants.ResolveItem(player.Item0),
		s.constants.ResolveItem(player.Item1),
		s.constants.ResolveItem(player.Item2),
		s.constants.ResolveItem(player.Item3),
		s.constants.ResolveItem(player.Item4),
		s.constants.ResolveItem(player.Item5),
	}
	backpack := []string{
		s.constants.ResolveItem(player.Backpack0),
		s.constants.ResolveItem(player.Backpack1),
		s.constants.ResolveItem(player.Backpack2),
	}

	return dtos.MatchRow{
		AccountID: view.AccountID,
		Win:       view.WinCol(),
		StartTime: view.StartTimeCol(),
		Duration:  view.DurationCol(),
		GameMode:  view.GameModeCol(),
		Hero:      s.constants.ResolveHero(player.HeroID),
		Kills:     player.Kills,
		Deaths:    player.Deaths,
		Assists:   player.Assists,
		LastHits:  player.LastHits,
		Denies:    player.Denies,
		NetWorth:  player.NetWorth,
		Items:     items,
		Backpack:  backpack,
		Neutral:   s.constants.ResolveItem(player.ItemNeutral),
		Leaver:    player.LeaverStatus.String(),
	}
}
