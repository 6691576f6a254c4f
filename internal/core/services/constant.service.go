package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
)

const unknownName = "Unknown"

type ConstantRepository interface {
	LoadConstants() (items, heroes map[int]string, err error)
	SaveConstants(items, heroes map[int]string) error
}

type ConstantFetcher interface {
	Constants(ctx context.Context, stratzKey string) (dtos.ConstantResponse, error)
}

// ConstantService holds the id->name reference tables. The tables are
// populated once, either from the local cache files or from STRATZ, and
// written back to disk exactly once at shutdown. A single RWMutex guards
// both maps and the loaded flag, including during the final persist.
type ConstantService struct {
	repository ConstantRepository
	courier    ConstantFetcher

	lock   sync.RWMutex
	items  map[int]string
	heroes map[int]string
	loaded bool
}

func NewConstantService(repository ConstantRepository, courier ConstantFetcher) *ConstantService {
	return &ConstantService{
		repository: repository,
		courier:    courier,
		items:      make(map[int]string),
		heroes:     make(map[int]string),
	}
}

func (s *ConstantService) Loaded() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.loaded
}

// EnsureLoaded populates the tables if they are still empty: local cache
// first, remote fetch as fallback. Once loaded it is a no-op.
func (s *ConstantService) EnsureLoaded(ctx context.Context, stratzKey string) error {
	if s.Loaded() {
		return nil
	}

	items, heroes, err := s.repository.LoadConstants()
	if err == nil {
		s.populate(items, heroes)
		logrus.Infof("Loaded game constants from storage: %d items, %d heroes", len(items), len(heroes))
		return nil
	}
	logrus.WithError(err).Info("No game constant cache, fetching from remote")

	return s.FetchFromRemote(ctx, stratzKey)
}

// FetchFromRemote pulls the constants from STRATZ and splits the combined
// response into the two tables. Entries without a display name map to
// "Unknown".
func (s *ConstantService) FetchFromRemote(ctx context.Context, stratzKey string) error {
	resp, err := s.courier.Constants(ctx, stratzKey)
	if err != nil {
		return err
	}

	items := splitConstants(resp.Constants.Items)
	heroes := splitConstants(resp.Constants.Heroes)
	s.populate(items, heroes)
	logrus.Infof("Game constants fetched successfully: %d items, %d heroes", len(items), len(heroes))
	return nil
}

// Persist writes both tables back to storage. Called exactly once at
// teardown; a write failure is logged and swallowed so shutdown completes.
func (s *ConstantService) Persist() {
	s.lock.RLock()
	defer s.lock.RUnlock()

	logrus.Info("Persisting game constants to storage")
	if err := s.repository.SaveConstants(s.items, s.heroes); err != nil {
		logrus.WithError(err).Error("Failed to persist game constants")
	}
}

func (s *ConstantService) ResolveItem(id int) string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return resolveName(id, s.items)
}

func (s *ConstantService) ResolveHero(id int) string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return resolveName(id, s.heroes)
}

func (s *ConstantService) populate(items, heroes map[int]string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.loaded {
		// Another populate path won the race; first one wins.
		return
	}
	s.items = maps.Clone(items)
	s.heroes = maps.Clone(heroes)
	s.loaded = true
}

func splitConstants(entries []dtos.ConstantEntry) map[int]string {
	table := make(map[int]string, len(entries))
	for _, entry := range entries {
		name := unknownName
		if entry.Language.DisplayName != nil {
			name = *entry.Language.DisplayName
		}
		table[entry.ID] = name
	}
	return table
}

// resolveName is total: ids missing from the table resolve to "Unknown".
func resolveName(id int, table map[int]string) string {
	if name, ok := table[id]; ok {
		return name
	}
	return unknownName
}
