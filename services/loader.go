package services

import (
	"errors"
	"fmt"
	"sync"

	"zomato-insights/models"
	"zomato-insights/source"
	"zomato-insights/utils"
)

// ErrSourceUnavailable is returned by Loader.Load when the dataset cannot
// be located or read. It is the only fatal error of the pipeline; callers
// must halt and report rather than continue with a partial table.
var ErrSourceUnavailable = errors.New("dataset source unavailable")

// Loader builds the normalized table from a Source exactly once per
// process. The first successful Load fetches, cleans and publishes the
// table; every later call returns the identical cached slice. A failed
// load is not cached, so a corrected source can be retried.
type Loader struct {
	src     source.Source
	cleaner *Cleaner
	logger  *utils.Logger

	mu    sync.Mutex
	table []*models.Restaurant
	built bool
}

// NewLoader creates a Loader over the given source.
func NewLoader(src source.Source, logger *utils.Logger) *Loader {
	return &Loader{
		src:     src,
		cleaner: NewCleaner(logger),
		logger:  logger,
	}
}

// Load returns the normalized table, building it on first call.
// The returned slice is shared: callers must treat it as read-only.
func (l *Loader) Load() ([]*models.Restaurant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.built {
		return l.table, nil
	}

	l.logger.Info("[loader] Loading dataset from %s", l.src.Name())
	raw, err := l.src.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	l.table = l.cleaner.Clean(raw)
	l.built = true
	l.logger.Info("[loader] Dataset ready: %d restaurants", len(l.table))
	return l.table, nil
}
