package routes

import (
	"datefinder/clock"
	"datefinder/finder"
	"datefinder/locale"
	"datefinder/log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Every request may name its own year range, so the cache is bounded
const maxCachedEngines = 64

type engineKey struct {
	Locale  string
	MinYear int
	MaxYear int
}

// Engines builds one finder.Engine per resolved locale and year range and keeps the most recently
// used ones for later requests
type Engines struct {
	clock  clock.Clock
	mutex  sync.Mutex
	cache  *lru.Cache[engineKey, *finder.Engine]
	logger log.Logger
}

func NewEngines(clk clock.Clock, logger log.Logger) *Engines {
	cache, err := lru.New[engineKey, *finder.Engine](maxCachedEngines)
	if err != nil {
		panic(err)
	}
	return &Engines{
		clock:  clk,
		mutex:  sync.Mutex{},
		cache:  cache,
		logger: logger,
	}
}

func (e *Engines) Get(localeName string, minYear, maxYear int) (*finder.Engine, error) {
	tableName, err := locale.ResolveName(localeName)
	if err != nil {
		return nil, err
	}
	key := engineKey{
		Locale:  tableName,
		MinYear: minYear,
		MaxYear: maxYear,
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	if engine, ok := e.cache.Get(key); ok {
		return engine, nil
	}

	engine, err := finder.New(finder.Options{
		Locale:  tableName,
		MinYear: minYear,
		MaxYear: maxYear,
		Clock:   e.clock,
		Logger:  nil,
	})
	if err != nil {
		return nil, err
	}
	evicted := e.cache.Add(key, engine)
	e.logger.Info().
		Str("locale", engine.Locale().Name()).
		Int("min_year", minYear).
		Int("max_year", maxYear).
		Bool("evicted", evicted).
		Msg("Engine created")
	return engine, nil
}

func (e *Engines) Len() int {
	return e.cache.Len()
}

func Locales() []string {
	return locale.Available()
}
