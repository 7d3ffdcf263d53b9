// Package store holds the three immutable reference collections in memory.
//
// Loading is lazy and memoized: the first access to a collection reads and
// decodes its dataset file exactly once, even under concurrent first
// access. An unreadable or malformed dataset file degrades to an empty
// collection instead of failing, so the lookup surface always answers; the
// degradation is reported on the logger. This availability-over-correctness
// tradeoff is deliberate and callers depend on it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tansuasici/countrystatecity-go/internal/model"
	"go.uber.org/zap"
)

// Entity identifies one of the three reference collections
type Entity string

const (
	EntityCountries Entity = "countries"
	EntityStates    Entity = "states"
	EntityCities    Entity = "cities"
)

// ParseEntity validates a caller-supplied entity name
func ParseEntity(s string) (Entity, error) {
	switch e := Entity(strings.ToLower(strings.TrimSpace(s))); e {
	case EntityCountries, EntityStates, EntityCities:
		return e, nil
	default:
		return "", fmt.Errorf("unknown entity type: %q", s)
	}
}

const (
	countryFile = "country.json"
	stateFile   = "state.json"
	cityFile    = "city.json"
)

// Store provides the canonical country, state and city collections.
// It is immutable after the first load of each collection; records must
// never be mutated by callers.
type Store struct {
	dataDir string
	logger  *zap.Logger

	countriesOnce sync.Once
	countries     []model.Country

	statesOnce sync.Once
	states     []model.State

	citiesOnce sync.Once
	cities     []model.City
}

// New creates a store reading from dataDir. A nil logger disables
// diagnostics.
func New(dataDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dataDir: dataDir, logger: logger}
}

// Countries returns the country collection, loading it on first call
func (s *Store) Countries() []model.Country {
	s.countriesOnce.Do(s.loadCountries)
	return s.countries
}

// States returns the state collection, loading it on first call
func (s *Store) States() []model.State {
	s.statesOnce.Do(s.loadStates)
	return s.states
}

// Cities returns the city collection, loading it on first call. If the
// source uses the compact encoding, every record is expanded into the full
// City shape before this returns.
func (s *Store) Cities() []model.City {
	s.citiesOnce.Do(s.loadCities)
	return s.cities
}

func (s *Store) loadCountries() {
	s.countries = []model.Country{}

	raw, err := s.readDataset(countryFile)
	if err != nil {
		return
	}

	var countries []model.Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		s.logger.Error("country dataset is malformed, serving empty collection",
			zap.String("file", countryFile), zap.Error(err))
		return
	}

	s.countries = countries
	s.logger.Info("loaded countries", zap.Int("count", len(countries)))
}

func (s *Store) loadStates() {
	s.states = []model.State{}

	raw, err := s.readDataset(stateFile)
	if err != nil {
		return
	}

	var states []model.State
	if err := json.Unmarshal(raw, &states); err != nil {
		s.logger.Error("state dataset is malformed, serving empty collection",
			zap.String("file", stateFile), zap.Error(err))
		return
	}

	s.states = states
	s.logger.Info("loaded states", zap.Int("count", len(states)))
}

// compactCity is the space-optimized on-disk encoding produced by the
// dataset build pipeline. Coordinates use json.Number so the original
// decimal formatting survives the round trip to a string field.
type compactCity struct {
	ID         int         `json:"i"`
	Name       string      `json:"n"`
	StateID    int         `json:"s"`
	CountryID  int         `json:"c"`
	Latitude   json.Number `json:"la"`
	Longitude  json.Number `json:"lo"`
	WikiDataID string      `json:"w"`
}

func (s *Store) loadCities() {
	s.cities = []model.City{}

	raw, err := s.readDataset(cityFile)
	if err != nil {
		return
	}

	var cities []model.City
	if err := json.Unmarshal(raw, &cities); err != nil {
		s.logger.Error("city dataset is malformed, serving empty collection",
			zap.String("file", cityFile), zap.Error(err))
		return
	}

	// The full encoding always carries a positive id; a zero id on the
	// first record means the file uses the compact encoding
	if len(cities) > 0 && cities[0].ID == 0 {
		var compact []compactCity
		if err := json.Unmarshal(raw, &compact); err != nil {
			s.logger.Error("city dataset is malformed, serving empty collection",
				zap.String("file", cityFile), zap.Error(err))
			return
		}
		cities = s.expandCompact(compact)
		s.logger.Info("loaded cities", zap.Int("count", len(cities)),
			zap.String("encoding", "compact"))
	} else {
		s.logger.Info("loaded cities", zap.Int("count", len(cities)),
			zap.String("encoding", "full"))
	}

	s.cities = cities
}

// expandCompact normalizes compact records into the canonical City shape,
// denormalizing state and country fields by cross-reference. Records whose
// stateId/countryId have no match keep those fields empty rather than
// failing the load.
func (s *Store) expandCompact(compact []compactCity) []model.City {
	statesByID := make(map[int]*model.State)
	states := s.States()
	for i := range states {
		statesByID[states[i].ID] = &states[i]
	}

	countriesByID := make(map[int]*model.Country)
	countries := s.Countries()
	for i := range countries {
		countriesByID[countries[i].ID] = &countries[i]
	}

	cities := make([]model.City, 0, len(compact))
	var unresolved int
	for _, c := range compact {
		city := model.City{
			ID:         c.ID,
			Name:       c.Name,
			StateID:    c.StateID,
			CountryID:  c.CountryID,
			Latitude:   c.Latitude.String(),
			Longitude:  c.Longitude.String(),
			WikiDataID: c.WikiDataID,
		}

		if state, ok := statesByID[c.StateID]; ok {
			city.StateCode = state.StateCode
			city.StateName = state.Name
		} else {
			unresolved++
		}

		if country, ok := countriesByID[c.CountryID]; ok {
			city.CountryCode = country.ISO2
			city.CountryName = country.Name
		}

		cities = append(cities, city)
	}

	if unresolved > 0 {
		s.logger.Warn("compact city records with unresolvable state references",
			zap.Int("count", unresolved))
	}

	return cities
}

func (s *Store) readDataset(name string) ([]byte, error) {
	path := filepath.Join(s.dataDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("dataset unavailable, serving empty collection",
			zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return raw, nil
}
