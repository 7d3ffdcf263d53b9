package service

import (
	"strings"

	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// AllCities returns every city in dataset order. This forces the lazy
// city load, which is the expensive one.
func (s *Service) AllCities() []model.City {
	return s.store.Cities()
}

// CityByID returns the city with the given id, or nil
func (s *Service) CityByID(id int) *model.City {
	cities := s.store.Cities()
	for i := range cities {
		if cities[i].ID == id {
			return &cities[i]
		}
	}
	return nil
}

// CitiesByStateID returns all cities of a state in dataset order
func (s *Service) CitiesByStateID(stateID int) []model.City {
	var results []model.City
	for _, c := range s.store.Cities() {
		if c.StateID == stateID {
			results = append(results, c)
		}
	}
	return results
}

// CitiesByCountryID returns all cities of a country in dataset order
func (s *Service) CitiesByCountryID(countryID int) []model.City {
	var results []model.City
	for _, c := range s.store.Cities() {
		if c.CountryID == countryID {
			results = append(results, c)
		}
	}
	return results
}

// SearchCities performs a case-insensitive substring match against city
// names, optionally scoped by state and/or country. Empty queries return
// an empty result.
func (s *Service) SearchCities(query string, stateID, countryID int) []model.City {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []model.City
	for _, c := range s.store.Cities() {
		if !strings.Contains(strings.ToLower(c.Name), term) {
			continue
		}
		if stateID != 0 && c.StateID != stateID {
			continue
		}
		if countryID != 0 && c.CountryID != countryID {
			continue
		}
		results = append(results, c)
	}
	return results
}
