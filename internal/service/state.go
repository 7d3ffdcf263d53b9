package service

import (
	"strings"

	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// AllStates returns every state in dataset order
func (s *Service) AllStates() []model.State {
	return s.store.States()
}

// StateByID returns the state with the given id, or nil
func (s *Service) StateByID(id int) *model.State {
	states := s.store.States()
	for i := range states {
		if states[i].ID == id {
			return &states[i]
		}
	}
	return nil
}

// StatesByCountryID returns all states of a country in dataset order
func (s *Service) StatesByCountryID(countryID int) []model.State {
	var results []model.State
	for _, st := range s.store.States() {
		if st.CountryID == countryID {
			results = append(results, st)
		}
	}
	return results
}

// StatesByCountryCode returns all states whose denormalized country code
// matches, case-insensitively
func (s *Service) StatesByCountryCode(countryCode string) []model.State {
	if countryCode == "" {
		return nil
	}
	var results []model.State
	for _, st := range s.store.States() {
		if strings.EqualFold(st.CountryCode, countryCode) {
			results = append(results, st)
		}
	}
	return results
}

// SearchStates performs a case-insensitive substring match against state
// names, optionally scoped to a country. Empty queries return an empty
// result.
func (s *Service) SearchStates(query string, countryID int) []model.State {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []model.State
	for _, st := range s.store.States() {
		if !strings.Contains(strings.ToLower(st.Name), term) {
			continue
		}
		if countryID != 0 && st.CountryID != countryID {
			continue
		}
		results = append(results, st)
	}
	return results
}
