package service

import (
	"strings"

	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// AllCountries returns every country in dataset order
func (s *Service) AllCountries() []model.Country {
	return s.store.Countries()
}

// CountryByID returns the country with the given id, or nil
func (s *Service) CountryByID(id int) *model.Country {
	countries := s.store.Countries()
	for i := range countries {
		if countries[i].ID == id {
			return &countries[i]
		}
	}
	return nil
}

// CountryByISO2 returns the country with the given ISO2 code,
// case-insensitively. Empty input always yields nil.
func (s *Service) CountryByISO2(code string) *model.Country {
	if code == "" {
		return nil
	}
	countries := s.store.Countries()
	for i := range countries {
		if strings.EqualFold(countries[i].ISO2, code) {
			return &countries[i]
		}
	}
	return nil
}

// CountryByISO3 returns the country with the given ISO3 code,
// case-insensitively. Empty input always yields nil.
func (s *Service) CountryByISO3(code string) *model.Country {
	if code == "" {
		return nil
	}
	countries := s.store.Countries()
	for i := range countries {
		if strings.EqualFold(countries[i].ISO3, code) {
			return &countries[i]
		}
	}
	return nil
}

// CountryByCode resolves either an ISO2 or an ISO3 code
func (s *Service) CountryByCode(code string) *model.Country {
	if country := s.CountryByISO2(code); country != nil {
		return country
	}
	return s.CountryByISO3(code)
}

// CountriesByRegion returns all countries in the given region,
// case-insensitive exact match
func (s *Service) CountriesByRegion(region string) []model.Country {
	var results []model.Country
	for _, c := range s.store.Countries() {
		if strings.EqualFold(c.Region, region) {
			results = append(results, c)
		}
	}
	return results
}

// CountriesBySubregion returns all countries in the given subregion,
// case-insensitive exact match
func (s *Service) CountriesBySubregion(subregion string) []model.Country {
	var results []model.Country
	for _, c := range s.store.Countries() {
		if strings.EqualFold(c.Subregion, subregion) {
			results = append(results, c)
		}
	}
	return results
}

// SearchCountries performs a case-insensitive substring match against
// country names and native names. An empty or whitespace-only query
// returns an empty result rather than the full dataset.
func (s *Service) SearchCountries(query string) []model.Country {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []model.Country
	for _, c := range s.store.Countries() {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			(c.Native != "" && strings.Contains(strings.ToLower(c.Native), term)) {
			results = append(results, c)
		}
	}
	return results
}
