package service

import (
	"sort"

	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// AllRegions returns the distinct, non-empty regions, sorted
func (s *Service) AllRegions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, c := range s.store.Countries() {
		if c.Region == "" || seen[c.Region] {
			continue
		}
		seen[c.Region] = true
		regions = append(regions, c.Region)
	}
	sort.Strings(regions)
	return regions
}

// AllSubregions returns the distinct, non-empty subregions, sorted
func (s *Service) AllSubregions() []string {
	seen := make(map[string]bool)
	var subregions []string
	for _, c := range s.store.Countries() {
		if c.Subregion == "" || seen[c.Subregion] {
			continue
		}
		seen[c.Subregion] = true
		subregions = append(subregions, c.Subregion)
	}
	sort.Strings(subregions)
	return subregions
}

// AllTimezones returns the distinct timezone zone names, sorted
func (s *Service) AllTimezones() []string {
	seen := make(map[string]bool)
	var zones []string
	for _, c := range s.store.Countries() {
		for _, tz := range c.Timezones {
			if tz.ZoneName == "" || seen[tz.ZoneName] {
				continue
			}
			seen[tz.ZoneName] = true
			zones = append(zones, tz.ZoneName)
		}
	}
	sort.Strings(zones)
	return zones
}

// AllCurrencies returns the distinct currencies sorted by code. When two
// countries share a code, the first-seen country's name and symbol win.
func (s *Service) AllCurrencies() []model.Currency {
	seen := make(map[string]bool)
	var currencies []model.Currency
	for _, c := range s.store.Countries() {
		if c.Currency == "" || seen[c.Currency] {
			continue
		}
		seen[c.Currency] = true
		currencies = append(currencies, model.Currency{
			Code:   c.Currency,
			Name:   c.CurrencyName,
			Symbol: c.CurrencySymbol,
		})
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].Code < currencies[j].Code
	})
	return currencies
}
