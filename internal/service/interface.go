package service

import (
	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	AllCountries() []model.Country
	CountryByID(id int) *model.Country
	CountryByCode(code string) *model.Country
	CountriesByRegion(region string) []model.Country
	CountriesBySubregion(subregion string) []model.Country
	SearchCountries(query string) []model.Country

	AllStates() []model.State
	StateByID(id int) *model.State
	StatesByCountryID(countryID int) []model.State
	SearchStates(query string, countryID int) []model.State

	AllCities() []model.City
	CityByID(id int) *model.City
	CitiesByStateID(stateID int) []model.City
	CitiesByCountryID(countryID int) []model.City
	SearchCities(query string, stateID, countryID int) []model.City

	AllRegions() []string
	AllSubregions() []string
	AllTimezones() []string
	AllCurrencies() []model.Currency

	Stats() model.Stats
}
