package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

func newTestService() *Service {
	return NewService(store.New(filepath.Join("..", "store", "testdata", "full"), nil))
}

func TestService_CountryByID(t *testing.T) {
	svc := newTestService()

	afghanistan := svc.CountryByID(1)
	require.NotNil(t, afghanistan)
	assert.Equal(t, "Afghanistan", afghanistan.Name)
	assert.Equal(t, "AF", afghanistan.ISO2)
	assert.Equal(t, "AFG", afghanistan.ISO3)

	assert.Nil(t, svc.CountryByID(99999))
}

func TestService_CountryByISOCodes(t *testing.T) {
	svc := newTestService()

	// Lookups are case-insensitive
	for _, code := range []string{"us", "US", "Us"} {
		country := svc.CountryByISO2(code)
		require.NotNil(t, country, "iso2 %q", code)
		assert.Equal(t, "United States", country.Name)
	}

	turkey := svc.CountryByISO3("tur")
	require.NotNil(t, turkey)
	assert.Equal(t, "Turkey", turkey.Name)

	// Empty input always yields not-found
	assert.Nil(t, svc.CountryByISO2(""))
	assert.Nil(t, svc.CountryByISO3(""))

	// CountryByCode resolves either code length
	require.NotNil(t, svc.CountryByCode("DE"))
	require.NotNil(t, svc.CountryByCode("deu"))
	assert.Nil(t, svc.CountryByCode("XX"))
}

func TestService_SearchCountries(t *testing.T) {
	svc := newTestService()

	t.Run("empty and whitespace queries return nothing", func(t *testing.T) {
		assert.Empty(t, svc.SearchCountries(""))
		assert.Empty(t, svc.SearchCountries("   "))
		assert.Empty(t, svc.SearchStates("", 0))
		assert.Empty(t, svc.SearchStates("\t ", 0))
		assert.Empty(t, svc.SearchCities("", 0, 0))
		assert.Empty(t, svc.SearchCities("  ", 0, 0))
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		lower := svc.SearchCountries("germany")
		upper := svc.SearchCountries("GERMANY")
		require.NotEmpty(t, lower)
		require.Len(t, upper, len(lower))
		for i := range lower {
			assert.Equal(t, lower[i].ID, upper[i].ID)
		}
	})

	t.Run("matches native names", func(t *testing.T) {
		results := svc.SearchCountries("Türkiye")
		require.Len(t, results, 1)
		assert.Equal(t, "Turkey", results[0].Name)
	})

	t.Run("substring, not prefix", func(t *testing.T) {
		results := svc.SearchCountries("kingdom")
		require.Len(t, results, 1)
		assert.Equal(t, "United Kingdom", results[0].Name)
	})
}

func TestService_TurkeyScenario(t *testing.T) {
	svc := newTestService()

	turkey := svc.CountryByISO2("TR")
	require.NotNil(t, turkey)
	assert.Equal(t, "Turkey", turkey.Name)
	assert.Equal(t, "TUR", turkey.ISO3)

	states := svc.StatesByCountryID(turkey.ID)
	require.NotEmpty(t, states)

	var istanbul *int
	for i := range states {
		if states[i].Name == "Istanbul" {
			istanbul = &states[i].ID
		}
	}
	require.NotNil(t, istanbul, "Istanbul province must exist")

	cities := svc.CitiesByStateID(*istanbul)
	require.NotEmpty(t, cities)

	// A district is reachable by substring search scoped to the state
	results := svc.SearchCities("Kadıköy", *istanbul, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "Kadıköy", results[0].Name)
	assert.Equal(t, turkey.ID, results[0].CountryID)
}

func TestService_StatesAndCitiesLookups(t *testing.T) {
	svc := newTestService()

	byID := svc.StatesByCountryID(225)
	byCode := svc.StatesByCountryCode("tr")
	assert.Len(t, byCode, len(byID))
	assert.Len(t, byID, 3)

	// No match yields an empty collection, never an error
	assert.Empty(t, svc.StatesByCountryID(424242))
	assert.Empty(t, svc.CitiesByStateID(424242))
	assert.Empty(t, svc.CitiesByCountryID(424242))
	assert.Nil(t, svc.StateByID(424242))
	assert.Nil(t, svc.CityByID(424242))

	// Results keep dataset order
	usCities := svc.CitiesByCountryID(233)
	require.Len(t, usCities, 3)
	assert.Equal(t, "Los Angeles", usCities[0].Name)
	assert.Equal(t, "San Francisco", usCities[1].Name)
	assert.Equal(t, "New York City", usCities[2].Name)

	// Scoped search applies exact-match AND filters
	scoped := svc.SearchCities("an", 0, 233)
	for _, c := range scoped {
		assert.Equal(t, 233, c.CountryID)
		assert.Contains(t, strings.ToLower(c.Name), "an")
	}
}

func TestService_Aggregates(t *testing.T) {
	svc := newTestService()

	regions := svc.AllRegions()
	assert.Equal(t, []string{"Americas", "Asia", "Europe", "Oceania"}, regions)

	subregions := svc.AllSubregions()
	assert.True(t, sortedStrings(subregions))
	assert.Contains(t, subregions, "Western Asia")

	zones := svc.AllTimezones()
	assert.True(t, sortedStrings(zones))
	assert.Contains(t, zones, "Europe/Istanbul")
	// Zone names are distinct even when countries share them
	seen := make(map[string]bool)
	for _, z := range zones {
		assert.False(t, seen[z], "duplicate zone %s", z)
		seen[z] = true
	}
}

func TestService_AllCurrencies(t *testing.T) {
	svc := newTestService()

	currencies := svc.AllCurrencies()
	require.NotEmpty(t, currencies)

	// Sorted by code
	for i := 1; i < len(currencies); i++ {
		assert.Less(t, currencies[i-1].Code, currencies[i].Code)
	}

	var usd, eur bool
	for _, c := range currencies {
		switch c.Code {
		case "USD":
			usd = true
			assert.Equal(t, "$", c.Symbol)
			assert.Contains(t, c.Name, "dollar")
		case "EUR":
			// EUR appears on several countries; the first-seen entry wins
			eur = true
			assert.Equal(t, "Euro", c.Name)
			assert.Equal(t, "€", c.Symbol)
		}
	}
	assert.True(t, usd, "USD must be present")
	assert.True(t, eur, "EUR must be present")
}

func TestService_Stats(t *testing.T) {
	svc := newTestService()

	stats := svc.Stats()
	assert.Equal(t, len(svc.AllCountries()), stats.Countries)
	assert.Equal(t, len(svc.AllStates()), stats.States)
	assert.Equal(t, len(svc.AllCities()), stats.Cities)
	assert.Equal(t, 9, stats.Cities, "stats must force the lazy city load")
}

func TestService_RegionLookups(t *testing.T) {
	svc := newTestService()

	europe := svc.CountriesByRegion("europe")
	assert.Len(t, europe, 6)
	for _, c := range europe {
		assert.Equal(t, "Europe", c.Region)
	}

	northernAmerica := svc.CountriesBySubregion("NORTHERN AMERICA")
	require.Len(t, northernAmerica, 1)
	assert.Equal(t, "United States", northernAmerica[0].Name)
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
