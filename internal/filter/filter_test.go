package filter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tansuasici/countrystatecity-go/internal/model"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

func testResolver(t *testing.T) (CountryResolver, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join("..", "store", "testdata", "full"), nil)
	countries := st.Countries()
	byID := make(map[int]*model.Country, len(countries))
	for i := range countries {
		byID[countries[i].ID] = &countries[i]
	}
	return func(id int) *model.Country { return byID[id] }, st
}

func TestFilter_EmptyAcceptsEverything(t *testing.T) {
	resolve, st := testResolver(t)

	var nilFilter *Filter
	empty := &Filter{}

	for _, c := range st.Countries() {
		assert.True(t, nilFilter.Countries()(c))
		assert.True(t, empty.Countries()(c))
	}
	for _, s := range st.States() {
		assert.True(t, nilFilter.States(resolve)(s))
		assert.True(t, empty.States(resolve)(s))
	}
	for _, c := range st.Cities() {
		assert.True(t, nilFilter.Cities(resolve)(c))
		assert.True(t, empty.Cities(resolve)(c))
	}
}

func TestFilter_CountryCriteria(t *testing.T) {
	_, st := testResolver(t)

	t.Run("by id", func(t *testing.T) {
		pred := (&Filter{CountryID: 1}).Countries()
		var matched []model.Country
		for _, c := range st.Countries() {
			if pred(c) {
				matched = append(matched, c)
			}
		}
		require.Len(t, matched, 1)
		assert.Equal(t, "Afghanistan", matched[0].Name)
	})

	t.Run("by id set", func(t *testing.T) {
		pred := (&Filter{CountryIDs: []int{1, 233}}).Countries()
		var names []string
		for _, c := range st.Countries() {
			if pred(c) {
				names = append(names, c.Name)
			}
		}
		assert.ElementsMatch(t, []string{"Afghanistan", "United States"}, names)
	})

	t.Run("by code, iso2 or iso3, case-insensitive", func(t *testing.T) {
		for _, code := range []string{"tr", "TR", "tur", "TUR"} {
			pred := (&Filter{CountryCode: code}).Countries()
			count := 0
			for _, c := range st.Countries() {
				if pred(c) {
					assert.Equal(t, "Turkey", c.Name)
					count++
				}
			}
			assert.Equal(t, 1, count, "code %q", code)
		}
	})

	t.Run("by region and subregion", func(t *testing.T) {
		pred := (&Filter{Region: "europe", Subregion: "western europe"}).Countries()
		var names []string
		for _, c := range st.Countries() {
			if pred(c) {
				names = append(names, c.Name)
			}
		}
		assert.ElementsMatch(t, []string{"France", "Germany", "Netherlands"}, names)
	})
}

func TestFilter_TransitiveRegionOnStatesAndCities(t *testing.T) {
	resolve, st := testResolver(t)

	// States carry no region field; the predicate must resolve the parent
	// country for each candidate
	pred := (&Filter{Region: "Europe"}).States(resolve)
	var matched []model.State
	for _, s := range st.States() {
		if pred(s) {
			matched = append(matched, s)
		}
	}
	require.NotEmpty(t, matched)
	for _, s := range matched {
		c := resolve(s.CountryID)
		require.NotNil(t, c)
		assert.Equal(t, "Europe", c.Region)
	}

	cityPred := (&Filter{Subregion: "Western Asia"}).Cities(resolve)
	var cities []model.City
	for _, c := range st.Cities() {
		if cityPred(c) {
			cities = append(cities, c)
		}
	}
	require.NotEmpty(t, cities)
	for _, c := range cities {
		assert.Equal(t, "TR", c.CountryCode)
	}
}

func TestFilter_StateAndCityCriteria(t *testing.T) {
	resolve, st := testResolver(t)

	t.Run("state by countryCode iso3", func(t *testing.T) {
		pred := (&Filter{CountryCode: "TUR"}).States(resolve)
		count := 0
		for _, s := range st.States() {
			if pred(s) {
				assert.Equal(t, "TR", s.CountryCode)
				count++
			}
		}
		assert.Equal(t, 3, count)
	})

	t.Run("city by stateId", func(t *testing.T) {
		pred := (&Filter{StateID: 2170}).Cities(resolve)
		var names []string
		for _, c := range st.Cities() {
			if pred(c) {
				names = append(names, c.Name)
			}
		}
		assert.Equal(t, []string{"Kadıköy", "Üsküdar"}, names)
	})

	t.Run("criteria compose with AND", func(t *testing.T) {
		// StateID matches Istanbul but the country id does not
		pred := (&Filter{StateID: 2170, CountryID: 82}).Cities(resolve)
		for _, c := range st.Cities() {
			assert.False(t, pred(c))
		}
	})
}
