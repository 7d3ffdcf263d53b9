// Package filter compiles declarative filter criteria into predicates over
// the reference dataset types. Every criterion present on a Filter is
// AND-combined; absent criteria impose no constraint, so the zero Filter
// (and a nil *Filter) accepts every record.
package filter

import (
	"strings"

	"github.com/tansuasici/countrystatecity-go/internal/model"
)

// Filter carries optional criteria. CountryCode accepts ISO2 or ISO3,
// case-insensitively; Region and Subregion are case-insensitive exact
// matches resolved through the parent country for states and cities.
type Filter struct {
	CountryID   int
	CountryIDs  []int
	CountryCode string
	Region      string
	Subregion   string
	StateID     int
}

// CountryResolver looks up a country by id, returning nil on a miss. It is
// how state/city predicates reach the parent country for code, region and
// subregion criteria.
type CountryResolver func(id int) *model.Country

// Countries compiles the filter into a country predicate
func (f *Filter) Countries() func(model.Country) bool {
	if f == nil {
		return acceptAll[model.Country]
	}

	var preds []func(model.Country) bool
	if f.CountryID != 0 {
		id := f.CountryID
		preds = append(preds, func(c model.Country) bool { return c.ID == id })
	}
	if len(f.CountryIDs) > 0 {
		ids := idSet(f.CountryIDs)
		preds = append(preds, func(c model.Country) bool { return ids[c.ID] })
	}
	if f.CountryCode != "" {
		code := f.CountryCode
		preds = append(preds, func(c model.Country) bool {
			return strings.EqualFold(c.ISO2, code) || strings.EqualFold(c.ISO3, code)
		})
	}
	if f.Region != "" {
		region := f.Region
		preds = append(preds, func(c model.Country) bool { return strings.EqualFold(c.Region, region) })
	}
	if f.Subregion != "" {
		subregion := f.Subregion
		preds = append(preds, func(c model.Country) bool { return strings.EqualFold(c.Subregion, subregion) })
	}
	return and(preds)
}

// States compiles the filter into a state predicate. resolve is consulted
// for the ISO3 form of CountryCode and for Region/Subregion, which have no
// denormalized counterpart on State.
func (f *Filter) States(resolve CountryResolver) func(model.State) bool {
	if f == nil {
		return acceptAll[model.State]
	}

	var preds []func(model.State) bool
	if f.StateID != 0 {
		id := f.StateID
		preds = append(preds, func(st model.State) bool { return st.ID == id })
	}
	if f.CountryID != 0 {
		id := f.CountryID
		preds = append(preds, func(st model.State) bool { return st.CountryID == id })
	}
	if len(f.CountryIDs) > 0 {
		ids := idSet(f.CountryIDs)
		preds = append(preds, func(st model.State) bool { return ids[st.CountryID] })
	}
	if f.CountryCode != "" {
		code := f.CountryCode
		preds = append(preds, func(st model.State) bool {
			if strings.EqualFold(st.CountryCode, code) {
				return true
			}
			c := resolve(st.CountryID)
			return c != nil && strings.EqualFold(c.ISO3, code)
		})
	}
	if f.Region != "" {
		region := f.Region
		preds = append(preds, func(st model.State) bool {
			c := resolve(st.CountryID)
			return c != nil && strings.EqualFold(c.Region, region)
		})
	}
	if f.Subregion != "" {
		subregion := f.Subregion
		preds = append(preds, func(st model.State) bool {
			c := resolve(st.CountryID)
			return c != nil && strings.EqualFold(c.Subregion, subregion)
		})
	}
	return and(preds)
}

// Cities compiles the filter into a city predicate
func (f *Filter) Cities(resolve CountryResolver) func(model.City) bool {
	if f == nil {
		return acceptAll[model.City]
	}

	var preds []func(model.City) bool
	if f.StateID != 0 {
		id := f.StateID
		preds = append(preds, func(c model.City) bool { return c.StateID == id })
	}
	if f.CountryID != 0 {
		id := f.CountryID
		preds = append(preds, func(c model.City) bool { return c.CountryID == id })
	}
	if len(f.CountryIDs) > 0 {
		ids := idSet(f.CountryIDs)
		preds = append(preds, func(c model.City) bool { return ids[c.CountryID] })
	}
	if f.CountryCode != "" {
		code := f.CountryCode
		preds = append(preds, func(c model.City) bool {
			if strings.EqualFold(c.CountryCode, code) {
				return true
			}
			country := resolve(c.CountryID)
			return country != nil && strings.EqualFold(country.ISO3, code)
		})
	}
	if f.Region != "" {
		region := f.Region
		preds = append(preds, func(c model.City) bool {
			country := resolve(c.CountryID)
			return country != nil && strings.EqualFold(country.Region, region)
		})
	}
	if f.Subregion != "" {
		subregion := f.Subregion
		preds = append(preds, func(c model.City) bool {
			country := resolve(c.CountryID)
			return country != nil && strings.EqualFold(country.Subregion, subregion)
		})
	}
	return and(preds)
}

func acceptAll[T any](T) bool { return true }

// and folds independent predicates into a single conjunction
func and[T any](preds []func(T) bool) func(T) bool {
	if len(preds) == 0 {
		return acceptAll[T]
	}
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
