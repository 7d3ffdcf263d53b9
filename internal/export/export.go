// Package export renders filtered snapshots of the reference dataset as
// strings, line streams and files.
package export

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/filter"
	"github.com/tansuasici/countrystatecity-go/internal/format"
	"github.com/tansuasici/countrystatecity-go/internal/model"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

// Exporter reads collections from the store and hands them to the format
// layer, applying filter criteria along the way
type Exporter struct {
	store  *store.Store
	logger *zap.Logger
}

// New creates an Exporter over the given store
func New(st *store.Store, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{store: st, logger: logger}
}

// resolver builds a country lookup for transitive filter criteria
func (e *Exporter) resolver() filter.CountryResolver {
	countries := e.store.Countries()
	byID := make(map[int]*model.Country, len(countries))
	for i := range countries {
		byID[countries[i].ID] = &countries[i]
	}
	return func(id int) *model.Country { return byID[id] }
}

func (e *Exporter) filteredCountries(f *filter.Filter) []model.Country {
	pred := f.Countries()
	var out []model.Country
	for _, c := range e.store.Countries() {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func (e *Exporter) filteredStates(f *filter.Filter) []model.State {
	pred := f.States(e.resolver())
	var out []model.State
	for _, s := range e.store.States() {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

func (e *Exporter) filteredCities(f *filter.Filter) []model.City {
	pred := f.Cities(e.resolver())
	var out []model.City
	for _, c := range e.store.Cities() {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// ExportFiltered renders the surviving records of one collection as a
// single string in the requested format
func (e *Exporter) ExportFiltered(entity store.Entity, kind format.Kind, f *filter.Filter, opts *format.Options) (string, error) {
	meta := entityMetadata(entity)
	switch entity {
	case store.EntityCountries:
		return format.Format(e.filteredCountries(f), kind, meta, opts)
	case store.EntityStates:
		return format.Format(e.filteredStates(f), kind, meta, opts)
	case store.EntityCities:
		return format.Format(e.filteredCities(f), kind, meta, opts)
	default:
		return "", fmt.Errorf("unknown entity: %s", entity)
	}
}

func entityMetadata(entity store.Entity) *format.Metadata {
	switch entity {
	case store.EntityCountries:
		return &format.Metadata{RootName: "countries", ItemName: "country"}
	case store.EntityStates:
		return &format.Metadata{RootName: "states", ItemName: "state"}
	case store.EntityCities:
		return &format.Metadata{RootName: "cities", ItemName: "city"}
	default:
		return nil
	}
}
