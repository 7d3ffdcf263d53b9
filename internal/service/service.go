package service

import (
	"github.com/tansuasici/countrystatecity-go/internal/model"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

// Service provides read-only lookups over the reference dataset
type Service struct {
	store *store.Store
}

// NewService creates a new service instance
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Stats returns the true lengths of the three collections. Calling it
// forces the lazy city load, so the counts are never estimates.
func (s *Service) Stats() model.Stats {
	return model.Stats{
		Countries: len(s.store.Countries()),
		States:    len(s.store.States()),
		Cities:    len(s.store.Cities()),
	}
}
