package api

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/export"
	"github.com/tansuasici/countrystatecity-go/internal/service"
)

// NewRouter creates a new HTTP router
func NewRouter(svc service.ServiceInterface, exporter *export.Exporter, logger *zap.Logger) *mux.Router {
	handler := NewHandler(svc)
	exportHandler := NewExportHandler(exporter, logger)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/countries", handler.GetCountries).Methods("GET")
	v1.HandleFunc("/countries/{code}", handler.GetCountry).Methods("GET")
	v1.HandleFunc("/countries/{code}/states", handler.GetCountryStates).Methods("GET")
	v1.HandleFunc("/states", handler.GetStates).Methods("GET")
	v1.HandleFunc("/states/{id}", handler.GetState).Methods("GET")
	v1.HandleFunc("/states/{id}/cities", handler.GetStateCities).Methods("GET")
	v1.HandleFunc("/cities", handler.GetCities).Methods("GET")
	v1.HandleFunc("/cities/{id}", handler.GetCity).Methods("GET")
	v1.HandleFunc("/regions", handler.GetRegions).Methods("GET")
	v1.HandleFunc("/subregions", handler.GetSubregions).Methods("GET")
	v1.HandleFunc("/timezones", handler.GetTimezones).Methods("GET")
	v1.HandleFunc("/currencies", handler.GetCurrencies).Methods("GET")
	v1.HandleFunc("/stats", handler.GetStats).Methods("GET")
	v1.HandleFunc("/export/{entity}", exportHandler.Export).Methods("GET")

	return router
}
