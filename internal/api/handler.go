package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tansuasici/countrystatecity-go/internal/model"
	"github.com/tansuasici/countrystatecity-go/internal/service"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func respond(w http.ResponseWriter, status int, resp model.APIResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondData(w http.ResponseWriter, data any) {
	respond(w, http.StatusOK, model.APIResponse{Success: true, Data: data})
}

// respondList reports the pre-pagination total alongside the page
func respondList(w http.ResponseWriter, data any, total int) {
	respond(w, http.StatusOK, model.APIResponse{Success: true, Data: data, Total: &total})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, model.APIResponse{Success: false, Error: msg})
}

func parseListParams(r *http.Request) (limit, offset int, err error) {
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit parameter")
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter")
		}
	}
	return limit, offset, nil
}

// paginate slices a window out of items. limit 0 means no limit.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// GetCountries handles GET /api/v1/countries
func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	var countries []model.Country
	switch {
	case q.Get("search") != "":
		countries = h.service.SearchCountries(q.Get("search"))
	case q.Get("region") != "":
		countries = h.service.CountriesByRegion(q.Get("region"))
	case q.Get("subregion") != "":
		countries = h.service.CountriesBySubregion(q.Get("subregion"))
	default:
		countries = h.service.AllCountries()
	}

	respondList(w, paginate(countries, limit, offset), len(countries))
}

// GetCountry handles GET /api/v1/countries/{code}. The path segment is a
// numeric id or an ISO2/ISO3 code.
func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country := h.lookupCountry(mux.Vars(r)["code"])
	if country == nil {
		respondError(w, http.StatusNotFound, "country not found")
		return
	}
	respondData(w, country)
}

// GetCountryStates handles GET /api/v1/countries/{code}/states
func (h *Handler) GetCountryStates(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	country := h.lookupCountry(mux.Vars(r)["code"])
	if country == nil {
		respondError(w, http.StatusNotFound, "country not found")
		return
	}

	states := h.service.StatesByCountryID(country.ID)
	respondList(w, paginate(states, limit, offset), len(states))
}

func (h *Handler) lookupCountry(key string) *model.Country {
	if id, err := strconv.Atoi(key); err == nil {
		return h.service.CountryByID(id)
	}
	return h.service.CountryByCode(key)
}

// GetStates handles GET /api/v1/states
func (h *Handler) GetStates(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	countryID := 0
	if s := q.Get("countryId"); s != "" {
		countryID, err = strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid countryId parameter")
			return
		}
	}

	var states []model.State
	switch {
	case q.Get("search") != "":
		states = h.service.SearchStates(q.Get("search"), countryID)
	case countryID != 0:
		states = h.service.StatesByCountryID(countryID)
	default:
		states = h.service.AllStates()
	}

	respondList(w, paginate(states, limit, offset), len(states))
}

// GetState handles GET /api/v1/states/{id}
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid state id")
		return
	}

	state := h.service.StateByID(id)
	if state == nil {
		respondError(w, http.StatusNotFound, "state not found")
		return
	}
	respondData(w, state)
}

// GetStateCities handles GET /api/v1/states/{id}/cities
func (h *Handler) GetStateCities(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid state id")
		return
	}

	limit, offset, err := parseListParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.service.StateByID(id) == nil {
		respondError(w, http.StatusNotFound, "state not found")
		return
	}

	cities := h.service.CitiesByStateID(id)
	respondList(w, paginate(cities, limit, offset), len(cities))
}

// GetCities handles GET /api/v1/cities
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	stateID, countryID := 0, 0
	if s := q.Get("stateId"); s != "" {
		stateID, err = strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid stateId parameter")
			return
		}
	}
	if s := q.Get("countryId"); s != "" {
		countryID, err = strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid countryId parameter")
			return
		}
	}

	var cities []model.City
	switch {
	case q.Get("search") != "":
		cities = h.service.SearchCities(q.Get("search"), stateID, countryID)
	case stateID != 0:
		cities = h.service.CitiesByStateID(stateID)
	case countryID != 0:
		cities = h.service.CitiesByCountryID(countryID)
	default:
		cities = h.service.AllCities()
	}

	respondList(w, paginate(cities, limit, offset), len(cities))
}

// GetCity handles GET /api/v1/cities/{id}
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid city id")
		return
	}

	city := h.service.CityByID(id)
	if city == nil {
		respondError(w, http.StatusNotFound, "city not found")
		return
	}
	respondData(w, city)
}

// GetRegions handles GET /api/v1/regions
func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	regions := h.service.AllRegions()
	respondList(w, regions, len(regions))
}

// GetSubregions handles GET /api/v1/subregions
func (h *Handler) GetSubregions(w http.ResponseWriter, r *http.Request) {
	subregions := h.service.AllSubregions()
	respondList(w, subregions, len(subregions))
}

// GetTimezones handles GET /api/v1/timezones
func (h *Handler) GetTimezones(w http.ResponseWriter, r *http.Request) {
	zones := h.service.AllTimezones()
	respondList(w, zones, len(zones))
}

// GetCurrencies handles GET /api/v1/currencies
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies := h.service.AllCurrencies()
	respondList(w, currencies, len(currencies))
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondData(w, h.service.Stats())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
