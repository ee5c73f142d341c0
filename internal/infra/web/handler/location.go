package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dlaan/geopoint/internal/application/usecase/location"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/internal/infra/web/middleware"
	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Location struct {
	CreateLocationUseCase location.CreateUseCase
	ListLocationsUseCase  location.ListUseCase
	GetLocationUseCase    location.GetUseCase
	Logger                logger.Logger
}

func NewLocationHandler(create location.CreateUseCase, list location.ListUseCase, get location.GetUseCase, log logger.Logger) *Location {
	return &Location{
		CreateLocationUseCase: create,
		ListLocationsUseCase:  list,
		GetLocationUseCase:    get,
		Logger:                log,
	}
}

func (h *Location) Create(w http.ResponseWriter, r *http.Request) {
	var dto location.CreateInput

	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Owner comes from the authenticated caller only, never from the body.
	dto.Owner = middleware.CallerFromContext(r.Context())

	output, err := h.CreateLocationUseCase.Execute(r.Context(), dto)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *Location) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outputs, err := h.ListLocationsUseCase.Execute(r.Context(), input)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	if outputs == nil {
		outputs = []location.Output{}
	}
	writeJSON(w, http.StatusOK, outputs)
}

func (h *Location) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	output, err := h.GetLocationUseCase.Execute(r.Context(), id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// parseListInput reads lat, lng, distance (meters), user and ordering query
// parameters. The radius trio stays nil-valued when absent so the filter only
// triggers with all three present.
func parseListInput(r *http.Request) (location.ListInput, error) {
	input := location.ListInput{
		OwnerID:  r.URL.Query().Get("user"),
		Ordering: r.URL.Query().Get("ordering"),
	}

	var err error
	if input.Latitude, err = optionalFloat(r, "lat"); err != nil {
		return location.ListInput{}, err
	}
	if input.Longitude, err = optionalFloat(r, "lng"); err != nil {
		return location.ListInput{}, err
	}
	if input.RadiusMeters, err = optionalFloat(r, "distance"); err != nil {
		return location.ListInput{}, err
	}
	return input, nil
}

func optionalFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("invalid value for query parameter '" + name + "'")
	}
	return &v, nil
}

func (h *Location) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case entity.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrLocationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error(r.Context(), "location request failed", logger.WithError(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
