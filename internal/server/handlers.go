package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hightemp/zipzap/internal/countries"
	"github.com/hightemp/zipzap/postalcode"
)

// CountryResponse describes a country in the format table.
type CountryResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name,omitempty"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description,omitempty"`
	Formats     []string `json:"formats"`
}

// ValidateResponse is the result of a validation request.
type ValidateResponse struct {
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Valid      bool   `json:"valid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	codes := s.validator.Countries()
	resp := make([]CountryResponse, 0, len(codes))
	for _, code := range codes {
		c, err := s.country(code)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp = append(resp, c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	c, err := s.country(chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	query := r.URL.Query()

	if !query.Has("postal_code") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing postal_code parameter"})
		return
	}

	ignoreSpaces := false
	if raw := query.Get("ignore_spaces"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid ignore_spaces parameter"})
			return
		}
		ignoreSpaces = b
	}

	postalCode := query.Get("postal_code")
	valid, err := s.validator.IsValid(code, postalCode, ignoreSpaces)
	if err != nil {
		s.metrics.ObserveValidation("unknown", "unknown_country")
		s.writeError(w, r, err)
		return
	}

	result := "invalid"
	if valid {
		result = "valid"
	}
	s.metrics.ObserveValidation(code, result)

	writeJSON(w, http.StatusOK, ValidateResponse{
		Country:    code,
		PostalCode: postalCode,
		Valid:      valid,
	})
}

func (s *Server) country(code string) (CountryResponse, error) {
	formats, err := s.validator.Formats(code)
	if err != nil {
		return CountryResponse{}, err
	}

	c := CountryResponse{
		Code:        code,
		Name:        countries.GetName(code),
		DisplayName: s.validator.DisplayName(code),
		Formats:     formats,
	}
	if info, ok := s.validator.DisplayNameInfo(code); ok {
		c.Description = info.Description
	}
	return c, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, postalcode.ErrUnknownCountry) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
