package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/venueprofit/internal/costs"
)

type costsViewData struct {
	baseViewData
	Categories []costs.Category
	Profiles   []costs.Profile
}

func (s *server) handleCostsForm(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.bookings.Profiles(r.Context(), "")
	if err != nil {
		status, message := s.failureStatus(err, "load cost profiles")
		http.Error(w, message, status)
		return
	}

	s.renderTemplate(w, "costs.html", costsViewData{
		baseViewData: messagesFromQuery(r),
		Categories:   costs.Categories,
		Profiles:     profiles,
	})
}

func (s *server) handleCostsUpdate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		http.Error(w, "invalid cost profile name", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	profile, err := parseProfileForm(r, name)
	if err != nil {
		redirectWithMessage(w, r, "/costs", "error", name+": "+err.Error())
		return
	}

	if err := s.bookings.UpdateProfile(r.Context(), profile); err != nil {
		status, message := s.failureStatus(err, "update cost profile")
		if status == http.StatusBadRequest {
			redirectWithMessage(w, r, "/costs", "error", name+": "+message)
			return
		}
		http.Error(w, message, status)
		return
	}

	redirectWithMessage(w, r, "/costs", "success", "Costs for "+name+" updated successfully.")
}
