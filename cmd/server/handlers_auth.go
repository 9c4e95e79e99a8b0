package main

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type loginViewData struct {
	baseViewData
}

func (s *server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil || s.auth.IsAuthenticated(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderTemplate(w, "login.html", loginViewData{})
}

func (s *server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	valid, err := s.auth.ValidateCredentials(r.Context(), email, r.FormValue("password"))
	if err != nil {
		s.log.Error("validate credentials", zap.Error(err))
		http.Error(w, "authentication error", http.StatusInternalServerError)
		return
	}
	if !valid {
		s.log.Warn("rejected login", zap.String("email", email))
		w.WriteHeader(http.StatusUnauthorized)
		s.renderTemplate(w, "login.html", loginViewData{baseViewData: baseViewData{ErrorMessage: "Invalid email or password. Try again."}})
		return
	}

	s.auth.SetSessionCookie(w, email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if s.auth != nil {
		s.auth.ClearSessionCookie(w)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
