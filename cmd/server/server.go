package main

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/apperr"
	"github.com/Simplici0/venueprofit/internal/auth"
	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/money"
	"github.com/Simplici0/venueprofit/internal/profitability"
	"github.com/Simplici0/venueprofit/web"
)

type server struct {
	bookings *bookings.Service
	// auth is nil when no operator account is configured.
	auth *auth.Service
	log  *zap.Logger
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

var templateFuncs = template.FuncMap{
	"money":       money.Format,
	"percent":     money.Percent,
	"pathEscape":  url.PathEscape,
	"statusClass": statusClass,
}

func statusClass(status any) string {
	switch profitability.Status(toString(status)) {
	case profitability.StatusProfitable:
		return "status-profitable"
	case profitability.StatusNotProfitable:
		return "status-not-profitable"
	default:
		return ""
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case profitability.Status:
		return string(s)
	default:
		return ""
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	if s.auth != nil {
		r.Use(s.auth.Middleware)
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { http.Redirect(w, r, "/calculator", http.StatusSeeOther) })
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLoginSubmit)
	r.Post("/logout", s.handleLogout)

	r.Get("/calculator", s.handleCalculatorForm)
	r.Post("/calculator", s.handleCalculatorSubmit)
	r.Get("/bookings", s.handleBookingsList)
	r.Get("/bookings.csv", s.handleBookingsExport)
	r.Get("/bookings/{id}/edit", s.handleBookingEditForm)
	r.Post("/bookings/{id}", s.handleBookingEditSubmit)
	r.Get("/costs", s.handleCostsForm)
	r.Post("/costs/{name}", s.handleCostsUpdate)
	r.Get("/search", s.handleSearch)

	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(web.Templates(), "layout.html", "partials.html", page)
	if err != nil {
		s.log.Error("parse template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error("render template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

// failureStatus maps service errors onto HTTP status codes and the message
// shown to the operator.
func (s *server) failureStatus(err error, action string) (int, string) {
	switch {
	case apperr.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case apperr.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	default:
		s.log.Error(action, zap.Error(err))
		return http.StatusInternalServerError, "failed to " + action
	}
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, key, message string) {
	target := path
	if message != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target += sep + key + "=" + url.QueryEscape(message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func messagesFromQuery(r *http.Request) baseViewData {
	return baseViewData{
		ErrorMessage:   r.URL.Query().Get("error"),
		SuccessMessage: r.URL.Query().Get("success"),
	}
}
