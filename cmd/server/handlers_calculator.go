package main

import (
	"fmt"
	"net/http"

	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/costs"
)

type calculatorViewData struct {
	baseViewData
	Categories []costs.Category
	UnitNames  []string
	Form       calculatorForm
	Quote      *bookings.Quote
}

func (s *server) handleCalculatorForm(w http.ResponseWriter, r *http.Request) {
	form := readCalculatorForm(r)
	data, err := s.calculatorView(r, form)
	if err != nil {
		status, message := s.failureStatus(err, "load cost profiles")
		http.Error(w, message, status)
		return
	}
	data.baseViewData = messagesFromQuery(r)
	s.renderTemplate(w, "calculator.html", data)
}

func (s *server) handleCalculatorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := readCalculatorForm(r)
	data, err := s.calculatorView(r, form)
	if err != nil {
		status, message := s.failureStatus(err, "load cost profiles")
		http.Error(w, message, status)
		return
	}

	fail := func(err error, action string) {
		status, message := s.failureStatus(err, action)
		data.ErrorMessage = message
		w.WriteHeader(status)
		s.renderTemplate(w, "calculator.html", data)
	}

	req, err := form.request()
	if err != nil {
		fail(err, "calculate")
		return
	}

	if r.FormValue("action") == "save" {
		rec, err := s.bookings.Record(r.Context(), req)
		if err != nil {
			fail(err, "save booking")
			return
		}
		redirectWithMessage(w, r, "/bookings", "success", fmt.Sprintf("Booking #%d saved (%s).", rec.ID, rec.Status))
		return
	}

	quote, err := s.bookings.Preview(r.Context(), req)
	if err != nil {
		fail(err, "calculate")
		return
	}
	data.Quote = &quote
	s.renderTemplate(w, "calculator.html", data)
}

func (s *server) calculatorView(r *http.Request, form calculatorForm) (calculatorViewData, error) {
	names, err := s.bookings.UnitNames(r.Context(), form.Category)
	if err != nil {
		return calculatorViewData{}, err
	}
	if form.UnitName == "" && len(names) > 0 {
		form.UnitName = names[0]
	}
	return calculatorViewData{
		Categories: costs.Categories,
		UnitNames:  names,
		Form:       form,
	}, nil
}
