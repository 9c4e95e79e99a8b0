package main

import (
	"net/http"
	"strings"

	"github.com/Simplici0/venueprofit/internal/ledger"
)

type searchViewData struct {
	baseViewData
	Query    string
	From     string
	To       string
	Searched bool
	Records  []ledger.Record
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := searchViewData{
		Query: strings.TrimSpace(q.Get("q")),
		From:  strings.TrimSpace(q.Get("from")),
		To:    strings.TrimSpace(q.Get("to")),
	}

	var (
		records []ledger.Record
		err     error
	)
	switch {
	case data.Query != "":
		records, err = s.bookings.Search(r.Context(), data.Query)
	case data.From != "" || data.To != "":
		records, err = s.searchDateRange(r, data.From, data.To)
	default:
		s.renderTemplate(w, "search.html", data)
		return
	}

	if err != nil {
		status, message := s.failureStatus(err, "search bookings")
		data.ErrorMessage = message
		w.WriteHeader(status)
		s.renderTemplate(w, "search.html", data)
		return
	}

	data.Searched = true
	data.Records = records
	if len(records) == 0 {
		data.SuccessMessage = "No records found for the selected search."
	}
	s.renderTemplate(w, "search.html", data)
}

func (s *server) searchDateRange(r *http.Request, rawFrom, rawTo string) ([]ledger.Record, error) {
	from, err := parseDate(rawFrom, "start_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(rawTo, "end_date")
	if err != nil {
		return nil, err
	}
	return s.bookings.SearchDateRange(r.Context(), from, to)
}
