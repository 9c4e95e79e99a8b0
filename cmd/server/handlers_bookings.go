package main

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/ledger"
	"github.com/Simplici0/venueprofit/internal/money"
)

type bookingsViewData struct {
	baseViewData
	Title   string
	Records []ledger.Record
}

type bookingEditViewData struct {
	baseViewData
	Record     ledger.Record
	Categories []costs.Category
	UnitNames  []string
}

var csvHeader = []string{
	"id", "date", "day_of_week", "customer_name", "category", "room_or_hall_name",
	"number_of_days", "number_of_people", "selling_rate", "total_unit_cost", "total_cost",
	"total_revenue", "profit_margin", "profit_margin_percent", "cost_mode", "status",
}

func (s *server) handleBookingsList(w http.ResponseWriter, r *http.Request) {
	records, err := s.bookings.List(r.Context())
	if err != nil {
		status, message := s.failureStatus(err, "load bookings")
		http.Error(w, message, status)
		return
	}

	s.renderTemplate(w, "bookings.html", bookingsViewData{
		baseViewData: messagesFromQuery(r),
		Title:        "Booking Records",
		Records:      records,
	})
}

func (s *server) handleBookingsExport(w http.ResponseWriter, r *http.Request) {
	records, err := s.bookings.List(r.Context())
	if err != nil {
		status, message := s.failureStatus(err, "export bookings")
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		s.log.Error("write csv header", zap.Error(err))
		return
	}
	for _, rec := range records {
		if err := cw.Write(csvRow(rec)); err != nil {
			s.log.Error("write csv row", zap.Int64("id", rec.ID), zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.log.Error("flush csv", zap.Error(err))
	}
}

func csvRow(rec ledger.Record) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.Date.Format(ledger.DateLayout),
		rec.DayOfWeek,
		rec.CustomerName,
		rec.Category,
		rec.UnitName,
		strconv.Itoa(rec.NumberOfDays),
		strconv.Itoa(rec.NumberOfPeople),
		money.Format(rec.SellingRate),
		money.Format(rec.TotalUnitCost),
		money.Format(rec.TotalCost),
		money.Format(rec.TotalRevenue),
		money.Format(rec.ProfitMargin),
		money.Format(rec.ProfitMarginPercent),
		rec.CostMode,
		rec.Status,
	}
}

func (s *server) handleBookingEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.bookings.Get(r.Context(), id)
	if err != nil {
		status, message := s.failureStatus(err, "load booking")
		http.Error(w, message, status)
		return
	}

	data, err := s.bookingEditView(r, rec)
	if err != nil {
		status, message := s.failureStatus(err, "load cost profiles")
		http.Error(w, message, status)
		return
	}
	data.baseViewData = messagesFromQuery(r)
	s.renderTemplate(w, "booking_edit.html", data)
}

func (s *server) handleBookingEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	editPath := "/bookings/" + strconv.FormatInt(id, 10) + "/edit"

	req, err := parseEditForm(r)
	if err != nil {
		redirectWithMessage(w, r, editPath, "error", err.Error())
		return
	}

	if _, err := s.bookings.Edit(r.Context(), id, req); err != nil {
		status, message := s.failureStatus(err, "update booking")
		if status == http.StatusBadRequest {
			redirectWithMessage(w, r, editPath, "error", message)
			return
		}
		http.Error(w, message, status)
		return
	}

	redirectWithMessage(w, r, "/bookings", "success", "Booking record updated successfully.")
}

func (s *server) bookingEditView(r *http.Request, rec ledger.Record) (bookingEditViewData, error) {
	names, err := s.bookings.UnitNames(r.Context(), "")
	if err != nil {
		return bookingEditViewData{}, err
	}
	return bookingEditViewData{
		Record:     rec,
		Categories: costs.Categories,
		UnitNames:  names,
	}, nil
}
