package main

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Simplici0/venueprofit/internal/apperr"
	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/ledger"
)

// calculatorForm echoes the raw calculator inputs back into the page.
type calculatorForm struct {
	Category       costs.Category
	UnitName       string
	CustomerName   string
	NumberOfDays   string
	NumberOfPeople string
	SellingRate    string
}

func readCalculatorForm(r *http.Request) calculatorForm {
	form := calculatorForm{
		Category:       costs.Category(strings.TrimSpace(r.FormValue("category"))),
		UnitName:       strings.TrimSpace(r.FormValue("room_or_hall_name")),
		CustomerName:   strings.TrimSpace(r.FormValue("customer_name")),
		NumberOfDays:   strings.TrimSpace(r.FormValue("number_of_days")),
		NumberOfPeople: strings.TrimSpace(r.FormValue("number_of_people")),
		SellingRate:    strings.TrimSpace(r.FormValue("selling_rate")),
	}
	if !form.Category.Valid() {
		form.Category = costs.CategoryHall
	}
	if form.NumberOfDays == "" {
		form.NumberOfDays = "1"
	}
	if form.NumberOfPeople == "" {
		form.NumberOfPeople = "1"
	}
	if form.SellingRate == "" {
		form.SellingRate = "0"
	}
	return form
}

func (f calculatorForm) request() (bookings.Request, error) {
	req := bookings.Request{
		CustomerName: f.CustomerName,
		Category:     f.Category,
		UnitName:     f.UnitName,
	}

	var err error
	if req.NumberOfDays, err = parsePositiveInt(f.NumberOfDays, "number_of_days"); err != nil {
		return req, err
	}
	if req.NumberOfPeople, err = parsePositiveInt(f.NumberOfPeople, "number_of_people"); err != nil {
		return req, err
	}
	if req.SellingRate, err = parseNonNegativeFloat(f.SellingRate, "selling_rate"); err != nil {
		return req, err
	}
	return req, nil
}

func parseProfileForm(r *http.Request, name string) (costs.Profile, error) {
	p := costs.Profile{
		Name:     name,
		Category: costs.Category(strings.TrimSpace(r.FormValue("category"))),
	}
	if !p.Category.Valid() {
		return p, apperr.Invalid("category", "must be Hall or Room")
	}

	var err error
	for _, field := range []struct {
		key  string
		dest *float64
	}{
		{"utility_cost", &p.UtilityCost},
		{"maintenance_cost", &p.MaintenanceCost},
		{"staffing_cost", &p.StaffingCost},
		{"consumable_cost", &p.ConsumableCost},
		{"marketing_cost", &p.MarketingCost},
		{"asset_cost", &p.AssetCost},
	} {
		if *field.dest, err = parseNonNegativeFloat(r.FormValue(field.key), field.key); err != nil {
			return p, err
		}
	}

	if p.Lifespan, err = parsePositiveInt(r.FormValue("lifespan"), "lifespan"); err != nil {
		return p, err
	}
	return p, nil
}

func parseEditForm(r *http.Request) (bookings.EditRequest, error) {
	req := bookings.EditRequest{
		CustomerName: strings.TrimSpace(r.FormValue("customer_name")),
		Category:     costs.Category(strings.TrimSpace(r.FormValue("category"))),
		UnitName:     strings.TrimSpace(r.FormValue("room_or_hall_name")),
	}

	var err error
	req.SellingRate, err = parseNonNegativeFloat(r.FormValue("selling_rate"), "selling_rate")
	return req, err
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperr.Invalid(field, "must be a number")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperr.Invalid(field, "must be a finite number")
	}
	if value < 0 {
		return 0, apperr.Invalid(field, "must be greater than or equal to 0")
	}
	return value, nil
}

func parsePositiveInt(raw, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperr.Invalid(field, "must be a whole number")
	}
	if value <= 0 {
		return 0, apperr.Invalid(field, "must be at least 1")
	}
	return value, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid booking id %q", raw)
	}
	return id, nil
}

func parseDate(raw, field string) (time.Time, error) {
	d, err := time.Parse(ledger.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperr.Invalid(field, "must be a date formatted YYYY-MM-DD")
	}
	return d, nil
}
